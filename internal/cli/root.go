package cli

import (
	"github.com/dperalta/projecthub/internal/auth"
	"github.com/dperalta/projecthub/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth      auth.Service
	Refresh   service.RefreshService
	Projects  service.ProjectService
	Personnel service.PersonnelService
	Dossier   service.DossierService
	Schedule  service.ScheduleService

	// IsInteractive reports whether stdin is a terminal; wizard and editor
	// entrypoints are gated on it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "projecthub" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "projecthub",
		Short: "Gestión de proyectos de la oficina de ingeniería",
	}

	root.AddCommand(
		newProjectCmd(app),
		newPersonnelCmd(app),
		newDossierCmd(app),
		newScheduleCmd(app),
		newDashboardCmd(app),
		newLoginCmd(app),
	)

	return root
}

func interactive(app *App) bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
