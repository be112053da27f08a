package cli

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dperalta/projecthub/internal/cli/formatter"
	"github.com/dperalta/projecthub/internal/domain"
	"github.com/spf13/cobra"
)

func newDossierCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dossier",
		Short: "Gestionar el expediente técnico de un proyecto",
	}

	cmd.AddCommand(
		newDossierShowCmd(app),
		newDossierEditCmd(app),
		newDossierAddActivityCmd(app),
		newDossierRenameActivityCmd(app),
		newDossierRemoveActivityCmd(app),
		newDossierAddSubCmd(app),
		newDossierRemoveSubCmd(app),
		newDossierProgressCmd(app),
		newDossierObserveCmd(app),
	)

	return cmd
}

func parseActivityKey(arg string) (int, error) {
	key, err := strconv.Atoi(arg)
	if err != nil || key < 1 {
		return 0, fmt.Errorf("número de actividad inválido: %q", arg)
	}
	return key, nil
}

func newDossierShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROYECTO",
		Short: "Mostrar el expediente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(context.Background(), app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDossier(p))
			return nil
		},
	}
}

func newDossierEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit PROYECTO",
		Short: "Editor interactivo del expediente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(app) {
				return fmt.Errorf("el editor requiere un terminal interactivo")
			}
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			model := newDossierModel(app, p.ID, snap)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

func newDossierAddActivityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-activity PROYECTO NOMBRE",
		Short: "Agregar una actividad al final",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			snap, err = app.Dossier.AddActivity(ctx, p.ID, args[1])
			if err != nil {
				return err
			}
			d := snap.ProjectByID(p.ID).Dossier
			fmt.Printf("Actividad %d agregada: %s\n", len(d), d[len(d)].Name)
			return nil
		},
	}
}

func newDossierRenameActivityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename-activity PROYECTO N NOMBRE",
		Short: "Renombrar una actividad",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			key, err := parseActivityKey(args[1])
			if err != nil {
				return err
			}
			if _, err := app.Dossier.RenameActivity(ctx, p.ID, key, args[2]); err != nil {
				return err
			}
			fmt.Printf("Actividad %d renombrada\n", key)
			return nil
		},
	}
}

func newDossierRemoveActivityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-activity PROYECTO N",
		Short: "Eliminar una actividad (las restantes se renumeran)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			key, err := parseActivityKey(args[1])
			if err != nil {
				return err
			}
			if _, err := app.Dossier.DeleteActivity(ctx, p.ID, key); err != nil {
				return err
			}
			fmt.Printf("Actividad %d eliminada\n", key)
			return nil
		},
	}
}

func newDossierAddSubCmd(app *App) *cobra.Command {
	var progress int
	var observations string

	cmd := &cobra.Command{
		Use:   "add-sub PROYECTO N NOMBRE",
		Short: "Agregar una sub-actividad",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			key, err := parseActivityKey(args[1])
			if err != nil {
				return err
			}
			draft := domain.SubActivity{Name: args[2], Progress: progress, Observations: observations}
			if _, err := app.Dossier.AddSubActivity(ctx, p.ID, key, draft); err != nil {
				return err
			}
			fmt.Printf("Sub-actividad agregada a la actividad %d\n", key)
			return nil
		},
	}

	cmd.Flags().IntVar(&progress, "progress", 0, "Avance inicial (0-100)")
	cmd.Flags().StringVar(&observations, "obs", "", "Observaciones")

	return cmd
}

func newDossierRemoveSubCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-sub PROYECTO N SUB",
		Short: "Eliminar una sub-actividad",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			key, err := parseActivityKey(args[1])
			if err != nil {
				return err
			}
			if _, err := app.Dossier.RemoveSubActivity(ctx, p.ID, key, args[2]); err != nil {
				return err
			}
			fmt.Println("Sub-actividad eliminada")
			return nil
		},
	}
}

func newDossierProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress PROYECTO N SUB AVANCE",
		Short: "Registrar el avance de una sub-actividad (0-100)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			key, err := parseActivityKey(args[1])
			if err != nil {
				return err
			}
			progress, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("avance inválido: %q", args[3])
			}
			snap, err = app.Dossier.SetSubActivityProgress(ctx, p.ID, key, args[2], progress)
			if err != nil {
				return err
			}
			fmt.Printf("Avance del proyecto: %d%%\n", snap.ProjectByID(p.ID).DossierProgress())
			return nil
		},
	}
}

func newDossierObserveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "observe PROYECTO N SUB TEXTO",
		Short: "Registrar observaciones en una sub-actividad",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolveProject(snap, args[0])
			if err != nil {
				return err
			}
			key, err := parseActivityKey(args[1])
			if err != nil {
				return err
			}
			if _, err := app.Dossier.SetSubActivityObservations(ctx, p.ID, key, args[2], args[3]); err != nil {
				return err
			}
			fmt.Println("Observaciones registradas")
			return nil
		},
	}
}
