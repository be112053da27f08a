package cli

import (
	"context"
	"fmt"

	"github.com/dperalta/projecthub/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Resumen general de la oficina",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDashboard(snap.Projects, snap.Personnel))
			if len(snap.Projects) > 0 {
				fmt.Println(formatter.FormatCronogram(snap.Projects))
			}
			return nil
		},
	}
}
