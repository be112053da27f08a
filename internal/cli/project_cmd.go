package cli

import (
	"context"
	"fmt"

	"github.com/dperalta/projecthub/internal/cli/formatter"
	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/service"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Gestionar proyectos",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
		newProjectMilestoneCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, start, end, lead string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crear un proyecto",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			d := service.ProjectDraft{Name: name, StartDate: start, EndDate: end, Lead: lead}
			if name == "" && interactive(app) {
				snap, err := loadSnapshot(ctx, app)
				if err != nil {
					return err
				}
				d, err = runProjectWizard(snap)
				if err != nil {
					return err
				}
			}

			snap, err := app.Projects.Create(ctx, d)
			if err != nil {
				return err
			}

			for _, p := range snap.Projects {
				if p.Name == d.Name {
					fmt.Printf("Proyecto creado: %s [%s]\n", p.Name, p.ID[:8])
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Nombre del proyecto")
	cmd.Flags().StringVar(&start, "start", "", "Fecha de inicio (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Fecha de fin (YYYY-MM-DD)")
	cmd.Flags().StringVar(&lead, "lead", "", "Responsable")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar proyectos",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(context.Background(), app)
			if err != nil {
				return err
			}
			if len(snap.Projects) == 0 {
				fmt.Println("No hay proyectos registrados.")
				return nil
			}
			fmt.Println(formatter.FormatProjectList(snap.Projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PROYECTO",
		Short: "Mostrar el detalle de un proyecto",
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
			fmt.Println(formatter.FormatProjectInspect(p, snap.Personnel))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, start, end, status, lead string

	cmd := &cobra.Command{
		Use:   "update PROYECTO",
		Short: "Actualizar un proyecto",
		Args:  cobra.ExactArgs(1),
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

			var patch service.ProjectPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("start") {
				patch.StartDate = &start
			}
			if cmd.Flags().Changed("end") {
				patch.EndDate = &end
			}
			if cmd.Flags().Changed("status") {
				st := domain.ProjectStatus(status)
				patch.Status = &st
			}
			if cmd.Flags().Changed("lead") {
				patch.Lead = &lead
			}

			snap, err = app.Projects.Update(ctx, p.ID, patch)
			if err != nil {
				return err
			}

			fmt.Printf("Proyecto actualizado: %s\n", snap.ProjectByID(p.ID).Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Nombre del proyecto")
	cmd.Flags().StringVar(&start, "start", "", "Fecha de inicio (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Fecha de fin (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Estado (En curso|Detenido|Finalizado)")
	cmd.Flags().StringVar(&lead, "lead", "", "Responsable")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROYECTO",
		Short: "Eliminar un proyecto",
		Args:  cobra.ExactArgs(1),
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
			if _, err := app.Projects.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Proyecto eliminado: %s\n", p.Name)
			return nil
		},
	}
}

func newProjectMilestoneCmd(app *App) *cobra.Command {
	var name, date string

	cmd := &cobra.Command{
		Use:   "milestone PROYECTO",
		Short: "Agregar un hito",
		Args:  cobra.ExactArgs(1),
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
			if _, err := app.Projects.AddMilestone(ctx, p.ID, domain.Milestone{Name: name, Date: date}); err != nil {
				return err
			}
			fmt.Printf("Hito agregado a %s: %s\n", p.Name, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Nombre del hito")
	cmd.Flags().StringVar(&date, "date", "", "Fecha (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
