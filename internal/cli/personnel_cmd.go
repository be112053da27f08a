package cli

import (
	"context"
	"fmt"

	"github.com/dperalta/projecthub/internal/cli/formatter"
	"github.com/dperalta/projecthub/internal/service"
	"github.com/spf13/cobra"
)

func newPersonnelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personnel",
		Short: "Gestionar el personal de la oficina",
	}

	cmd.AddCommand(
		newPersonnelAddCmd(app),
		newPersonnelListCmd(app),
		newPersonnelReportCmd(app),
		newPersonnelRenameCmd(app),
		newPersonnelRemoveCmd(app),
		newPersonnelAssignCmd(app),
		newPersonnelSubordinateCmd(app),
		newPersonnelMonthCmd(app),
	)

	return cmd
}

func newPersonnelAddCmd(app *App) *cobra.Command {
	var name, role, phone, lead string
	var rate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registrar una persona",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			draft := service.PersonDraft{Name: name, Role: role, Phone: phone, MonthlyRate: rate}

			if lead != "" {
				snap, err := loadSnapshot(ctx, app)
				if err != nil {
					return err
				}
				boss, err := resolvePerson(snap, lead)
				if err != nil {
					return err
				}
				if _, err := app.Personnel.CreateSubordinate(ctx, draft, boss.ID); err != nil {
					return err
				}
				fmt.Printf("Personal registrado: %s (a cargo de %s)\n", name, boss.Name)
				return nil
			}

			if _, err := app.Personnel.Create(ctx, draft); err != nil {
				return err
			}
			fmt.Printf("Personal registrado: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Nombre completo")
	cmd.Flags().StringVar(&role, "role", "", "Cargo (Formulador, Proyectista I-III, Asistente, Especialista)")
	cmd.Flags().StringVar(&phone, "phone", "", "Teléfono")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Compensación mensual")
	cmd.Flags().StringVar(&lead, "lead", "", "Responsable bajo el cual registrar a la persona")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newPersonnelListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Mostrar el organigrama",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(context.Background(), app)
			if err != nil {
				return err
			}
			if len(snap.Personnel) == 0 {
				fmt.Println("No hay personal registrado.")
				return nil
			}
			fmt.Println(formatter.FormatOrgChart(snap.Personnel))
			return nil
		},
	}
}

func newPersonnelReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Reporte de personal por proyecto",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPersonnelReport(snap.Projects, snap.Personnel))
			return nil
		},
	}
}

func newPersonnelRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename PERSONA NOMBRE",
		Short: "Cambiar el nombre de una persona",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolvePerson(snap, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Personnel.Rename(ctx, p.ID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Nombre actualizado: %s\n", args[1])
			return nil
		},
	}
}

func newPersonnelRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PERSONA",
		Short: "Eliminar una persona",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			p, err := resolvePerson(snap, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Personnel.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Personal eliminado: %s\n", p.Name)
			return nil
		},
	}
}

func newPersonnelAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign PERSONA PROYECTO",
		Short: "Asignar o retirar un proyecto (máximo 3)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			person, err := resolvePerson(snap, args[0])
			if err != nil {
				return err
			}
			project, err := resolveProject(snap, args[1])
			if err != nil {
				return err
			}
			snap, err = app.Personnel.ToggleProjectAssignment(ctx, person.ID, project.Name)
			if err != nil {
				return err
			}
			if snap.PersonByID(person.ID).AssignedTo(project.Name) {
				fmt.Printf("%s asignado a %s\n", person.Name, project.Name)
			} else {
				fmt.Printf("%s retirado de %s\n", person.Name, project.Name)
			}
			return nil
		},
	}
}

func newPersonnelSubordinateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "subordinate RESPONSABLE PERSONA",
		Short: "Vincular o desvincular a una persona bajo un responsable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			lead, err := resolvePerson(snap, args[0])
			if err != nil {
				return err
			}
			person, err := resolvePerson(snap, args[1])
			if err != nil {
				return err
			}
			if _, err := app.Personnel.ToggleSubordinate(ctx, lead.ID, person.ID); err != nil {
				return err
			}
			fmt.Printf("Vínculo actualizado: %s ↔ %s\n", lead.Name, person.Name)
			return nil
		},
	}
}

func newPersonnelMonthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month PERSONA PROYECTO MES",
		Short: "Activar o desactivar un mes (YYYY-MM) para el cálculo de costos",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := loadSnapshot(ctx, app)
			if err != nil {
				return err
			}
			person, err := resolvePerson(snap, args[0])
			if err != nil {
				return err
			}
			project, err := resolveProject(snap, args[1])
			if err != nil {
				return err
			}
			if _, err := app.Personnel.ToggleMonthActivation(ctx, person.ID, project.Name, args[2]); err != nil {
				return err
			}
			fmt.Printf("Mes %s conmutado para %s en %s\n", args[2], person.Name, project.Name)
			return nil
		},
	}
}
