package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dperalta/projecthub/internal/cli/formatter"
	"github.com/dperalta/projecthub/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Gestionar el cronograma de costos",
	}

	cmd.AddCommand(
		newScheduleItemsCmd(app),
		newScheduleAddItemCmd(app),
		newScheduleEditItemCmd(app),
		newScheduleRemoveItemCmd(app),
		newScheduleToggleMonthCmd(app),
		newScheduleExecutedCmd(app),
		newScheduleMatrixCmd(app),
		newScheduleCronogramCmd(app),
	)

	return cmd
}

func itemKind(kind string) (domain.LineItemKind, error) {
	switch kind {
	case "material", "materiales":
		return domain.ItemMaterial, nil
	case "service", "servicios":
		return domain.ItemService, nil
	default:
		return "", fmt.Errorf("tipo de ítem inválido: %q (material|service)", kind)
	}
}

func parseItemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id de ítem inválido: %q", arg)
	}
	return id, nil
}

func kindTitle(kind domain.LineItemKind) string {
	if kind == domain.ItemService {
		return "Servicios"
	}
	return "Materiales"
}

func newScheduleItemsCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "items PROYECTO",
		Short: "Listar los ítems programados",
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
			k, err := itemKind(kind)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatLineItems(kindTitle(k), p.Costs.Items(k)))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "material", "Tipo de ítem (material|service)")

	return cmd
}

func newScheduleAddItemCmd(app *App) *cobra.Command {
	var kind, unit, qty, cost string

	cmd := &cobra.Command{
		Use:   "add-item PROYECTO NOMBRE",
		Short: "Agregar un ítem programado",
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
			k, err := itemKind(kind)
			if err != nil {
				return err
			}
			draft := domain.LineItemDraft{Name: args[1], Unit: unit, Quantity: qty, UnitCost: cost}
			snap, err = app.Schedule.AddLineItem(ctx, p.ID, k, draft)
			if err != nil {
				return err
			}
			items := snap.ProjectByID(p.ID).Costs.Items(k)
			added := items[len(items)-1]
			fmt.Printf("Ítem %d agregado: %s (%s)\n", added.ID, added.Name, formatter.Money(added.Total))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "material", "Tipo de ítem (material|service)")
	cmd.Flags().StringVar(&unit, "unit", "", "Unidad de medida")
	cmd.Flags().StringVar(&qty, "qty", "", "Cantidad (por defecto 1)")
	cmd.Flags().StringVar(&cost, "cost", "", "Precio unitario (por defecto 0)")

	return cmd
}

func newScheduleEditItemCmd(app *App) *cobra.Command {
	var kind, name, unit string
	var qty, cost float64

	cmd := &cobra.Command{
		Use:   "edit-item PROYECTO ID",
		Short: "Editar un ítem (el parcial se recalcula)",
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
			k, err := itemKind(kind)
			if err != nil {
				return err
			}
			id, err := parseItemID(args[1])
			if err != nil {
				return err
			}

			var patch domain.LineItemPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("unit") {
				patch.Unit = &unit
			}
			if cmd.Flags().Changed("qty") {
				patch.Quantity = &qty
			}
			if cmd.Flags().Changed("cost") {
				patch.UnitCost = &cost
			}

			if _, err := app.Schedule.EditLineItem(ctx, p.ID, k, id, patch); err != nil {
				return err
			}
			fmt.Printf("Ítem %d actualizado\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "material", "Tipo de ítem (material|service)")
	cmd.Flags().StringVar(&name, "name", "", "Descripción")
	cmd.Flags().StringVar(&unit, "unit", "", "Unidad de medida")
	cmd.Flags().Float64Var(&qty, "qty", 0, "Cantidad")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Precio unitario")

	return cmd
}

func newScheduleRemoveItemCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "remove-item PROYECTO ID",
		Short: "Eliminar un ítem",
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
			k, err := itemKind(kind)
			if err != nil {
				return err
			}
			id, err := parseItemID(args[1])
			if err != nil {
				return err
			}
			if _, err := app.Schedule.DeleteLineItem(ctx, p.ID, k, id); err != nil {
				return err
			}
			fmt.Printf("Ítem %d eliminado\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "material", "Tipo de ítem (material|service)")

	return cmd
}

func newScheduleToggleMonthCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "month PROYECTO ID MES",
		Short: "Activar o desactivar un mes (YYYY-MM) del ítem",
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
			k, err := itemKind(kind)
			if err != nil {
				return err
			}
			id, err := parseItemID(args[1])
			if err != nil {
				return err
			}
			if _, err := app.Schedule.ToggleLineItemMonth(ctx, p.ID, k, id, args[2]); err != nil {
				return err
			}
			fmt.Printf("Mes %s conmutado en el ítem %d\n", args[2], id)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "material", "Tipo de ítem (material|service)")

	return cmd
}

func newScheduleExecutedCmd(app *App) *cobra.Command {
	var category string
	var amount float64

	cmd := &cobra.Command{
		Use:   "executed PROYECTO MES",
		Short: "Registrar el gasto ejecutado de un mes",
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

			var cat domain.CostCategory
			switch category {
			case "personal", "personnel":
				cat = domain.CostPersonnel
			case "bienes", "goods":
				cat = domain.CostGoods
			case "servicios", "services":
				cat = domain.CostServices
			default:
				return fmt.Errorf("categoría inválida: %q (personal|bienes|servicios)", category)
			}

			if _, err := app.Schedule.SetExecutedCost(ctx, p.ID, args[1], cat, amount); err != nil {
				return err
			}
			fmt.Printf("Ejecutado %s de %s: %s\n", category, args[1], formatter.Money(amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Categoría (personal|bienes|servicios)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Monto ejecutado")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newScheduleMatrixCmd(app *App) *cobra.Command {
	var executed bool

	cmd := &cobra.Command{
		Use:   "matrix PROYECTO",
		Short: "Matriz mensual de costos programados o ejecutados",
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

			months := p.ScheduleMonths()
			if executed {
				rows := domain.ExecutedCostMatrix(p, months)
				fmt.Println(formatter.FormatCostMatrix("Ejecutado — "+p.Name, rows))
				return nil
			}
			rows := domain.ProgrammedCostMatrix(p, snap.Personnel, months)
			fmt.Println(formatter.FormatCostMatrix("Programado — "+p.Name, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&executed, "executed", false, "Mostrar lo ejecutado en lugar de lo programado")

	return cmd
}

func newScheduleCronogramCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cronogram",
		Short: "Diagrama de barras de todos los proyectos",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCronogram(snap.Projects))
			return nil
		},
	}
}
