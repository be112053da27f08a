package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dperalta/projecthub/internal/cli/formatter"
	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/service"
)

// hubHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func hubHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use el formato YYYY-MM-DD")
	}
	return nil
}

// validateOptionalAmount accepts empty or a non-negative number.
func validateOptionalAmount(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("ingrese un monto válido")
	}
	return nil
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// runProjectWizard walks the four project-creation steps (datos generales,
// equipo, presupuesto, hitos) and returns the assembled draft.
func runProjectWizard(snap *service.Snapshot) (service.ProjectDraft, error) {
	var draft service.ProjectDraft
	status := string(domain.ProjectInProgress)

	// Step 1: basics.
	basics := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre del proyecto").
				Value(&draft.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("el nombre del proyecto es obligatorio")
					}
					return nil
				}),
			huh.NewInput().
				Title("Fecha de inicio").
				Placeholder("YYYY-MM-DD").
				Value(&draft.StartDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Fecha de fin").
				Placeholder("YYYY-MM-DD").
				Value(&draft.EndDate).
				Validate(validateOptionalDate),
			huh.NewSelect[string]().
				Title("Estado").
				Options(
					huh.NewOption("En curso", string(domain.ProjectInProgress)),
					huh.NewOption("Detenido", string(domain.ProjectStopped)),
					huh.NewOption("Finalizado", string(domain.ProjectFinished)),
				).
				Value(&status),
		),
	).WithTheme(hubHuhTheme()).WithShowHelp(false)
	if err := basics.Run(); err != nil {
		return draft, err
	}
	draft.Status = domain.ProjectStatus(status)

	// Step 2: team. Lead candidates come from the lead-role predicate; team
	// members are picked from the whole roster.
	var leadOptions []huh.Option[string]
	var teamOptions []huh.Option[string]
	for _, p := range snap.Personnel {
		label := fmt.Sprintf("%s — %s", p.Name, p.Role)
		if p.IsLead() {
			leadOptions = append(leadOptions, huh.NewOption(label, p.Name))
		}
		teamOptions = append(teamOptions, huh.NewOption(label, p.Name))
	}
	if len(leadOptions) > 0 {
		leadOptions = append([]huh.Option[string]{huh.NewOption("Sin asignar", "")}, leadOptions...)
		team := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Responsable").
					Options(leadOptions...).
					Value(&draft.Lead),
				huh.NewMultiSelect[string]().
					Title("Equipo").
					Options(teamOptions...).
					Value(&draft.Team),
			),
		).WithTheme(hubHuhTheme()).WithShowHelp(false)
		if err := team.Run(); err != nil {
			return draft, err
		}
	}

	// Step 3: budget, one amount per fixed category.
	inputs := make(map[string]*string, len(domain.BudgetCategories))
	budgetFields := make([]huh.Field, 0, len(domain.BudgetCategories))
	for _, cat := range domain.BudgetCategories {
		v := new(string)
		inputs[cat] = v
		budgetFields = append(budgetFields, huh.NewInput().
			Title("Presupuesto: "+cat).
			Placeholder("0.00").
			Value(v).
			Validate(validateOptionalAmount))
	}
	budgetForm := huh.NewForm(huh.NewGroup(budgetFields...)).
		WithTheme(hubHuhTheme()).WithShowHelp(false)
	if err := budgetForm.Run(); err != nil {
		return draft, err
	}
	draft.Budget = domain.NewBudget()
	for _, cat := range domain.BudgetCategories {
		draft.Budget[cat] = parseAmount(*inputs[cat])
	}

	// Step 4: milestones, repeated until declined.
	for {
		more := false
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("¿Agregar un hito?").
					Affirmative("Sí").
					Negative("No").
					Value(&more),
			),
		).WithTheme(hubHuhTheme()).WithShowHelp(false)
		if err := confirm.Run(); err != nil {
			return draft, err
		}
		if !more {
			break
		}

		var m domain.Milestone
		milestone := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Nombre del hito").
					Value(&m.Name).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("el nombre del hito es obligatorio")
						}
						return nil
					}),
				huh.NewInput().
					Title("Fecha").
					Placeholder("YYYY-MM-DD").
					Value(&m.Date).
					Validate(validateOptionalDate),
			),
		).WithTheme(hubHuhTheme()).WithShowHelp(false)
		if err := milestone.Run(); err != nil {
			return draft, err
		}
		draft.Milestones = append(draft.Milestones, m)
	}

	return draft, nil
}

// promptCredentials asks for email and password interactively.
func promptCredentials(email, password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Correo").
				Value(email),
			huh.NewInput().
				Title("Contraseña").
				EchoMode(huh.EchoModePassword).
				Value(password),
		),
	).WithTheme(hubHuhTheme()).WithShowHelp(false)
	return form.Run()
}
