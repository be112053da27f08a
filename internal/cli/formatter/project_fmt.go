package formatter

import (
	"fmt"
	"strings"

	"github.com/dperalta/projecthub/internal/domain"
)

// FormatProjectList renders the project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "PROYECTO", "ESTADO", "RESPONSABLE", "AVANCE", "PRESUPUESTO", "PLAZO"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		lead := p.Lead
		if strings.TrimSpace(lead) == "" {
			lead = Dim("Sin asignar")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			StatusPill(p.Status),
			lead,
			RenderProgress(float64(p.DossierProgress())/100, 10),
			Money(p.BudgetTotal()),
			p.Duration(),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Proyectos", table)
}

// FormatProjectInspect renders the project detail card.
func FormatProjectInspect(p *domain.Project, personnel []*domain.Person) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ESTADO  "), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), TruncID(p.ID)))
	b.WriteString(fmt.Sprintf("%s  %s → %s  %s\n", StyleDim.Render("PLAZO   "),
		DateOrDash(p.StartDate), DateOrDash(p.EndDate), Dim("("+p.Duration()+")")))
	lead := p.Lead
	if strings.TrimSpace(lead) == "" {
		lead = "Sin asignar"
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("RESP.   "), lead))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("AVANCE  "), RenderProgress(float64(p.DossierProgress())/100, 16)))

	b.WriteString("\n" + Header("Presupuesto") + "\n")
	for _, cat := range domain.BudgetCategories {
		label := strings.ToUpper(cat[:1]) + cat[1:]
		b.WriteString(fmt.Sprintf("%-12s %s\n", label, Money(p.Budget[cat])))
	}
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Total", Bold(Money(p.BudgetTotal()))))

	if len(p.Team) > 0 {
		b.WriteString("\n" + Header("Equipo") + "\n")
		for _, member := range p.Team {
			b.WriteString("• " + member + "\n")
		}
	}

	if len(p.Milestones) > 0 {
		b.WriteString("\n" + Header("Hitos") + "\n")
		for _, m := range p.Milestones {
			b.WriteString(fmt.Sprintf("%s  %s\n", Dim(m.Date), m.Name))
		}
	}

	return RenderBox("", b.String())
}

// FormatDashboard renders the summary KPI card over both collections.
func FormatDashboard(projects []*domain.Project, personnel []*domain.Person) string {
	var totalBudget float64
	var milestones int
	byStatus := map[domain.ProjectStatus]int{}
	for _, p := range projects {
		totalBudget += p.BudgetTotal()
		milestones += len(p.Milestones)
		byStatus[p.Status]++
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %d\n", StyleDim.Render("Proyectos       "), len(projects)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("Presupuesto     "), Bold(Money(totalBudget))))
	b.WriteString(fmt.Sprintf("%s  %d\n", StyleDim.Render("Hitos           "), milestones))
	b.WriteString(fmt.Sprintf("%s  %d\n", StyleDim.Render("Personal        "), len(personnel)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %d\n", StatusPill(domain.ProjectInProgress), byStatus[domain.ProjectInProgress]))
	b.WriteString(fmt.Sprintf("%s  %d\n", StatusPill(domain.ProjectStopped), byStatus[domain.ProjectStopped]))
	b.WriteString(fmt.Sprintf("%s  %d\n", StatusPill(domain.ProjectFinished), byStatus[domain.ProjectFinished]))

	return RenderBox("Resumen", b.String())
}
