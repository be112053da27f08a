package formatter

import (
	"fmt"
	"strings"

	"github.com/dperalta/projecthub/internal/domain"
)

// FormatLineItems renders one kind's line item table with activation months.
func FormatLineItems(title string, items []domain.LineItem) string {
	headers := []string{"ID", "DESCRIPCIÓN", "UNIDAD", "CANT.", "P. UNIT.", "PARCIAL", "MESES"}
	rows := make([][]string, 0, len(items))
	var total float64
	for i := range items {
		it := items[i]
		months := "todos"
		if active := activeMonths(&it); len(active) > 0 {
			months = strings.Join(active, " ")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", it.ID),
			it.Name,
			it.Unit,
			fmt.Sprintf("%g", it.Quantity),
			Money(it.UnitCost),
			Money(it.Total),
			Dim(months),
		})
		total += it.Total
	}
	rows = append(rows, []string{"", Bold("TOTAL"), "", "", "", Bold(Money(total)), ""})

	return RenderBox(title, RenderTable(headers, rows))
}

func activeMonths(it *domain.LineItem) []string {
	if len(it.Months) > 0 {
		return it.Months
	}
	if it.Month != "" {
		return []string{it.Month}
	}
	return nil
}

// FormatCostMatrix renders the month × category table with row totals and the
// grand-total row.
func FormatCostMatrix(title string, rows []domain.MonthCost) string {
	headers := []string{"MES", "PERSONAL", "BIENES", "SERVICIOS", "TOTAL"}
	cells := make([][]string, 0, len(rows)+1)
	for _, r := range rows {
		cells = append(cells, []string{
			r.Month,
			Money(r.Personnel),
			Money(r.Goods),
			Money(r.Services),
			Bold(Money(r.Total())),
		})
	}
	t := domain.MatrixTotals(rows)
	cells = append(cells, []string{
		Bold(t.Month),
		Bold(Money(t.Personnel)),
		Bold(Money(t.Goods)),
		Bold(Money(t.Services)),
		Bold(Money(t.Total())),
	})

	return RenderBox(title, RenderTable(headers, cells))
}

// FormatCronogram renders one bar per project across the combined month range
// of all projects, with duration label and status marker.
func FormatCronogram(projects []*domain.Project) string {
	months := cronogramMonths(projects)
	if len(months) == 0 {
		return RenderBox("Cronograma", Dim("Sin proyectos con fechas."))
	}

	index := make(map[string]int, len(months))
	for i, m := range months {
		index[m] = i
	}

	var b strings.Builder
	b.WriteString(Dim(strings.Join(months, "  ")) + "\n\n")

	for _, p := range projects {
		bar := make([]string, len(months))
		for i := range bar {
			bar[i] = emptyBlock
		}
		for _, m := range p.ScheduleMonths() {
			if i, ok := index[m]; ok {
				bar[i] = filledBlock
			}
		}
		b.WriteString(fmt.Sprintf("%s\n%s  %s %s\n\n",
			Bold(p.Name),
			StatusStyle(p.Status).Render(strings.Join(bar, "")),
			StatusPill(p.Status),
			Dim(p.Duration())))
	}

	return RenderBox("Cronograma", b.String())
}

// cronogramMonths is the union of every project's schedule months, in the
// order of the earliest start to the latest end.
func cronogramMonths(projects []*domain.Project) []string {
	var lo, hi string
	for _, p := range projects {
		months := p.ScheduleMonths()
		if len(months) == 0 {
			continue
		}
		if lo == "" || months[0] < lo {
			lo = months[0]
		}
		if last := months[len(months)-1]; last > hi {
			hi = last
		}
	}
	if lo == "" {
		return nil
	}
	return domain.MonthsBetween(lo+"-01", hi+"-01")
}
