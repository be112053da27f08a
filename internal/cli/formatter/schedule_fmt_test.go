package formatter

import (
	"testing"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCostMatrix_IncludesTotalsRow(t *testing.T) {
	rows := []domain.MonthCost{
		{Month: "2025-01", Personnel: 3000, Goods: 500},
		{Month: "2025-02", Personnel: 3000, Services: 200},
	}

	out := FormatCostMatrix("Programado", rows)

	assert.Contains(t, out, "2025-01")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "S/ 6,000.00")
	assert.Contains(t, out, "S/ 6,700.00")
}

func TestFormatCronogram_CoversCombinedRange(t *testing.T) {
	projects := []*domain.Project{
		{Name: "Agua Potable", StartDate: "2025-01-01", EndDate: "2025-03-31", Status: domain.ProjectInProgress},
		{Name: "Zanja Norte", StartDate: "2025-02-01", EndDate: "2025-05-31", Status: domain.ProjectStopped},
	}

	out := FormatCronogram(projects)

	assert.Contains(t, out, "2025-01")
	assert.Contains(t, out, "2025-05")
	assert.Contains(t, out, "Agua Potable")
	assert.Contains(t, out, "días")
}

func TestFormatLineItems_TotalsAndLegacyMonth(t *testing.T) {
	items := []domain.LineItem{
		{ID: 1, Name: "Cemento", Unit: "bolsa", Quantity: 10, UnitCost: 28.5, Total: 285},
		{ID: 2, Name: "Arena", Quantity: 1, UnitCost: 50, Total: 50, Month: "2025-02"},
	}

	out := FormatLineItems("Materiales", items)

	assert.Contains(t, out, "Cemento")
	assert.Contains(t, out, "todos", "no months toggled means always active")
	assert.Contains(t, out, "2025-02", "legacy single month shown as its set")
	assert.Contains(t, out, "S/ 335.00")
}
