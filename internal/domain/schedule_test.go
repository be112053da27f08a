package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleProject() *Project {
	p := &Project{
		Name:      "Saneamiento Sector 5",
		StartDate: "2025-01-01",
		EndDate:   "2025-03-31",
		Costs:     NewCostSchedule(),
	}
	return p
}

func TestProgrammedCostMatrix_PersonnelFallback(t *testing.T) {
	p := scheduleProject()
	person := &Person{Role: "Formulador", MonthlyRate: 1000, Projects: []string{p.Name}}

	rows := ProgrammedCostMatrix(p, []*Person{person}, p.ScheduleMonths())
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 1000.0, row.Personnel, "empty activation set contributes every month")
	}

	person.ToggleMonth(p.Name, "2025-02")
	rows = ProgrammedCostMatrix(p, []*Person{person}, p.ScheduleMonths())
	assert.Equal(t, 0.0, rows[0].Personnel)
	assert.Equal(t, 1000.0, rows[1].Personnel)
	assert.Equal(t, 0.0, rows[2].Personnel)
}

func TestProgrammedCostMatrix_ItemsByMonth(t *testing.T) {
	p := scheduleProject()
	matID, err := p.Costs.AddLineItem(ItemMaterial, LineItemDraft{Name: "Cemento", Quantity: "10", UnitCost: "30"})
	require.NoError(t, err)
	_, err = p.Costs.AddLineItem(ItemService, LineItemDraft{Name: "Alquiler", Quantity: "1", UnitCost: "500"})
	require.NoError(t, err)
	require.NoError(t, p.Costs.ToggleItemMonth(ItemMaterial, matID, "2025-02"))

	rows := ProgrammedCostMatrix(p, nil, p.ScheduleMonths())
	// Material scoped to february only; service active every month.
	assert.Equal(t, 0.0, rows[0].Goods)
	assert.Equal(t, 300.0, rows[1].Goods)
	assert.Equal(t, 0.0, rows[2].Goods)
	for _, row := range rows {
		assert.Equal(t, 500.0, row.Services)
	}
	assert.Equal(t, 800.0, rows[1].Total())
}

func TestExecutedCostMatrix_AbsentCellsAreZero(t *testing.T) {
	p := scheduleProject()
	require.NoError(t, p.Costs.Executed.Set("2025-02", CostGoods, 920))

	rows := ExecutedCostMatrix(p, p.ScheduleMonths())
	require.Len(t, rows, 3)
	assert.Equal(t, 0.0, rows[0].Total())
	assert.Equal(t, 920.0, rows[1].Goods)
	assert.Equal(t, 0.0, rows[2].Total())
}

func TestMatrixTotals_NoCarryForward(t *testing.T) {
	rows := []MonthCost{
		{Month: "2025-01", Personnel: 100, Goods: 10},
		{Month: "2025-02", Personnel: 200, Services: 5},
	}
	total := MatrixTotals(rows)
	assert.Equal(t, 300.0, total.Personnel)
	assert.Equal(t, 10.0, total.Goods)
	assert.Equal(t, 5.0, total.Services)
	assert.Equal(t, 315.0, total.Total())
}
