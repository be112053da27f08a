package service

import (
	"context"
	"testing"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAddLineItem_CoercesDraftNumbers(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	id := createProject(t, s, "Canal de Riego")

	snap, err := s.Schedule.AddLineItem(ctx, id, domain.ItemMaterial, domain.LineItemDraft{
		Name:     "Cemento Portland",
		Unit:     "bolsa",
		Quantity: "no-numérico",
		UnitCost: "28.50",
	})
	require.NoError(t, err)

	items := snap.ProjectByID(id).Costs.Materials
	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].Quantity, "unparseable quantity defaults to 1")
	assert.Equal(t, 28.5, items[0].UnitCost)
	assert.Equal(t, 28.5, items[0].Total)
}

func TestScheduleEditLineItem_RecomputesTotal(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	id := createProject(t, s, "Canal de Riego")

	snap, err := s.Schedule.AddLineItem(ctx, id, domain.ItemService, domain.LineItemDraft{
		Name: "Alquiler de retroexcavadora", Quantity: "2", UnitCost: "1500",
	})
	require.NoError(t, err)
	itemID := snap.ProjectByID(id).Costs.Services[0].ID

	qty := 3.0
	snap, err = s.Schedule.EditLineItem(ctx, id, domain.ItemService, itemID, domain.LineItemPatch{Quantity: &qty})
	require.NoError(t, err)
	it := snap.ProjectByID(id).Costs.Services[0]
	assert.Equal(t, 3.0, it.Quantity)
	assert.Equal(t, 4500.0, it.Total)
}

func TestScheduleToggleLineItemMonth(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	id := createProject(t, s, "Canal de Riego")

	snap, err := s.Schedule.AddLineItem(ctx, id, domain.ItemMaterial, domain.LineItemDraft{Name: "Arena gruesa"})
	require.NoError(t, err)
	itemID := snap.ProjectByID(id).Costs.Materials[0].ID

	snap, err = s.Schedule.ToggleLineItemMonth(ctx, id, domain.ItemMaterial, itemID, "2025-02")
	require.NoError(t, err)
	it := snap.ProjectByID(id).Costs.Materials[0]
	assert.Equal(t, []string{"2025-02"}, it.Months)
	assert.False(t, it.ActiveInMonth("2025-03"))

	snap, err = s.Schedule.ToggleLineItemMonth(ctx, id, domain.ItemMaterial, itemID, "2025-02")
	require.NoError(t, err)
	it = snap.ProjectByID(id).Costs.Materials[0]
	assert.Empty(t, it.Months)
	assert.True(t, it.ActiveInMonth("2025-03"), "empty month set means always active")
}

func TestScheduleDeleteLineItem(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	id := createProject(t, s, "Canal de Riego")

	snap, err := s.Schedule.AddLineItem(ctx, id, domain.ItemMaterial, domain.LineItemDraft{Name: "Fierro 1/2"})
	require.NoError(t, err)
	itemID := snap.ProjectByID(id).Costs.Materials[0].ID

	snap, err = s.Schedule.DeleteLineItem(ctx, id, domain.ItemMaterial, itemID)
	require.NoError(t, err)
	assert.Empty(t, snap.ProjectByID(id).Costs.Materials)

	_, err = s.Schedule.DeleteLineItem(ctx, id, domain.ItemMaterial, itemID)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestScheduleSetExecutedCost(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	id := createProject(t, s, "Canal de Riego")

	snap, err := s.Schedule.SetExecutedCost(ctx, id, "2025-04", domain.CostGoods, 1200)
	require.NoError(t, err)
	entry := snap.ProjectByID(id).Costs.Executed["2025-04"]
	assert.Equal(t, 1200.0, entry.Goods)
	assert.Equal(t, 0.0, entry.Personnel)

	// Categories for the same month accumulate independently.
	snap, err = s.Schedule.SetExecutedCost(ctx, id, "2025-04", domain.CostPersonnel, 800)
	require.NoError(t, err)
	entry = snap.ProjectByID(id).Costs.Executed["2025-04"]
	assert.Equal(t, 1200.0, entry.Goods)
	assert.Equal(t, 800.0, entry.Personnel)

	_, err = s.Schedule.SetExecutedCost(ctx, id, "2025-04", domain.CostGoods, -5)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
