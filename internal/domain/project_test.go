package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetTotal_TypedMap(t *testing.T) {
	p := &Project{Budget: map[string]float64{"personal": 1000, "materiales": 500.5}}
	assert.Equal(t, 1500.5, p.BudgetTotal())
}

func TestNewBudget_ZeroedCategories(t *testing.T) {
	b := NewBudget()
	assert.Len(t, b, 4)
	for _, cat := range BudgetCategories {
		v, ok := b[cat]
		assert.True(t, ok, "category %q should be seeded", cat)
		assert.Equal(t, 0.0, v)
	}
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "30 días", DurationLabel("2025-01-01", "2025-01-31"))
	assert.Equal(t, "30 días", DurationLabel("2025-01-31", "2025-01-01"), "order independent")
	assert.Equal(t, "0 días", DurationLabel("", "2025-01-31"))
	assert.Equal(t, "0 días", DurationLabel("2025-01-01", ""))
	assert.Equal(t, "0 días", DurationLabel("bad", "2025-01-31"))
}

func TestDossierProgress_OnProject(t *testing.T) {
	p := &Project{Dossier: Dossier{
		1: activityWithProgress(100),
		2: activityWithProgress(0),
	}}
	assert.Equal(t, 50, p.DossierProgress())
}
