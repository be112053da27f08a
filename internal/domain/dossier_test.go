package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityWithProgress(values ...int) Activity {
	a := Activity{Name: "PLANOS"}
	for i, v := range values {
		a.SubActivities = append(a.SubActivities, SubActivity{
			ID:       string(rune('a' + i)),
			Name:     "tarea",
			Progress: v,
		})
	}
	return a
}

func TestNewDossier_SeedsElevenActivities(t *testing.T) {
	d := NewDossier()
	require.Len(t, d, 11)
	for i := 1; i <= 11; i++ {
		a, ok := d[i]
		require.True(t, ok, "key %d should exist", i)
		assert.Equal(t, DossierActivities[i-1], a.Name)
		assert.Empty(t, a.SubActivities)
	}
}

func TestActivityProgress_MeanRoundedHalfUp(t *testing.T) {
	assert.Equal(t, 50, activityWithProgress(50).Progress())
	assert.Equal(t, 33, activityWithProgress(0, 50, 50).Progress())
	// 1+2 = 3/2 = 1.5 rounds up
	assert.Equal(t, 2, activityWithProgress(1, 2).Progress())
}

func TestActivityProgress_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, Activity{}.Progress())
}

func TestDossierProgress_SingleActivityRoundTrip(t *testing.T) {
	d := Dossier{1: activityWithProgress(20, 30, 70)}
	assert.Equal(t, 40, d.Progress())
}

func TestDossierProgress_Empty(t *testing.T) {
	assert.Equal(t, 0, Dossier{}.Progress())
}

func TestAddActivity_AppendsUpperCased(t *testing.T) {
	d := NewDossier()
	key, err := d.AddActivity("estudio de suelos")
	require.NoError(t, err)
	assert.Equal(t, 12, key)
	assert.Equal(t, "ESTUDIO DE SUELOS", d[12].Name)
}

func TestAddActivity_EmptyNameRejected(t *testing.T) {
	d := NewDossier()
	_, err := d.AddActivity("  ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Len(t, d, 11)
}

func TestRenameActivity_PreservesSubActivities(t *testing.T) {
	d := Dossier{1: activityWithProgress(10, 20)}
	require.NoError(t, d.RenameActivity(1, "nueva memoria"))
	assert.Equal(t, "NUEVA MEMORIA", d[1].Name)
	assert.Len(t, d[1].SubActivities, 2)
}

func TestRenameActivity_EmptyNameRejected(t *testing.T) {
	d := Dossier{1: {Name: "PLANOS"}}
	assert.Error(t, d.RenameActivity(1, ""))
	assert.Equal(t, "PLANOS", d[1].Name)
}

func TestDeleteActivity_ReindexesContiguously(t *testing.T) {
	d := Dossier{
		1: {Name: "A"},
		2: {Name: "B"},
		3: {Name: "C"},
		4: {Name: "D"},
	}
	next, err := d.DeleteActivity(2)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, next.Keys())
	assert.Equal(t, "A", next[1].Name)
	assert.Equal(t, "C", next[2].Name)
	assert.Equal(t, "D", next[3].Name)
}

func TestDeleteActivity_MissingKey(t *testing.T) {
	d := Dossier{1: {Name: "A"}}
	_, err := d.DeleteActivity(9)
	assert.True(t, IsValidation(err))
}

func TestAddSub_DefaultsAndOrder(t *testing.T) {
	a := Activity{Name: "PLANOS"}
	id1, err := a.AddSub(SubActivity{Name: "planta general", Progress: 30})
	require.NoError(t, err)
	id2, err := a.AddSub(SubActivity{Name: "cortes"})
	require.NoError(t, err)

	require.Len(t, a.SubActivities, 2)
	assert.NotEqual(t, id1, id2, "ids must be unique within the activity")
	assert.Equal(t, "planta general", a.SubActivities[0].Name)
	assert.Equal(t, 30, a.SubActivities[0].Progress)
	assert.Equal(t, 0, a.SubActivities[1].Progress)
	assert.Equal(t, "", a.SubActivities[1].Observations)
}

func TestAddSub_EmptyNameRejected(t *testing.T) {
	a := Activity{}
	_, err := a.AddSub(SubActivity{Name: ""})
	assert.True(t, IsValidation(err))
	assert.Empty(t, a.SubActivities)
}

func TestRemoveSub_FiltersByID(t *testing.T) {
	a := activityWithProgress(10, 20, 30)
	a.RemoveSub("b")
	require.Len(t, a.SubActivities, 2)
	assert.Equal(t, "a", a.SubActivities[0].ID)
	assert.Equal(t, "c", a.SubActivities[1].ID)
}

func TestSetSubProgress_ClampsOutOfRange(t *testing.T) {
	a := activityWithProgress(50)
	require.NoError(t, a.SetSubProgress("a", 150))
	assert.Equal(t, 100, a.SubActivities[0].Progress)
	require.NoError(t, a.SetSubProgress("a", -20))
	assert.Equal(t, 0, a.SubActivities[0].Progress)
}

func TestSetSubProgress_UnknownID(t *testing.T) {
	a := activityWithProgress(50)
	assert.True(t, IsValidation(a.SetSubProgress("zz", 10)))
}

func TestSetSubObservations_Verbatim(t *testing.T) {
	a := activityWithProgress(50)
	require.NoError(t, a.SetSubObservations("a", "  pendiente de revisión  "))
	assert.Equal(t, "  pendiente de revisión  ", a.SubActivities[0].Observations)
}
