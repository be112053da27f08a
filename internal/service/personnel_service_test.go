package service

import (
	"context"
	"testing"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPerson(t *testing.T, s *services, name, role string) string {
	t.Helper()
	snap, err := s.Personnel.Create(context.Background(), PersonDraft{Name: name, Role: role})
	require.NoError(t, err)
	p := findByName(snap.Personnel, name)
	require.NotNil(t, p)
	return p.ID
}

func findByName(people []*domain.Person, name string) *domain.Person {
	for _, p := range people {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func TestPersonnelCreate_Validation(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.Personnel.Create(ctx, PersonDraft{Name: "", Role: "Asistente"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = s.Personnel.Create(ctx, PersonDraft{Name: "Rosa Flores", Role: ""})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	snap, err := s.Refresh.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Personnel)
}

func TestPersonnelCreateSubordinate_LinksUnderLead(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	leadID := createPerson(t, s, "Carlos Mendoza", "Proyectista II")

	snap, err := s.Personnel.CreateSubordinate(ctx, PersonDraft{Name: "Ana Quispe", Role: "Asistente"}, leadID)
	require.NoError(t, err)

	sub := findByName(snap.Personnel, "Ana Quispe")
	require.NotNil(t, sub)
	lead := snap.PersonByID(leadID)
	assert.Equal(t, []string{sub.ID}, lead.Subordinates)
	assert.Equal(t, lead, domain.BossOf(snap.Personnel, sub.ID))
}

func TestPersonnelCreateSubordinate_NonLeadRejected(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	bossID := createPerson(t, s, "Rosa Flores", "Asistente")

	_, err := s.Personnel.CreateSubordinate(ctx, PersonDraft{Name: "Luis Huamán", Role: "Asistente"}, bossID)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	snap, err := s.Refresh.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, findByName(snap.Personnel, "Luis Huamán"), "rejected draft must not be created")
}

func TestPersonnelToggleProject_CapEnforced(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	id := createPerson(t, s, "Carlos Mendoza", "Formulador")

	for _, name := range []string{"P1", "P2", "P3"} {
		_, err := s.Personnel.ToggleProjectAssignment(ctx, id, name)
		require.NoError(t, err)
	}

	_, err := s.Personnel.ToggleProjectAssignment(ctx, id, "P4")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Toggling an assigned project off always succeeds.
	snap, err := s.Personnel.ToggleProjectAssignment(ctx, id, "P2")
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P3"}, snap.PersonByID(id).Projects)
}

func TestPersonnelToggleMonthActivation(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	id := createPerson(t, s, "Ana Quispe", "Especialista")

	snap, err := s.Personnel.ToggleMonthActivation(ctx, id, "Saneamiento Sector 5", "2025-03")
	require.NoError(t, err)
	p := snap.PersonByID(id)
	assert.Equal(t, []string{"2025-03"}, p.ActiveMonths["Saneamiento Sector 5"])
	assert.False(t, p.ActiveInMonth("Saneamiento Sector 5", "2025-04"))

	snap, err = s.Personnel.ToggleMonthActivation(ctx, id, "Saneamiento Sector 5", "2025-03")
	require.NoError(t, err)
	p = snap.PersonByID(id)
	assert.Empty(t, p.ActiveMonths["Saneamiento Sector 5"])
	assert.True(t, p.ActiveInMonth("Saneamiento Sector 5", "2025-04"), "empty set means always active")
}

func TestPersonnelRenameAndDelete(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	id := createPerson(t, s, "Luis Huamán", "Asistente")

	snap, err := s.Personnel.Rename(ctx, id, "Luis Huamán Ríos")
	require.NoError(t, err)
	assert.Equal(t, "Luis Huamán Ríos", snap.PersonByID(id).Name)

	_, err = s.Personnel.Rename(ctx, id, " ")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	snap, err = s.Personnel.Delete(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, snap.PersonByID(id))
}
