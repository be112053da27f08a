package service

import (
	"context"
	"testing"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreate_SeedsDefaults(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	snap, err := s.Projects.Create(ctx, ProjectDraft{Name: "Saneamiento Sector 5"})
	require.NoError(t, err)
	require.Len(t, snap.Projects, 1)

	p := snap.Projects[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProjectInProgress, p.Status)
	assert.Len(t, p.Dossier, len(domain.DossierActivities), "dossier must be pre-seeded")
	assert.Equal(t, "RESUMEN EJECUTIVO", p.Dossier[1].Name)
	assert.Equal(t, 0.0, p.BudgetTotal())
	assert.Empty(t, p.Costs.Materials)
	assert.Empty(t, p.Costs.Services)
}

func TestProjectCreate_EmptyNameRejected(t *testing.T) {
	s := setupServices(t)

	_, err := s.Projects.Create(context.Background(), ProjectDraft{Name: "   "})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	snap, err := s.Refresh.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Projects, "validation must abort before any write")
}

func TestProjectUpdate_PartialPatch(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	snap, err := s.Projects.Create(ctx, ProjectDraft{
		Name:      "Pistas y Veredas",
		StartDate: "2025-01-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)
	id := snap.Projects[0].ID

	status := domain.ProjectStopped
	lead := "Carlos Mendoza"
	snap, err = s.Projects.Update(ctx, id, ProjectPatch{Status: &status, Lead: &lead})
	require.NoError(t, err)

	p := snap.ProjectByID(id)
	require.NotNil(t, p)
	assert.Equal(t, domain.ProjectStopped, p.Status)
	assert.Equal(t, "Carlos Mendoza", p.Lead)
	assert.Equal(t, "Pistas y Veredas", p.Name, "unpatched fields pass through")
	assert.Equal(t, "2025-01-01", p.StartDate)
}

func TestProjectDelete_RemovedFromSnapshot(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	snap, err := s.Projects.Create(ctx, ProjectDraft{Name: "Puente Peatonal"})
	require.NoError(t, err)
	id := snap.Projects[0].ID

	snap, err = s.Projects.Delete(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, snap.Projects)

	_, err = s.Projects.Delete(ctx, id)
	require.Error(t, err)
	assert.Equal(t, domain.ErrRemoteRead, domain.KindOf(err))
}

func TestProjectAddMilestone(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	snap, err := s.Projects.Create(ctx, ProjectDraft{Name: "Canal de Riego"})
	require.NoError(t, err)
	id := snap.Projects[0].ID

	snap, err = s.Projects.AddMilestone(ctx, id, domain.Milestone{Name: "Entrega de planos", Date: "2025-03-15"})
	require.NoError(t, err)
	require.Len(t, snap.ProjectByID(id).Milestones, 1)
	assert.Equal(t, "Entrega de planos", snap.ProjectByID(id).Milestones[0].Name)

	_, err = s.Projects.AddMilestone(ctx, id, domain.Milestone{Name: ""})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
