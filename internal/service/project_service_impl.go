package service

import (
	"context"
	"strings"
	"time"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	refresh  RefreshService
}

func NewProjectService(projects repository.ProjectRepo, refresh RefreshService) ProjectService {
	return &projectService{projects: projects, refresh: refresh}
}

func (s *projectService) Create(ctx context.Context, draft ProjectDraft) (*Snapshot, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, domain.Validationf("el nombre del proyecto es obligatorio")
	}
	now := time.Now().UTC()
	p := &domain.Project{
		ID:         uuid.New().String(),
		Name:       draft.Name,
		StartDate:  draft.StartDate,
		EndDate:    draft.EndDate,
		Status:     draft.Status,
		Lead:       draft.Lead,
		Team:       draft.Team,
		Budget:     draft.Budget,
		Milestones: draft.Milestones,
		Dossier:    domain.NewDossier(),
		Costs:      domain.NewCostSchedule(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if p.Status == "" {
		p.Status = domain.ProjectInProgress
	}
	if p.Team == nil {
		p.Team = []string{}
	}
	if p.Budget == nil {
		p.Budget = domain.NewBudget()
	}
	if p.Milestones == nil {
		p.Milestones = []domain.Milestone{}
	}
	if err := s.projects.Insert(ctx, p); err != nil {
		return nil, domain.RemoteWritef("creando proyecto: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *projectService) Update(ctx context.Context, id string, patch ProjectPatch) (*Snapshot, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, domain.RemoteReadf("cargando proyecto: %v", err)
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, domain.Validationf("el nombre del proyecto es obligatorio")
		}
		p.Name = *patch.Name
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Lead != nil {
		p.Lead = *patch.Lead
	}
	if patch.Team != nil {
		p.Team = *patch.Team
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, domain.RemoteWritef("actualizando proyecto: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *projectService) Delete(ctx context.Context, id string) (*Snapshot, error) {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return nil, domain.RemoteReadf("cargando proyecto: %v", err)
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return nil, domain.RemoteWritef("eliminando proyecto: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *projectService) AddMilestone(ctx context.Context, id string, m domain.Milestone) (*Snapshot, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, domain.Validationf("el nombre del hito es obligatorio")
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, domain.RemoteReadf("cargando proyecto: %v", err)
	}
	p.Milestones = append(p.Milestones, m)
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, domain.RemoteWritef("actualizando proyecto: %v", err)
	}
	return s.refresh.Load(ctx)
}
