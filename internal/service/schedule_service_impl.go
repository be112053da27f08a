package service

import (
	"context"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/repository"
)

type scheduleService struct {
	projects repository.ProjectRepo
	refresh  RefreshService
}

func NewScheduleService(projects repository.ProjectRepo, refresh RefreshService) ScheduleService {
	return &scheduleService{projects: projects, refresh: refresh}
}

func (s *scheduleService) mutate(ctx context.Context, projectID string, fn func(*domain.CostSchedule) error) (*Snapshot, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, domain.RemoteReadf("cargando proyecto: %v", err)
	}
	if err := fn(&p.Costs); err != nil {
		return nil, err
	}
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, domain.RemoteWritef("actualizando costos: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *scheduleService) AddLineItem(ctx context.Context, projectID string, kind domain.LineItemKind, draft domain.LineItemDraft) (*Snapshot, error) {
	return s.mutate(ctx, projectID, func(c *domain.CostSchedule) error {
		_, err := c.AddLineItem(kind, draft)
		return err
	})
}

func (s *scheduleService) EditLineItem(ctx context.Context, projectID string, kind domain.LineItemKind, id int64, patch domain.LineItemPatch) (*Snapshot, error) {
	return s.mutate(ctx, projectID, func(c *domain.CostSchedule) error {
		return c.EditLineItem(kind, id, patch)
	})
}

func (s *scheduleService) DeleteLineItem(ctx context.Context, projectID string, kind domain.LineItemKind, id int64) (*Snapshot, error) {
	return s.mutate(ctx, projectID, func(c *domain.CostSchedule) error {
		return c.DeleteLineItem(kind, id)
	})
}

func (s *scheduleService) ToggleLineItemMonth(ctx context.Context, projectID string, kind domain.LineItemKind, id int64, month string) (*Snapshot, error) {
	return s.mutate(ctx, projectID, func(c *domain.CostSchedule) error {
		return c.ToggleItemMonth(kind, id, month)
	})
}

func (s *scheduleService) SetExecutedCost(ctx context.Context, projectID, month string, category domain.CostCategory, amount float64) (*Snapshot, error) {
	if amount < 0 {
		return nil, domain.Validationf("el monto no puede ser negativo")
	}
	return s.mutate(ctx, projectID, func(c *domain.CostSchedule) error {
		if c.Executed == nil {
			c.Executed = domain.ExecutedCosts{}
		}
		return c.Executed.Set(month, category, amount)
	})
}
