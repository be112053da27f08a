package service

import (
	"context"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/repository"
)

type dossierService struct {
	projects repository.ProjectRepo
	refresh  RefreshService
}

func NewDossierService(projects repository.ProjectRepo, refresh RefreshService) DossierService {
	return &dossierService{projects: projects, refresh: refresh}
}

// mutate loads the project, applies fn to it, persists the whole record and
// reloads. Every dossier operation is this same read-modify-write cycle.
func (s *dossierService) mutate(ctx context.Context, projectID string, fn func(*domain.Project) error) (*Snapshot, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, domain.RemoteReadf("cargando proyecto: %v", err)
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, domain.RemoteWritef("actualizando expediente: %v", err)
	}
	return s.refresh.Load(ctx)
}

// mutateActivity narrows the cycle to one keyed activity, writing the
// modified copy back into the map.
func (s *dossierService) mutateActivity(ctx context.Context, projectID string, key int, fn func(*domain.Activity) error) (*Snapshot, error) {
	return s.mutate(ctx, projectID, func(p *domain.Project) error {
		a, ok := p.Dossier[key]
		if !ok {
			return domain.Validationf("actividad %d no existe", key)
		}
		if err := fn(&a); err != nil {
			return err
		}
		p.Dossier[key] = a
		return nil
	})
}

func (s *dossierService) AddActivity(ctx context.Context, projectID, name string) (*Snapshot, error) {
	return s.mutate(ctx, projectID, func(p *domain.Project) error {
		_, err := p.Dossier.AddActivity(name)
		return err
	})
}

func (s *dossierService) RenameActivity(ctx context.Context, projectID string, key int, name string) (*Snapshot, error) {
	return s.mutate(ctx, projectID, func(p *domain.Project) error {
		return p.Dossier.RenameActivity(key, name)
	})
}

func (s *dossierService) DeleteActivity(ctx context.Context, projectID string, key int) (*Snapshot, error) {
	return s.mutate(ctx, projectID, func(p *domain.Project) error {
		next, err := p.Dossier.DeleteActivity(key)
		if err != nil {
			return err
		}
		p.Dossier = next
		return nil
	})
}

func (s *dossierService) AddSubActivity(ctx context.Context, projectID string, key int, draft domain.SubActivity) (*Snapshot, error) {
	return s.mutateActivity(ctx, projectID, key, func(a *domain.Activity) error {
		_, err := a.AddSub(draft)
		return err
	})
}

func (s *dossierService) RemoveSubActivity(ctx context.Context, projectID string, key int, subID string) (*Snapshot, error) {
	return s.mutateActivity(ctx, projectID, key, func(a *domain.Activity) error {
		a.RemoveSub(subID)
		return nil
	})
}

func (s *dossierService) SetSubActivityProgress(ctx context.Context, projectID string, key int, subID string, progress int) (*Snapshot, error) {
	return s.mutateActivity(ctx, projectID, key, func(a *domain.Activity) error {
		return a.SetSubProgress(subID, progress)
	})
}

func (s *dossierService) SetSubActivityObservations(ctx context.Context, projectID string, key int, subID, text string) (*Snapshot, error) {
	return s.mutateActivity(ctx, projectID, key, func(a *domain.Activity) error {
		return a.SetSubObservations(subID, text)
	})
}
