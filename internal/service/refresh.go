package service

import (
	"context"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/repository"
)

type refreshService struct {
	projects  repository.ProjectRepo
	personnel repository.PersonRepo
}

// NewRefreshService creates the full-reload service used after every write.
func NewRefreshService(projects repository.ProjectRepo, personnel repository.PersonRepo) RefreshService {
	return &refreshService{projects: projects, personnel: personnel}
}

func (s *refreshService) Load(ctx context.Context) (*Snapshot, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, domain.RemoteReadf("cargando proyectos: %v", err)
	}
	people, err := s.personnel.ListAll(ctx)
	if err != nil {
		return nil, domain.RemoteReadf("cargando personal: %v", err)
	}
	return &Snapshot{Projects: projects, Personnel: people}, nil
}
