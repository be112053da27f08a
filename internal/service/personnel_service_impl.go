package service

import (
	"context"
	"strings"
	"time"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/repository"
	"github.com/google/uuid"
)

type personnelService struct {
	personnel repository.PersonRepo
	refresh   RefreshService
}

func NewPersonnelService(personnel repository.PersonRepo, refresh RefreshService) PersonnelService {
	return &personnelService{personnel: personnel, refresh: refresh}
}

func newPerson(draft PersonDraft) *domain.Person {
	now := time.Now().UTC()
	return &domain.Person{
		ID:           uuid.New().String(),
		Name:         draft.Name,
		Role:         draft.Role,
		Phone:        draft.Phone,
		MonthlyRate:  draft.MonthlyRate,
		Projects:     []string{},
		Subordinates: []string{},
		ActiveMonths: map[string][]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func validateDraft(draft PersonDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return domain.Validationf("el nombre es obligatorio")
	}
	if strings.TrimSpace(draft.Role) == "" {
		return domain.Validationf("el cargo es obligatorio")
	}
	return nil
}

func (s *personnelService) Create(ctx context.Context, draft PersonDraft) (*Snapshot, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if err := s.personnel.Insert(ctx, newPerson(draft)); err != nil {
		return nil, domain.RemoteWritef("registrando personal: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *personnelService) CreateSubordinate(ctx context.Context, draft PersonDraft, leadID string) (*Snapshot, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	lead, err := s.personnel.GetByID(ctx, leadID)
	if err != nil {
		return nil, domain.RemoteReadf("cargando responsable: %v", err)
	}
	if !lead.IsLead() {
		return nil, domain.Validationf("%s no puede tener personal a cargo", lead.Name)
	}
	p := newPerson(draft)
	if err := s.personnel.Insert(ctx, p); err != nil {
		return nil, domain.RemoteWritef("registrando personal: %v", err)
	}
	// Second write links the new id under the lead. If it fails the person
	// already exists unlinked, same as the source system.
	lead.ToggleSubordinate(p.ID)
	if err := s.personnel.Update(ctx, lead); err != nil {
		return nil, domain.RemoteWritef("vinculando personal: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *personnelService) Rename(ctx context.Context, id, name string) (*Snapshot, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validationf("el nombre es obligatorio")
	}
	p, err := s.personnel.GetByID(ctx, id)
	if err != nil {
		return nil, domain.RemoteReadf("cargando personal: %v", err)
	}
	p.Name = name
	if err := s.personnel.Update(ctx, p); err != nil {
		return nil, domain.RemoteWritef("actualizando personal: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *personnelService) Delete(ctx context.Context, id string) (*Snapshot, error) {
	if _, err := s.personnel.GetByID(ctx, id); err != nil {
		return nil, domain.RemoteReadf("cargando personal: %v", err)
	}
	if err := s.personnel.Delete(ctx, id); err != nil {
		return nil, domain.RemoteWritef("eliminando personal: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *personnelService) ToggleProjectAssignment(ctx context.Context, personID, projectName string) (*Snapshot, error) {
	p, err := s.personnel.GetByID(ctx, personID)
	if err != nil {
		return nil, domain.RemoteReadf("cargando personal: %v", err)
	}
	if err := p.ToggleProject(projectName); err != nil {
		return nil, err
	}
	if err := s.personnel.Update(ctx, p); err != nil {
		return nil, domain.RemoteWritef("actualizando personal: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *personnelService) ToggleSubordinate(ctx context.Context, leadID, personID string) (*Snapshot, error) {
	lead, err := s.personnel.GetByID(ctx, leadID)
	if err != nil {
		return nil, domain.RemoteReadf("cargando responsable: %v", err)
	}
	lead.ToggleSubordinate(personID)
	if err := s.personnel.Update(ctx, lead); err != nil {
		return nil, domain.RemoteWritef("actualizando personal: %v", err)
	}
	return s.refresh.Load(ctx)
}

func (s *personnelService) ToggleMonthActivation(ctx context.Context, personID, projectName, month string) (*Snapshot, error) {
	p, err := s.personnel.GetByID(ctx, personID)
	if err != nil {
		return nil, domain.RemoteReadf("cargando personal: %v", err)
	}
	p.ToggleMonth(projectName, month)
	if err := s.personnel.Update(ctx, p); err != nil {
		return nil, domain.RemoteWritef("actualizando personal: %v", err)
	}
	return s.refresh.Load(ctx)
}
