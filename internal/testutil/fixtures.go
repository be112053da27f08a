package testutil

import (
	"time"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithDates(start, end string) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = start
		p.EndDate = end
	}
}

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithLead(name string) ProjectOption {
	return func(p *domain.Project) {
		p.Lead = name
	}
}

func WithBudget(b map[string]float64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: "2025-01-01",
		EndDate:   "2025-06-30",
		Status:    domain.ProjectInProgress,
		Team:      []string{},
		Budget:    domain.NewBudget(),
		Dossier:   domain.NewDossier(),
		Costs:     domain.NewCostSchedule(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Person options
type PersonOption func(*domain.Person)

func WithRole(role string) PersonOption {
	return func(p *domain.Person) {
		p.Role = role
	}
}

func WithMonthlyRate(rate float64) PersonOption {
	return func(p *domain.Person) {
		p.MonthlyRate = rate
	}
}

func WithProjects(names ...string) PersonOption {
	return func(p *domain.Person) {
		p.Projects = names
	}
}

func NewTestPerson(name string, opts ...PersonOption) *domain.Person {
	now := time.Now().UTC()
	p := &domain.Person{
		ID:           uuid.New().String(),
		Name:         name,
		Role:         "Asistente",
		Projects:     []string{},
		Subordinates: []string{},
		ActiveMonths: map[string][]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
