package service

import (
	"context"

	"github.com/dperalta/projecthub/internal/domain"
)

// Snapshot is the full authoritative state: both collections re-read from
// the store after every mutation. Consumers replace their in-memory state
// with it wholesale; there is no merge.
type Snapshot struct {
	Projects  []*domain.Project
	Personnel []*domain.Person
}

// ProjectByID finds a project in the snapshot, or nil.
func (s *Snapshot) ProjectByID(id string) *domain.Project {
	for _, p := range s.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PersonByID finds a person in the snapshot, or nil.
func (s *Snapshot) PersonByID(id string) *domain.Person {
	for _, p := range s.Personnel {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RefreshService performs the unconditional full re-read that follows every
// mutation.
type RefreshService interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// ProjectDraft carries the project creation/edit form fields.
type ProjectDraft struct {
	Name       string
	StartDate  string
	EndDate    string
	Status     domain.ProjectStatus
	Lead       string
	Team       []string
	Budget     map[string]float64
	Milestones []domain.Milestone
}

// ProjectPatch is a partial-field update; nil fields pass through.
type ProjectPatch struct {
	Name      *string
	StartDate *string
	EndDate   *string
	Status    *domain.ProjectStatus
	Lead      *string
	Team      *[]string
	Budget    *map[string]float64
}

// Every mutating operation writes to the store and then reloads both
// collections; the returned snapshot is the post-mutation truth.
type ProjectService interface {
	Create(ctx context.Context, draft ProjectDraft) (*Snapshot, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (*Snapshot, error)
	Delete(ctx context.Context, id string) (*Snapshot, error)
	AddMilestone(ctx context.Context, id string, m domain.Milestone) (*Snapshot, error)
}

type DossierService interface {
	AddActivity(ctx context.Context, projectID, name string) (*Snapshot, error)
	RenameActivity(ctx context.Context, projectID string, key int, name string) (*Snapshot, error)
	DeleteActivity(ctx context.Context, projectID string, key int) (*Snapshot, error)
	AddSubActivity(ctx context.Context, projectID string, key int, draft domain.SubActivity) (*Snapshot, error)
	RemoveSubActivity(ctx context.Context, projectID string, key int, subID string) (*Snapshot, error)
	SetSubActivityProgress(ctx context.Context, projectID string, key int, subID string, progress int) (*Snapshot, error)
	SetSubActivityObservations(ctx context.Context, projectID string, key int, subID, text string) (*Snapshot, error)
}

// PersonDraft carries the personnel registration form fields.
type PersonDraft struct {
	Name        string
	Role        string
	Phone       string
	MonthlyRate float64
}

type PersonnelService interface {
	Create(ctx context.Context, draft PersonDraft) (*Snapshot, error)
	// CreateSubordinate creates the person and links them under the lead:
	// two sequential writes with no rollback if the link write fails.
	CreateSubordinate(ctx context.Context, draft PersonDraft, leadID string) (*Snapshot, error)
	// Rename is the only editable field on the post-creation edit path.
	Rename(ctx context.Context, id, name string) (*Snapshot, error)
	Delete(ctx context.Context, id string) (*Snapshot, error)
	ToggleProjectAssignment(ctx context.Context, personID, projectName string) (*Snapshot, error)
	ToggleSubordinate(ctx context.Context, leadID, personID string) (*Snapshot, error)
	ToggleMonthActivation(ctx context.Context, personID, projectName, month string) (*Snapshot, error)
}

type ScheduleService interface {
	AddLineItem(ctx context.Context, projectID string, kind domain.LineItemKind, draft domain.LineItemDraft) (*Snapshot, error)
	EditLineItem(ctx context.Context, projectID string, kind domain.LineItemKind, id int64, patch domain.LineItemPatch) (*Snapshot, error)
	DeleteLineItem(ctx context.Context, projectID string, kind domain.LineItemKind, id int64) (*Snapshot, error)
	ToggleLineItemMonth(ctx context.Context, projectID string, kind domain.LineItemKind, id int64, month string) (*Snapshot, error)
	SetExecutedCost(ctx context.Context, projectID, month string, category domain.CostCategory, amount float64) (*Snapshot, error)
}
