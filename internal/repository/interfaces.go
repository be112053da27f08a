package repository

import (
	"context"

	"github.com/dperalta/projecthub/internal/domain"
)

// ProjectRepo is the projects table boundary: full scans, whole-record
// inserts, partial updates by id. No filtering is pushed down.
type ProjectRepo interface {
	ListAll(ctx context.Context) ([]*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Insert(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type PersonRepo interface {
	ListAll(ctx context.Context) ([]*domain.Person, error)
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	Insert(ctx context.Context, p *domain.Person) error
	Update(ctx context.Context, p *domain.Person) error
	Delete(ctx context.Context, id string) error
}

type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Upsert(ctx context.Context, u *User) error
	Count(ctx context.Context) (int, error)
}

// User is an authentication record; PasswordHash is a hex sha256 digest.
type User struct {
	Email        string
	PasswordHash string
}
