package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/repository"
)

// User is the authenticated session identity.
type User struct {
	Email string
}

// Service is the session provider: at most one current user per process,
// with change notifications for subscribers registered at startup.
type Service interface {
	CurrentUser() *User
	Login(ctx context.Context, email, password string) error
	Logout()
	Subscribe(fn func(*User))
}

type service struct {
	users       repository.UserRepo
	current     *User
	subscribers []func(*User)
}

// NewService creates a Service backed by the users table.
func NewService(users repository.UserRepo) Service {
	return &service{users: users}
}

func (s *service) CurrentUser() *User {
	return s.current
}

func (s *service) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return domain.Authf("correo y contraseña son obligatorios")
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.Authf("credenciales inválidas")
	}
	if u.PasswordHash != HashPassword(password) {
		return domain.Authf("credenciales inválidas")
	}
	s.current = &User{Email: u.Email}
	s.notify()
	return nil
}

func (s *service) Logout() {
	if s.current == nil {
		return
	}
	s.current = nil
	s.notify()
}

func (s *service) Subscribe(fn func(*User)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *service) notify() {
	for _, fn := range s.subscribers {
		fn(s.current)
	}
}

// HashPassword returns the hex sha256 digest stored in the users table.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// SeedAdmin inserts the configured admin account when the users table is
// empty, so a fresh install has a way in.
func SeedAdmin(ctx context.Context, users repository.UserRepo, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return users.Upsert(ctx, &repository.User{
		Email:        email,
		PasswordHash: HashPassword(password),
	})
}
