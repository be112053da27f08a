package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db *sql.DB
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(db *sql.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	query := `SELECT email, password_hash FROM users WHERE email = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.Email, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteUserRepo) Upsert(ctx context.Context, u *User) error {
	query := `INSERT INTO users (email, password_hash, created_at) VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET password_hash = excluded.password_hash`
	_, err := r.db.ExecContext(ctx, query, u.Email, u.PasswordHash, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}
