package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dperalta/projecthub/internal/domain"
)

// SQLitePersonRepo implements PersonRepo using a SQLite database.
type SQLitePersonRepo struct {
	db *sql.DB
}

// NewSQLitePersonRepo creates a new SQLitePersonRepo.
func NewSQLitePersonRepo(db *sql.DB) *SQLitePersonRepo {
	return &SQLitePersonRepo{db: db}
}

const personColumns = `id, name, role, phone, monthly_rate, projects, subordinates, active_months, created_at, updated_at`

func (r *SQLitePersonRepo) ListAll(ctx context.Context) ([]*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM personnel ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing personnel: %w", err)
	}
	defer rows.Close()

	var people []*domain.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating personnel: %w", err)
	}
	return people, nil
}

func (r *SQLitePersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM personnel WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("person not found")
	}
	return p, err
}

func (r *SQLitePersonRepo) Insert(ctx context.Context, p *domain.Person) error {
	projects, err := encodeJSON(p.Projects)
	if err != nil {
		return err
	}
	subordinates, err := encodeJSON(p.Subordinates)
	if err != nil {
		return err
	}
	activeMonths, err := encodeJSON(p.ActiveMonths)
	if err != nil {
		return err
	}

	query := `INSERT INTO personnel (` + personColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Role, p.Phone, p.MonthlyRate,
		projects, subordinates, activeMonths,
		p.CreatedAt.Format(timestampLayout), p.UpdatedAt.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) Update(ctx context.Context, p *domain.Person) error {
	projects, err := encodeJSON(p.Projects)
	if err != nil {
		return err
	}
	subordinates, err := encodeJSON(p.Subordinates)
	if err != nil {
		return err
	}
	activeMonths, err := encodeJSON(p.ActiveMonths)
	if err != nil {
		return err
	}

	query := `UPDATE personnel SET name = ?, role = ?, phone = ?, monthly_rate = ?,
		projects = ?, subordinates = ?, active_months = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		p.Name, p.Role, p.Phone, p.MonthlyRate,
		projects, subordinates, activeMonths,
		nowUTC(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM personnel WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	return nil
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var p domain.Person
	var projectsRaw, subordinatesRaw, activeMonthsRaw string
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.Name, &p.Role, &p.Phone, &p.MonthlyRate,
		&projectsRaw, &subordinatesRaw, &activeMonthsRaw,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning person: %w", err)
	}

	if err := decodeJSON(projectsRaw, &p.Projects); err != nil {
		return nil, fmt.Errorf("person %s projects: %w", p.ID, err)
	}
	if err := decodeJSON(subordinatesRaw, &p.Subordinates); err != nil {
		return nil, fmt.Errorf("person %s subordinates: %w", p.ID, err)
	}
	if err := decodeJSON(activeMonthsRaw, &p.ActiveMonths); err != nil {
		return nil, fmt.Errorf("person %s active months: %w", p.ID, err)
	}
	if p.ActiveMonths == nil {
		p.ActiveMonths = make(map[string][]string)
	}
	p.CreatedAt = parseTimestamp(createdAtStr)
	p.UpdatedAt = parseTimestamp(updatedAtStr)

	return &p, nil
}
