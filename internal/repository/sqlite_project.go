package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dperalta/projecthub/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database. The
// structured children (dossier, budget, costs, team, milestones) live in
// JSON payload columns, matching the schemaless shape of the hosted store.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

const projectColumns = `id, name, start_date, end_date, status, lead, team, budget, milestones, dossier, costs, created_at, updated_at`

func (r *SQLiteProjectRepo) ListAll(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project not found")
	}
	return p, err
}

func (r *SQLiteProjectRepo) Insert(ctx context.Context, p *domain.Project) error {
	team, err := encodeJSON(p.Team)
	if err != nil {
		return err
	}
	budget, err := encodeJSON(p.Budget)
	if err != nil {
		return err
	}
	milestones, err := encodeJSON(p.Milestones)
	if err != nil {
		return err
	}
	dossier, err := encodeJSON(p.Dossier)
	if err != nil {
		return err
	}
	costs, err := encodeJSON(p.Costs)
	if err != nil {
		return err
	}

	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.StartDate, p.EndDate, string(p.Status), p.Lead,
		team, budget, milestones, dossier, costs,
		p.CreatedAt.Format(timestampLayout), p.UpdatedAt.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	team, err := encodeJSON(p.Team)
	if err != nil {
		return err
	}
	budget, err := encodeJSON(p.Budget)
	if err != nil {
		return err
	}
	milestones, err := encodeJSON(p.Milestones)
	if err != nil {
		return err
	}
	dossier, err := encodeJSON(p.Dossier)
	if err != nil {
		return err
	}
	costs, err := encodeJSON(p.Costs)
	if err != nil {
		return err
	}

	query := `UPDATE projects SET name = ?, start_date = ?, end_date = ?, status = ?, lead = ?,
		team = ?, budget = ?, milestones = ?, dossier = ?, costs = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		p.Name, p.StartDate, p.EndDate, string(p.Status), p.Lead,
		team, budget, milestones, dossier, costs,
		nowUTC(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var statusStr, teamRaw, budgetRaw, milestonesRaw, dossierRaw, costsRaw string
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate,
		&statusStr, &p.Lead,
		&teamRaw, &budgetRaw, &milestonesRaw, &dossierRaw, &costsRaw,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(statusStr)
	if err := decodeJSON(teamRaw, &p.Team); err != nil {
		return nil, fmt.Errorf("project %s team: %w", p.ID, err)
	}
	if err := decodeJSON(milestonesRaw, &p.Milestones); err != nil {
		return nil, fmt.Errorf("project %s milestones: %w", p.ID, err)
	}
	if err := decodeJSON(dossierRaw, &p.Dossier); err != nil {
		return nil, fmt.Errorf("project %s dossier: %w", p.ID, err)
	}
	if err := decodeJSON(costsRaw, &p.Costs); err != nil {
		return nil, fmt.Errorf("project %s costs: %w", p.ID, err)
	}

	// Budgets written by other clients may carry numeric strings or nulls;
	// coerce instead of failing the scan.
	var loose map[string]any
	if err := decodeJSON(budgetRaw, &loose); err != nil {
		return nil, fmt.Errorf("project %s budget: %w", p.ID, err)
	}
	if loose != nil {
		p.Budget = make(map[string]float64, len(loose))
		for cat, v := range loose {
			p.Budget[cat] = domain.CoerceAmount(v)
		}
	}

	if p.Dossier == nil {
		p.Dossier = domain.Dossier{}
	}
	if p.Costs.Executed == nil {
		p.Costs.Executed = domain.ExecutedCosts{}
	}
	p.CreatedAt = parseTimestamp(createdAtStr)
	p.UpdatedAt = parseTimestamp(updatedAtStr)

	return &p, nil
}
