package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

// PostgresStore persists projects in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, p *Project) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID.String(), p.Name, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, projectID id.ProjectID) (*Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM projects WHERE id = $1`,
		projectID.String(),
	)
	return scanProject(row)
}

func (s *PostgresStore) List(ctx context.Context) ([]*Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM projects ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, p *Project) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		p.ID.String(), p.Name, p.Description, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*Project, error) {
	var p Project
	var rawID string
	err := row.Scan(&rawID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	parsed, err := id.ParseProjectID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan project id: %w", err)
	}
	p.ID = parsed
	return &p, nil
}
