package standard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

// PostgresStore persists service standards in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const standardColumns = `id, number, name, description, is_active, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, std *ServiceStandard) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO service_standards (`+standardColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		std.ID.String(), std.Number, std.Name, std.Description, std.IsActive, std.CreatedAt, std.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert standard: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, standardID id.StandardID) (*ServiceStandard, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+standardColumns+` FROM service_standards WHERE id = $1`,
		standardID.String(),
	)
	return scanStandard(row)
}

// GetActiveByID filters on is_active in the query itself, so an inactive
// standard scans identically to a missing one.
func (s *PostgresStore) GetActiveByID(ctx context.Context, standardID id.StandardID) (*ServiceStandard, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+standardColumns+` FROM service_standards WHERE id = $1 AND is_active`,
		standardID.String(),
	)
	return scanStandard(row)
}

func (s *PostgresStore) ListActive(ctx context.Context) ([]*ServiceStandard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+standardColumns+` FROM service_standards WHERE is_active ORDER BY number`,
	)
	if err != nil {
		return nil, fmt.Errorf("list standards: %w", err)
	}
	defer rows.Close()

	var out []*ServiceStandard
	for rows.Next() {
		std, err := scanStandard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, std)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SoftDelete(ctx context.Context, standardID id.StandardID, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE service_standards SET is_active = FALSE, updated_at = $2
		 WHERE id = $1 AND is_active`,
		standardID.String(), now,
	)
	if err != nil {
		return fmt.Errorf("soft delete standard: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete standard: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStandard(row rowScanner) (*ServiceStandard, error) {
	var std ServiceStandard
	var rawID string
	err := row.Scan(&rawID, &std.Number, &std.Name, &std.Description, &std.IsActive, &std.CreatedAt, &std.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan standard: %w", err)
	}
	parsed, err := id.ParseStandardID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan standard id: %w", err)
	}
	std.ID = parsed
	return &std, nil
}
