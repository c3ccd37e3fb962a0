package profession

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

// PostgresStore persists professions in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const professionColumns = `id, name, is_active, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, p *Profession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO professions (`+professionColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		p.ID.String(), p.Name, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profession: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, professionID id.ProfessionID) (*Profession, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+professionColumns+` FROM professions WHERE id = $1`,
		professionID.String(),
	)
	return scanProfession(row)
}

// GetActiveByID filters on is_active in the query itself.
func (s *PostgresStore) GetActiveByID(ctx context.Context, professionID id.ProfessionID) (*Profession, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+professionColumns+` FROM professions WHERE id = $1 AND is_active`,
		professionID.String(),
	)
	return scanProfession(row)
}

func (s *PostgresStore) ListActive(ctx context.Context) ([]*Profession, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+professionColumns+` FROM professions WHERE is_active ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list professions: %w", err)
	}
	defer rows.Close()

	var out []*Profession
	for rows.Next() {
		p, err := scanProfession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SoftDelete(ctx context.Context, professionID id.ProfessionID, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE professions SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active`,
		professionID.String(), now,
	)
	if err != nil {
		return fmt.Errorf("soft delete profession: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete profession: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfession(row rowScanner) (*Profession, error) {
	var p Profession
	var rawID string
	err := row.Scan(&rawID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan profession: %w", err)
	}
	parsed, err := id.ParseProfessionID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan profession id: %w", err)
	}
	p.ID = parsed
	return &p, nil
}
