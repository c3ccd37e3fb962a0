package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"assure/internal/assessment/models"
	id "assure/pkg/domain"
	txcontext "assure/pkg/platform/tx"
)

// Postgres persists history entries in PostgreSQL. Participates in the
// service's write transaction via the context-carried *sql.Tx.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *Postgres) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *Postgres) Append(ctx context.Context, entry models.HistoryEntry) error {
	_, err := s.execer(ctx).ExecContext(ctx,
		`INSERT INTO assessment_history
		 (id, project_id, standard_id, profession_id, changed_by, changed_at,
		  status_from, status_to, commentary_from, commentary_to, archived)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		entry.ID.String(), entry.ProjectID.String(), entry.StandardID.String(), entry.ProfessionID.String(),
		entry.ChangedBy, entry.Timestamp,
		entry.Changes.Status.From, entry.Changes.Status.To,
		entry.Changes.Commentary.From, entry.Changes.Commentary.To,
		entry.Archived,
	)
	if err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

// ListByKey returns non-archived entries for the key, newest first; timestamp
// ties resolve by insertion order via the seq column.
func (s *Postgres) ListByKey(ctx context.Context, key models.Key) ([]models.HistoryEntry, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT id, project_id, standard_id, profession_id, changed_by, changed_at,
		        status_from, status_to, commentary_from, commentary_to, archived
		 FROM assessment_history
		 WHERE project_id = $1 AND standard_id = $2 AND profession_id = $3 AND NOT archived
		 ORDER BY changed_at DESC, seq DESC`,
		key.ProjectID.String(), key.StandardID.String(), key.ProfessionID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var out []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		var rawID, rawProject, rawStandard, rawProfession string
		err := rows.Scan(&rawID, &rawProject, &rawStandard, &rawProfession, &e.ChangedBy, &e.Timestamp,
			&e.Changes.Status.From, &e.Changes.Status.To,
			&e.Changes.Commentary.From, &e.Changes.Commentary.To,
			&e.Archived,
		)
		if err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		historyID, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("scan history id: %w", err)
		}
		e.ID = id.HistoryID(historyID)
		projectID, err := id.ParseProjectID(rawProject)
		if err != nil {
			return nil, fmt.Errorf("scan history project id: %w", err)
		}
		standardID, err := id.ParseStandardID(rawStandard)
		if err != nil {
			return nil, fmt.Errorf("scan history standard id: %w", err)
		}
		professionID, err := id.ParseProfessionID(rawProfession)
		if err != nil {
			return nil, fmt.Errorf("scan history profession id: %w", err)
		}
		e.ProjectID = projectID
		e.StandardID = standardID
		e.ProfessionID = professionID
		out = append(out, e)
	}
	return out, rows.Err()
}

// Archive flips the archived flag on a matching non-archived entry. The
// `AND NOT archived` guard makes a repeat call a no-op returning false.
func (s *Postgres) Archive(ctx context.Context, key models.Key, historyID id.HistoryID) (bool, error) {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE assessment_history SET archived = TRUE
		 WHERE id = $1 AND project_id = $2 AND standard_id = $3 AND profession_id = $4 AND NOT archived`,
		historyID.String(), key.ProjectID.String(), key.StandardID.String(), key.ProfessionID.String(),
	)
	if err != nil {
		return false, fmt.Errorf("archive history entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("archive history entry: %w", err)
	}
	return n == 1, nil
}
