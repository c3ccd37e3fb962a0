package assessment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"assure/internal/assessment/models"
	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
	txcontext "assure/pkg/platform/tx"
)

// Postgres persists current assessments in PostgreSQL. When the service runs
// the write path inside a transaction, the store picks it out of the context
// so the upsert and the history append commit together.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Postgres) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *Postgres) Find(ctx context.Context, key models.Key) (*models.Assessment, error) {
	row := s.execer(ctx).QueryRowContext(ctx,
		`SELECT id, project_id, standard_id, profession_id, status, commentary, changed_by, last_updated
		 FROM assessments
		 WHERE project_id = $1 AND standard_id = $2 AND profession_id = $3`,
		key.ProjectID.String(), key.StandardID.String(), key.ProfessionID.String(),
	)

	var a models.Assessment
	var rawID, rawProject, rawStandard, rawProfession, rawStatus string
	err := row.Scan(&rawID, &rawProject, &rawStandard, &rawProfession, &rawStatus, &a.Commentary, &a.ChangedBy, &a.LastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find assessment: %w", err)
	}
	if err := hydrateIDs(&a, rawID, rawProject, rawStandard, rawProfession); err != nil {
		return nil, err
	}
	a.Status = models.Rating(rawStatus)
	return &a, nil
}

func (s *Postgres) Upsert(ctx context.Context, a *models.Assessment) error {
	_, err := s.execer(ctx).ExecContext(ctx,
		`INSERT INTO assessments (id, project_id, standard_id, profession_id, status, commentary, changed_by, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (project_id, standard_id, profession_id) DO UPDATE
		 SET status = EXCLUDED.status,
		     commentary = EXCLUDED.commentary,
		     changed_by = EXCLUDED.changed_by,
		     last_updated = EXCLUDED.last_updated`,
		a.ID.String(), a.ProjectID.String(), a.StandardID.String(), a.ProfessionID.String(),
		string(a.Status), a.Commentary, a.ChangedBy, a.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert assessment: %w", err)
	}
	return nil
}

func hydrateIDs(a *models.Assessment, rawID, rawProject, rawStandard, rawProfession string) error {
	assessmentID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("scan assessment id: %w", err)
	}
	a.ID = id.AssessmentID(assessmentID)

	projectID, err := id.ParseProjectID(rawProject)
	if err != nil {
		return fmt.Errorf("scan assessment project id: %w", err)
	}
	standardID, err := id.ParseStandardID(rawStandard)
	if err != nil {
		return fmt.Errorf("scan assessment standard id: %w", err)
	}
	professionID, err := id.ParseProfessionID(rawProfession)
	if err != nil {
		return fmt.Errorf("scan assessment profession id: %w", err)
	}
	a.ProjectID = projectID
	a.StandardID = standardID
	a.ProfessionID = professionID
	return nil
}
