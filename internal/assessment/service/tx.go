package service

import (
	"context"
	"database/sql"
	"fmt"

	txcontext "assure/pkg/platform/tx"
)

// sqlStoreTx wraps the write path in a database transaction. The stores pick
// the transaction out of the context, so the upsert and the history append
// are one atomic unit and the audit trail cannot silently diverge from
// current state.
type sqlStoreTx struct {
	db *sql.DB
}

// NewSQLStoreTx builds a StoreTx over a postgres connection.
func NewSQLStoreTx(db *sql.DB) StoreTx {
	return &sqlStoreTx{db: db}
}

func (t *sqlStoreTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// memoryStoreTx is a pass-through for in-memory stores, which apply each
// write immediately. The per-key mutex in the service still serializes the
// two-step write, so readers never observe a torn update under test.
type memoryStoreTx struct{}

// NewMemoryStoreTx builds the pass-through StoreTx used with memory stores.
func NewMemoryStoreTx() StoreTx {
	return memoryStoreTx{}
}

func (memoryStoreTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
