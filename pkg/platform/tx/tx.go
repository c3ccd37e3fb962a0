// Package tx carries an open *sql.Tx through a context. The assessment write
// path opens one transaction around the state upsert and the history append;
// stores join it by checking the context, keeping their method signatures
// transaction-agnostic.
package tx

import (
	"context"
	"database/sql"
)

type ctxKey struct{}

// WithTx returns a context carrying the transaction. A nil tx leaves the
// context untouched, so stores fall back to their own connection.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, tx)
}

// From reports the transaction carried by ctx, if any.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(ctxKey{}).(*sql.Tx)
	return tx, ok
}
