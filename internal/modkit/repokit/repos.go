// Package repokit provides the query seams and transaction helpers repos are written against
package repokit

import (
	"context"

	"astroref/internal/platform/store"
)

type (
	// Queryer is the read and write surface a repo is bound to
	Queryer = store.RowQuerier

	// TxRunner executes a function inside a transaction
	TxRunner = store.TxRunner

	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag is the result of a write
	CommandTag = store.CommandTag
)

// WithTx binds repo to the transaction and runs fn with it
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(repo T) error) error {
	return tx.Tx(ctx, func(q Queryer) error {
		return fn(MustBind(b, q))
	})
}
