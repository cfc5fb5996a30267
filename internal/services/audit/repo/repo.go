// Package repo writes entry events to clickhouse
package repo

import (
	"context"

	"astroref/internal/platform/store"
	"astroref/internal/services/audit/domain"
)

// Table is the append-only event table
const Table = "entry_events"

var columns = []string{"id", "kind", "row_id", "op", "entry_index", "entry_count", "at"}

// DDL creates the event table when missing
const DDL = `CREATE TABLE IF NOT EXISTS entry_events (
	id UUID,
	kind LowCardinality(String),
	row_id Int64,
	op LowCardinality(String),
	entry_index Int32,
	entry_count Int32,
	at DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (kind, row_id, at)`

// Storage defines the event repository
type Storage interface {
	EnsureTable(ctx context.Context) error
	Write(ctx context.Context, evs []domain.EntryEvent) error
}

// CH implements Storage on the clickhouse seam
type CH struct{ ch store.Clickhouse }

// NewCH constructs the clickhouse event repo
func NewCH(ch store.Clickhouse) *CH { return &CH{ch: ch} }

// EnsureTable implements Storage
func (r *CH) EnsureTable(ctx context.Context) error { return r.ch.Exec(ctx, DDL) }

// Write implements Storage
func (r *CH) Write(ctx context.Context, evs []domain.EntryEvent) error {
	if len(evs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(evs))
	for _, e := range evs {
		rows = append(rows, []any{e.ID, e.Kind, e.RowID, string(e.Op), int32(e.Index), int32(e.Count), e.At})
	}
	return r.ch.Insert(ctx, Table, columns, rows)
}
