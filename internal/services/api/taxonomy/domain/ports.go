package domain

import (
	"context"
	"encoding/json"

	"astroref/internal/core/entries"
)

// Reader is the read port other modules consume
type Reader interface {
	Kind() Kind
	List(ctx context.Context) ([]Row, error)
	Get(ctx context.Context, id int64) (Row, error)
}

// ServicePort is the full taxonomy workflow surface
type ServicePort interface {
	Reader

	BulkInsert(ctx context.Context, raw json.RawMessage) ([]Row, error)
	Patch(ctx context.Context, id int64, raw json.RawMessage) (Row, error)
	Delete(ctx context.Context, id int64) error

	AddEntry(ctx context.Context, id int64, d entries.Draft) (AddResult, error)
	UpdateEntry(ctx context.Context, id int64, index string, d entries.Draft) (UpdateResult, error)
	DeleteEntry(ctx context.Context, id int64, index string) (DeleteEntryResult, error)
	Entry(ctx context.Context, id int64, index string) (entries.Indexed, error)
	Search(ctx context.Context, id int64, q entries.Query) ([]entries.Indexed, error)
	ReplaceEntries(ctx context.Context, id int64, raw json.RawMessage) (Row, error)
}
