package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"astroref/internal/core/entries"
)

// Field is one identity value: string (Text), int64 (Int), json.RawMessage (JSON) or []string (TextArray)
type Field struct {
	Name  string
	Value any
}

// Row is one taxonomy row
type Row struct {
	ID        int64
	Fields    []Field
	Entries   []entries.Entry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Value returns the identity value called name
func (r Row) Value(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes id, the identity fields in kind order, the indexed entries, totalItems and timestamps
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"id":`)
	write := func(key string, v any) error {
		buf.WriteByte(',')
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}

	id, _ := json.Marshal(r.ID)
	buf.Write(id)
	for _, f := range r.Fields {
		if err := write(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	list := r.Entries
	if list == nil {
		list = []entries.Entry{}
	}
	if err := write("entries", entries.WithIndex(list)); err != nil {
		return nil, err
	}
	if err := write("totalItems", len(list)); err != nil {
		return nil, err
	}
	if !r.CreatedAt.IsZero() {
		if err := write("createdAt", r.CreatedAt.UTC().Format(entries.TimeLayout)); err != nil {
			return nil, err
		}
	}
	if !r.UpdatedAt.IsZero() {
		if err := write("updatedAt", r.UpdatedAt.UTC().Format(entries.TimeLayout)); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewRow is a validated row ready for insert
type NewRow struct {
	// ID is set for ExternalID kinds only
	ID      int64
	Fields  []Field
	Entries []entries.Entry
}

// Patch is a validated partial row update
type Patch struct {
	Fields []Field

	// Entries replaces the list when HasEntries
	Entries    []entries.Entry
	HasEntries bool
}

// Change is one column about to be written
type Change struct {
	Column string
	Value  any
}
