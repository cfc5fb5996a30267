// Package domain defines the entry audit event and the sink port
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Op names an entry mutation
type Op string

// Entry mutations that emit events
const (
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
	OpBulk    Op = "bulk"
	OpPatch   Op = "patch"
)

// EntryEvent records one successful entry mutation.
// Index is -1 for operations that address the whole list; Count is the list length afterwards.
type EntryEvent struct {
	ID    uuid.UUID
	Kind  string
	RowID int64
	Op    Op
	Index int
	Count int
	At    time.Time
}

// SinkPort receives events; Record never fails the caller
type SinkPort interface {
	Record(ctx context.Context, ev EntryEvent)
}
