package domain

import (
	"encoding/json"

	"astroref/internal/core/entries"
)

// ListResult is the wrapped list body
type ListResult struct {
	Success bool  `json:"success"`
	Count   int   `json:"count"`
	Data    []Row `json:"data"`
}

// RowResult is the wrapped single row body
type RowResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Row    `json:"data"`
}

// BulkResult is the bulk insert body
type BulkResult struct {
	Message string `json:"message"`
	Data    []Row  `json:"data"`
}

// DeleteRowResult is the row delete body
type DeleteRowResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// AddResult is the add entry body
type AddResult struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	ID         int64           `json:"id"`
	NewItem    entries.Indexed `json:"newItem"`
	TotalItems int             `json:"totalItems"`
}

// UpdateResult is the update entry body; Changed is false for no-op updates
type UpdateResult struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	ID          int64           `json:"id"`
	UpdatedItem entries.Indexed `json:"updatedItem"`
	Changed     bool            `json:"-"`
}

// DeleteEntryResult is the delete entry body
type DeleteEntryResult struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	ID          int64           `json:"id"`
	DeletedItem entries.Indexed `json:"deletedItem"`
	TotalItems  int             `json:"totalItems"`
}

// SearchResult is the search body
type SearchResult struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Data    []entries.Indexed `json:"data"`
}

// ReplaceInput is the replace entries body; entries wins over the legacy dic key
type ReplaceInput struct {
	Entries json.RawMessage `json:"entries" swaggertype:"array,object"`
	Dic     json.RawMessage `json:"dic,omitempty" swaggertype:"array,object"`
}

// List returns the submitted list; nil when neither key was sent
func (in ReplaceInput) List() json.RawMessage {
	if len(in.Entries) > 0 {
		return in.Entries
	}
	return in.Dic
}
