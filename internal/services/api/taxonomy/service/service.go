// Package service contains taxonomy workflows: row reads, bulk insert and the entry list operations
package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"astroref/internal/core/entries"
	"astroref/internal/modkit/repokit"
	perr "astroref/internal/platform/errors"
	"astroref/internal/platform/metrics"
	ptime "astroref/internal/platform/time"
	auditdom "astroref/internal/services/audit/domain"
	"astroref/internal/services/api/taxonomy/domain"
	"astroref/internal/services/api/taxonomy/repo"

	"github.com/tidwall/gjson"
)

// Service defines the taxonomy service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the taxonomy service for one kind
type Svc struct {
	Repo repo.Repo

	// Now stamps entries; tests swap it
	Now func() time.Time

	kind   domain.Kind
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	audit  auditdom.SinkPort
}

// New constructs a taxonomy service. A nil sink disables auditing.
func New(kind domain.Kind, db repokit.TxRunner, binder repokit.Binder[repo.Repo], sink auditdom.SinkPort) *Svc {
	if db == nil {
		panic("taxonomy.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("taxonomy.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), Now: ptime.Now, kind: kind, binder: binder, db: db, audit: sink}
}

// Kind returns the kind this service serves
func (s *Svc) Kind() domain.Kind { return s.kind }

func (s *Svc) tx(ctx context.Context, fn func(r repo.Repo) error) error {
	return repokit.WithTx(ctx, s.db, s.binder, fn)
}

func (s *Svc) record(ctx context.Context, id int64, op auditdom.Op, index, count int) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, auditdom.EntryEvent{Kind: s.kind.Name, RowID: id, Op: op, Index: index, Count: count, At: s.Now()})
}

func (s *Svc) observe(op auditdom.Op, err *error) {
	metrics.RecordEntryOp(s.kind.Name, string(op), *err)
}

// List returns every row
func (s *Svc) List(ctx context.Context) ([]domain.Row, error) {
	return s.Repo.List(ctx)
}

// Get returns one row
func (s *Svc) Get(ctx context.Context, id int64) (domain.Row, error) {
	return s.Repo.Get(ctx, id)
}

// BulkInsert validates every row and inserts them in one transaction
func (s *Svc) BulkInsert(ctx context.Context, raw json.RawMessage) (out []domain.Row, err error) {
	defer s.observe(auditdom.OpBulk, &err)

	rows, err := s.kind.ParseRows(raw, s.Now())
	if err != nil {
		return nil, err
	}
	err = s.tx(ctx, func(r repo.Repo) error {
		out, err = r.Insert(ctx, rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	for _, row := range out {
		s.record(ctx, row.ID, auditdom.OpBulk, -1, len(row.Entries))
	}
	return out, nil
}

// Patch updates the identity columns and/or entries that differ from the stored row
func (s *Svc) Patch(ctx context.Context, id int64, raw json.RawMessage) (out domain.Row, err error) {
	defer s.observe(auditdom.OpPatch, &err)

	p, err := s.kind.ParsePatch(raw, s.Now())
	if err != nil {
		return domain.Row{}, err
	}
	changed := false
	err = s.tx(ctx, func(r repo.Repo) error {
		cur, err := r.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		changes := p.Changes(cur)
		changed = len(changes) > 0
		out, err = r.Update(ctx, id, changes)
		return err
	})
	if err != nil {
		return domain.Row{}, err
	}
	if changed {
		s.record(ctx, id, auditdom.OpPatch, -1, len(out.Entries))
	}
	return out, nil
}

// Delete removes a row when the kind's policy allows it
func (s *Svc) Delete(ctx context.Context, id int64) error {
	return s.tx(ctx, func(r repo.Repo) error { return r.Delete(ctx, id) })
}

// AddEntry appends one entry
func (s *Svc) AddEntry(ctx context.Context, id int64, d entries.Draft) (res domain.AddResult, err error) {
	defer s.observe(auditdom.OpAdd, &err)

	var added entries.Entry
	var total int
	err = s.tx(ctx, func(r repo.Repo) error {
		cur, err := r.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		list, e, err := entries.Add(cur.Entries, d, s.kind.Rules, s.Now())
		if err != nil {
			return err
		}
		if _, err := r.SetEntries(ctx, id, list); err != nil {
			return err
		}
		added, total = e, len(list)
		return nil
	})
	if err != nil {
		return domain.AddResult{}, err
	}

	s.record(ctx, id, auditdom.OpAdd, total-1, total)
	return domain.AddResult{
		Success:    true,
		Message:    "Entry added successfully",
		ID:         id,
		NewItem:    entries.Indexed{Entry: added, Index: total - 1},
		TotalItems: total,
	}, nil
}

// UpdateEntry changes the entry at index; an update that changes nothing persists nothing
func (s *Svc) UpdateEntry(ctx context.Context, id int64, index string, d entries.Draft) (res domain.UpdateResult, err error) {
	defer s.observe(auditdom.OpUpdate, &err)

	var (
		i       int
		updated entries.Entry
		changed bool
		total   int
	)
	err = s.tx(ctx, func(r repo.Repo) error {
		cur, err := r.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := d.RequireAny(); err != nil {
			return err
		}
		if i, err = entries.ParseIndex(index, len(cur.Entries)); err != nil {
			return err
		}
		var list []entries.Entry
		list, updated, changed, err = entries.Update(cur.Entries, i, d, s.kind.Rules, s.Now())
		if err != nil || !changed {
			return err
		}
		total = len(list)
		_, err = r.SetEntries(ctx, id, list)
		return err
	})
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res = domain.UpdateResult{
		Success:     true,
		Message:     "No changes detected",
		ID:          id,
		UpdatedItem: entries.Indexed{Entry: updated, Index: i},
		Changed:     changed,
	}
	if changed {
		res.Message = "Entry updated successfully"
		s.record(ctx, id, auditdom.OpUpdate, i, total)
	}
	return res, nil
}

// DeleteEntry removes the entry at index; later entries shift down
func (s *Svc) DeleteEntry(ctx context.Context, id int64, index string) (res domain.DeleteEntryResult, err error) {
	defer s.observe(auditdom.OpDelete, &err)

	var (
		i       int
		removed entries.Entry
		total   int
	)
	err = s.tx(ctx, func(r repo.Repo) error {
		cur, err := r.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if i, err = entries.ParseIndex(index, len(cur.Entries)); err != nil {
			return err
		}
		list, e, err := entries.Delete(cur.Entries, i)
		if err != nil {
			return err
		}
		if _, err := r.SetEntries(ctx, id, list); err != nil {
			return err
		}
		removed, total = e, len(list)
		return nil
	})
	if err != nil {
		return domain.DeleteEntryResult{}, err
	}

	s.record(ctx, id, auditdom.OpDelete, i, total)
	return domain.DeleteEntryResult{
		Success:     true,
		Message:     "Entry deleted successfully",
		ID:          id,
		DeletedItem: entries.Indexed{Entry: removed, Index: i},
		TotalItems:  total,
	}, nil
}

// Entry returns the entry at index. A well-formed index past the end is not found.
func (s *Svc) Entry(ctx context.Context, id int64, index string) (entries.Indexed, error) {
	cur, err := s.Repo.Get(ctx, id)
	if err != nil {
		return entries.Indexed{}, err
	}
	n := len(cur.Entries)
	i, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		_, err = entries.ParseIndex(index, n)
		return entries.Indexed{}, err
	}
	if i < 0 || i >= n {
		return entries.Indexed{}, perr.WithDetails(perr.NotFoundf("entry not found"), map[string]any{
			"currentLength": n,
			"receivedIndex": i,
		})
	}
	return entries.Indexed{Entry: cur.Entries[i], Index: i}, nil
}

// Search filters the row's entries by text and category
func (s *Svc) Search(ctx context.Context, id int64, q entries.Query) ([]entries.Indexed, error) {
	cur, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return entries.Search(cur.Entries, q), nil
}

// ReplaceEntries overwrites the whole list after normalizing it
func (s *Svc) ReplaceEntries(ctx context.Context, id int64, raw json.RawMessage) (out domain.Row, err error) {
	defer s.observe(auditdom.OpReplace, &err)

	if gjson.ParseBytes(raw).Type == gjson.Null {
		return domain.Row{}, perr.WithField(perr.Validationf("entries must be an array"), "entries")
	}
	list, err := entries.Normalize(raw, s.kind.Rules, s.Now())
	if err != nil {
		return domain.Row{}, err
	}
	err = s.tx(ctx, func(r repo.Repo) error {
		out, err = r.SetEntries(ctx, id, list)
		return err
	})
	if err != nil {
		return domain.Row{}, err
	}
	s.record(ctx, id, auditdom.OpReplace, -1, len(list))
	return out, nil
}
