// Package repo provides postgres access for taxonomy rows.
// SQL is derived from the kind descriptor, so one implementation serves every kind.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"astroref/internal/core/entries"
	"astroref/internal/modkit/repokit"
	perr "astroref/internal/platform/errors"
	"astroref/internal/platform/store"
	"astroref/internal/services/api/taxonomy/domain"
)

// Repo defines the repository contract for one taxonomy kind
type Repo interface {
	List(ctx context.Context) ([]domain.Row, error)
	Get(ctx context.Context, id int64) (domain.Row, error)

	// GetForUpdate locks the row until the surrounding transaction ends
	GetForUpdate(ctx context.Context, id int64) (domain.Row, error)

	Insert(ctx context.Context, rows []domain.NewRow) ([]domain.Row, error)
	SetEntries(ctx context.Context, id int64, list []entries.Entry) (domain.Row, error)
	Update(ctx context.Context, id int64, changes []domain.Change) (domain.Row, error)
	Delete(ctx context.Context, id int64) error
}

type (
	// PG implements the Repo binder using Postgres
	PG struct{ kind domain.Kind }

	// queries holds the database query methods
	queries struct {
		q    repokit.Queryer
		kind domain.Kind
	}
)

// NewPG creates a Postgres repository binder for kind
func NewPG(kind domain.Kind) repokit.Binder[Repo] { return PG{kind: kind} }

// Bind binds a Postgres queryer to the Repo implementation
func (p PG) Bind(q repokit.Queryer) Repo { return &queries{q: q, kind: p.kind} }

// selectList is the projection every read scans; JSON columns come back as text
func (r *queries) selectList() string {
	cols := []string{"id"}
	for _, c := range r.kind.Identity {
		if c.Type == domain.JSON {
			cols = append(cols, c.Name+"::text")
			continue
		}
		cols = append(cols, c.Name)
	}
	cols = append(cols, domain.EntriesColumn+"::text", "created_at", "updated_at")
	return strings.Join(cols, ", ")
}

func (r *queries) scan(row repokit.Row) (domain.Row, error) {
	var (
		out  domain.Row
		dic  *string
		dest = []any{&out.ID}
		vals = make([]any, len(r.kind.Identity))
	)
	for i, c := range r.kind.Identity {
		switch c.Type {
		case domain.Int:
			vals[i] = new(int64)
		case domain.TextArray:
			vals[i] = new([]string)
		default:
			vals[i] = new(string)
		}
		dest = append(dest, vals[i])
	}
	dest = append(dest, &dic, &out.CreatedAt, &out.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return domain.Row{}, err
	}

	for i, c := range r.kind.Identity {
		var v any
		switch p := vals[i].(type) {
		case *int64:
			v = *p
		case *[]string:
			v = *p
			if *p == nil {
				v = []string{}
			}
		case *string:
			v = *p
			if c.Type == domain.JSON {
				v = json.RawMessage(*p)
			}
		}
		out.Fields = append(out.Fields, domain.Field{Name: c.Name, Value: v})
	}

	var raw []byte
	if dic != nil {
		raw = []byte(*dic)
	}
	list, err := entries.Decode(raw)
	if err != nil {
		return domain.Row{}, perr.Wrapf(err, perr.ErrorCodeDB, "%s %d: stored entries are not valid", r.kind.Label, out.ID)
	}
	out.Entries = entries.Mirror(list, r.kind.Rules.Mirror)
	out.CreatedAt, out.UpdatedAt = out.CreatedAt.UTC(), out.UpdatedAt.UTC()
	return out, nil
}

func (r *queries) many(ctx context.Context, op, sql string, args ...any) ([]domain.Row, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgresf(err, "%s %s rows", op, r.kind.Label)
	}
	defer rows.Close()
	out := []domain.Row{}
	for rows.Next() {
		row, err := r.scan(rows)
		if err != nil {
			return nil, perr.FromPostgresf(err, "scan %s row", r.kind.Label)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgresf(err, "%s %s rows", op, r.kind.Label)
	}
	return out, nil
}

func (r *queries) one(ctx context.Context, id int64, sql string, args ...any) (domain.Row, error) {
	row, err := r.scan(r.q.QueryRow(ctx, sql, args...))
	if perr.IsNoRows(err) {
		return domain.Row{}, r.notFound(id)
	}
	if err != nil {
		return domain.Row{}, perr.FromPostgresf(err, "load %s %d", r.kind.Label, id)
	}
	return row, nil
}

func (r *queries) notFound(id int64) error {
	return perr.WithDetails(perr.NotFoundf("%s not found", r.kind.Label), map[string]any{"id": id})
}

// List returns every row in insertion order
func (r *queries) List(ctx context.Context) ([]domain.Row, error) {
	return r.many(ctx, "list", fmt.Sprintf("select %s from %s order by id", r.selectList(), r.kind.Table))
}

// Get returns one row by id
func (r *queries) Get(ctx context.Context, id int64) (domain.Row, error) {
	return r.one(ctx, id, fmt.Sprintf("select %s from %s where id = $1", r.selectList(), r.kind.Table), id)
}

// GetForUpdate returns one row by id and holds its lock
func (r *queries) GetForUpdate(ctx context.Context, id int64) (domain.Row, error) {
	return r.one(ctx, id, fmt.Sprintf("select %s from %s where id = $1 for update", r.selectList(), r.kind.Table), id)
}

// Insert writes rows in one statement and returns them in input order
func (r *queries) Insert(ctx context.Context, rows []domain.NewRow) ([]domain.Row, error) {
	if len(rows) == 0 {
		return []domain.Row{}, nil
	}

	cols := make([]string, 0, len(r.kind.Identity)+2)
	if r.kind.ExternalID {
		cols = append(cols, "id")
	}
	for _, c := range r.kind.Identity {
		cols = append(cols, c.Name)
	}
	cols = append(cols, domain.EntriesColumn)

	var (
		sb   strings.Builder
		args = make([]any, 0, len(rows)*len(cols))
	)
	fmt.Fprintf(&sb, "insert into %s (%s) values ", r.kind.Table, strings.Join(cols, ", "))
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		n := 0
		ph := func(cast string) {
			if n > 0 {
				sb.WriteString(", ")
			}
			n++
			fmt.Fprintf(&sb, "$%d%s", len(args), cast)
		}
		if r.kind.ExternalID {
			args = append(args, row.ID)
			ph("")
		}
		for j, c := range r.kind.Identity {
			v, cast := bindValue(c, row.Fields[j].Value)
			args = append(args, v)
			ph(cast)
		}
		dic, err := entries.Encode(row.Entries)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "encode entries")
		}
		args = append(args, string(dic))
		ph("::jsonb")
		sb.WriteByte(')')
	}
	fmt.Fprintf(&sb, " returning %s", r.selectList())

	return r.many(ctx, "insert", sb.String(), args...)
}

// SetEntries overwrites the entries list and advances updated_at
func (r *queries) SetEntries(ctx context.Context, id int64, list []entries.Entry) (domain.Row, error) {
	dic, err := entries.Encode(list)
	if err != nil {
		return domain.Row{}, perr.Wrap(err, perr.ErrorCodeJSON, "encode entries")
	}
	sql := fmt.Sprintf("update %s set %s = $2::jsonb, updated_at = now() where id = $1 returning %s",
		r.kind.Table, domain.EntriesColumn, r.selectList())
	return r.one(ctx, id, sql, id, string(dic))
}

// Update writes changes after the kind's policy admits them
func (r *queries) Update(ctx context.Context, id int64, changes []domain.Change) (domain.Row, error) {
	if err := r.kind.CheckUpdate(domain.Columns(changes)); err != nil {
		return domain.Row{}, err
	}
	if len(changes) == 0 {
		return r.Get(ctx, id)
	}

	args := []any{id}
	sets := make([]string, 0, len(changes)+1)
	for _, ch := range changes {
		var (
			v    any
			cast string
		)
		if ch.Column == domain.EntriesColumn {
			list, _ := ch.Value.([]entries.Entry)
			dic, err := entries.Encode(list)
			if err != nil {
				return domain.Row{}, perr.Wrap(err, perr.ErrorCodeJSON, "encode entries")
			}
			v, cast = string(dic), "::jsonb"
		} else {
			c, ok := r.kind.Column(ch.Column)
			if !ok {
				return domain.Row{}, perr.WithField(perr.Validationf("unknown column %s", ch.Column), ch.Column)
			}
			v, cast = bindValue(c, ch.Value)
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d%s", ch.Column, len(args), cast))
	}
	sets = append(sets, "updated_at = now()")

	sql := fmt.Sprintf("update %s set %s where id = $1 returning %s", r.kind.Table, strings.Join(sets, ", "), r.selectList())
	return r.one(ctx, id, sql, args...)
}

// Delete removes a row after the kind's policy admits it
func (r *queries) Delete(ctx context.Context, id int64) error {
	if err := r.kind.CheckDelete(); err != nil {
		return err
	}
	err := store.ExecOne(ctx, r.q, fmt.Sprintf("delete from %s where id = $1", r.kind.Table), id)
	if errors.Is(err, perr.ErrNotFound) {
		return r.notFound(id)
	}
	return perr.FromPostgresf(err, "delete %s %d", r.kind.Label, id)
}

// bindValue converts an identity value to its driver argument and placeholder cast
func bindValue(c domain.Column, v any) (any, string) {
	switch c.Type {
	case domain.JSON:
		raw, _ := v.(json.RawMessage)
		return string(raw), "::jsonb"
	case domain.TextArray:
		return v, "::text[]"
	default:
		return v, ""
	}
}
