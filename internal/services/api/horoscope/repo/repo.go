// Package repo provides postgres access for users and horoscope rows
package repo

import (
	"context"
	"fmt"
	"strings"

	"astroref/internal/modkit/repokit"
	perr "astroref/internal/platform/errors"
	"astroref/internal/platform/store"
	"astroref/internal/services/api/horoscope/domain"
)

// Repo defines the repository contract for users and horoscope rows
type Repo interface {
	CreateUser(ctx context.Context, name, email, phone, passwordHash string) (domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)
	User(ctx context.Context, id int64) (domain.User, error)

	// RowsFor returns horoscope rows of the given users, every user when ids is nil
	RowsFor(ctx context.Context, ids []int64) ([]domain.HoroscopeRow, error)

	// UsersWithRows locks the users named by ids and returns which of them already own horoscope rows
	UsersWithRows(ctx context.Context, ids []int64) ([]int64, error)
	InsertRows(ctx context.Context, in []domain.HoroscopeRowInput) ([]domain.HoroscopeRow, error)
}

type (
	// PG implements the Repo binder using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const userCols = `id, name, email, phone, created_at, updated_at`

const rowCols = `id, user_id, rasi, lagna, nakshatra, hd, ld, houses, bhavam_no, rasi_name,
planet::text, degree, nakshatras::text, combinations::text, created_at, updated_at`

func scanUser(row repokit.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanRow(row repokit.Row) (domain.HoroscopeRow, error) {
	var (
		h                          domain.HoroscopeRow
		planet, naks, combinations string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.Rasi, &h.Lagna, &h.Nakshatra, &h.HD, &h.LD, &h.Houses,
		&h.BhavamNo, &h.RasiName, &planet, &h.Degree, &naks, &combinations, &h.CreatedAt, &h.UpdatedAt)
	h.Planet, h.Nakshatras, h.Combinations = []byte(planet), []byte(naks), []byte(combinations)
	return h, err
}

func (r *queries) CreateUser(ctx context.Context, name, email, phone, passwordHash string) (domain.User, error) {
	const sql = `insert into users (name, email, phone, password_hash) values ($1, $2, $3, $4) returning ` + userCols
	u, err := scanUser(r.q.QueryRow(ctx, sql, name, email, phone, passwordHash))
	if err != nil {
		return domain.User{}, perr.FromPostgres(err, "create user")
	}
	return u, nil
}

func (r *queries) Users(ctx context.Context) ([]domain.User, error) {
	out, err := store.Many(ctx, r.q, scanUser, `select `+userCols+` from users order by id`)
	return out, perr.FromPostgres(err, "list users")
}

func (r *queries) User(ctx context.Context, id int64) (domain.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `select `+userCols+` from users where id = $1`, id))
	if perr.IsNoRows(err) {
		return domain.User{}, perr.NotFoundf("User not found")
	}
	if err != nil {
		return domain.User{}, perr.FromPostgresf(err, "load user %d", id)
	}
	return u, nil
}

func (r *queries) RowsFor(ctx context.Context, ids []int64) ([]domain.HoroscopeRow, error) {
	sql := `select ` + rowCols + ` from rasi_table`
	var args []any
	if ids != nil {
		sql += ` where user_id = any($1)`
		args = append(args, ids)
	}
	out, err := store.Many(ctx, r.q, scanRow, sql+` order by id`, args...)
	return out, perr.FromPostgres(err, "list rasi table")
}

func (r *queries) UsersWithRows(ctx context.Context, ids []int64) ([]int64, error) {
	if _, err := r.q.Exec(ctx, `select id from users where id = any($1) order by id for update`, ids); err != nil {
		return nil, perr.FromPostgres(err, "lock users")
	}
	out, err := store.Many(ctx, r.q, func(row store.Row) (id int64, err error) {
		err = row.Scan(&id)
		return id, err
	}, `select distinct user_id from rasi_table where user_id = any($1) order by user_id`, ids)
	return out, perr.FromPostgres(err, "check rasi table")
}

func (r *queries) InsertRows(ctx context.Context, in []domain.HoroscopeRowInput) ([]domain.HoroscopeRow, error) {
	if len(in) == 0 {
		return []domain.HoroscopeRow{}, nil
	}
	const cols = 13

	var sb strings.Builder
	sb.WriteString(`insert into rasi_table
		(user_id, rasi, lagna, nakshatra, hd, ld, houses, bhavam_no, rasi_name, planet, degree, nakshatras, combinations) values `)
	args := make([]any, 0, len(in)*cols)
	for i, h := range in {
		if i > 0 {
			sb.WriteByte(',')
		}
		b := i*cols + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d::jsonb,$%d,$%d::jsonb,$%d::jsonb)",
			b, b+1, b+2, b+3, b+4, b+5, b+6, b+7, b+8, b+9, b+10, b+11, b+12)
		args = append(args,
			h.UserID, h.Rasi, h.Lagna, h.Nakshatra, h.HD, h.LD, h.Houses, h.BhavamNo, h.RasiName,
			string(h.Planet), h.Degree, string(h.Nakshatras), string(h.Combinations),
		)
	}
	sb.WriteString(` returning ` + rowCols)

	out, err := store.Many(ctx, r.q, scanRow, sb.String(), args...)
	return out, perr.FromPostgres(err, "insert rasi table rows")
}
