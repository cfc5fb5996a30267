package service

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"astroref/internal/modkit/repokit"
	perr "astroref/internal/platform/errors"
	"astroref/internal/platform/store"
	"astroref/internal/services/api/horoscope/domain"
	"astroref/internal/services/api/horoscope/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memRepo struct {
	users  []domain.User
	hashes map[int64]string
	rows   []domain.HoroscopeRow
}

func (m *memRepo) CreateUser(_ context.Context, name, email, phone, hash string) (domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return domain.User{}, perr.WithField(perr.Newf(perr.ErrorCodeDuplicateKey, "dup"), "email")
		}
		if u.Phone == phone {
			return domain.User{}, perr.WithField(perr.Newf(perr.ErrorCodeDuplicateKey, "dup"), "phone")
		}
	}
	u := domain.User{ID: int64(len(m.users) + 1), Name: name, Email: email, Phone: phone}
	m.users = append(m.users, u)
	m.hashes[u.ID] = hash
	return u, nil
}

func (m *memRepo) Users(context.Context) ([]domain.User, error) { return slices.Clone(m.users), nil }

func (m *memRepo) User(_ context.Context, id int64) (domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, perr.NotFoundf("User not found")
}

func (m *memRepo) RowsFor(_ context.Context, ids []int64) ([]domain.HoroscopeRow, error) {
	out := []domain.HoroscopeRow{}
	for _, h := range m.rows {
		if ids == nil || slices.Contains(ids, h.UserID) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memRepo) UsersWithRows(_ context.Context, ids []int64) ([]int64, error) {
	var out []int64
	for _, h := range m.rows {
		if slices.Contains(ids, h.UserID) && !slices.Contains(out, h.UserID) {
			out = append(out, h.UserID)
		}
	}
	return out, nil
}

func (m *memRepo) InsertRows(_ context.Context, in []domain.HoroscopeRowInput) ([]domain.HoroscopeRow, error) {
	out := make([]domain.HoroscopeRow, 0, len(in))
	for _, h := range in {
		row := domain.HoroscopeRow{ID: int64(len(m.rows) + 1), UserID: h.UserID, Rasi: h.Rasi, Planet: h.Planet}
		m.rows = append(m.rows, row)
		out = append(out, row)
	}
	return out, nil
}

type passTx struct{}

func (passTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (passTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (passTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (passTx) Tx(_ context.Context, fn func(store.RowQuerier) error) error    { return fn(passTx{}) }

func newSvc() (*Svc, *memRepo) {
	m := &memRepo{hashes: map[int64]string{}}
	s := New(passTx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return m }))
	s.HashCost = bcrypt.MinCost
	return s, m
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	s, m := newSvc()

	u, err := s.CreateUser(ctx, domain.CreateUserInput{Name: " Meena ", Email: "Meena@Example.com", Phone: "9876543210", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Meena", u.Name)
	assert.Equal(t, "meena@example.com", u.Email)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(m.hashes[u.ID]), []byte("secret1")))

	_, err = s.CreateUser(ctx, domain.CreateUserInput{Name: "x", Email: "meena@example.com", Phone: "1234567", Password: "secret1"})
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, perr.ErrorCodeConflict, e.Code())
	assert.Equal(t, "email", e.Field())

	_, err = s.CreateUser(ctx, domain.CreateUserInput{Name: "x", Email: "", Phone: "1", Password: "p"})
	e, ok = perr.As(err)
	require.True(t, ok)
	assert.Equal(t, "all fields are required", e.Message())
}

func row(user int64) domain.HoroscopeRowInput {
	return domain.HoroscopeRowInput{UserID: user, Rasi: "Mesham", Planet: json.RawMessage(`{"sun":1}`)}
}

func TestInsertRowsOncePerUser(t *testing.T) {
	ctx := context.Background()
	s, _ := newSvc()

	_, err := s.InsertRows(ctx, nil)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation))

	out, err := s.InsertRows(ctx, []domain.HoroscopeRowInput{row(1), row(1), row(2)})
	require.NoError(t, err)
	assert.Len(t, out, 3)

	_, err = s.InsertRows(ctx, []domain.HoroscopeRowInput{row(3), row(2)})
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, "rasi data already exists for this user", e.Message())
	assert.Equal(t, []int64{2}, e.Details()["user_ids"])
}

func TestUsersCarryRows(t *testing.T) {
	ctx := context.Background()
	s, _ := newSvc()
	a, err := s.CreateUser(ctx, domain.CreateUserInput{Name: "a", Email: "a@x.io", Phone: "1111111", Password: "secret1"})
	require.NoError(t, err)
	b, err := s.CreateUser(ctx, domain.CreateUserInput{Name: "b", Email: "b@x.io", Phone: "2222222", Password: "secret1"})
	require.NoError(t, err)
	_, err = s.InsertRows(ctx, []domain.HoroscopeRowInput{row(a.ID), row(a.ID)})
	require.NoError(t, err)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Len(t, users[0].Rows, 2)
	assert.Empty(t, users[1].Rows)

	one, err := s.User(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, one.Rows)

	_, err = s.User(ctx, 99)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))

	rows, err := s.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].User)
	assert.Equal(t, "a", rows[0].User.Name)
}
