// Package service contains user and horoscope row workflows
package service

import (
	"context"
	"slices"
	"strings"

	"astroref/internal/modkit/repokit"
	perr "astroref/internal/platform/errors"
	"astroref/internal/services/api/horoscope/domain"
	"astroref/internal/services/api/horoscope/repo"

	"golang.org/x/crypto/bcrypt"
)

// Service defines the horoscope service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the horoscope service
type Svc struct {
	Repo repo.Repo

	// HashCost is the bcrypt cost for new passwords
	HashCost int

	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a horoscope service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("horoscope.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("horoscope.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), HashCost: bcrypt.DefaultCost, binder: binder, db: db}
}

// CreateUser registers a user with a hashed password
func (s *Svc) CreateUser(ctx context.Context, in domain.CreateUserInput) (domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)
	if name == "" || email == "" || phone == "" || in.Password == "" {
		return domain.User{}, perr.Validationf("all fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.HashCost)
	if err != nil {
		return domain.User{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "password cannot be used"), "password")
	}
	u, err := s.Repo.CreateUser(ctx, name, email, phone, string(hash))
	if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		e, _ := perr.As(err)
		return domain.User{}, perr.WithField(perr.Conflictf("a user with this %s already exists", fieldOr(e.Field(), "email or phone")), e.Field())
	}
	return u, err
}

func fieldOr(f, def string) string {
	if f == "" {
		return def
	}
	return f
}

// Users lists users with their horoscope rows
func (s *Svc) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.Repo.Users(ctx)
	if err != nil || len(users) == 0 {
		return users, err
	}
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	rows, err := s.Repo.RowsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	byUser := map[int64][]domain.HoroscopeRow{}
	for _, h := range rows {
		byUser[h.UserID] = append(byUser[h.UserID], h)
	}
	for i := range users {
		users[i].Rows = byUser[users[i].ID]
	}
	return users, nil
}

// User returns one user with their horoscope rows
func (s *Svc) User(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.Repo.User(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Rows, err = s.Repo.RowsFor(ctx, []int64{id})
	return u, err
}

// InsertRows stores a batch of horoscope rows. A user who already has rows cannot get more.
func (s *Svc) InsertRows(ctx context.Context, in []domain.HoroscopeRowInput) ([]domain.HoroscopeRow, error) {
	if len(in) == 0 {
		return nil, perr.Validationf("invalid rasi data")
	}
	ids := make([]int64, 0, len(in))
	for _, h := range in {
		if !slices.Contains(ids, h.UserID) {
			ids = append(ids, h.UserID)
		}
	}

	var out []domain.HoroscopeRow
	err := repokit.WithTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		taken, err := r.UsersWithRows(ctx, ids)
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return perr.WithDetails(perr.Validationf("rasi data already exists for this user"), map[string]any{"user_ids": taken})
		}
		out, err = r.InsertRows(ctx, in)
		return err
	})
	return out, err
}

// Rows lists every horoscope row with its user
func (s *Svc) Rows(ctx context.Context) ([]domain.HoroscopeRow, error) {
	rows, err := s.Repo.RowsFor(ctx, nil)
	if err != nil || len(rows) == 0 {
		return rows, err
	}
	users, err := s.Repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for i := range rows {
		if u, ok := byID[rows[i].UserID]; ok {
			rows[i].User = &u
		}
	}
	return rows, nil
}
