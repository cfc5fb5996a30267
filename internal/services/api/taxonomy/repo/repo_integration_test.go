//go:build integration_pg

package repo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"astroref/internal/core/entries"
	perr "astroref/internal/platform/errors"
	"astroref/internal/platform/store"
	"astroref/internal/platform/store/pgtest"
	"astroref/internal/platform/store/schema"
	"astroref/internal/services/api/taxonomy/domain"
	"astroref/internal/services/api/taxonomy/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := pgtest.Open(t)
	require.NoError(t, schema.Apply(ctx, s.PG))
	// a second apply is a no-op
	require.NoError(t, schema.Apply(ctx, s.PG))

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("sign", func(t *testing.T) {
		r := repo.NewPG(domain.Sign).Bind(s.PG)
		rows, err := domain.Sign.ParseRows(json.RawMessage(`[{"rasi":"Aries","entries":[{"text":"a","categories":[1]}]},{"rasi":"Taurus"}]`), now)
		require.NoError(t, err)

		got, err := r.Insert(ctx, rows)
		require.NoError(t, err)
		require.Len(t, got, 2)
		v, _ := got[0].Value("rasi")
		assert.Equal(t, "Aries", v)
		require.Len(t, got[0].Entries, 1)
		assert.Equal(t, []int{1}, got[0].Entries[0].Cat)
		assert.Equal(t, now, got[0].Entries[0].CreatedAt)

		_, err = r.Insert(ctx, rows[:1])
		assert.True(t, perr.IsCode(err, perr.ErrorCodeDuplicateKey))

		list, err := r.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		upd, err := r.SetEntries(ctx, got[1].ID, []entries.Entry{{Text: "b", Categories: []int{2}, CreatedAt: now, UpdatedAt: now}})
		require.NoError(t, err)
		assert.Len(t, upd.Entries, 1)
		assert.False(t, upd.UpdatedAt.Before(got[1].UpdatedAt))

		err = r.Delete(ctx, got[0].ID)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeForbidden))

		_, err = r.Update(ctx, got[0].ID, []domain.Change{{Column: "rasi", Value: "Gemini"}})
		assert.True(t, perr.IsCode(err, perr.ErrorCodeForbidden))

		_, err = r.Get(ctx, 9999)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	})

	t.Run("planet json identity", func(t *testing.T) {
		r := repo.NewPG(domain.Planet).Bind(s.PG)
		rows, err := domain.Planet.ParseRows(json.RawMessage(`[{"planet":{"name":"Sun","deg":12.5}}]`), now)
		require.NoError(t, err)
		got, err := r.Insert(ctx, rows)
		require.NoError(t, err)
		v, _ := got[0].Value("planet")
		assert.JSONEq(t, `{"name":"Sun","deg":12.5}`, string(v.(json.RawMessage)))

		out, err := r.Update(ctx, got[0].ID, []domain.Change{{Column: "planet", Value: json.RawMessage(`"Moon"`)}})
		require.NoError(t, err)
		v, _ = out.Value("planet")
		assert.JSONEq(t, `"Moon"`, string(v.(json.RawMessage)))

		require.NoError(t, r.Delete(ctx, got[0].ID))
		assert.True(t, perr.IsCode(r.Delete(ctx, got[0].ID), perr.ErrorCodeNotFound))
	})

	t.Run("combinations", func(t *testing.T) {
		r := repo.NewPG(domain.Combination).Bind(s.PG)
		rows, err := domain.Combination.ParseRows(json.RawMessage(`[{"id":11,"combo":["Sun","Moon"],"name":"x"}]`), now)
		require.NoError(t, err)
		got, err := r.Insert(ctx, rows)
		require.NoError(t, err)
		assert.Equal(t, int64(11), got[0].ID)
		v, _ := got[0].Value("combo")
		assert.Equal(t, []string{"Sun", "Moon"}, v)

		out, err := r.Update(ctx, 11, []domain.Change{{Column: "name", Value: "y"}})
		require.NoError(t, err)
		v, _ = out.Value("name")
		assert.Equal(t, "y", v)
	})

	t.Run("row lock inside tx", func(t *testing.T) {
		b := repo.NewPG(domain.House)
		rows, err := domain.House.ParseRows(json.RawMessage(`[{"bhavam":1}]`), now)
		require.NoError(t, err)
		got, err := b.Bind(s.PG).Insert(ctx, rows)
		require.NoError(t, err)

		err = s.PG.Tx(ctx, func(q store.RowQuerier) error {
			r := b.Bind(q)
			cur, err := r.GetForUpdate(ctx, got[0].ID)
			if err != nil {
				return err
			}
			list, _, err := entries.Add(cur.Entries, entries.Draft{Text: json.RawMessage(`"x"`), Categories: json.RawMessage(`2`)}, domain.House.Rules, now)
			if err != nil {
				return err
			}
			_, err = r.SetEntries(ctx, cur.ID, list)
			return err
		})
		require.NoError(t, err)

		after, err := b.Bind(s.PG).Get(ctx, got[0].ID)
		require.NoError(t, err)
		assert.Len(t, after.Entries, 1)
	})
}
