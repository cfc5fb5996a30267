package schema

import (
	"context"
	"errors"
	"strings"
	"testing"

	perr "astroref/internal/platform/errors"
	"astroref/internal/platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementsCoverEveryTable(t *testing.T) {
	stmts := Statements()
	joined := strings.Join(stmts, "\n")
	for _, table := range []string{"rasi", "bhavam", "natchathiram", "planet", "planet_combinations", "users", "rasi_table"} {
		assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	for _, s := range stmts {
		assert.True(t, strings.HasSuffix(s, ";"), s)
		assert.NotContains(t, s, "--")
	}
}

type recTx struct {
	execs []string
	fail  string
}

type tag struct{}

func (tag) String() string      { return "" }
func (tag) RowsAffected() int64 { return 0 }

func (r *recTx) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	if r.fail != "" && strings.Contains(sql, r.fail) {
		return nil, errors.New("boom")
	}
	r.execs = append(r.execs, sql)
	return tag{}, nil
}
func (r *recTx) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (r *recTx) QueryRow(context.Context, string, ...any) store.Row        { return nil }
func (r *recTx) Tx(_ context.Context, fn func(store.RowQuerier) error) error {
	return fn(r)
}

func TestApply(t *testing.T) {
	tx := &recTx{}
	require.NoError(t, Apply(context.Background(), tx))
	assert.Len(t, tx.execs, len(Statements()))

	tx = &recTx{fail: "rasi_table"}
	err := Apply(context.Background(), tx)
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB))
	assert.Contains(t, err.Error(), "CREATE TABLE IF NOT EXISTS rasi_table")
}
