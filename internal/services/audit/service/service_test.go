package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"astroref/internal/services/audit/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

type fakeStorage struct {
	got     []domain.EntryEvent
	err     error
	ensured int
	ctxErr  error
}

func (f *fakeStorage) EnsureTable(context.Context) error { f.ensured++; return nil }

func (f *fakeStorage) Write(ctx context.Context, evs []domain.EntryEvent) error {
	f.ctxErr = ctx.Err()
	f.got = append(f.got, evs...)
	return f.err
}

func TestNopDropsEverything(t *testing.T) {
	s := Nop()
	assert.False(t, s.Enabled())
	s.Record(context.Background(), domain.EntryEvent{Kind: "rasi"})
	require.NoError(t, s.EnsureTable(context.Background()))
}

func TestRecordFillsIDAndTime(t *testing.T) {
	st := &fakeStorage{}
	s := New(st, zerolog.Nop())

	s.Record(context.Background(), domain.EntryEvent{Kind: "rasi", RowID: 7, Op: domain.OpAdd, Index: 0, Count: 1})

	require.Len(t, st.got, 1)
	ev := st.got[0]
	assert.NotEqual(t, uuid.Nil, ev.ID)
	assert.False(t, ev.At.IsZero())
	assert.Equal(t, int64(7), ev.RowID)
	assert.Equal(t, domain.OpAdd, ev.Op)
}

func TestRecordSurvivesCanceledRequest(t *testing.T) {
	st := &fakeStorage{}
	s := New(st, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Record(ctx, domain.EntryEvent{Kind: "planet", At: time.Unix(0, 0).UTC()})

	require.Len(t, st.got, 1)
	assert.NoError(t, st.ctxErr)
}

func TestRecordLogsWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	st := &fakeStorage{err: errors.New("ch down")}
	s := New(st, zerolog.New(&buf))

	s.Record(context.Background(), domain.EntryEvent{Kind: "bhavam", RowID: 3, Op: domain.OpDelete})

	assert.Contains(t, buf.String(), "audit event dropped")
	assert.Contains(t, buf.String(), "ch down")
}

func TestEnsureTableWhenEnabled(t *testing.T) {
	st := &fakeStorage{}
	require.NoError(t, New(st, zerolog.Nop()).EnsureTable(context.Background()))
	assert.Equal(t, 1, st.ensured)
}
