package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"astroref/internal/platform/store"
)

type recTx struct {
	execs []string
	store.RowQuerier
}

func (r *recTx) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	r.execs = append(r.execs, sql)
	return nil, nil
}

func (r *recTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error { return fn(r) }

type sqlRepo struct{ q Queryer }

func TestWithTxBindsRepo(t *testing.T) {
	tx := &recTx{}
	b := BindFunc[sqlRepo](func(q Queryer) sqlRepo { return sqlRepo{q: q} })

	var got Queryer
	err := WithTx(context.Background(), tx, b, func(r sqlRepo) error {
		got = r.q
		return nil
	})
	if err != nil || got != tx {
		t.Fatalf("err=%v bound=%v", err, got)
	}
}

func TestRequireQueryerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	RequireQueryer(nil)
}

func TestBeginHooksRunFirst(t *testing.T) {
	inner := &recTx{}
	tx := WithBeginHooks(inner, LockTimeout(1500*time.Millisecond))

	err := tx.Tx(context.Background(), func(q Queryer) error {
		_, err := q.Exec(context.Background(), "UPDATE rasi SET dic = $1")
		return err
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	if len(inner.execs) != 2 || inner.execs[0] != "SET LOCAL lock_timeout = '1500ms'" {
		t.Fatalf("execs = %v", inner.execs)
	}
}

func TestBeginHookErrorAborts(t *testing.T) {
	inner := &recTx{}
	boom := errors.New("boom")
	tx := WithBeginHooks(inner, func(context.Context, Queryer) error { return boom })

	ran := false
	err := tx.Tx(context.Background(), func(Queryer) error { ran = true; return nil })
	if !errors.Is(err, boom) || ran {
		t.Fatalf("err=%v ran=%v", err, ran)
	}
	if WithBeginHooks(inner) != TxRunner(inner) {
		t.Fatalf("no hooks should return inner")
	}
}

type guardFunc func(context.Context) error

func (g guardFunc) Guard(ctx context.Context) error { return g(ctx) }

func TestMustGuard(t *testing.T) {
	MustGuard(context.Background(), guardFunc(func(context.Context) error { return nil }))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustGuard(context.Background(), guardFunc(func(context.Context) error { return errors.New("pg down") }))
}

type pingTx struct {
	recTx
	err error
}

func (p *pingTx) Ping(context.Context) error { return p.err }

func TestHookedTxForwardsPing(t *testing.T) {
	down := errors.New("down")
	tx := WithBeginHooks(&pingTx{err: down}, LockTimeout(time.Second))
	p, ok := tx.(interface{ Ping(context.Context) error })
	if !ok {
		t.Fatalf("hooked runner must expose Ping")
	}
	if err := p.Ping(context.Background()); !errors.Is(err, down) {
		t.Fatalf("ping = %v", err)
	}

	noPing := WithBeginHooks(&recTx{}, LockTimeout(time.Second)).(interface{ Ping(context.Context) error })
	if err := noPing.Ping(context.Background()); err == nil {
		t.Fatalf("expected error for a runner without Ping")
	}
}
