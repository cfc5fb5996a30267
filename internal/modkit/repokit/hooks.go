package repokit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// BeginHook runs first inside every transaction, on the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps inner so hooks run before fn in the same transaction
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	if len(hooks) == 0 {
		return inner
	}
	return hookedTx{TxRunner: inner, hooks: hooks}
}

type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// Ping forwards to the wrapped runner so readiness checks still reach the pool
func (h hookedTx) Ping(ctx context.Context) error {
	p, ok := h.TxRunner.(interface{ Ping(context.Context) error })
	if !ok {
		return errors.New("repokit: wrapped runner cannot ping")
	}
	return p.Ping(ctx)
}

// LockTimeout bounds how long a transaction waits on row locks; 0 disables the hook
func LockTimeout(d time.Duration) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		if d <= 0 {
			return nil
		}
		_, err := q.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", d.Milliseconds()))
		return err
	}
}
