package ch

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeBatch struct {
	rows    [][]any
	sent    bool
	aborted bool
	failAt  int
}

func (b *fakeBatch) Append(v ...any) error {
	if b.failAt > 0 && len(b.rows)+1 == b.failAt {
		return errors.New("type mismatch")
	}
	b.rows = append(b.rows, v)
	return nil
}
func (b *fakeBatch) Send() error  { b.sent = true; return nil }
func (b *fakeBatch) Abort() error { b.aborted = true; return nil }

type fakeConn struct {
	prepared []string
	batch    *fakeBatch
	execs    []string
	pingErr  error
	closed   bool
}

func (f *fakeConn) Exec(_ context.Context, q string, _ ...any) error {
	f.execs = append(f.execs, q)
	return nil
}
func (f *fakeConn) Query(context.Context, string, ...any) (Rows, error) {
	return nil, errors.New("not used")
}
func (f *fakeConn) Prepare(_ context.Context, q string) (Batch, error) {
	f.prepared = append(f.prepared, q)
	return f.batch, nil
}
func (f *fakeConn) Ping(context.Context) error { return f.pingErr }
func (f *fakeConn) Close() error               { f.closed = true; return nil }

func TestInsertBuildsBatch(t *testing.T) {
	fc := &fakeConn{batch: &fakeBatch{}}
	c := newCH(fc)

	err := c.Insert(context.Background(), "entry_events", []string{"kind", "op"}, [][]any{
		{"rasi", "add"},
		{"bhavam", "delete"},
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if len(fc.prepared) != 1 || fc.prepared[0] != "INSERT INTO entry_events (kind, op)" {
		t.Fatalf("prepared = %v", fc.prepared)
	}
	if !fc.batch.sent || len(fc.batch.rows) != 2 {
		t.Fatalf("batch = %+v", fc.batch)
	}
}

func TestInsertAbortsOnBadRow(t *testing.T) {
	fc := &fakeConn{batch: &fakeBatch{failAt: 2}}
	err := newCH(fc).Insert(context.Background(), "t", nil, [][]any{{1}, {2}})
	if err == nil || !strings.Contains(err.Error(), "append row 1") {
		t.Fatalf("err = %v", err)
	}
	if !fc.batch.aborted || fc.batch.sent {
		t.Fatalf("batch must be aborted, not sent: %+v", fc.batch)
	}

	fc = &fakeConn{batch: &fakeBatch{}}
	err = newCH(fc).Insert(context.Background(), "t", []string{"a", "b"}, [][]any{{1}})
	if err == nil || !fc.batch.aborted {
		t.Fatalf("arity mismatch must abort: %v", err)
	}
}

func TestInsertEmptyIsNoop(t *testing.T) {
	fc := &fakeConn{}
	if err := newCH(fc).Insert(context.Background(), "t", nil, nil); err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(fc.prepared) != 0 {
		t.Fatalf("no batch expected")
	}
}

func TestOpenRequiresAddr(t *testing.T) {
	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error without addr")
	}
}

func TestBuildClientInfo(t *testing.T) {
	ci := BuildClientInfo("api")
	if len(ci.Products) != 4 || ci.Products[0].Name != "astroref" || ci.Products[0].Version != "api" {
		t.Fatalf("products = %+v", ci.Products)
	}
}
