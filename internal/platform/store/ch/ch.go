// Package ch is a clickhouse-go v2 client for append-only event tables
package ch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the native-protocol connection
type Config struct {
	Addr        []string
	Database    string
	Username    string
	Password    string
	DialTimeout time.Duration
	ClientInfo  clickhouse.ClientInfo
}

// Rows is a clickhouse result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Batch is a prepared INSERT being filled
type Batch interface {
	Append(v ...any) error
	Send() error
	Abort() error
}

// conn is the part of driver.Conn the client uses
type conn interface {
	Exec(ctx context.Context, query string, args ...any) error
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Prepare(ctx context.Context, query string) (Batch, error)
	Ping(ctx context.Context) error
	Close() error
}

// CH is a clickhouse client
type CH struct{ c conn }

var dial = func(opts *clickhouse.Options) (driver.Conn, error) { return clickhouse.Open(opts) }

// Open dials clickhouse and pings it once
func Open(ctx context.Context, cfg Config) (*CH, error) {
	if len(cfg.Addr) == 0 {
		return nil, errors.New("ch: no address configured")
	}
	dt := cfg.DialTimeout
	if dt <= 0 {
		dt = 5 * time.Second
	}
	dc, err := dial(&clickhouse.Options{
		Addr: cfg.Addr,
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		DialTimeout: dt,
		ClientInfo:  cfg.ClientInfo,
	})
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	c := newCH(driverConn{c: dc})
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ch: ping: %w", err)
	}
	return c, nil
}

func newCH(c conn) *CH { return &CH{c: c} }

// Exec runs a statement without results (DDL, ALTER)
func (c *CH) Exec(ctx context.Context, sql string, args ...any) error {
	return c.c.Exec(ctx, sql, args...)
}

// Query runs a SELECT
func (c *CH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return c.c.Query(ctx, sql, args...)
}

// Insert appends rows to table through one native batch; any failure aborts the batch
func (c *CH) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	q := "INSERT INTO " + table
	if len(columns) > 0 {
		q += " (" + strings.Join(columns, ", ") + ")"
	}
	b, err := c.c.Prepare(ctx, q)
	if err != nil {
		return fmt.Errorf("ch: prepare %s: %w", table, err)
	}
	for i, r := range rows {
		if len(columns) > 0 && len(r) != len(columns) {
			_ = b.Abort()
			return fmt.Errorf("ch: row %d has %d values, want %d", i, len(r), len(columns))
		}
		if err := b.Append(r...); err != nil {
			_ = b.Abort()
			return fmt.Errorf("ch: append row %d: %w", i, err)
		}
	}
	if err := b.Send(); err != nil {
		return fmt.Errorf("ch: send %s: %w", table, err)
	}
	return nil
}

// Ping checks connectivity
func (c *CH) Ping(ctx context.Context) error { return c.c.Ping(ctx) }

// Close closes the connection
func (c *CH) Close() error { return c.c.Close() }

// driverConn adapts driver.Conn to conn
type driverConn struct{ c driver.Conn }

func (d driverConn) Exec(ctx context.Context, q string, args ...any) error {
	return d.c.Exec(ctx, q, args...)
}

func (d driverConn) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	return d.c.Query(ctx, q, args...)
}

func (d driverConn) Prepare(ctx context.Context, q string) (Batch, error) {
	return d.c.PrepareBatch(ctx, q)
}

func (d driverConn) Ping(ctx context.Context) error { return d.c.Ping(ctx) }

func (d driverConn) Close() error { return d.c.Close() }
