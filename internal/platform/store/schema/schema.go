// Package schema holds the embedded postgres DDL
package schema

import (
	"context"
	_ "embed"
	"strings"

	perr "astroref/internal/platform/errors"
	"astroref/internal/platform/store"
)

//go:embed schema.sql
var ddl string

// DDL returns the embedded schema
func DDL() string { return ddl }

// Statements splits the DDL into single statements, dropping comments
func Statements() []string {
	var (
		out []string
		sb  strings.Builder
	)
	for _, line := range strings.Split(ddl, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "--") {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		if strings.HasSuffix(t, ";") {
			out = append(out, strings.TrimSpace(sb.String()))
			sb.Reset()
		}
	}
	return out
}

// Apply runs every statement in one transaction
func Apply(ctx context.Context, db store.TxRunner) error {
	return db.Tx(ctx, func(q store.RowQuerier) error {
		for _, stmt := range Statements() {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return perr.FromPostgresf(err, "apply schema: %s", firstLine(stmt))
			}
		}
		return nil
	})
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(strings.TrimSpace(line), " (")
}
