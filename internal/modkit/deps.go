// Package modkit provides module wiring and core deps
package modkit

import (
	"astroref/internal/modkit/repokit"
	"astroref/internal/platform/config"
	"astroref/internal/platform/logger"
	"astroref/internal/platform/store"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner

	// CH is nil when clickhouse is disabled
	CH store.Clickhouse
}
