package store

import (
	"time"

	"astroref/internal/platform/config"
)

// ConfigFromEnv reads SERVICE_PGSQL_* and SERVICE_CH_* under root
func ConfigFromEnv(root config.Conf, appName string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CH_")
	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:     true,
			URL:         pg.MustString("DBURL"),
			MaxConns:    int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pg.MayInt("SLOW_MS", 500),
			LogSQL:      pg.MayBool("LOG_SQL", false),
		},
		CH: CHConfig{
			Enabled:     ch.MayBool("ENABLED", false),
			Addr:        ch.MayCSV("ADDR", []string{"localhost:9000"}),
			Database:    ch.MayString("DATABASE", "astroref"),
			Username:    ch.MayString("USER", "default"),
			Password:    ch.MayString("PASSWORD", ""),
			DialTimeout: ch.MayDuration("DIAL_TIMEOUT", 5*time.Second),
		},
	}
}
