package store

import (
	"testing"
	"time"

	"astroref/internal/platform/config"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://u:p@db:5432/astro")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "9")
	t.Setenv("SERVICE_CH_ENABLED", "true")
	t.Setenv("SERVICE_CH_ADDR", "ch1:9000, ch2:9000")

	cfg := ConfigFromEnv(config.New(), "astroref-test")
	if cfg.AppName != "astroref-test" || !cfg.PG.Enabled || cfg.PG.MaxConns != 9 {
		t.Fatalf("pg config = %+v", cfg.PG)
	}
	if cfg.PG.URL != "postgres://u:p@db:5432/astro" || cfg.PG.SlowQueryMs != 500 {
		t.Fatalf("pg config = %+v", cfg.PG)
	}
	if !cfg.CH.Enabled || len(cfg.CH.Addr) != 2 || cfg.CH.Addr[1] != "ch2:9000" {
		t.Fatalf("ch config = %+v", cfg.CH)
	}
	if cfg.CH.Database != "astroref" || cfg.CH.DialTimeout != 5*time.Second {
		t.Fatalf("ch defaults = %+v", cfg.CH)
	}
}

func TestConfigFromEnvClickhouseOffByDefault(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://localhost/astro")
	t.Setenv("SERVICE_CH_ENABLED", "")
	if ConfigFromEnv(config.New(), "x").CH.Enabled {
		t.Fatalf("clickhouse must default to disabled")
	}
}
