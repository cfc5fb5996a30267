// @title         Astroref API
// @version       0.1.0
// @description   Astrology reference taxonomies, their dictionary entries and per-user horoscope tables
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"astroref/internal/modkit/repokit"
	"astroref/internal/platform/config"
	"astroref/internal/platform/logger"
	phttp "astroref/internal/platform/net/http"
	"astroref/internal/platform/store"
	"astroref/internal/platform/store/schema"

	"astroref/internal/services/api"
	auditrepo "astroref/internal/services/audit/repo"
	auditsvc "astroref/internal/services/audit/service"
)

func main() {
	// .env first so LOG_* and CORE_API_* see it; the real environment wins
	loaded, envErr := config.LoadDotenv()

	l := logger.Get()
	if envErr != nil {
		l.Warn().Err(envErr).Msg("dotenv load failed")
	} else if len(loaded) > 0 {
		l.Debug().Strs("files", loaded).Msg("dotenv loaded")
	}

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.ConfigFromEnv(root, "astroref-api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st)

	audit := auditsvc.Nop()
	if st.CH != nil {
		audit = auditsvc.New(auditrepo.NewCH(st.CH), *l)
	}

	if apiCfg.MayBool("AUTO_SCHEMA", false) {
		if err := schema.Apply(ctx, st.PG); err != nil {
			l.Panic().Err(err).Msg("schema apply failed")
		}
		if err := audit.EnsureTable(ctx); err != nil {
			l.Panic().Err(err).Msg("audit table setup failed")
		}
		l.Info().Msg("schema applied")
	}

	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Audit:          audit,
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
