package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "astroref/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, d Deps, path string) (int, map[string]any) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestHealth(t *testing.T) {
	code, body := serve(t, Deps{ServiceName: "astroref-api", StartedAt: time.Now().Add(-time.Minute)}, "/health")
	require.Equal(t, stdhttp.StatusOK, code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "astroref-api", body["service"])
	assert.GreaterOrEqual(t, body["uptime"], float64(59))
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		deps   Deps
		code   int
		status string
	}{
		{"all up", Deps{PG: pinger{}, CH: pinger{}}, stdhttp.StatusOK, "ok"},
		{"clickhouse disabled", Deps{PG: pinger{}}, stdhttp.StatusOK, "ok"},
		{"clickhouse down", Deps{PG: pinger{}, CH: pinger{err: errors.New("refused")}}, stdhttp.StatusOK, "degraded"},
		{"postgres down", Deps{PG: pinger{err: errors.New("refused")}}, stdhttp.StatusServiceUnavailable, "fail"},
		{"postgres missing", Deps{}, stdhttp.StatusServiceUnavailable, "fail"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, body := serve(t, c.deps, "/ready")
			assert.Equal(t, c.code, code)
			assert.Equal(t, c.status, body["status"])
			assert.Len(t, body["checks"], 2)
		})
	}
}

func TestVersion(t *testing.T) {
	code, body := serve(t, Deps{ServiceName: "astroref-api"}, "/version")
	require.Equal(t, stdhttp.StatusOK, code)
	assert.Equal(t, "astroref-api", body["service"])
	assert.Equal(t, "dev", body["version"])
}
