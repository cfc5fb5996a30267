package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "astroref/internal/platform/net/http"
	"astroref/internal/services/api/filter/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSvc struct {
	filter string
	ids    map[string]int64
	bulk   map[string][]int64
}

func (s *stubSvc) AllData(_ context.Context, f domain.Filter) (domain.AllDataResult, error) {
	s.filter = f.String()
	return domain.AllDataResult{Success: true, FilterApplied: f.String()}, nil
}

func (s *stubSvc) Select(_ context.Context, ids map[string]int64, f domain.Filter) (domain.SelectResult, error) {
	s.filter, s.ids = f.String(), ids
	return domain.SelectResult{Success: true, FilterApplied: f.String()}, nil
}

func (s *stubSvc) Bulk(_ context.Context, ids map[string][]int64, f domain.Filter) (domain.BulkResult, error) {
	s.filter, s.bulk = f.String(), ids
	return domain.BulkResult{Success: true, FilterApplied: f.String()}, nil
}

func router(s *stubSvc) stdhttp.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/filter", func(rr phttp.Router) { Register(rr, s) })
	return r.Mux()
}

func call(t *testing.T, h stdhttp.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestAllDataRoute(t *testing.T) {
	s := &stubSvc{}
	code, body := call(t, router(s), stdhttp.MethodGet, "/filter/all-data?filter=4", "")
	require.Equal(t, stdhttp.StatusOK, code)
	assert.Equal(t, "4", body["filter_applied"])
	assert.Equal(t, "4", s.filter)
}

func TestAllDataRejectsWordFilter(t *testing.T) {
	code, body := call(t, router(&stubSvc{}), stdhttp.MethodGet, "/filter/all-data?filter=love", "")
	assert.Equal(t, stdhttp.StatusBadRequest, code)
	assert.Equal(t, "filter", body["field"])
}

func TestSelectRouteReadsEveryParam(t *testing.T) {
	s := &stubSvc{}
	code, _ := call(t, router(s), stdhttp.MethodGet, "/filter/all?rasi_id=1&planet_id=3&combination_id=9", "")
	require.Equal(t, stdhttp.StatusOK, code)
	assert.Equal(t, map[string]int64{"rasi": 1, "planet": 3, "combinations": 9}, s.ids)
	assert.Equal(t, domain.All, s.filter)

	code, _ = call(t, router(s), stdhttp.MethodGet, "/filter/all?bhavam_id=x", "")
	assert.Equal(t, stdhttp.StatusBadRequest, code)
}

func TestBulkRoute(t *testing.T) {
	s := &stubSvc{}
	code, _ := call(t, router(s), stdhttp.MethodPost, "/filter/bulk", `{"rasiIds":[1,2],"combinationIds":[4],"filter":"2"}`)
	require.Equal(t, stdhttp.StatusOK, code)
	assert.Equal(t, []int64{1, 2}, s.bulk["rasi"])
	assert.Equal(t, []int64{4}, s.bulk["combinations"])
	assert.Equal(t, "2", s.filter)
}
