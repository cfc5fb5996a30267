package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "astroref/internal/platform/errors"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentHandlerUsesRoutePattern(t *testing.T) {
	m := chi.NewRouter()
	m.Use(InstrumentHandler)
	m.Get("/rasi/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/rasi/{id}", "404"))
	m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rasi/42", nil))
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/rasi/{id}", "404"))
	if after-before != 1 {
		t.Fatalf("counter delta = %v", after-before)
	}
}

func TestRecordEntryOpOutcomes(t *testing.T) {
	cases := map[string]error{
		"ok":        nil,
		"not_found": perr.NotFoundf("rasi 1 not found"),
		"invalid":   perr.Validationf("Invalid index"),
		"forbidden": perr.Forbiddenf("no"),
		"error":     errors.New("boom"),
	}
	for want, err := range cases {
		c := entryOps.WithLabelValues("bhavam", "add", want)
		before := testutil.ToFloat64(c)
		RecordEntryOp("bhavam", "add", err)
		if got := testutil.ToFloat64(c) - before; got != 1 {
			t.Fatalf("outcome %s delta = %v", want, got)
		}
	}
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordEntryOp("rasi", "delete", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "astroref_entry_ops_total") {
		t.Fatalf("metrics output missing entry counter")
	}
}
