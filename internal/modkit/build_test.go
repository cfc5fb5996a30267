package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"astroref/internal/modkit/httpkit"
	phttp "astroref/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuildDefaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	var r httpkit.Router
	if b.Subrouter(r) != r {
		t.Fatalf("default subrouter must be identity")
	}
	b.Register(r)
}

func TestBuildLaterOptionsWin(t *testing.T) {
	type ports struct{ N int }
	b := Build(WithName("a"), WithName("rasi"), WithPrefix("/rasi"), WithPorts(ports{N: 3}))
	if b.Name != "rasi" || b.Prefix != "/rasi" {
		t.Fatalf("got %q %q", b.Name, b.Prefix)
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 3 {
		t.Fatalf("ports = %#v", b.Ports)
	}
}

func TestBuiltMount(t *testing.T) {
	var order []string
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "mw")
			next.ServeHTTP(w, r)
		})
	}
	b := Build(
		WithPrefix("/bhavam"),
		WithMiddlewares(mw),
		WithRegister(func(r phttp.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
		}),
	)

	m := chi.NewRouter()
	b.Mount(phttp.AdaptChi(m), func(r httpkit.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			order = append(order, "handler")
			w.WriteHeader(http.StatusOK)
		})
	})

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bhavam/", nil))
	if rec.Code != http.StatusOK || len(order) != 2 || order[0] != "mw" {
		t.Fatalf("code=%d order=%v", rec.Code, order)
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bhavam/extra", nil))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("external register not mounted: %d", rec.Code)
	}
}
