package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "astroref/internal/platform/net/http"
	kit "astroref/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestDocJSONAddsDefaults(t *testing.T) {
	kit.Swap(t, &docReader, func() string {
		return `{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{"/rasi":{"get":{"responses":{"200":{"description":"ok"}}}}}}`
	})

	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), "/api/v1", true)

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatal(err)
	}
	if spec["openapi"] != "3.0.3" || spec["swagger"] != nil {
		t.Fatalf("version not lifted: %v", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	resps := spec["paths"].(map[string]any)["/rasi"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("missing %s response", code)
		}
	}
}

func TestDocJSONBadSpec(t *testing.T) {
	kit.Swap(t, &docReader, func() string { return "{" })
	rec := httptest.NewRecorder()
	serveDocJSON("/api/v1")(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestEmbeddedDocParses(t *testing.T) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		t.Fatalf("embedded doc is not valid JSON: %v", err)
	}
	if _, ok := spec["paths"].(map[string]any)["/rasi/{id}/entries"]; !ok {
		t.Fatalf("entries path missing from doc")
	}
}

func TestMountDisabled(t *testing.T) {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), "/api/v1", false)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
