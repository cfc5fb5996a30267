package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"astroref/internal/platform/logger"
	kit "astroref/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

var logBuf bytes.Buffer

func init() {
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: &logBuf})
}

func TestAccessLogWritesRouteStatusAndRequestID(t *testing.T) {
	logBuf.Reset()
	m := chi.NewRouter()
	m.Use(RequestID(), AccessLog(AccessLogOptions{Slow: time.Hour}))
	m.Get("/rasi/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/rasi/3", nil)
	req.Header.Set("X-Request-ID", "rid-77")
	m.ServeHTTP(httptest.NewRecorder(), req)

	out := logBuf.String()
	kit.MustContain(t, out, `"status":202`)
	kit.MustContain(t, out, `"route":"/rasi/{id}"`)
	kit.MustContain(t, out, `"request_id":"rid-77"`)
	kit.MustContain(t, out, `"bytes":2`)
}

func TestAccessLogSlowAndErrorLevels(t *testing.T) {
	logBuf.Reset()
	h := AccessLog(AccessLogOptions{Slow: time.Nanosecond})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Millisecond)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))
	kit.MustContain(t, logBuf.String(), `"slow":true`)

	logBuf.Reset()
	h = AccessLog(AccessLogOptions{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
	kit.MustContain(t, logBuf.String(), `"level":"error"`)
}

func TestRecoverJSON(t *testing.T) {
	h := RequestID()(RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-p")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") != "rid-p" {
		t.Fatalf("request id not mirrored")
	}
	kit.MustContain(t, rec.Body.String(), `"error":"internal server error"`)
	kit.MustContain(t, rec.Body.String(), `"request_id":"rid-p"`)
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{"https://app.example"}})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodOptions, "/rasi", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestDefaultsStack(t *testing.T) {
	if n := len(Defaults()); n != 6 {
		t.Fatalf("Defaults len = %d", n)
	}
	m := chi.NewRouter()
	m.Use(Defaults()...)
	m.Get("/rasi", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rasi/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("trailing slash not stripped: %d", rec.Code)
	}
}
