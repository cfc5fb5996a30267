package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "astroref/internal/platform/errors"
	phttp "astroref/internal/platform/net/http"
	"astroref/internal/services/api/horoscope/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSvc struct {
	created domain.CreateUserInput
	rowsIn  []domain.HoroscopeRowInput
}

func (s *stubSvc) CreateUser(_ context.Context, in domain.CreateUserInput) (domain.User, error) {
	s.created = in
	return domain.User{ID: 1, Name: in.Name, Email: in.Email}, nil
}
func (s *stubSvc) Users(context.Context) ([]domain.User, error) { return []domain.User{{ID: 1}}, nil }
func (s *stubSvc) User(_ context.Context, id int64) (domain.User, error) {
	if id != 1 {
		return domain.User{}, perr.NotFoundf("User not found")
	}
	return domain.User{ID: 1}, nil
}
func (s *stubSvc) InsertRows(_ context.Context, in []domain.HoroscopeRowInput) ([]domain.HoroscopeRow, error) {
	s.rowsIn = in
	return []domain.HoroscopeRow{{ID: 1, UserID: in[0].UserID}}, nil
}
func (s *stubSvc) Rows(context.Context) ([]domain.HoroscopeRow, error) { return []domain.HoroscopeRow{}, nil }

func router(s *stubSvc) stdhttp.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/users", func(rr phttp.Router) { RegisterUsers(rr, s) })
	r.Route("/rasi-tables", func(rr phttp.Router) { RegisterRows(rr, s) })
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

func TestCreateUserRoute(t *testing.T) {
	s := &stubSvc{}
	code, body := call(t, router(s), stdhttp.MethodPost, "/users/create",
		`{"name":"Meena","email":"meena@example.com","phone":"+91 98765 43210","password":"secret1"}`)
	require.Equal(t, stdhttp.StatusCreated, code)
	assert.Equal(t, "User created successfully", body["message"])
	assert.NotContains(t, body["data"], "password")
	assert.Equal(t, "Meena", s.created.Name)
}

func TestCreateUserRejectsBadEmail(t *testing.T) {
	code, body := call(t, router(&stubSvc{}), stdhttp.MethodPost, "/users/create",
		`{"name":"Meena","email":"nope","phone":"9876543210","password":"secret1"}`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
	assert.Equal(t, "email", body["field"])
}

func TestGetUserRoutes(t *testing.T) {
	h := router(&stubSvc{})
	code, _ := call(t, h, stdhttp.MethodGet, "/users/1", "")
	assert.Equal(t, stdhttp.StatusOK, code)

	code, body := call(t, h, stdhttp.MethodGet, "/users/x", "")
	assert.Equal(t, stdhttp.StatusNotFound, code)
	assert.Equal(t, "User not found", body["error"])

	code, body = call(t, h, stdhttp.MethodGet, "/users", "")
	assert.Equal(t, stdhttp.StatusOK, code)
	assert.Len(t, body["data"], 1)
}

func TestRasiTableRoutes(t *testing.T) {
	s := &stubSvc{}
	h := router(s)

	code, body := call(t, h, stdhttp.MethodPost, "/rasi-tables", `[{"user_id":1,"rasi":"Mesham","lagna":"Rishabam",
		"nakshatra":"Ashwini","hd":"1","ld":"2","houses":"1,2","bhavam_no":1,"rasi_name":"Mesham",
		"planet":{"sun":1},"degree":"12","nakshatras":[],"combinations":[]}]`)
	require.Equal(t, stdhttp.StatusOK, code, body)
	assert.Equal(t, int64(1), s.rowsIn[0].UserID)

	code, body = call(t, h, stdhttp.MethodPost, "/rasi-tables", `[{"rasi":"Mesham"}]`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
	assert.Contains(t, body["field"], "[0]")
}
