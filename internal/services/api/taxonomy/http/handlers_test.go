package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"astroref/internal/core/entries"
	perr "astroref/internal/platform/errors"
	phttp "astroref/internal/platform/net/http"
	"astroref/internal/services/api/taxonomy/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSvc answers from fixed rows and records what the handlers passed in
type stubSvc struct {
	kind domain.Kind
	rows []domain.Row

	gotID    int64
	gotIndex string
	gotQuery entries.Query
	gotDraft entries.Draft
	gotRaw   json.RawMessage
}

func (s *stubSvc) Kind() domain.Kind { return s.kind }

func (s *stubSvc) List(context.Context) ([]domain.Row, error) { return s.rows, nil }

func (s *stubSvc) Get(_ context.Context, id int64) (domain.Row, error) {
	s.gotID = id
	for _, r := range s.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Row{}, perr.NotFoundf("%s not found", s.kind.Label)
}

func (s *stubSvc) BulkInsert(_ context.Context, raw json.RawMessage) ([]domain.Row, error) {
	s.gotRaw = raw
	return s.rows, nil
}

func (s *stubSvc) Patch(ctx context.Context, id int64, raw json.RawMessage) (domain.Row, error) {
	s.gotRaw = raw
	return s.Get(ctx, id)
}

func (s *stubSvc) Delete(_ context.Context, id int64) error {
	s.gotID = id
	return s.kind.CheckDelete()
}

func (s *stubSvc) AddEntry(_ context.Context, id int64, d entries.Draft) (domain.AddResult, error) {
	s.gotID, s.gotDraft = id, d
	return domain.AddResult{Success: true, Message: "Entry added successfully", ID: id,
		NewItem: entries.Indexed{Entry: entries.Entry{Text: "x", Categories: []int{1}}, Index: 0}, TotalItems: 1}, nil
}

func (s *stubSvc) UpdateEntry(_ context.Context, id int64, index string, d entries.Draft) (domain.UpdateResult, error) {
	s.gotID, s.gotIndex, s.gotDraft = id, index, d
	return domain.UpdateResult{Success: true, Message: "No changes detected", ID: id}, nil
}

func (s *stubSvc) DeleteEntry(_ context.Context, id int64, index string) (domain.DeleteEntryResult, error) {
	s.gotID, s.gotIndex = id, index
	return domain.DeleteEntryResult{}, perr.WithDetails(perr.WithField(perr.Validationf("Invalid index"), "index"),
		map[string]any{"currentLength": 0, "maxIndex": -1, "receivedIndex": 3})
}

func (s *stubSvc) Entry(_ context.Context, id int64, index string) (entries.Indexed, error) {
	s.gotID, s.gotIndex = id, index
	return entries.Indexed{Entry: entries.Entry{Text: "x", Categories: []int{1}}, Index: 0}, nil
}

func (s *stubSvc) Search(_ context.Context, id int64, q entries.Query) ([]entries.Indexed, error) {
	s.gotID, s.gotQuery = id, q
	return []entries.Indexed{}, nil
}

func (s *stubSvc) ReplaceEntries(ctx context.Context, id int64, raw json.RawMessage) (domain.Row, error) {
	s.gotRaw = raw
	return s.Get(ctx, id)
}

func mount(s *stubSvc) stdhttp.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route(s.kind.Route, func(rr phttp.Router) { Register(rr, s) })
	return r.Mux()
}

func do(t *testing.T, h stdhttp.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func aries() domain.Row {
	return domain.Row{ID: 1, Fields: []domain.Field{{Name: "rasi", Value: "Aries"}}}
}

func TestListShapes(t *testing.T) {
	bare := mount(&stubSvc{kind: domain.Sign, rows: []domain.Row{aries()}})
	rec, _ := do(t, bare, stdhttp.MethodGet, "/rasi", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Aries", rows[0]["rasi"])
	assert.Equal(t, float64(0), rows[0]["totalItems"])

	wrapped := mount(&stubSvc{kind: domain.House, rows: []domain.Row{{ID: 1, Fields: []domain.Field{{Name: "bhavam", Value: int64(1)}}}}})
	rec, body := do(t, wrapped, stdhttp.MethodGet, "/bhavam", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
}

func TestNonIntegerIDIsNotFound(t *testing.T) {
	rec, body := do(t, mount(&stubSvc{kind: domain.Sign}), stdhttp.MethodGet, "/rasi/abc", "")
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, "Rasi not found", body["error"])
}

func TestAddEntryAndDicAlias(t *testing.T) {
	s := &stubSvc{kind: domain.Sign, rows: []domain.Row{aries()}}
	h := mount(s)

	for _, p := range []string{"/rasi/1/entries", "/rasi/1/dic"} {
		rec, body := do(t, h, stdhttp.MethodPost, p, `{"text":"good omen","categories":[2,3]}`)
		require.Equal(t, stdhttp.StatusCreated, rec.Code, p)
		assert.Equal(t, float64(1), body["totalItems"])
		assert.Equal(t, int64(1), s.gotID)
		assert.JSONEq(t, `"good omen"`, string(s.gotDraft.Text))
	}
}

func TestUpdatePassesIndexThrough(t *testing.T) {
	s := &stubSvc{kind: domain.House}
	rec, body := do(t, mount(s), stdhttp.MethodPut, "/bhavam/7/entries/2", `{"cat":"3"}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "No changes detected", body["message"])
	assert.Equal(t, "2", s.gotIndex)
	assert.Equal(t, int64(7), s.gotID)
	assert.JSONEq(t, `"3"`, string(s.gotDraft.Cat))
}

func TestDeleteEntryErrorCarriesDetails(t *testing.T) {
	rec, body := do(t, mount(&stubSvc{kind: domain.House}), stdhttp.MethodDelete, "/bhavam/7/entries/3", "")
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid index", body["error"])
	assert.Equal(t, "index", body["field"])
	details := body["details"].(map[string]any)
	assert.Equal(t, float64(3), details["receivedIndex"])
}

func TestSearchQuery(t *testing.T) {
	s := &stubSvc{kind: domain.Mansion}
	rec, body := do(t, mount(s), stdhttp.MethodGet, "/natchathiram/4/entries/search?q=Omen&cat=2", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, entries.Query{Text: "Omen", Category: "2"}, s.gotQuery)
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["data"])
}

func TestSingleEntry(t *testing.T) {
	s := &stubSvc{kind: domain.Planet}
	rec, body := do(t, mount(s), stdhttp.MethodGet, "/planet/2/dic/0", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["index"])
	assert.Equal(t, "0", s.gotIndex)
}

func TestDeleteRowPolicy(t *testing.T) {
	rec, _ := do(t, mount(&stubSvc{kind: domain.Sign}), stdhttp.MethodDelete, "/rasi/1", "")
	assert.Equal(t, stdhttp.StatusForbidden, rec.Code)

	rec, body := do(t, mount(&stubSvc{kind: domain.Planet}), stdhttp.MethodDelete, "/planet/1", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "Planet deleted successfully", body["message"])
}

func TestBulkAndReplace(t *testing.T) {
	s := &stubSvc{kind: domain.Sign, rows: []domain.Row{aries()}}
	h := mount(s)

	rec, body := do(t, h, stdhttp.MethodPost, "/rasi/bulk", `[{"rasi":"Aries"}]`)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	assert.Equal(t, "Rasi bulk insert success", body["message"])
	assert.JSONEq(t, `[{"rasi":"Aries"}]`, string(s.gotRaw))

	rec, _ = do(t, h, stdhttp.MethodPut, "/rasi/1/entries", `{"dic":[{"text":"a","categories":[1]}]}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"text":"a","categories":[1]}]`, string(s.gotRaw))
}
