// Package http provides http transport for taxonomy kinds
package http

import (
	"encoding/json"
	"fmt"
	stdhttp "net/http"
	"strconv"

	"astroref/internal/core/entries"
	"astroref/internal/modkit/httpkit"
	perr "astroref/internal/platform/errors"
	phttp "astroref/internal/platform/net/http"
	"astroref/internal/services/api/taxonomy/domain"
	svc "astroref/internal/services/api/taxonomy/service"
)

// Register mounts the routes of one kind on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s, kind: s.Kind()}

	phttp.GetJSON(r, "/", h.list)
	phttp.CreateJSON[json.RawMessage](r, "/bulk", h.bulk)
	phttp.GetJSON(r, "/{id}", h.get)
	phttp.PatchJSON[json.RawMessage](r, "/{id}", h.patch)
	phttp.DeleteJSON(r, "/{id}", h.deleteRow)

	// dic is the legacy name of the entries routes
	for _, p := range []string{"/entries", "/dic"} {
		phttp.PutJSON[domain.ReplaceInput](r, "/{id}"+p, h.replace)
		phttp.CreateJSON[entries.Draft](r, "/{id}"+p, h.add)
		phttp.GetJSON(r, "/{id}"+p+"/search", h.search)
		phttp.GetJSON(r, "/{id}"+p+"/{index}", h.entry)
		phttp.PutJSON[entries.Draft](r, "/{id}"+p+"/{index}", h.update)
		phttp.DeleteJSON(r, "/{id}"+p+"/{index}", h.deleteEntry)
	}
}

type handlers struct {
	svc  svc.Service
	kind domain.Kind
}

// rowID reads the id path parameter; anything that is not an integer cannot name a row
func (h *handlers) rowID(r *stdhttp.Request) (int64, error) {
	raw := phttp.Param(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, perr.WithDetails(perr.NotFoundf("%s not found", h.kind.Label), map[string]any{"id": raw})
	}
	return id, nil
}

// swagger:route GET /{resource} Taxonomy listRows
// @Summary List rows
// @Description Sign rows are returned as a bare array, other kinds as {success,count,data}
// @Tags Taxonomy
// @Produce json
// @Success 200 {object} domain.ListResult "ok"
// @Router /rasi [get]
// @Router /bhavam [get]
// @Router /natchathiram [get]
// @Router /planet [get]
// @Router /combinations [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		return nil, err
	}
	if h.kind.List == domain.ListBare {
		return rows, nil
	}
	return domain.ListResult{Success: true, Count: len(rows), Data: rows}, nil
}

// swagger:route GET /{resource}/{id} Taxonomy getRow
// @Summary Get one row with indexed entries
// @Tags Taxonomy
// @Produce json
// @Param id path int true "Row id"
// @Success 200 {object} domain.RowResult "ok"
// @Failure 404 {object} phttp.Envelope
// @Router /rasi/{id} [get]
// @Router /bhavam/{id} [get]
// @Router /natchathiram/{id} [get]
// @Router /planet/{id} [get]
// @Router /combinations/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	row, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if h.kind.List == domain.ListBare {
		return row, nil
	}
	return domain.RowResult{Success: true, Data: row}, nil
}

// swagger:route POST /{resource}/bulk Taxonomy bulkInsert
// @Summary Insert rows in one transaction
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param payload body []object true "Rows"
// @Success 201 {object} domain.BulkResult "created"
// @Failure 400 {object} phttp.Envelope
// @Router /rasi/bulk [post]
// @Router /bhavam/bulk [post]
// @Router /natchathiram/bulk [post]
// @Router /planet/bulk [post]
// @Router /combinations/bulk [post]
func (h *handlers) bulk(r *stdhttp.Request, in json.RawMessage) (any, error) {
	rows, err := h.svc.BulkInsert(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return domain.BulkResult{Message: fmt.Sprintf("%s bulk insert success", h.kind.Label), Data: rows}, nil
}

// swagger:route PATCH /{resource}/{id} Taxonomy patchRow
// @Summary Update identity columns and/or entries
// @Description Sign, bhavam, natchathiram and combination rows only accept entries (and combination name) changes
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param id path int true "Row id"
// @Param payload body object true "Columns to change"
// @Success 200 {object} domain.RowResult "ok"
// @Failure 403 {object} phttp.Envelope
// @Router /rasi/{id} [patch]
// @Router /bhavam/{id} [patch]
// @Router /natchathiram/{id} [patch]
// @Router /planet/{id} [patch]
// @Router /combinations/{id} [patch]
func (h *handlers) patch(r *stdhttp.Request, in json.RawMessage) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	row, err := h.svc.Patch(r.Context(), id, in)
	if err != nil {
		return nil, err
	}
	return domain.RowResult{Success: true, Message: fmt.Sprintf("%s updated successfully", h.kind.Label), Data: row}, nil
}

// swagger:route DELETE /{resource}/{id} Taxonomy deleteRow
// @Summary Delete a row
// @Tags Taxonomy
// @Produce json
// @Param id path int true "Row id"
// @Success 200 {object} domain.DeleteRowResult "ok"
// @Failure 403 {object} phttp.Envelope
// @Router /rasi/{id} [delete]
// @Router /bhavam/{id} [delete]
// @Router /natchathiram/{id} [delete]
// @Router /planet/{id} [delete]
// @Router /combinations/{id} [delete]
func (h *handlers) deleteRow(r *stdhttp.Request) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return domain.DeleteRowResult{Success: true, Message: fmt.Sprintf("%s deleted successfully", h.kind.Label), ID: id}, nil
}

// swagger:route PUT /{resource}/{id}/entries Taxonomy replaceEntries
// @Summary Replace the whole entries list
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path int true "Row id"
// @Param payload body domain.ReplaceInput true "Entries"
// @Success 200 {object} domain.RowResult "ok"
// @Failure 400 {object} phttp.Envelope
// @Router /rasi/{id}/entries [put]
// @Router /bhavam/{id}/entries [put]
// @Router /natchathiram/{id}/entries [put]
// @Router /planet/{id}/entries [put]
// @Router /combinations/{id}/entries [put]
func (h *handlers) replace(r *stdhttp.Request, in domain.ReplaceInput) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	row, err := h.svc.ReplaceEntries(r.Context(), id, in.List())
	if err != nil {
		return nil, err
	}
	return domain.RowResult{Success: true, Message: "Entries replaced successfully", Data: row}, nil
}

// swagger:route POST /{resource}/{id}/entries Taxonomy addEntry
// @Summary Append an entry
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path int true "Row id"
// @Param payload body entries.Draft true "Entry"
// @Success 201 {object} domain.AddResult "created"
// @Failure 400 {object} phttp.Envelope
// @Failure 404 {object} phttp.Envelope
// @Router /rasi/{id}/entries [post]
// @Router /bhavam/{id}/entries [post]
// @Router /natchathiram/{id}/entries [post]
// @Router /planet/{id}/entries [post]
// @Router /combinations/{id}/entries [post]
func (h *handlers) add(r *stdhttp.Request, in entries.Draft) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.AddEntry(r.Context(), id, in)
}

// swagger:route GET /{resource}/{id}/entries/search Taxonomy searchEntries
// @Summary Search entries by text and category
// @Tags Entries
// @Produce json
// @Param id path int true "Row id"
// @Param q query string false "Case-insensitive substring of text"
// @Param cat query number false "Category code"
// @Success 200 {object} domain.SearchResult "ok"
// @Failure 404 {object} phttp.Envelope
// @Router /rasi/{id}/entries/search [get]
// @Router /bhavam/{id}/entries/search [get]
// @Router /natchathiram/{id}/entries/search [get]
// @Router /planet/{id}/entries/search [get]
// @Router /combinations/{id}/entries/search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	hits, err := h.svc.Search(r.Context(), id, entries.Query{Text: q.Get("q"), Category: q.Get("cat")})
	if err != nil {
		return nil, err
	}
	return domain.SearchResult{Success: true, Count: len(hits), Data: hits}, nil
}

// swagger:route GET /{resource}/{id}/entries/{index} Taxonomy getEntry
// @Summary Get one entry with its index
// @Tags Entries
// @Produce json
// @Param id path int true "Row id"
// @Param index path int true "Entry index"
// @Success 200 {object} entries.Indexed "ok"
// @Failure 404 {object} phttp.Envelope
// @Router /rasi/{id}/entries/{index} [get]
// @Router /bhavam/{id}/entries/{index} [get]
// @Router /natchathiram/{id}/entries/{index} [get]
// @Router /planet/{id}/entries/{index} [get]
// @Router /combinations/{id}/entries/{index} [get]
func (h *handlers) entry(r *stdhttp.Request) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Entry(r.Context(), id, phttp.Param(r, "index"))
}

// swagger:route PUT /{resource}/{id}/entries/{index} Taxonomy updateEntry
// @Summary Update text and/or categories of an entry
// @Description Identical values are reported as "No changes detected" and persist nothing
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path int true "Row id"
// @Param index path int true "Entry index"
// @Param payload body entries.Draft true "Changes"
// @Success 200 {object} domain.UpdateResult "ok"
// @Failure 400 {object} phttp.Envelope
// @Failure 404 {object} phttp.Envelope
// @Router /rasi/{id}/entries/{index} [put]
// @Router /bhavam/{id}/entries/{index} [put]
// @Router /natchathiram/{id}/entries/{index} [put]
// @Router /planet/{id}/entries/{index} [put]
// @Router /combinations/{id}/entries/{index} [put]
func (h *handlers) update(r *stdhttp.Request, in entries.Draft) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.UpdateEntry(r.Context(), id, phttp.Param(r, "index"), in)
}

// swagger:route DELETE /{resource}/{id}/entries/{index} Taxonomy deleteEntry
// @Summary Delete an entry; later entries shift down by one
// @Tags Entries
// @Produce json
// @Param id path int true "Row id"
// @Param index path int true "Entry index"
// @Success 200 {object} domain.DeleteEntryResult "ok"
// @Failure 400 {object} phttp.Envelope
// @Failure 404 {object} phttp.Envelope
// @Router /rasi/{id}/entries/{index} [delete]
// @Router /bhavam/{id}/entries/{index} [delete]
// @Router /natchathiram/{id}/entries/{index} [delete]
// @Router /planet/{id}/entries/{index} [delete]
// @Router /combinations/{id}/entries/{index} [delete]
func (h *handlers) deleteEntry(r *stdhttp.Request) (any, error) {
	id, err := h.rowID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.DeleteEntry(r.Context(), id, phttp.Param(r, "index"))
}
