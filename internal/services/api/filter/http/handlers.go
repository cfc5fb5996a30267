// Package http provides http transport for the filter views
package http

import (
	stdhttp "net/http"

	"astroref/internal/modkit/httpkit"
	phttp "astroref/internal/platform/net/http"
	"astroref/internal/services/api/filter/domain"
	svc "astroref/internal/services/api/filter/service"
	taxdom "astroref/internal/services/api/taxonomy/domain"
)

// Register mounts the filter endpoints
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	phttp.GetJSON(r, "/all-data", h.allData)
	phttp.GetJSON(r, "/all", h.selectRows)
	phttp.PostJSON[domain.BulkInput](r, "/bulk", h.bulk)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /filter/all-data Filter allData
// @Summary Every row of every kind with entries filtered by category
// @Tags Filter
// @Produce json
// @Param filter query string false "all or a category number"
// @Success 200 {object} domain.AllDataResult "ok"
// @Failure 400 {object} phttp.Envelope
// @Router /filter/all-data [get]
func (h *handlers) allData(r *stdhttp.Request) (any, error) {
	f, err := domain.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		return nil, err
	}
	return h.svc.AllData(r.Context(), f)
}

// swagger:route GET /filter/all Filter selectRows
// @Summary One selected row per kind with entries filtered by category
// @Tags Filter
// @Produce json
// @Param rasi_id query int false "Rasi row id"
// @Param bhavam_id query int false "Bhavam row id"
// @Param natchathiram_id query int false "Natchathiram row id"
// @Param planet_id query int false "Planet row id"
// @Param combination_id query int false "Planet combination row id"
// @Param filter query string false "all or a category number"
// @Success 200 {object} domain.SelectResult "ok"
// @Failure 400 {object} phttp.Envelope
// @Router /filter/all [get]
func (h *handlers) selectRows(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	f, err := domain.ParseFilter(q.Get("filter"))
	if err != nil {
		return nil, err
	}
	ids := map[string]int64{}
	for _, k := range taxdom.Kinds() {
		param := domain.SelectParam(k.Name)
		id, ok, err := domain.ParseID(q.Get(param))
		if err != nil {
			return nil, err
		}
		if ok {
			ids[k.Name] = id
		}
	}
	return h.svc.Select(r.Context(), ids, f)
}

// swagger:route POST /filter/bulk Filter bulkFilter
// @Summary Many rows per kind with entries filtered by category
// @Tags Filter
// @Accept json
// @Produce json
// @Param payload body domain.BulkInput true "Selection"
// @Success 200 {object} domain.BulkResult "ok"
// @Failure 400 {object} phttp.Envelope
// @Router /filter/bulk [post]
func (h *handlers) bulk(r *stdhttp.Request, in domain.BulkInput) (any, error) {
	f, err := domain.ParseFilter(in.Filter)
	if err != nil {
		return nil, err
	}
	return h.svc.Bulk(r.Context(), in.ByKind(), f)
}
