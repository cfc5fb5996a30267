// Package http provides http transport for users and horoscope rows
package http

import (
	stdhttp "net/http"
	"strconv"

	"astroref/internal/modkit/httpkit"
	perr "astroref/internal/platform/errors"
	phttp "astroref/internal/platform/net/http"
	"astroref/internal/services/api/horoscope/domain"
	svc "astroref/internal/services/api/horoscope/service"
)

// RegisterUsers mounts the user endpoints
func RegisterUsers(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	phttp.CreateJSON[domain.CreateUserInput](r, "/create", h.createUser)
	phttp.GetJSON(r, "/", h.users)
	phttp.GetJSON(r, "/{id}", h.user)
}

// RegisterRows mounts the horoscope row endpoints
func RegisterRows(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	phttp.PostJSON[[]domain.HoroscopeRowInput](r, "/", h.insertRows)
	phttp.GetJSON(r, "/", h.rows)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /users/create Users createUser
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.CreateUserInput true "User"
// @Success 201 {object} domain.UserResult "created"
// @Failure 400 {object} phttp.Envelope
// @Failure 409 {object} phttp.Envelope
// @Router /users/create [post]
func (h *handlers) createUser(r *stdhttp.Request, in domain.CreateUserInput) (any, error) {
	u, err := h.svc.CreateUser(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return domain.UserResult{Message: "User created successfully", Data: u}, nil
}

// swagger:route GET /users Users listUsers
// @Summary List users with their horoscope rows
// @Tags Users
// @Produce json
// @Success 200 {object} domain.UsersResult "ok"
// @Router /users [get]
func (h *handlers) users(r *stdhttp.Request) (any, error) {
	us, err := h.svc.Users(r.Context())
	if err != nil {
		return nil, err
	}
	return domain.UsersResult{Message: "Users fetched successfully", Data: us}, nil
}

// swagger:route GET /users/{id} Users getUser
// @Summary Get a user with their horoscope rows
// @Tags Users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} domain.UserResult "ok"
// @Failure 404 {object} phttp.Envelope
// @Router /users/{id} [get]
func (h *handlers) user(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(phttp.Param(r, "id"), 10, 64)
	if err != nil {
		return nil, perr.NotFoundf("User not found")
	}
	u, err := h.svc.User(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return domain.UserResult{Message: "User fetched", Data: u}, nil
}

// swagger:route POST /rasi-tables RasiTables insertRows
// @Summary Store the horoscope rows of users that have none yet
// @Tags RasiTables
// @Accept json
// @Produce json
// @Param payload body []domain.HoroscopeRowInput true "Rows"
// @Success 200 {object} domain.RowsResult "ok"
// @Failure 400 {object} phttp.Envelope
// @Router /rasi-tables [post]
func (h *handlers) insertRows(r *stdhttp.Request, in []domain.HoroscopeRowInput) (any, error) {
	rows, err := h.svc.InsertRows(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return domain.RowsResult{Message: "Rasi data inserted successfully", Data: rows}, nil
}

// swagger:route GET /rasi-tables RasiTables listRows
// @Summary List horoscope rows with their users
// @Tags RasiTables
// @Produce json
// @Success 200 {object} domain.RowsResult "ok"
// @Router /rasi-tables [get]
func (h *handlers) rows(r *stdhttp.Request) (any, error) {
	rows, err := h.svc.Rows(r.Context())
	if err != nil {
		return nil, err
	}
	return domain.RowsResult{Message: "Rasi table data fetched successfully", Data: rows}, nil
}
