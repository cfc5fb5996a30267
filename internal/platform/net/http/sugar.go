package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetJSON mounts a JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// DeleteJSON mounts a JSON handler for DELETE (no body)
func DeleteJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, JSONHandlerNoBody(h))
}

// PostJSON mounts a JSON handler for POST replying 200
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(http.StatusOK, h))
}

// CreateJSON mounts a JSON handler for POST replying 201
func CreateJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(http.StatusCreated, h))
}

// PutJSON mounts a JSON handler for PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, JSONHandler(http.StatusOK, h))
}

// PatchJSON mounts a JSON handler for PATCH
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Patch(path, JSONHandler(http.StatusOK, h))
}

// Param returns a path parameter captured by the router
func Param(r *http.Request, name string) string { return chi.URLParam(r, name) }
