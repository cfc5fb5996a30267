package http

import (
	"net/http"

	"astroref/internal/platform/net/http/bind"
)

// JSONHandler binds the body into T, calls fn and replies with status (200 when zero)
func JSONHandler[T any](status int, fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return Response{Status: status, Body: out}
	})
}

// JSONHandlerNoBody calls fn without reading a body and replies 200
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
