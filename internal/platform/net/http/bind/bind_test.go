package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "astroref/internal/platform/errors"
)

type payload struct {
	Name  string `json:"name" validate:"nonblank"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSONSuccess(t *testing.T) {
	got, err := ParseJSON[payload](post(`{"name":"Aries","phone":"+91 98400-12345"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Aries" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONFailures(t *testing.T) {
	cases := []struct {
		name string
		req  *http.Request
		code perr.ErrorCode
		msg  string
	}{
		{"empty body", post(""), perr.ErrorCodeJSON, "empty body"},
		{"broken json", post(`{`), perr.ErrorCodeJSON, "invalid JSON"},
		{"unknown field", post(`{"name":"a","zz":1}`), perr.ErrorCodeJSON, "unknown field"},
		{"trailing", post(`{"name":"a"} {}`), perr.ErrorCodeJSON, "trailing"},
		{"blank name", post(`{"name":"   "}`), perr.ErrorCodeValidation, "name must be a non-empty string"},
		{"bad phone", post(`{"name":"a","phone":"call me"}`), perr.ErrorCodeValidation, "phone must be a phone number"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseJSON[payload](c.req)
			if perr.CodeOf(err) != c.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), c.code, err)
			}
			if !strings.Contains(err.Error(), c.msg) {
				t.Fatalf("message %q missing %q", err.Error(), c.msg)
			}
		})
	}
}

func TestParseJSONEmptyBodyOnDelete(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/", http.NoBody)
	if _, err := ParseJSON[payload](req); err != nil {
		t.Fatalf("DELETE with empty body must pass: %v", err)
	}
}

func TestParseJSONMaxBytes(t *testing.T) {
	_, err := ParseJSON[payload](post(`{"name":"a very long name"}`), JSONOptions{MaxBytes: 8})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestParseJSONSliceValidatesElements(t *testing.T) {
	_, err := ParseJSON[[]payload](post(`[{"name":"ok"},{"name":""}]`))
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "[1].name" {
		t.Fatalf("field = %q", e.Field())
	}

	got, err := ParseJSON[[]payload](post(`[{"name":"a"},{"name":"b"}]`))
	if err != nil || len(got) != 2 {
		t.Fatalf("slice parse = %v, %v", got, err)
	}
}

func TestValidateNonStruct(t *testing.T) {
	if err := Validate(42); err != nil {
		t.Fatalf("scalars are not validated: %v", err)
	}
	var p *payload
	if err := Validate(p); err != nil {
		t.Fatalf("nil pointer must pass: %v", err)
	}
}
