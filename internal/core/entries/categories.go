package entries

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	perr "astroref/internal/platform/errors"

	"github.com/tidwall/gjson"
)

// Categories normalizes a categories input: a scalar becomes a one element list (unless
// arrayOnly), every element is coerced to an integer and elements that do not coerce are dropped.
func Categories(raw json.RawMessage, arrayOnly bool) ([]int, error) {
	r := gjson.ParseBytes(raw)
	if arrayOnly && (!r.IsArray() || len(r.Array()) == 0) {
		return nil, perr.WithField(perr.Validationf("categories must be a non-empty array"), "categories")
	}
	out := coerceAll(r)
	if len(out) == 0 {
		return nil, perr.WithField(perr.Validationf("categories must contain valid numbers"), "categories")
	}
	return out, nil
}

// coerceAll never fails; an absent value yields an empty list
func coerceAll(r gjson.Result) []int {
	if !r.Exists() || r.Type == gjson.Null {
		return []int{}
	}
	elems := []gjson.Result{r}
	if r.IsArray() {
		elems = r.Array()
	}
	out := make([]int, 0, len(elems))
	for _, el := range elems {
		if n, ok := coerce(el); ok {
			out = append(out, n)
		}
	}
	return out
}

// coerce accepts integral numbers and strings holding one
func coerce(r gjson.Result) (int, bool) {
	switch r.Type {
	case gjson.Number:
		return integral(r.Num)
	case gjson.String:
		s := strings.TrimSpace(r.Str)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return integral(f)
	default:
		return 0, false
	}
}

func integral(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// CategoryFilter parses a search filter; ok is false when s does not coerce
func CategoryFilter(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
