package entries

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	perr "astroref/internal/platform/errors"

	"github.com/tidwall/gjson"
)

// Normalize validates a whole entries list from a bulk insert or replace body.
// Shape is coerced (scalar categories wrapped, non-numeric elements dropped, text trimmed);
// an entry left without text or categories fails the whole list. Missing timestamps become now.
func Normalize(raw json.RawMessage, rules Rules, now time.Time) ([]Entry, error) {
	if !present(raw) {
		return []Entry{}, nil
	}
	r := gjson.ParseBytes(raw)
	if !r.IsArray() {
		return nil, perr.WithField(perr.Validationf("entries must be an array"), "entries")
	}

	elems := r.Array()
	out := make([]Entry, 0, len(elems))
	for i, el := range elems {
		field := fmt.Sprintf("entries[%d]", i)
		if !el.IsObject() {
			return nil, perr.WithField(perr.Validationf("%s must be an object", field), field)
		}

		t := el.Get("text")
		if t.Type != gjson.String || strings.TrimSpace(t.Str) == "" {
			return nil, perr.WithField(perr.Validationf("%s: text required", field), field+".text")
		}
		cats := el.Get("categories")
		if !cats.Exists() || cats.Type == gjson.Null {
			cats = el.Get("cat")
		}
		nums := coerceAll(cats)
		if len(nums) == 0 {
			return nil, perr.WithField(perr.Validationf("%s: categories must contain valid numbers", field), field+".categories")
		}

		e := Entry{
			Text:       strings.TrimSpace(t.Str),
			Categories: nums,
			CreatedAt:  parseStamp(el.Get("createdAt")),
			UpdatedAt:  parseStamp(el.Get("updatedAt")),
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		if e.UpdatedAt.IsZero() {
			e.UpdatedAt = e.CreatedAt
		}
		out = append(out, e)
	}
	return Mirror(out, rules.Mirror), nil
}
