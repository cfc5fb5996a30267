package entries

import (
	"encoding/json"
	"strings"

	perr "astroref/internal/platform/errors"

	"github.com/tidwall/gjson"
)

// Draft is an entry as received in a request body, before validation.
// Cat is the legacy spelling of Categories; Categories wins when both are sent.
type Draft struct {
	Text       json.RawMessage `json:"text,omitempty" swaggertype:"string" example:"good omen"`
	Categories json.RawMessage `json:"categories,omitempty" swaggertype:"array,integer" example:"2,3"`
	Cat        json.RawMessage `json:"cat,omitempty" swaggertype:"array,integer"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && gjson.ParseBytes(raw).Type != gjson.Null
}

// HasText reports whether text was sent
func (d Draft) HasText() bool { return present(d.Text) }

// HasCategories reports whether categories (or cat) was sent
func (d Draft) HasCategories() bool { return present(d.Categories) || present(d.Cat) }

// RequireAny fails when neither text nor categories was sent
func (d Draft) RequireAny() error {
	if !d.HasText() && !d.HasCategories() {
		return perr.Validationf("Either text or cat must be provided")
	}
	return nil
}

func (d Draft) categoriesRaw() json.RawMessage {
	if present(d.Categories) {
		return d.Categories
	}
	return d.Cat
}

// text returns the trimmed text or a validation error carrying msg
func (d Draft) text(msg string) (string, error) {
	r := gjson.ParseBytes(d.Text)
	if r.Type != gjson.String {
		return "", perr.WithField(perr.Validationf("%s", msg), "text")
	}
	t := strings.TrimSpace(r.Str)
	if t == "" {
		return "", perr.WithField(perr.Validationf("%s", msg), "text")
	}
	return t, nil
}
