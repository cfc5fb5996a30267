// Package entries implements the ordered, index-addressed list of tagged text entries
// that every taxonomy row carries. All functions are pure: they take the current list
// and return the new one; persistence belongs to the caller.
package entries

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
)

// TimeLayout is the timestamp format written for entries (millisecond ISO-8601, UTC)
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Entry is one element of a row's entries list
type Entry struct {
	Text       string
	Categories []int

	// Cat mirrors Categories for kinds that still expose the legacy field; nil otherwise
	Cat []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Indexed is an entry with its position in the owning list
type Indexed struct {
	Entry
	Index int
}

type wireEntry struct {
	Text       string `json:"text"`
	Categories []int  `json:"categories"`
	Cat        []int  `json:"cat,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
	Index      *int   `json:"index,omitempty"`
}

func (e Entry) wire() wireEntry {
	w := wireEntry{Text: e.Text, Categories: e.Categories, Cat: e.Cat}
	if w.Categories == nil {
		w.Categories = []int{}
	}
	if !e.CreatedAt.IsZero() {
		w.CreatedAt = e.CreatedAt.UTC().Format(TimeLayout)
	}
	if !e.UpdatedAt.IsZero() {
		w.UpdatedAt = e.UpdatedAt.UTC().Format(TimeLayout)
	}
	return w
}

// MarshalJSON writes the persisted and wire form
func (e Entry) MarshalJSON() ([]byte, error) { return json.Marshal(e.wire()) }

// MarshalJSON writes the entry fields plus index
func (x Indexed) MarshalJSON() ([]byte, error) {
	w := x.Entry.wire()
	w.Index = &x.Index
	return json.Marshal(w)
}

// UnmarshalJSON reads a stored entry leniently: rows written before the rename only carry cat,
// and category values may be numeric strings
func (e *Entry) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	*e = Entry{}
	if t := r.Get("text"); t.Type == gjson.String {
		e.Text = t.Str
	}
	cats := r.Get("categories")
	if !cats.Exists() || cats.Type == gjson.Null {
		cats = r.Get("cat")
	}
	e.Categories = coerceAll(cats)
	if c := r.Get("cat"); c.Exists() && c.IsArray() {
		e.Cat = coerceAll(c)
	}
	e.CreatedAt = parseStamp(r.Get("createdAt"))
	e.UpdatedAt = parseStamp(r.Get("updatedAt"))
	return nil
}

func parseStamp(r gjson.Result) time.Time {
	if r.Type != gjson.String {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, r.Str)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Decode reads a stored entries column; null or a non-array value is an empty list
func Decode(raw []byte) ([]Entry, error) {
	if len(raw) == 0 {
		return []Entry{}, nil
	}
	r := gjson.ParseBytes(raw)
	if !r.IsArray() {
		return []Entry{}, nil
	}
	var out []Entry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Entry{}
	}
	return out, nil
}

// Encode writes list for storage; nil is written as []
func Encode(list []Entry) ([]byte, error) {
	if list == nil {
		list = []Entry{}
	}
	return json.Marshal(list)
}

// Mirror sets or clears the legacy cat field on every entry of list (in place)
func Mirror(list []Entry, on bool) []Entry {
	for i := range list {
		if on {
			list[i].Cat = append([]int(nil), list[i].Categories...)
		} else {
			list[i].Cat = nil
		}
	}
	return list
}

// WithIndex pairs every entry of list with its position
func WithIndex(list []Entry) []Indexed {
	out := make([]Indexed, len(list))
	for i, e := range list {
		out[i] = Indexed{Entry: e, Index: i}
	}
	return out
}

func clone(list []Entry) []Entry {
	out := make([]Entry, len(list))
	for i, e := range list {
		e.Categories = append([]int(nil), e.Categories...)
		if e.Cat != nil {
			e.Cat = append([]int(nil), e.Cat...)
		}
		out[i] = e
	}
	return out
}
