package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"astroref/internal/core/entries"
	perr "astroref/internal/platform/errors"

	"github.com/tidwall/gjson"
)

// ParseRows validates a bulk insert body: a non-empty array of row objects
func (k Kind) ParseRows(raw json.RawMessage, now time.Time) ([]NewRow, error) {
	r := gjson.ParseBytes(raw)
	if !r.IsArray() || len(r.Array()) == 0 {
		return nil, perr.Validationf("Invalid %s data: expected a non-empty array", k.Label)
	}
	elems := r.Array()
	out := make([]NewRow, 0, len(elems))
	for i, el := range elems {
		row, err := k.parseRow(el, now)
		if err != nil {
			return nil, prefixed(err, fmt.Sprintf("rows[%d]", i))
		}
		out = append(out, row)
	}
	return out, nil
}

func (k Kind) parseRow(obj gjson.Result, now time.Time) (NewRow, error) {
	if !obj.IsObject() {
		return NewRow{}, perr.Validationf("must be an object")
	}
	var row NewRow
	if k.ExternalID {
		id, err := parseID(obj.Get("id"))
		if err != nil {
			return NewRow{}, err
		}
		row.ID = id
	}
	for _, c := range k.Identity {
		v, err := parseValue(c, obj.Get(c.Name), true)
		if err != nil {
			return NewRow{}, err
		}
		row.Fields = append(row.Fields, Field{Name: c.Name, Value: v})
	}
	list, err := entries.Normalize(entriesRaw(obj), k.Rules, now)
	if err != nil {
		return NewRow{}, err
	}
	row.Entries = list
	return row, nil
}

// ParsePatch validates a partial row update body. Only columns present in the body are returned.
func (k Kind) ParsePatch(raw json.RawMessage, now time.Time) (Patch, error) {
	obj := gjson.ParseBytes(raw)
	if !obj.IsObject() {
		return Patch{}, perr.Validationf("body must be an object")
	}
	var p Patch
	for _, c := range k.Identity {
		r := obj.Get(c.Name)
		if !r.Exists() {
			continue
		}
		v, err := parseValue(c, r, false)
		if err != nil {
			return Patch{}, err
		}
		p.Fields = append(p.Fields, Field{Name: c.Name, Value: v})
	}
	if er := entriesRaw(obj); er != nil {
		list, err := entries.Normalize(er, k.Rules, now)
		if err != nil {
			return Patch{}, err
		}
		p.Entries, p.HasEntries = list, true
	}
	if len(p.Fields) == 0 && !p.HasEntries {
		return Patch{}, perr.Validationf("nothing to update")
	}
	return p, nil
}

// Changes diffs p against the stored row; values equal to the stored ones are dropped
func (p Patch) Changes(cur Row) []Change {
	var out []Change
	for _, f := range p.Fields {
		if old, ok := cur.Value(f.Name); ok && valueEqual(old, f.Value) {
			continue
		}
		out = append(out, Change{Column: f.Name, Value: f.Value})
	}
	if p.HasEntries && !sameEntries(cur.Entries, p.Entries) {
		out = append(out, Change{Column: EntriesColumn, Value: p.Entries})
	}
	return out
}

// Columns lists the columns of changes
func Columns(changes []Change) []string {
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = c.Column
	}
	return out
}

// entriesRaw reads entries or its legacy alias dic; nil when neither is present
func entriesRaw(obj gjson.Result) json.RawMessage {
	for _, key := range []string{"entries", EntriesColumn} {
		if r := obj.Get(key); r.Exists() && r.Type != gjson.Null {
			return json.RawMessage(r.Raw)
		}
	}
	return nil
}

func parseID(r gjson.Result) (int64, error) {
	n, ok := integer(r)
	if !ok || n <= 0 {
		return 0, perr.WithField(perr.Validationf("id is required and must be a positive integer"), "id")
	}
	return n, nil
}

func parseValue(c Column, r gjson.Result, insert bool) (any, error) {
	missing := !r.Exists() || r.Type == gjson.Null
	if missing && (c.Required || !insert) {
		return nil, perr.WithField(perr.Validationf("%s is required", c.Name), c.Name)
	}

	switch c.Type {
	case Int:
		n, ok := integer(r)
		if !ok {
			return nil, perr.WithField(perr.Validationf("%s must be an integer", c.Name), c.Name)
		}
		return n, nil

	case JSON:
		return json.RawMessage(r.Raw), nil

	case TextArray:
		if missing {
			return []string{}, nil
		}
		elems := []gjson.Result{r}
		if r.IsArray() {
			elems = r.Array()
		}
		out := make([]string, 0, len(elems))
		for _, el := range elems {
			if el.Type != gjson.String && el.Type != gjson.Number {
				return nil, perr.WithField(perr.Validationf("%s must be an array of strings", c.Name), c.Name)
			}
			if s := strings.TrimSpace(el.String()); s != "" {
				out = append(out, s)
			}
		}
		if c.Required && len(out) == 0 {
			return nil, perr.WithField(perr.Validationf("%s must be a non-empty array", c.Name), c.Name)
		}
		return out, nil

	default:
		if missing {
			return "", nil
		}
		if r.Type != gjson.String {
			return nil, perr.WithField(perr.Validationf("%s must be a string", c.Name), c.Name)
		}
		s := strings.TrimSpace(r.Str)
		if c.Required && s == "" {
			return nil, perr.WithField(perr.Validationf("%s is required", c.Name), c.Name)
		}
		return s, nil
	}
}

func integer(r gjson.Result) (int64, bool) {
	var f float64
	switch r.Type {
	case gjson.Number:
		f = r.Num
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0, false
		}
		f = v
	default:
		return 0, false
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int64(f), true
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case json.RawMessage:
		y, ok := b.(json.RawMessage)
		if !ok {
			return false
		}
		var va, vb any
		if json.Unmarshal(x, &va) != nil || json.Unmarshal(y, &vb) != nil {
			return false
		}
		return reflect.DeepEqual(va, vb)
	case []string:
		y, ok := b.([]string)
		return ok && slices.Equal(x, y)
	default:
		return a == b
	}
}

// sameEntries compares text and categories in order; timestamps are ignored
func sameEntries(a, b []entries.Entry) bool {
	return slices.EqualFunc(a, b, func(x, y entries.Entry) bool {
		return x.Text == y.Text && slices.Equal(x.Categories, y.Categories)
	})
}

func prefixed(err error, prefix string) error {
	e, ok := perr.As(err)
	if !ok {
		return err
	}
	field := prefix
	if e.Field() != "" {
		field = prefix + "." + e.Field()
	}
	return perr.WithField(perr.WithDetails(perr.Validationf("%s: %s", prefix, e.Message()), e.Details()), field)
}
