package entries

import (
	"encoding/json"
	"testing"
	"time"

	perr "astroref/internal/platform/errors"

	"github.com/google/go-cmp/cmp"
)

var (
	t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func draft(t *testing.T, v map[string]any) Draft {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		t.Fatal(err)
	}
	return d
}

func wantValidation(t *testing.T, err error, msg string) {
	t.Helper()
	e, ok := perr.As(err)
	if !ok || e.Code() != perr.ErrorCodeValidation || e.Message() != msg {
		t.Fatalf("want validation %q, got %v", msg, err)
	}
}

func TestScenarioFromAries(t *testing.T) {
	var list []Entry

	list, added, err := Add(list, draft(t, map[string]any{"text": "  good omen ", "categories": []int{2, 3}}), Rules{}, t0)
	if err != nil {
		t.Fatal(err)
	}
	want := Entry{Text: "good omen", Categories: []int{2, 3}, CreatedAt: t0, UpdatedAt: t0}
	if diff := cmp.Diff(want, added); diff != "" {
		t.Fatalf("added (-want +got):\n%s", diff)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d", len(list))
	}

	same, cur, changed, err := Update(list, 0, draft(t, map[string]any{"categories": []int{3, 2}}), Rules{}, t1)
	if err != nil || changed {
		t.Fatalf("reordered categories must be no change: changed=%v err=%v", changed, err)
	}
	if !cur.UpdatedAt.Equal(t0) || cmp.Diff(list, same) != "" {
		t.Fatalf("no-change update touched state")
	}

	list, upd, changed, err := Update(list, 0, draft(t, map[string]any{"text": "bad omen"}), Rules{}, t1)
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if upd.Text != "bad omen" || !upd.UpdatedAt.Equal(t1) || !upd.CreatedAt.Equal(t0) {
		t.Fatalf("updated = %+v", upd)
	}
	if diff := cmp.Diff([]int{2, 3}, upd.Categories); diff != "" {
		t.Fatalf("categories changed: %s", diff)
	}

	list, removed, err := Delete(list, 0)
	if err != nil || removed.Text != "bad omen" || len(list) != 0 {
		t.Fatalf("delete: %+v %v %d", removed, err, len(list))
	}
}

func TestAddValidation(t *testing.T) {
	cases := []struct {
		name  string
		body  map[string]any
		rules Rules
		msg   string
	}{
		{"missing text", map[string]any{"categories": []int{1}}, Rules{}, "text required"},
		{"blank text", map[string]any{"text": "   ", "categories": []int{1}}, Rules{}, "text required"},
		{"numeric text", map[string]any{"text": 12, "categories": []int{1}}, Rules{}, "text required"},
		{"no numbers", map[string]any{"text": "x", "categories": []any{"a", nil, true}}, Rules{}, "categories must contain valid numbers"},
		{"missing categories", map[string]any{"text": "x"}, Rules{}, "categories must contain valid numbers"},
		{"scalar on array-only", map[string]any{"text": "x", "categories": 4}, Rules{ArrayOnly: true}, "categories must be a non-empty array"},
		{"empty on array-only", map[string]any{"text": "x", "categories": []int{}}, Rules{ArrayOnly: true}, "categories must be a non-empty array"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := Add(nil, draft(t, c.body), c.rules, t0)
			wantValidation(t, err, c.msg)
		})
	}
}

func TestCategoriesCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want []int
	}{
		{`5`, []int{5}},
		{`"7"`, []int{7}},
		{`[1, "2", " 3 ", "x", 4.5, null, 6.0, 1]`, []int{1, 2, 3, 6, 1}},
	}
	for _, c := range cases {
		got, err := Categories(json.RawMessage(c.raw), false)
		if err != nil {
			t.Fatalf("%s: %v", c.raw, err)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", c.raw, diff)
		}
	}
}

func TestLegacyCatAliasAndMirror(t *testing.T) {
	d := draft(t, map[string]any{"text": "x", "cat": []int{9}})
	_, e, err := Add(nil, d, Rules{ArrayOnly: true, Mirror: true}, t0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{9}, e.Cat); diff != "" {
		t.Fatalf("mirror: %s", diff)
	}

	both := draft(t, map[string]any{"text": "x", "cat": []int{1}, "categories": []int{2}})
	_, e, _ = Add(nil, both, Rules{}, t0)
	if diff := cmp.Diff([]int{2}, e.Categories); diff != "" || e.Cat != nil {
		t.Fatalf("categories must win and no mirror: %+v", e)
	}
}

func TestUpdateValidationOrder(t *testing.T) {
	list := []Entry{{Text: "a", Categories: []int{1}}}

	_, _, _, err := Update(list, 0, Draft{}, Rules{}, t1)
	wantValidation(t, err, "Either text or cat must be provided")

	_, _, _, err = Update(list, 0, draft(t, map[string]any{"text": ""}), Rules{}, t1)
	wantValidation(t, err, "text must be a non-empty string")

	_, _, _, err = Update(list, 0, draft(t, map[string]any{"categories": "zz"}), Rules{}, t1)
	wantValidation(t, err, "categories must contain valid numbers")

	_, _, changed, err := Update(list, 0, draft(t, map[string]any{"text": " a ", "categories": "1"}), Rules{}, t1)
	if err != nil || changed {
		t.Fatalf("trimmed equal text and equal scalar category must be no change: %v %v", changed, err)
	}
}

func TestIndexBoundaries(t *testing.T) {
	list := []Entry{{Text: "a", Categories: []int{1}}, {Text: "b", Categories: []int{2}}}

	for _, raw := range []string{"2", "-1", "x", "1.5", ""} {
		_, err := ParseIndex(raw, len(list))
		wantValidation(t, err, "Invalid index")
	}
	_, err := ParseIndex("2", len(list))
	e, _ := perr.As(err)
	want := map[string]any{"currentLength": 2, "maxIndex": 1, "receivedIndex": 2}
	if diff := cmp.Diff(want, e.Details()); diff != "" {
		t.Fatalf("details (-want +got):\n%s", diff)
	}

	if i, err := ParseIndex(" 1 ", len(list)); err != nil || i != 1 {
		t.Fatalf("last index must pass: %d %v", i, err)
	}

	_, _, err = Delete(list, 2)
	wantValidation(t, err, "Invalid index")
	_, _, _, err = Update(list, -1, draft(t, map[string]any{"text": "z"}), Rules{}, t1)
	wantValidation(t, err, "Invalid index")
}

func TestDeleteDrainsAtSameIndex(t *testing.T) {
	list := []Entry{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}
	orig := clone(list)
	n := len(list)
	for k := 0; k < n-1; k++ {
		var err error
		list, _, err = Delete(list, 1)
		if k < n-2 && err != nil {
			t.Fatalf("delete %d: %v", k, err)
		}
	}
	if len(list) != 1 || list[0].Text != "a" {
		t.Fatalf("left = %+v", list)
	}
	list, _, _ = Delete(list, 0)
	if len(list) != 0 {
		t.Fatalf("not drained")
	}
	if len(orig) != 4 {
		t.Fatalf("input mutated")
	}
}

func TestSearch(t *testing.T) {
	list := []Entry{
		{Text: "Good Omen", Categories: []int{1, 2}},
		{Text: "", Categories: []int{2}},
		{Text: "good omen", Categories: []int{1, 2}},
		{Text: "strength", Categories: []int{3}},
	}

	all := Search(list, Query{})
	if len(all) != 4 {
		t.Fatalf("no filter must return everything: %d", len(all))
	}
	for i, h := range all {
		if h.Index != i {
			t.Fatalf("index %d != %d", h.Index, i)
		}
	}

	got := Search(list, Query{Text: "OMEN", Category: "2"})
	idx := []int{}
	for _, h := range got {
		idx = append(idx, h.Index)
	}
	if diff := cmp.Diff([]int{0, 2}, idx); diff != "" {
		t.Fatalf("equal entries keep their own positions (-want +got):\n%s", diff)
	}

	if got := Search(list, Query{Category: "42"}); len(got) != 0 {
		t.Fatalf("absent category must be empty, got %d", len(got))
	}
	if got := Search(list, Query{Category: "abc"}); len(got) != 4 {
		t.Fatalf("bad category must be ignored, got %d", len(got))
	}
	if got := Search(nil, Query{Text: "x"}); got == nil || len(got) != 0 {
		t.Fatalf("empty list must give empty non-nil result")
	}
}

func TestNormalize(t *testing.T) {
	raw := json.RawMessage(`[{"text":" a ","cat":"4"},{"text":"b","categories":[1,"x"],"createdAt":"2024-01-02T03:04:05.000Z"}]`)
	got, err := Normalize(raw, Rules{Mirror: true}, t0)
	if err != nil {
		t.Fatal(err)
	}
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	want := []Entry{
		{Text: "a", Categories: []int{4}, Cat: []int{4}, CreatedAt: t0, UpdatedAt: t0},
		{Text: "b", Categories: []int{1}, Cat: []int{1}, CreatedAt: created, UpdatedAt: created},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	_, err = Normalize(json.RawMessage(`{"text":"a"}`), Rules{}, t0)
	wantValidation(t, err, "entries must be an array")
	_, err = Normalize(json.RawMessage(`[{"text":"a","cat":[]}]`), Rules{}, t0)
	wantValidation(t, err, "entries[0]: categories must contain valid numbers")
	_, err = Normalize(json.RawMessage(`[{"cat":[1]}]`), Rules{}, t0)
	wantValidation(t, err, "entries[0]: text required")
}

func TestJSONRoundTripAndLegacyRead(t *testing.T) {
	in := []Entry{{Text: "a", Categories: []int{1}, Cat: []int{1}, CreatedAt: t0, UpdatedAt: t1}}
	b, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	const want = `[{"text":"a","categories":[1],"cat":[1],"createdAt":"2025-03-01T10:00:00.000Z","updatedAt":"2025-03-01T11:00:00.000Z"}]`
	if string(b) != want {
		t.Fatalf("encoded = %s", b)
	}

	legacy, err := Decode([]byte(`[{"text":"old","cat":["3",4]}]`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Entry{{Text: "old", Categories: []int{3, 4}, Cat: []int{3, 4}}}, legacy); diff != "" {
		t.Fatalf("legacy (-want +got):\n%s", diff)
	}

	for _, raw := range []string{"", "null", `{"a":1}`} {
		got, err := Decode([]byte(raw))
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("%q: %v %v", raw, got, err)
		}
	}

	hit, _ := json.Marshal(Indexed{Entry: Entry{Text: "x", Categories: []int{2}}, Index: 0})
	if string(hit) != `{"text":"x","categories":[2],"index":0}` {
		t.Fatalf("indexed = %s", hit)
	}
}
