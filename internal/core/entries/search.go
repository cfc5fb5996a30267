package entries

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Query filters a search; empty fields do not filter
type Query struct {
	Text     string
	Category string
}

// Search returns the entries matching q with their literal positions in list.
// Text matches are case-insensitive substrings; both filters must hold.
// A category that does not parse as a number is ignored.
func Search(list []Entry, q Query) []Indexed {
	out := make([]Indexed, 0, len(list))
	fold := cases.Fold()
	needle := ""
	if q.Text != "" {
		needle = fold.String(q.Text)
	}
	cat, byCat := CategoryFilter(q.Category)

	for i, e := range list {
		if needle != "" && (e.Text == "" || !strings.Contains(fold.String(e.Text), needle)) {
			continue
		}
		if byCat && !slices.ContainsFunc(e.Categories, func(c int) bool { return float64(c) == cat }) {
			continue
		}
		out = append(out, Indexed{Entry: e, Index: i})
	}
	return out
}
