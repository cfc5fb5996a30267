package entries

import (
	"slices"
	"time"

	perr "astroref/internal/platform/errors"
)

// Rules are the per-kind input rules
type Rules struct {
	// ArrayOnly rejects a scalar categories value
	ArrayOnly bool

	// Mirror keeps the legacy cat field in step with categories
	Mirror bool
}

// Add validates d and appends it to list
func Add(list []Entry, d Draft, rules Rules, now time.Time) ([]Entry, Entry, error) {
	text, err := d.text("text required")
	if err != nil {
		return nil, Entry{}, err
	}
	if !d.HasCategories() {
		if rules.ArrayOnly {
			return nil, Entry{}, perr.WithField(perr.Validationf("categories must be a non-empty array"), "categories")
		}
		return nil, Entry{}, perr.WithField(perr.Validationf("categories must contain valid numbers"), "categories")
	}
	cats, err := Categories(d.categoriesRaw(), rules.ArrayOnly)
	if err != nil {
		return nil, Entry{}, err
	}

	e := Entry{Text: text, Categories: cats, CreatedAt: now, UpdatedAt: now}
	if rules.Mirror {
		e.Cat = slices.Clone(cats)
	}
	out := append(clone(list), e)
	return out, e, nil
}

// Update applies d to the entry at i. changed is false when the trimmed text and the
// category multiset already match; the list and the entry's updatedAt are then untouched.
func Update(list []Entry, i int, d Draft, rules Rules, now time.Time) (out []Entry, updated Entry, changed bool, err error) {
	if err := d.RequireAny(); err != nil {
		return nil, Entry{}, false, err
	}
	if i < 0 || i >= len(list) {
		return nil, Entry{}, false, invalidIndex(i, len(list))
	}

	cur := list[i]
	next := cur
	if d.HasText() {
		text, err := d.text("text must be a non-empty string")
		if err != nil {
			return nil, Entry{}, false, err
		}
		if text != cur.Text {
			next.Text = text
			changed = true
		}
	}
	if d.HasCategories() {
		cats, err := Categories(d.categoriesRaw(), rules.ArrayOnly)
		if err != nil {
			return nil, Entry{}, false, err
		}
		if !sameSet(cur.Categories, cats) {
			next.Categories = cats
			changed = true
		}
	}
	if !changed {
		return list, cur, false, nil
	}

	next.UpdatedAt = now
	if rules.Mirror {
		next.Cat = slices.Clone(next.Categories)
	}
	out = clone(list)
	out[i] = next
	return out, next, true, nil
}

// Delete removes the entry at i; later entries move down by one
func Delete(list []Entry, i int) ([]Entry, Entry, error) {
	if i < 0 || i >= len(list) {
		return nil, Entry{}, invalidIndex(i, len(list))
	}
	out := clone(list)
	removed := out[i]
	return slices.Delete(out, i, i+1), removed, nil
}

// sameSet compares as sorted sequences, so duplicates count
func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
