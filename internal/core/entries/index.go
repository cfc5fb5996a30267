package entries

import (
	"strconv"
	"strings"

	perr "astroref/internal/platform/errors"
)

// ParseIndex validates raw as a position in a list of length n
func ParseIndex(raw string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalidIndex(raw, n)
	}
	if i < 0 || i >= n {
		return 0, invalidIndex(i, n)
	}
	return i, nil
}

// invalidIndex carries the list shape so clients can correct the request
func invalidIndex(received any, n int) error {
	return perr.WithDetails(perr.WithField(perr.Validationf("Invalid index"), "index"), map[string]any{
		"currentLength": n,
		"maxIndex":      n - 1,
		"receivedIndex": received,
	})
}
