// Package domain defines the cross-taxonomy filter views
package domain

import (
	"strconv"
	"strings"
	"time"

	"astroref/internal/core/entries"
	perr "astroref/internal/platform/errors"
)

// All is the filter value that keeps every entry
const All = "all"

// Filter selects entries by category; the zero value keeps everything
type Filter struct {
	raw      string
	category string
}

// ParseFilter accepts "all", empty, or a category number
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, All) {
		return Filter{raw: All}, nil
	}
	if _, ok := entries.CategoryFilter(s); !ok {
		return Filter{}, perr.WithField(perr.Validationf("filter must be %q or a category number", All), "filter")
	}
	return Filter{raw: s, category: s}, nil
}

// String is the filter as echoed back
func (f Filter) String() string {
	if f.raw == "" {
		return All
	}
	return f.raw
}

// Apply returns the entries kept by f with their positions
func (f Filter) Apply(list []entries.Entry) []entries.Indexed {
	return entries.Search(list, entries.Query{Category: f.category})
}

// FilteredRow is one taxonomy row reduced to its matching entries
type FilteredRow struct {
	ID             int64             `json:"id"`
	Fields         map[string]any    `json:"fields"`
	FilteredDic    []entries.Indexed `json:"filtered_dic"`
	TotalPoints    int               `json:"total_points"`
	FilteredPoints int               `json:"filtered_points"`
}

// AllDataResult is every row of every kind
type AllDataResult struct {
	Success       bool                     `json:"success"`
	FilterApplied string                   `json:"filter_applied"`
	Timestamp     time.Time                `json:"timestamp"`
	Data          map[string][]FilteredRow `json:"data"`
	Summary       map[string]int           `json:"summary"`
}

// SelectResult holds at most one row per kind; unknown ids are null
type SelectResult struct {
	Success       bool                    `json:"success"`
	FilterApplied string                  `json:"filter_applied"`
	Timestamp     time.Time               `json:"timestamp"`
	Results       map[string]*FilteredRow `json:"results"`
}

// BulkResult holds the found rows per kind
type BulkResult struct {
	Success       bool                     `json:"success"`
	FilterApplied string                   `json:"filter_applied"`
	Timestamp     time.Time                `json:"timestamp"`
	Results       map[string][]FilteredRow `json:"results"`
}

// BulkInput selects rows by id per kind
type BulkInput struct {
	RasiIDs         []int64 `json:"rasiIds"`
	BhavamIDs       []int64 `json:"bhavamIds"`
	NatchathiramIDs []int64 `json:"natchathiramIds"`
	PlanetIDs       []int64 `json:"planetIds"`
	CombinationIDs  []int64 `json:"combinationIds"`
	Filter          string  `json:"filter" example:"all"`
}

// ByKind returns the requested ids keyed by kind name
func (in BulkInput) ByKind() map[string][]int64 {
	return map[string][]int64{
		"rasi":         in.RasiIDs,
		"bhavam":       in.BhavamIDs,
		"natchathiram": in.NatchathiramIDs,
		"planet":       in.PlanetIDs,
		"combinations": in.CombinationIDs,
	}
}

// SelectParam is the query parameter that selects a row of kind
func SelectParam(kind string) string {
	if kind == "combinations" {
		return "combination_id"
	}
	return kind + "_id"
}

// ParseID reads a selection id; blank means not requested
func ParseID(s string) (int64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, perr.Validationf("%q is not a row id", s)
	}
	return id, true, nil
}
