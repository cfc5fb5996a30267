// Package service builds read-only filter views over the taxonomy ports
package service

import (
	"context"
	"sync"

	perr "astroref/internal/platform/errors"
	ptime "astroref/internal/platform/time"
	"astroref/internal/services/api/filter/domain"
	taxdom "astroref/internal/services/api/taxonomy/domain"

	"golang.org/x/sync/errgroup"
)

// Service defines the filter service contract
type Service interface {
	AllData(ctx context.Context, f domain.Filter) (domain.AllDataResult, error)
	Select(ctx context.Context, ids map[string]int64, f domain.Filter) (domain.SelectResult, error)
	Bulk(ctx context.Context, ids map[string][]int64, f domain.Filter) (domain.BulkResult, error)
}

// Svc implements Service
type Svc struct {
	readers []taxdom.Reader
}

// New constructs the filter service over one reader per kind
func New(readers ...taxdom.Reader) *Svc {
	return &Svc{readers: readers}
}

func reduce(row taxdom.Row, f domain.Filter) domain.FilteredRow {
	fields := make(map[string]any, len(row.Fields))
	for _, fl := range row.Fields {
		fields[fl.Name] = fl.Value
	}
	kept := f.Apply(row.Entries)
	return domain.FilteredRow{
		ID:             row.ID,
		Fields:         fields,
		FilteredDic:    kept,
		TotalPoints:    len(row.Entries),
		FilteredPoints: len(kept),
	}
}

// AllData loads every kind concurrently
func (s *Svc) AllData(ctx context.Context, f domain.Filter) (domain.AllDataResult, error) {
	var (
		mu  sync.Mutex
		out = domain.AllDataResult{
			Success:       true,
			FilterApplied: f.String(),
			Data:          map[string][]domain.FilteredRow{},
			Summary:       map[string]int{},
		}
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range s.readers {
		r := r
		g.Go(func() error {
			rows, err := r.List(gctx)
			if err != nil {
				return err
			}
			reduced := make([]domain.FilteredRow, 0, len(rows))
			for _, row := range rows {
				reduced = append(reduced, reduce(row, f))
			}
			mu.Lock()
			out.Data[r.Kind().Name] = reduced
			out.Summary["total_"+r.Kind().Name] = len(reduced)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.AllDataResult{}, err
	}
	out.Timestamp = ptime.Now()
	return out, nil
}

// Select loads the requested row of each kind named in ids; a missing row is reported as nil
func (s *Svc) Select(ctx context.Context, ids map[string]int64, f domain.Filter) (domain.SelectResult, error) {
	out := domain.SelectResult{Success: true, FilterApplied: f.String(), Results: map[string]*domain.FilteredRow{}}
	for _, r := range s.readers {
		id, ok := ids[r.Kind().Name]
		if !ok {
			continue
		}
		row, err := r.Get(ctx, id)
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			out.Results[r.Kind().Name] = nil
			continue
		}
		if err != nil {
			return domain.SelectResult{}, err
		}
		fr := reduce(row, f)
		out.Results[r.Kind().Name] = &fr
	}
	out.Timestamp = ptime.Now()
	return out, nil
}

// Bulk loads many rows per kind; unknown ids are skipped
func (s *Svc) Bulk(ctx context.Context, ids map[string][]int64, f domain.Filter) (domain.BulkResult, error) {
	out := domain.BulkResult{Success: true, FilterApplied: f.String(), Results: map[string][]domain.FilteredRow{}}
	for _, r := range s.readers {
		want := ids[r.Kind().Name]
		if len(want) == 0 {
			continue
		}
		found := make([]domain.FilteredRow, 0, len(want))
		for _, id := range want {
			row, err := r.Get(ctx, id)
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				continue
			}
			if err != nil {
				return domain.BulkResult{}, err
			}
			found = append(found, reduce(row, f))
		}
		out.Results[r.Kind().Name] = found
	}
	out.Timestamp = ptime.Now()
	return out, nil
}
