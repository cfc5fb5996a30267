// Package service provides the entry audit sink
package service

import (
	"context"
	"time"

	"astroref/internal/platform/logger"
	"astroref/internal/services/audit/domain"
	"astroref/internal/services/audit/repo"

	"github.com/google/uuid"
)

// Sink writes events through Storage; a nil Storage makes it a no-op
type Sink struct {
	Storage repo.Storage
	Timeout time.Duration
	log     logger.Logger
}

// New constructs a sink; pass nil storage when clickhouse is disabled
func New(storage repo.Storage, log logger.Logger) *Sink {
	return &Sink{Storage: storage, Timeout: 2 * time.Second, log: log.With().Str("component", "audit").Logger()}
}

// Nop is a sink that drops every event
func Nop() *Sink { return &Sink{} }

// Enabled reports whether events are persisted
func (s *Sink) Enabled() bool { return s != nil && s.Storage != nil }

// EnsureTable creates the event table when the sink is enabled
func (s *Sink) EnsureTable(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.Storage.EnsureTable(ctx)
}

// Record implements domain.SinkPort. Write failures are logged.
func (s *Sink) Record(ctx context.Context, ev domain.EntryEvent) {
	if !s.Enabled() {
		return
	}
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	// the request may already be finishing; keep its values but not its cancellation
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.Timeout)
	defer cancel()
	if err := s.Storage.Write(wctx, []domain.EntryEvent{ev}); err != nil {
		s.log.Warn().Err(err).
			Str("kind", ev.Kind).
			Int64("row_id", ev.RowID).
			Str("op", string(ev.Op)).
			Msg("audit event dropped")
	}
}
