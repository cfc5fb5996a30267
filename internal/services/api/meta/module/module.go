// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "astroref/internal/modkit"
	"astroref/internal/modkit/httpkit"
	str "astroref/internal/platform/strings"
	ptime "astroref/internal/platform/time"

	metahttp "astroref/internal/services/api/meta/http"
)

// ServiceName is reported by /health and /version
const ServiceName = "astroref-api"

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module. It mounts at the API root unless a prefix option says otherwise.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta")}, opts...)...)
	return &Module{deps: deps, built: b, startedAt: ptime.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   m.startedAt,
		PG:          m.deps.PG,
		CH:          m.deps.CH,
	}
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, d) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix is empty for the root mount
func (m *Module) Prefix() string { return m.built.Prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
