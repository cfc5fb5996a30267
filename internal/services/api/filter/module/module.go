// Package module wires the filter views into the API using modkit
package module

import (
	modkit "astroref/internal/modkit"
	"astroref/internal/modkit/httpkit"
	str "astroref/internal/platform/strings"
	fhttp "astroref/internal/services/api/filter/http"
	fsvc "astroref/internal/services/api/filter/service"
	taxdom "astroref/internal/services/api/taxonomy/domain"
)

// Module implements the filter module
type Module struct {
	built modkit.Built
	svc   fsvc.Service
}

// New constructs the filter module. The taxonomy readers arrive through
// modkit.WithPorts as a []taxdom.Reader.
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("filter"), modkit.WithPrefix("/filter")}, opts...)...)
	readers, _ := b.Ports.([]taxdom.Reader)
	return &Module{built: b, svc: fsvc.New(readers...)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { fhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns the filter service
func (m *Module) Ports() any { return m.svc }
