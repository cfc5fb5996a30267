// Package module wires one taxonomy kind into the API using modkit
package module

import (
	"net/http"

	modkit "astroref/internal/modkit"
	"astroref/internal/modkit/httpkit"
	str "astroref/internal/platform/strings"
	auditdom "astroref/internal/services/audit/domain"
	"astroref/internal/services/api/taxonomy/domain"
	taxhttp "astroref/internal/services/api/taxonomy/http"
	taxrepo "astroref/internal/services/api/taxonomy/repo"
	taxsvc "astroref/internal/services/api/taxonomy/service"
)

// Module implements the taxonomy module for one kind
type Module struct {
	deps   modkit.Deps
	kind   domain.Kind
	built  modkit.Built
	ports  any
	svc    *taxsvc.Svc
	mounts func(httpkit.Router)
}

// Builder returns the modkit constructor for kind.
// An audit sink passed with modkit.WithPorts receives entry events.
func Builder(kind domain.Kind) modkit.Builder {
	return func(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
		return New(kind, deps, opts...)
	}
}

// New constructs the module for kind
func New(kind domain.Kind, deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName(kind.Name), modkit.WithPrefix(kind.Route)}, opts...)...)

	sink, _ := b.Ports.(auditdom.SinkPort)
	svc := taxsvc.New(kind, deps.PG, taxrepo.NewPG(kind), sink)

	m := &Module{deps: deps, kind: kind, built: b, svc: svc}
	m.ports = Ports{Reader: svc, Service: svc}
	m.mounts = func(r httpkit.Router) { taxhttp.Register(r, m.svc) }
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r, m.mounts) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Kind returns the kind this module serves
func (m *Module) Kind() domain.Kind { return m.kind }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }
