// Package module wires users and horoscope rows into the API using modkit
package module

import (
	modkit "astroref/internal/modkit"
	"astroref/internal/modkit/httpkit"
	str "astroref/internal/platform/strings"
	hhttp "astroref/internal/services/api/horoscope/http"
	hrepo "astroref/internal/services/api/horoscope/repo"
	hsvc "astroref/internal/services/api/horoscope/service"
)

// Module mounts one of the two horoscope route trees over a shared service
type Module struct {
	built    modkit.Built
	svc      hsvc.Service
	register func(httpkit.Router, hsvc.Service)
}

// Users constructs the /users module
func Users(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return build(deps, "users", "/users", hhttp.RegisterUsers, opts)
}

// RasiTables constructs the /rasi-tables module
func RasiTables(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return build(deps, "rasi-tables", "/rasi-tables", hhttp.RegisterRows, opts)
}

func build(deps modkit.Deps, name, prefix string, reg func(httpkit.Router, hsvc.Service), opts []modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName(name), modkit.WithPrefix(prefix)}, opts...)...)
	svc, ok := b.Ports.(hsvc.Service)
	if !ok {
		svc = hsvc.New(deps.PG, hrepo.NewPG())
	}
	return &Module{built: b, svc: svc, register: reg}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { m.register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns the shared service so a sibling module can reuse it
func (m *Module) Ports() any { return m.svc }
