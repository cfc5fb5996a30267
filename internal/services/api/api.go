// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"astroref/internal/platform/config"
	"astroref/internal/platform/logger"
	"astroref/internal/platform/metrics"
	phttp "astroref/internal/platform/net/http"
	"astroref/internal/platform/net/middleware"
	"astroref/internal/platform/store"

	"astroref/internal/modkit"
	"astroref/internal/modkit/httpkit"
	"astroref/internal/modkit/module"
	"astroref/internal/modkit/repokit"
	"astroref/internal/modkit/swaggerkit"

	filtermod "astroref/internal/services/api/filter/module"
	horomod "astroref/internal/services/api/horoscope/module"
	hsvc "astroref/internal/services/api/horoscope/service"
	metamod "astroref/internal/services/api/meta/module"
	taxdom "astroref/internal/services/api/taxonomy/domain"
	taxmod "astroref/internal/services/api/taxonomy/module"
	auditdom "astroref/internal/services/audit/domain"
)

// BasePath is where every resource module is mounted
const BasePath = "/api/v1"

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Audit receives entry events; nil disables auditing
	Audit auditdom.SinkPort

	CORSOrigins    []string
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Index is the payload served at /
type Index struct {
	Message     string   `json:"message"`
	Version     string   `json:"version"`
	Docs        string   `json:"docs,omitempty"`
	APISections Sections `json:"api_sections"`
}

// Sections lists the resource roots by purpose
type Sections struct {
	DropdownTables []string `json:"dropdown_tables"`
	Filters        []string `json:"filters"`
	UserHoroscope  string   `json:"user_horoscope"`
	UserManagement string   `json:"user_management"`
	Meta           []string `json:"meta"`
}

// Modules builds every API module over deps; taxonomy readers are fed to the filter module
func Modules(deps modkit.Deps, audit auditdom.SinkPort) []module.Module {
	var (
		mods    []module.Module
		readers []taxdom.Reader
	)
	mods = append(mods, metamod.New(deps))
	for _, k := range taxdom.Kinds() {
		var opts []modkit.Option
		if audit != nil {
			opts = append(opts, modkit.WithPorts[auditdom.SinkPort](audit))
		}
		m := taxmod.Builder(k)(deps, opts...)
		if r, ok := module.PortsOf[taxdom.Reader](m); ok {
			readers = append(readers, r)
		}
		mods = append(mods, m)
	}

	users := horomod.Users(deps)
	shared := module.MustPortsOf[hsvc.Service](users)
	mods = append(mods,
		users,
		horomod.RasiTables(deps, modkit.WithPorts(shared)),
		filtermod.New(deps, modkit.WithPorts(readers)),
	)
	return mods
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		// entry writes hold a row lock for their read-modify-write; bound the wait
		deps.PG = repokit.WithBeginHooks(opt.Store.PG, repokit.LockTimeout(opt.Config.MayDuration("LOCK_TIMEOUT", 5*time.Second)))
		deps.CH = opt.Store.CH
	}

	r.Use(middleware.Defaults()...)

	mods := Modules(deps, opt.Audit)

	// Swagger + profiler + metrics live outside the versioned tree
	swaggerkit.Mount(r, BasePath, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}
	phttp.GetJSON(r, "/", func(*http.Request) (any, error) { return index(opt.EnableSwagger), nil })

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		SlowRequest: opt.Config.MayDuration("SLOW_REQUEST", 0),
		Metrics:     opt.EnableMetrics,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}

func index(swagger bool) Index {
	out := Index{
		Message: "Astrology reference API",
		Version: "v1",
		APISections: Sections{
			Filters:        []string{BasePath + "/filter/all-data", BasePath + "/filter/all", BasePath + "/filter/bulk"},
			UserHoroscope:  BasePath + "/rasi-tables",
			UserManagement: BasePath + "/users",
			Meta:           []string{BasePath + "/health", BasePath + "/ready", BasePath + "/version"},
		},
	}
	for _, k := range taxdom.Kinds() {
		out.APISections.DropdownTables = append(out.APISections.DropdownTables, BasePath+k.Route)
	}
	if swagger {
		out.Docs = "/api/docs/"
	}
	return out
}
