// Package module wires social into the API using modkit
package module

import (
	"net/http"

	tw "github.com/santiagozevallosq/sentidata-v2/internal/adapters/twitter"
	modkit "github.com/santiagozevallosq/sentidata-v2/internal/modkit"
	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/httpkit"

	shttp "github.com/santiagozevallosq/sentidata-v2/internal/services/social/http"
	ssvc "github.com/santiagozevallosq/sentidata-v2/internal/services/social/service"
)

// Module implements the social API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc ssvc.Service
}

// New constructs the social module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("social"),
		modkit.WithPrefix("/social"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	// real mode is available only when a token is configured
	var twc ssvc.TwitterPort
	if cfg.BearerToken != "" {
		twc = tw.NewClient(tw.Options{
			BaseURL:     cfg.BaseURL,
			UserAgent:   cfg.UserAgent,
			Timeout:     cfg.Timeout,
			BearerToken: cfg.BearerToken,
			MaxRetries:  cfg.MaxRetries,
			RetryBase:   cfg.RetryBase,
		})
	}

	svc := ssvc.New(ssvc.Options{Twitter: twc})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSocialPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		shttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
