// Package module wires analysis into the API using modkit
package module

import (
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	modkit "github.com/santiagozevallosq/sentidata-v2/internal/modkit"
	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/httpkit"

	ahttp "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/http"
	asvc "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/service"
)

// Module implements the analysis API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc asvc.Service
}

// New constructs the analysis module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analysis"),
		modkit.WithPrefix("/analysis"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	// an invalid key degrades to call-time ERROR verdicts, never a crash
	var llm asvc.ChatCompleter
	keyErr := asvc.ValidateKey(cfg.APIKey)
	if keyErr == nil {
		cc := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			cc.BaseURL = cfg.BaseURL
		}
		llm = openai.NewClientWithConfig(cc)
	} else {
		deps.Log.Warn().Err(keyErr).Msg("analysis module starting without a usable openai key")
	}

	svc := asvc.New(asvc.Options{
		LLM:       llm,
		Model:     cfg.Model,
		ConfigErr: keyErr,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptClassifierPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ahttp.Register(r, m.svc)
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
