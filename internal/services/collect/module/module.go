// Package module wires the collection pipeline into the API using modkit
package module

import (
	"net/http"

	modkit "github.com/santiagozevallosq/sentidata-v2/internal/modkit"
	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/httpkit"

	analysisdom "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/domain"
	chttp "github.com/santiagozevallosq/sentidata-v2/internal/services/collect/http"
	csvc "github.com/santiagozevallosq/sentidata-v2/internal/services/collect/service"
	socialdom "github.com/santiagozevallosq/sentidata-v2/internal/services/social/domain"
)

// Ports declares the injected ports this module requires from its siblings
type Ports struct {
	Collector  socialdom.CollectorPort
	Replies    socialdom.RepliesPort
	Classifier analysisdom.ClassifierPort
}

// Module implements the collect API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc csvc.Service
}

// New constructs the collect module; social and analysis ports must be injected
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("collect"),
		modkit.WithPrefix("/collect"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Collector == nil || injected.Replies == nil {
		panic("collect module requires Collector and Replies ports (from services/social)")
	}
	if injected.Classifier == nil {
		panic("collect module requires Classifier port (from services/analysis)")
	}

	svc := csvc.New(injected.Collector, injected.Replies, injected.Classifier)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		chttp.Register(r, m.svc)
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

// Ports returns the module ports; collect only consumes, it exposes none
func (m *Module) Ports() any { return nil }

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
