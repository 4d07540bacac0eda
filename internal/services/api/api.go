// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"

	"github.com/santiagozevallosq/sentidata-v2/internal/core/version"
	"github.com/santiagozevallosq/sentidata-v2/internal/platform/config"
	"github.com/santiagozevallosq/sentidata-v2/internal/platform/logger"
	phttp "github.com/santiagozevallosq/sentidata-v2/internal/platform/net/http"

	modkit "github.com/santiagozevallosq/sentidata-v2/internal/modkit"
	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/httpkit"
	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/module"
	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/swaggerkit"

	analysisdom "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/domain"
	analysismod "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/module"
	metamod "github.com/santiagozevallosq/sentidata-v2/internal/services/api/meta/module"
	collectmod "github.com/santiagozevallosq/sentidata-v2/internal/services/collect/module"
	socialdom "github.com/santiagozevallosq/sentidata-v2/internal/services/social/domain"
	socialmod "github.com/santiagozevallosq/sentidata-v2/internal/services/social/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// LivenessResponse is the root payload
type LivenessResponse struct {
	Status  string `json:"status"  example:"running"`
	Message string `json:"message" example:"sentidata backend is up and collecting"`
	Version string `json:"version" example:"dev"`
}

// Mount mounts the API service onto the given router.
// Endpoint paths are the observable contract, so modules mount at the root
// rather than under a version prefix
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: *opt.Logger,
	}

	// social and analysis own the ports the pipeline consumes
	social := socialmod.New(deps)
	analysis := analysismod.New(deps)

	collect := collectmod.New(
		deps,
		modkit.WithPorts(collectmod.Ports{
			Collector:  module.MustPortsOf[socialdom.CollectorPort](social),
			Replies:    module.MustPortsOf[socialdom.RepliesPort](social),
			Classifier: module.MustPortsOf[analysisdom.ClassifierPort](analysis),
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		social,
		analysis,
		collect,
	}

	httpkit.MountUnder(r, "/", httpkit.CommonStack(), func(root httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		httpkit.Get(root, "/", liveness)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(root)
		}
	})
}

// swagger:route GET / Meta liveness
// @Summary Liveness probe
// @Tags Meta
// @Produce json
// @Success 200 {object} LivenessResponse "ok"
// @Router / [get]
func liveness(_ *stdhttp.Request) (any, error) {
	return LivenessResponse{
		Status:  "running",
		Message: "sentidata backend is up and collecting",
		Version: version.Info().Version,
	}, nil
}
