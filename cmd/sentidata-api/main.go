// @title         SentiData API
// @version       0.1.0
// @description   Collection and relevance analysis for social media posts

package main

import (
	"context"

	"github.com/santiagozevallosq/sentidata-v2/internal/platform/config"
	"github.com/santiagozevallosq/sentidata-v2/internal/platform/logger"
	phttp "github.com/santiagozevallosq/sentidata-v2/internal/platform/net/http"

	"github.com/santiagozevallosq/sentidata-v2/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API; twitter and openai credentials are read by the modules
	// themselves under SERVICE_TWITTER_* and SERVICE_OPENAI_*
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
