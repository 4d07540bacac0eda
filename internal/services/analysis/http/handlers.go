// Package http provides http transport for analysis
package http

import (
	stdhttp "net/http"

	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/httpkit"
	"github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/domain"
	svc "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze/posts", h.analyze)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /analysis/analyze/posts Analysis analyzePosts
// @Summary Classify a batch of texts for ministry relevance
// @Tags analysis
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Texts to classify"
// @Success 200 {object} domain.AnalyzeResult "ok"
// @Failure 400 {object} httpkit.Envelope "empty batch"
// @Router /analysis/analyze/posts [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}
