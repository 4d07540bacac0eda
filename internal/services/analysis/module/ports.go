package module

import (
	"context"

	"github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/domain"
	asvc "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptClassifierPort exposes service methods as module ports for cross-module usage
type adaptClassifierPort struct{ svc asvc.Service }

func (a adaptClassifierPort) Classify(ctx context.Context, text string) domain.Verdict {
	return a.svc.Classify(ctx, text)
}

func (a adaptClassifierPort) ClassifyBatch(ctx context.Context, texts []string) domain.Verdict {
	return a.svc.ClassifyBatch(ctx, texts)
}
