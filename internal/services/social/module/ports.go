package module

import (
	"context"

	"github.com/santiagozevallosq/sentidata-v2/internal/services/social/domain"
	ssvc "github.com/santiagozevallosq/sentidata-v2/internal/services/social/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSocialPort exposes service methods as module ports for cross-module usage
type adaptSocialPort struct{ svc ssvc.Service }

func (a adaptSocialPort) FetchPosts(ctx context.Context, in domain.CollectInput) (domain.CollectResult, error) {
	return a.svc.FetchPosts(ctx, in)
}

func (a adaptSocialPort) FetchReplies(ctx context.Context, in domain.RepliesInput) (domain.RepliesResult, error) {
	return a.svc.FetchReplies(ctx, in)
}
