package domain

import "context"

// CollectorPort fetches post batches for other modules
type CollectorPort interface {
	FetchPosts(ctx context.Context, in CollectInput) (CollectResult, error)
}

// RepliesPort fetches reply threads keyed by post id
type RepliesPort interface {
	FetchReplies(ctx context.Context, in RepliesInput) (RepliesResult, error)
}
