// Package domain holds collection pipeline DTOs
package domain

import (
	"time"

	"github.com/santiagozevallosq/sentidata-v2/internal/core/feed"
	analysisdom "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/domain"
	socialdom "github.com/santiagozevallosq/sentidata-v2/internal/services/social/domain"
)

// RunInput drives one pipeline execution
type RunInput struct {
	Username    string
	StartTime   time.Time
	EndTime     time.Time
	Limit       int
	Mock        bool
	MaxComments int
}

// EnrichedPost is a post zipped with its classification and reply thread.
// Built transiently per request, never persisted
type EnrichedPost struct {
	ID             string              `json:"id"`
	Text           string              `json:"text"`
	CreatedAt      string              `json:"created_at"`
	AuthorID       string              `json:"author_id"`
	PublicMetrics  feed.PublicMetrics  `json:"public_metrics"`
	Classification analysisdom.Verdict `json:"classification"`
	Comments       []feed.Comment      `json:"comments"`
}

// RunResult is the pipeline output
type RunResult struct {
	Status       string           `json:"status" example:"ok"`
	CollectionID string           `json:"collection_id" example:"0d0e78f3-0bb9-4a4e-9f5c-38d0f0a3a1c2"`
	Username     string           `json:"username" example:"ministeriovivienda"`
	Source       socialdom.Source `json:"source" example:"twitter_mock"`
	Count        int              `json:"count" example:"5"`
	Posts        []EnrichedPost   `json:"posts"`
}
