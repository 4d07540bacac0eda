// Package domain holds DTOs for social http and service contracts
package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/santiagozevallosq/sentidata-v2/internal/core/feed"
)

// CollectInput asks the service for a post batch.
// Zero time window means last 7 days ending now. MaxResults is taken as
// given: 0 requests an empty batch, defaults live in the transport layer
type CollectInput struct {
	Username   string
	StartTime  time.Time
	EndTime    time.Time
	MaxResults int
	Mock       bool
}

// CollectParams echoes the resolved request window back to the caller
type CollectParams struct {
	Username   string `json:"username"   example:"ministeriovivienda"`
	StartDate  string `json:"start_date" example:"2025-07-01T00:00:00Z"`
	EndDate    string `json:"end_date"   example:"2025-07-08T00:00:00Z"`
	MaxResults int    `json:"max_results" example:"5"`
}

// CollectResult is the batch plus provenance. Real-flow failures surface
// here as Status "error" with a Step, never as an error return
type CollectResult struct {
	Status string         `json:"status" example:"ok"`
	Source Source         `json:"source" example:"twitter_mock"`
	Step   Step           `json:"step,omitempty" example:"lookup"`
	Detail string         `json:"detail,omitempty"`
	Params CollectParams  `json:"params"`
	Data   feed.PostBatch `json:"data"`
}

// RepliesInput asks the service for replies grouped by post id
type RepliesInput struct {
	TweetIDs   []string `json:"tweet_ids"   validate:"required,min=1,dive,required" example:"1942352849243160964"`
	MaxResults int      `json:"max_results" validate:"omitempty,min=1,max=100" example:"20"`
	Mock       bool     `json:"mock" example:"true"`
}

// CommentThread is the per-post entry of a replies result.
// Error marks a per-id fetch failure that did not abort the batch
type CommentThread struct {
	Comments []feed.Comment `json:"comments"`
	Error    bool           `json:"error,omitempty"`
	Message  string         `json:"message,omitempty"`
}

// RepliesResult groups threads by originating post id, in request order
type RepliesResult struct {
	Status  string    `json:"status" example:"ok"`
	Source  Source    `json:"source" example:"twitter_mock"`
	Threads ThreadMap `json:"comments"`
}

// ThreadMap keys comment threads by post id and remembers insertion order,
// so the serialized object lists threads in the order the ids were requested
// instead of Go's sorted map order
type ThreadMap struct {
	ids     []string
	entries map[string]CommentThread
}

// NewThreadMap returns a ThreadMap sized for n entries
func NewThreadMap(n int) ThreadMap {
	return ThreadMap{
		ids:     make([]string, 0, n),
		entries: make(map[string]CommentThread, n),
	}
}

// Set stores the thread for id, keeping the first-seen position on overwrite
func (m *ThreadMap) Set(id string, t CommentThread) {
	if m.entries == nil {
		m.entries = make(map[string]CommentThread)
	}
	if _, ok := m.entries[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.entries[id] = t
}

// Get returns the thread for id, or a zero thread when absent
func (m ThreadMap) Get(id string) CommentThread { return m.entries[id] }

// Len returns the number of stored threads
func (m ThreadMap) Len() int { return len(m.ids) }

// IDs returns the post ids in insertion order
func (m ThreadMap) IDs() []string { return m.ids }

// MarshalJSON writes the threads as a JSON object in insertion order
func (m ThreadMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.entries[id])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
