package twitter

import "github.com/santiagozevallosq/sentidata-v2/internal/core/feed"

// apiError is a single element of the "errors" array Twitter returns on
// partial failures and lookup misses
type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
	Value  string `json:"value"`
}

// userEnvelope wraps GET /2/users/by/username/:username
type userEnvelope struct {
	Data   *feed.Author `json:"data"`
	Errors []apiError   `json:"errors"`
}

// timelineEnvelope wraps GET /2/users/:id/tweets. The shapes match the
// collector's native batch types so no mapping layer is needed
type timelineEnvelope struct {
	Data     []feed.Post   `json:"data"`
	Includes feed.Includes `json:"includes"`
	Meta     feed.Meta     `json:"meta"`
	Errors   []apiError    `json:"errors"`
}

// tweetEnvelope wraps GET /2/tweets/:id with conversation fields
type tweetEnvelope struct {
	Data *struct {
		ID             string `json:"id"`
		ConversationID string `json:"conversation_id"`
		AuthorID       string `json:"author_id"`
	} `json:"data"`
	Errors []apiError `json:"errors"`
}

// searchTweet is one reply hit from GET /2/tweets/search/recent
type searchTweet struct {
	ID            string             `json:"id"`
	Text          string             `json:"text"`
	AuthorID      string             `json:"author_id"`
	CreatedAt     string             `json:"created_at"`
	PublicMetrics feed.PublicMetrics `json:"public_metrics"`
}

// searchEnvelope wraps the recent search response
type searchEnvelope struct {
	Data   []searchTweet `json:"data"`
	Meta   feed.Meta     `json:"meta"`
	Errors []apiError    `json:"errors"`
}
