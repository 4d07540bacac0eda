// Package feed holds the Twitter API v2 shaped records the collector moves
// around, plus generators that fabricate batches of them for mock mode.
// Everything here is request scoped; nothing owns state beyond a rand source.
package feed

// PublicMetrics is the engagement block attached to a post
type PublicMetrics struct {
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	LikeCount    int `json:"like_count"`
	QuoteCount   int `json:"quote_count"`
}

// ReferencedTweet links a post to a tweet it quotes or replies to
type ReferencedTweet struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Post is a single publication record, native or fabricated
type Post struct {
	ID                  string            `json:"id"`
	Text                string            `json:"text"`
	CreatedAt           string            `json:"created_at"`
	EditHistoryTweetIDs []string          `json:"edit_history_tweet_ids"`
	Lang                string            `json:"lang"`
	PublicMetrics       PublicMetrics     `json:"public_metrics"`
	PossiblySensitive   bool              `json:"possibly_sensitive"`
	Source              string            `json:"source"`
	AuthorID            string            `json:"author_id"`
	ReferencedTweets    []ReferencedTweet `json:"referenced_tweets"`
}

// AuthorMetrics is the profile-level engagement block
type AuthorMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TweetCount     int `json:"tweet_count"`
	ListedCount    int `json:"listed_count"`
}

// Author is the profile associated with a batch of posts
type Author struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Username        string        `json:"username"`
	Description     string        `json:"description"`
	Verified        bool          `json:"verified"`
	CreatedAt       string        `json:"created_at"`
	PublicMetrics   AuthorMetrics `json:"public_metrics"`
	ProfileImageURL string        `json:"profile_image_url"`
}

// Includes carries expanded objects alongside the data array
type Includes struct {
	Users []Author `json:"users"`
}

// Meta mirrors the upstream pagination block. The tokens are opaque; in mock
// mode they are random strings, not cursors into real state
type Meta struct {
	ResultCount   int     `json:"result_count"`
	NewestID      *string `json:"newest_id"`
	OldestID      *string `json:"oldest_id"`
	NextToken     string  `json:"next_token,omitempty"`
	PreviousToken string  `json:"previous_token,omitempty"`
}

// PostBatch is the data/includes/meta envelope shared by mock and real mode
type PostBatch struct {
	Data     []Post   `json:"data"`
	Includes Includes `json:"includes"`
	Meta     Meta     `json:"meta"`
}

// Comment is a reply associated with exactly one post via TweetID.
// The reference is weak; no ownership is implied
type Comment struct {
	ID         string `json:"id"`
	TweetID    string `json:"tweet_id"`
	Text       string `json:"text"`
	CreatedAt  string `json:"created_at"`
	AuthorID   string `json:"author_id"`
	LikeCount  int    `json:"like_count"`
	ReplyCount int    `json:"reply_count"`
}
