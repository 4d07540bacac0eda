package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/santiagozevallosq/sentidata-v2/internal/core/feed"
	perr "github.com/santiagozevallosq/sentidata-v2/internal/platform/errors"
)

const (
	userFields  = "id,name,username,description,verified,created_at,public_metrics,profile_image_url"
	tweetFields = "id,text,created_at,lang,public_metrics,possibly_sensitive,source," +
		"edit_history_tweet_ids,referenced_tweets"
	replyFields = "id,text,author_id,created_at,public_metrics,in_reply_to_user_id,referenced_tweets"
)

// UserByUsername resolves a handle to its profile.
// A miss maps to ErrorCodeNotFound
func (c *Client) UserByUsername(ctx context.Context, username string) (feed.Author, error) {
	q := url.Values{}
	q.Set("user.fields", userFields)
	path := fmt.Sprintf("/2/users/by/username/%s?%s", url.PathEscape(username), q.Encode())

	var out userEnvelope
	if err := c.getJSON(ctx, path, &out); err != nil {
		return feed.Author{}, err
	}
	if out.Data == nil {
		return feed.Author{}, perr.NotFoundf("twitter user @%s not found", username)
	}
	return *out.Data, nil
}

// UserTweets fetches the timeline for userID inside [start, end]
func (c *Client) UserTweets(
	ctx context.Context,
	userID string,
	start, end time.Time,
	maxResults int,
) (feed.PostBatch, error) {
	q := url.Values{}
	q.Set("max_results", fmt.Sprintf("%d", maxResults))
	q.Set("start_time", start.UTC().Format(time.RFC3339))
	q.Set("end_time", end.UTC().Format(time.RFC3339))
	q.Set("tweet.fields", tweetFields)
	q.Set("expansions", "author_id")
	q.Set("user.fields", userFields)
	path := fmt.Sprintf("/2/users/%s/tweets?%s", url.PathEscape(userID), q.Encode())

	var out timelineEnvelope
	if err := c.getJSON(ctx, path, &out); err != nil {
		return feed.PostBatch{}, err
	}
	if out.Data == nil {
		out.Data = []feed.Post{}
	}
	return feed.PostBatch{Data: out.Data, Includes: out.Includes, Meta: out.Meta}, nil
}

// Conversation looks up a tweet's conversation id and author id
func (c *Client) Conversation(ctx context.Context, tweetID string) (conversationID, authorID string, err error) {
	q := url.Values{}
	q.Set("tweet.fields", "conversation_id,author_id")
	path := fmt.Sprintf("/2/tweets/%s?%s", url.PathEscape(tweetID), q.Encode())

	var out tweetEnvelope
	if err := c.getJSON(ctx, path, &out); err != nil {
		return "", "", err
	}
	if out.Data == nil {
		return "", "", perr.NotFoundf("tweet %s not found", tweetID)
	}
	return out.Data.ConversationID, out.Data.AuthorID, nil
}

// Replies fetches replies to tweetID by searching its conversation thread,
// excluding the original author. Returned comments carry tweetID as their key
func (c *Client) Replies(ctx context.Context, tweetID string, maxResults int) ([]feed.Comment, error) {
	convID, authorID, err := c.Conversation(ctx, tweetID)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("query", fmt.Sprintf("conversation_id:%s -from:%s", convID, authorID))
	q.Set("max_results", fmt.Sprintf("%d", maxResults))
	q.Set("tweet.fields", replyFields)
	q.Set("expansions", "author_id")
	q.Set("user.fields", "id,name,username,profile_image_url,verified")
	path := "/2/tweets/search/recent?" + q.Encode()

	var out searchEnvelope
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}

	comments := make([]feed.Comment, 0, len(out.Data))
	for _, t := range out.Data {
		comments = append(comments, feed.Comment{
			ID:         t.ID,
			TweetID:    tweetID,
			Text:       t.Text,
			CreatedAt:  t.CreatedAt,
			AuthorID:   t.AuthorID,
			LikeCount:  t.PublicMetrics.LikeCount,
			ReplyCount: t.PublicMetrics.ReplyCount,
		})
	}
	return comments, nil
}

// getJSON runs a GET through Do and decodes the body into dst.
// A 404 with an undecodable body still yields a nil error; callers detect
// misses through the envelope's empty Data
func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("twitter close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeRemote, "twitter read body failed")
	}
	if err := json.Unmarshal(b, dst); err != nil {
		if resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return perr.Wrapf(err, perr.ErrorCodeRemote, "twitter decode failed")
	}
	return nil
}
