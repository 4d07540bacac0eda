// Package service implements social collection over mock and real sources
package service

import (
	"context"
	"time"

	"github.com/santiagozevallosq/sentidata-v2/internal/core/feed"
	perr "github.com/santiagozevallosq/sentidata-v2/internal/platform/errors"
	"github.com/santiagozevallosq/sentidata-v2/internal/platform/logger"
	"github.com/santiagozevallosq/sentidata-v2/internal/services/social/domain"
)

const (
	defaultWindow     = 7 * 24 * time.Hour
	defaultMaxReplies = 20
	defaultMaxPerPost = 5
)

// TwitterPort is the slice of the twitter adapter the service needs
type TwitterPort interface {
	UserByUsername(ctx context.Context, username string) (feed.Author, error)
	UserTweets(ctx context.Context, userID string, start, end time.Time, maxResults int) (feed.PostBatch, error)
	Replies(ctx context.Context, tweetID string, maxResults int) ([]feed.Comment, error)
}

// Service is the social module surface
type Service interface {
	FetchPosts(ctx context.Context, in domain.CollectInput) (domain.CollectResult, error)
	FetchReplies(ctx context.Context, in domain.RepliesInput) (domain.RepliesResult, error)
}

// Options controls collection behavior
type Options struct {
	// Live twitter client; nil means only mock mode works
	Twitter TwitterPort

	// Seed feeds the mock generator; defaults to wall-clock nanos
	Seed func() int64

	// Now is the clock seam for mock timestamps and default windows
	Now func() time.Time
}

type service struct {
	log  logger.Logger
	tw   TwitterPort
	seed func() int64
	now  func() time.Time
}

// New constructs the social service
func New(opts Options) Service {
	s := &service{
		log:  *logger.Named("social"),
		tw:   opts.Twitter,
		seed: opts.Seed,
		now:  opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.seed == nil {
		s.seed = func() int64 { return s.now().UnixNano() }
	}
	return s
}

// FetchPosts returns a mock or real post batch for the requested window
func (s *service) FetchPosts(ctx context.Context, in domain.CollectInput) (domain.CollectResult, error) {
	if in.Username == "" {
		return domain.CollectResult{}, perr.Newf(perr.ErrorCodeValidation, "username is required")
	}
	// transport owns the absent-parameter default; an explicit 0 means an
	// empty batch and flows through to the source untouched
	if in.MaxResults < 0 {
		return domain.CollectResult{}, perr.InvalidArgf("max_results must not be negative")
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		in.EndTime = s.now().UTC()
		in.StartTime = in.EndTime.Add(-defaultWindow)
	}
	if !in.StartTime.Before(in.EndTime) {
		return domain.CollectResult{}, perr.InvalidArgf("start_date must be before end_date")
	}

	params := domain.CollectParams{
		Username:   in.Username,
		StartDate:  in.StartTime.UTC().Format(time.RFC3339),
		EndDate:    in.EndTime.UTC().Format(time.RFC3339),
		MaxResults: in.MaxResults,
	}

	if in.Mock {
		gen := feed.NewGenerator(s.seed(), feed.WithClock(s.now))
		batch := gen.Posts(in.Username, in.StartTime, in.EndTime, in.MaxResults)
		return domain.CollectResult{
			Status: "ok",
			Source: domain.SourceMock,
			Params: params,
			Data:   batch,
		}, nil
	}

	if s.tw == nil {
		return domain.CollectResult{}, perr.Configf("twitter bearer token not configured, only mock mode is available")
	}

	user, err := s.tw.UserByUsername(ctx, in.Username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", in.Username).Msg("social user lookup failed")
		return errorResult(domain.StepLookup, err, params), nil
	}

	batch, err := s.tw.UserTweets(ctx, user.ID, in.StartTime, in.EndTime, in.MaxResults)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("social timeline fetch failed")
		return errorResult(domain.StepFetch, err, params), nil
	}
	if len(batch.Includes.Users) == 0 {
		batch.Includes.Users = []feed.Author{user}
	}

	return domain.CollectResult{
		Status: "ok",
		Source: domain.SourceReal,
		Params: params,
		Data:   batch,
	}, nil
}

// errorResult converts a real-flow failure into a typed result value so it
// never crosses the component boundary as an error
func errorResult(step domain.Step, err error, params domain.CollectParams) domain.CollectResult {
	return domain.CollectResult{
		Status: "error",
		Source: domain.SourceReal,
		Step:   step,
		Detail: err.Error(),
		Params: params,
		Data:   feed.PostBatch{Data: []feed.Post{}},
	}
}

// FetchReplies returns reply threads grouped by post id.
// A failure on one id is recorded in its thread and does not abort the rest
func (s *service) FetchReplies(ctx context.Context, in domain.RepliesInput) (domain.RepliesResult, error) {
	if len(in.TweetIDs) == 0 {
		return domain.RepliesResult{}, perr.Newf(perr.ErrorCodeValidation, "tweet_ids must not be empty")
	}

	if in.Mock {
		maxPer := in.MaxResults
		if maxPer <= 0 {
			maxPer = defaultMaxPerPost
		}
		gen := feed.NewGenerator(s.seed(), feed.WithClock(s.now))
		byID := gen.Comments(in.TweetIDs, maxPer)

		// walk the request ids, not the map, to keep response order
		threads := domain.NewThreadMap(len(in.TweetIDs))
		for _, id := range in.TweetIDs {
			threads.Set(id, domain.CommentThread{Comments: byID[id]})
		}
		return domain.RepliesResult{Status: "ok", Source: domain.SourceMock, Threads: threads}, nil
	}

	if s.tw == nil {
		return domain.RepliesResult{}, perr.Configf("twitter bearer token not configured, only mock mode is available")
	}

	maxResults := in.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxReplies
	}

	threads := domain.NewThreadMap(len(in.TweetIDs))
	for _, id := range in.TweetIDs {
		cs, err := s.tw.Replies(ctx, id, maxResults)
		if err != nil {
			s.log.Warn().Err(err).Str("tweet_id", id).Msg("social replies fetch failed")
			threads.Set(id, domain.CommentThread{Comments: []feed.Comment{}, Error: true, Message: err.Error()})
			continue
		}
		threads.Set(id, domain.CommentThread{Comments: cs})
	}
	return domain.RepliesResult{Status: "ok", Source: domain.SourceReal, Threads: threads}, nil
}
