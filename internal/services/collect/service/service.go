// Package service implements the sequential collection pipeline
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/santiagozevallosq/sentidata-v2/internal/core/feed"
	perr "github.com/santiagozevallosq/sentidata-v2/internal/platform/errors"
	"github.com/santiagozevallosq/sentidata-v2/internal/platform/logger"
	analysisdom "github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/domain"
	"github.com/santiagozevallosq/sentidata-v2/internal/services/collect/domain"
	socialdom "github.com/santiagozevallosq/sentidata-v2/internal/services/social/domain"
)

// Service is the pipeline surface
type Service interface {
	Run(ctx context.Context, in domain.RunInput) (domain.RunResult, error)
}

type service struct {
	log        logger.Logger
	collector  socialdom.CollectorPort
	replies    socialdom.RepliesPort
	classifier analysisdom.ClassifierPort
}

// New constructs the pipeline over its two sibling module ports
func New(collector socialdom.CollectorPort, replies socialdom.RepliesPort, classifier analysisdom.ClassifierPort) Service {
	if collector == nil || replies == nil {
		panic("collect: pipeline requires social collector and replies ports")
	}
	if classifier == nil {
		panic("collect: pipeline requires the analysis classifier port")
	}
	return &service{
		log:        *logger.Named("collect"),
		collector:  collector,
		replies:    replies,
		classifier: classifier,
	}
}

// Run executes the pipeline strictly in sequence: posts, texts, one batch
// classification, replies, then the zip. Output length always equals the
// fetched post count and every element carries a verdict and a comment slice
func (s *service) Run(ctx context.Context, in domain.RunInput) (domain.RunResult, error) {
	batch, err := s.collector.FetchPosts(ctx, socialdom.CollectInput{
		Username:   in.Username,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		MaxResults: in.Limit,
		Mock:       in.Mock,
	})
	if err != nil {
		return domain.RunResult{}, err
	}
	if batch.Status != "ok" {
		return domain.RunResult{}, perr.Remotef("post collection failed at step %s: %s", batch.Step, batch.Detail)
	}

	id := uuid.New().String()
	result := domain.RunResult{
		Status:       "ok",
		CollectionID: id,
		Username:     in.Username,
		Source:       batch.Source,
		Posts:        []domain.EnrichedPost{},
	}

	posts := batch.Data.Data
	if len(posts) == 0 {
		s.log.Debug().Str("collection_id", id).Str("username", in.Username).Msg("collect run found no posts")
		return result, nil
	}

	texts := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}

	// one model call covers the whole batch
	verdict := analysisdom.Neutral()
	if len(texts) > 0 {
		verdict = s.classifier.ClassifyBatch(ctx, texts)
	}

	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	threads, err := s.replies.FetchReplies(ctx, socialdom.RepliesInput{
		TweetIDs:   ids,
		MaxResults: in.MaxComments,
		Mock:       in.Mock,
	})
	if err != nil {
		return domain.RunResult{}, err
	}

	result.Posts = zip(posts, verdict, threads.Threads)
	result.Count = len(result.Posts)

	s.log.Info().
		Str("collection_id", id).
		Str("username", in.Username).
		Str("source", string(batch.Source)).
		Int("posts", result.Count).
		Str("verdict", string(verdict.Kind)).
		Msg("collect run finished")

	return result, nil
}

// zip pairs each post with the shared batch verdict and its reply thread.
// Posts with no text get a neutral verdict instead of the batch one
func zip(posts []feed.Post, verdict analysisdom.Verdict, threads socialdom.ThreadMap) []domain.EnrichedPost {
	out := make([]domain.EnrichedPost, 0, len(posts))
	for _, p := range posts {
		v := verdict
		if p.Text == "" {
			v = analysisdom.Neutral()
		}
		comments := threads.Get(p.ID).Comments
		if comments == nil {
			comments = []feed.Comment{}
		}
		out = append(out, domain.EnrichedPost{
			ID:             p.ID,
			Text:           p.Text,
			CreatedAt:      p.CreatedAt,
			AuthorID:       p.AuthorID,
			PublicMetrics:  p.PublicMetrics,
			Classification: v,
			Comments:       comments,
		})
	}
	return out
}
