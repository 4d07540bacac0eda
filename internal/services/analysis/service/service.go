// Package service implements relevance classification over a hosted model
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/santiagozevallosq/sentidata-v2/internal/core/normalize"
	perr "github.com/santiagozevallosq/sentidata-v2/internal/platform/errors"
	"github.com/santiagozevallosq/sentidata-v2/internal/platform/logger"
	"github.com/santiagozevallosq/sentidata-v2/internal/services/analysis/domain"
)

const systemPrompt = "You are an expert analyst in content classification for Peruvian state entities."

const userPromptTmpl = `You are an analyst for the Ministry of Housing, Construction and Sanitation of Peru.
Your task is to determine whether a text or post is RELEVANT or NOT RELEVANT
to the interests of the ministry.

Answer with exactly one of the following options:
- "RELEVANT"
- "NOT RELEVANT"

Text to analyze:
%s`

// keyPattern is the shape a plausible OpenAI key must match
var keyPattern = regexp.MustCompile(`^sk-[A-Za-z0-9]{40,}$`)

// ValidateKey checks an OpenAI API key against the expected literal pattern
func ValidateKey(key string) error {
	if key == "" {
		return perr.Configf("openai api key missing")
	}
	if !keyPattern.MatchString(key) {
		n := 8
		if len(key) < n {
			n = len(key)
		}
		return perr.Configf("openai api key looks malformed: %s...", key[:n])
	}
	return nil
}

// ChatCompleter is the slice of the OpenAI client the service uses
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service is the analysis module surface
type Service interface {
	Classify(ctx context.Context, text string) domain.Verdict
	ClassifyBatch(ctx context.Context, texts []string) domain.Verdict
	Analyze(ctx context.Context, texts []string) (domain.AnalyzeResult, error)
}

// Options controls classification behavior
type Options struct {
	// LLM is the chat completion backend; nil means unconfigured and every
	// non-empty classification returns an ERROR verdict
	LLM ChatCompleter

	// Model defaults to gpt-4o-mini
	Model string

	// ConfigErr carries the construction-time credential problem, surfaced
	// in ERROR verdicts when LLM is nil
	ConfigErr error
}

type service struct {
	log       logger.Logger
	llm       ChatCompleter
	norm      *normalize.Normalizer
	model     string
	configErr error
}

// New constructs the analysis service
func New(opts Options) Service {
	if opts.Model == "" {
		opts.Model = openai.GPT4oMini
	}
	return &service{
		log:       *logger.Named("analysis"),
		llm:       opts.LLM,
		norm:      normalize.New(),
		model:     opts.Model,
		configErr: opts.ConfigErr,
	}
}

// Classify issues a single deterministic model call for one text.
// Empty input short-circuits to EMPTY with no remote call. Failures come
// back as ERROR verdicts, never as panics or error returns
func (s *service) Classify(ctx context.Context, text string) domain.Verdict {
	normalized := s.norm.Normalize(text)
	if normalized == "" {
		return domain.Verdict{Kind: domain.VerdictEmpty}
	}

	if s.llm == nil {
		detail := "openai client not configured"
		if s.configErr != nil {
			detail = s.configErr.Error()
		}
		return domain.Verdict{Kind: domain.VerdictError, Detail: detail}
	}

	resp, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(userPromptTmpl, normalized)},
		},
	})
	if err != nil {
		s.log.Warn().Err(err).Str("model", s.model).Msg("analysis model call failed")
		return domain.Verdict{Kind: domain.VerdictError, Detail: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return domain.Verdict{Kind: domain.VerdictError, Detail: "model returned no choices"}
	}

	return parseReply(resp.Choices[0].Message.Content)
}

// ClassifyBatch joins the texts with newlines and classifies the whole
// batch in one call
func (s *service) ClassifyBatch(ctx context.Context, texts []string) domain.Verdict {
	return s.Classify(ctx, strings.Join(texts, "\n"))
}

// Analyze is the http-facing batch entry point
func (s *service) Analyze(ctx context.Context, texts []string) (domain.AnalyzeResult, error) {
	if len(texts) == 0 {
		return domain.AnalyzeResult{}, perr.Newf(perr.ErrorCodeValidation, "at least one text is required")
	}
	return domain.AnalyzeResult{
		Status:     "ok",
		InputCount: len(texts),
		Analysis:   s.ClassifyBatch(ctx, texts),
	}, nil
}

// parseReply maps the model's reply onto a verdict, tolerating quoting,
// casing, and trailing punctuation around the two expected literals
func parseReply(content string) domain.Verdict {
	reply := strings.ToUpper(strings.Trim(strings.TrimSpace(content), `"'.`))
	switch {
	case strings.HasPrefix(reply, "NOT RELEVANT"), strings.HasPrefix(reply, "NO RELEVANT"):
		return domain.Verdict{Kind: domain.VerdictNotRelevant}
	case strings.HasPrefix(reply, "RELEVANT"):
		return domain.Verdict{Kind: domain.VerdictRelevant}
	default:
		return domain.Verdict{Kind: domain.VerdictError, Detail: "unexpected model reply: " + content}
	}
}
