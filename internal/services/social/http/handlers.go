// Package http provides http transport for social
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/httpkit"
	perr "github.com/santiagozevallosq/sentidata-v2/internal/platform/errors"
	"github.com/santiagozevallosq/sentidata-v2/internal/services/social/domain"
	svc "github.com/santiagozevallosq/sentidata-v2/internal/services/social/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/collect/twitter", h.collect)
	httpkit.PostJSON[domain.RepliesInput](r, "/comments", h.comments)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /social/collect/twitter Social socialCollect
// @Summary Collect posts for a username, mock or real
// @Tags social
// @Produce json
// @Param username query string true "Twitter handle"
// @Param start_date query string false "Window start (ISO8601, default now-7d)"
// @Param end_date query string false "Window end (ISO8601, default now)"
// @Param max_results query int false "Batch cap (default 5)"
// @Param mock query bool false "Use fabricated data (default true)"
// @Success 200 {object} domain.CollectResult "ok"
// @Failure 400 {object} httpkit.Envelope "bad input"
// @Router /social/collect/twitter [get]
func (h *handlers) collect(r *stdhttp.Request) (any, error) {
	in, err := parseCollectQuery(r)
	if err != nil {
		return nil, err
	}
	return h.svc.FetchPosts(r.Context(), in)
}

// swagger:route POST /social/comments Social socialComments
// @Summary Fetch reply threads for a set of post ids
// @Tags social
// @Accept json
// @Produce json
// @Param payload body domain.RepliesInput true "Replies request"
// @Success 200 {object} domain.RepliesResult "ok"
// @Failure 400 {object} httpkit.Envelope "bad input"
// @Router /social/comments [post]
func (h *handlers) comments(r *stdhttp.Request, in domain.RepliesInput) (any, error) {
	// binder enforces the tweet_ids and max_results tags before we get here
	return h.svc.FetchReplies(r.Context(), in)
}

func parseCollectQuery(r *stdhttp.Request) (domain.CollectInput, error) {
	q := r.URL.Query()

	in := domain.CollectInput{
		Username:   q.Get("username"),
		MaxResults: 5,
		Mock:       true,
	}
	if in.Username == "" {
		return in, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "username is required"), "username")
	}

	if v := q.Get("max_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return in, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "max_results must be a non-negative integer"), "max_results")
		}
		in.MaxResults = n
	}
	if v := q.Get("mock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return in, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "mock must be a boolean"), "mock")
		}
		in.Mock = b
	}

	var err error
	if v := q.Get("start_date"); v != "" {
		if in.StartTime, err = parseStamp(v); err != nil {
			return in, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "start_date is not a valid ISO8601 timestamp"), "start_date")
		}
	}
	if v := q.Get("end_date"); v != "" {
		if in.EndTime, err = parseStamp(v); err != nil {
			return in, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "end_date is not a valid ISO8601 timestamp"), "end_date")
		}
	}
	// one date without the other falls back to the default window
	if in.StartTime.IsZero() != in.EndTime.IsZero() {
		in.StartTime = time.Time{}
		in.EndTime = time.Time{}
	}

	return in, nil
}

// parseStamp accepts RFC3339 plus the zone-less forms date pickers emit
func parseStamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, perr.InvalidArgf("bad timestamp %q", s)
}
