// Package http provides http transport for the collection pipeline
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"github.com/santiagozevallosq/sentidata-v2/internal/modkit/httpkit"
	perr "github.com/santiagozevallosq/sentidata-v2/internal/platform/errors"
	"github.com/santiagozevallosq/sentidata-v2/internal/services/collect/domain"
	svc "github.com/santiagozevallosq/sentidata-v2/internal/services/collect/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/run", h.run)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /collect/run Collect collectRun
// @Summary Run the collection pipeline end to end
// @Tags collect
// @Produce json
// @Param username query string true "Twitter handle"
// @Param start_date query string false "Window start (ISO8601, default now-7d)"
// @Param end_date query string false "Window end (ISO8601, default now)"
// @Param max_results query int false "Post cap (default 5)"
// @Param max_comments query int false "Replies per post cap"
// @Param mock query bool false "Use fabricated data (default true)"
// @Success 200 {object} domain.RunResult "ok"
// @Failure 400 {object} httpkit.Envelope "bad input"
// @Router /collect/run [get]
func (h *handlers) run(r *stdhttp.Request) (any, error) {
	in, err := parseRunQuery(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Run(r.Context(), in)
}

func parseRunQuery(r *stdhttp.Request) (domain.RunInput, error) {
	q := r.URL.Query()

	in := domain.RunInput{
		Username: q.Get("username"),
		Limit:    5,
		Mock:     true,
	}
	if in.Username == "" {
		return in, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "username is required"), "username")
	}

	if v := q.Get("max_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return in, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "max_results must be a non-negative integer"), "max_results")
		}
		in.Limit = n
	}
	if v := q.Get("max_comments"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return in, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "max_comments must be a positive integer"), "max_comments")
		}
		in.MaxComments = n
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
	if in.StartTime.IsZero() != in.EndTime.IsZero() {
		in.StartTime = time.Time{}
		in.EndTime = time.Time{}
	}

	return in, nil
}

func parseStamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, perr.InvalidArgf("bad timestamp %q", s)
}
