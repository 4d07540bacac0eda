// Package twitter provides a resilient Twitter (X) API v2 client for the collector
package twitter

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "github.com/santiagozevallosq/sentidata-v2/internal/platform/errors"
	"github.com/santiagozevallosq/sentidata-v2/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.twitter.com"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "sentidata-collector"
	defaultMaxRetry  = 5
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// App-only bearer token. Empty means every call fails with 401,
	// callers are expected to gate on configuration before construction
	BearerToken string

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal Twitter v2 REST client with retry and rate limit handling
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("twitter"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Do issues a request with auth headers, retries, and rate limit handling
func (c *Client) Do(ctx context.Context, method, path string) (*http.Response, error) {
	url := c.opts.BaseURL + path
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "twitter new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")
		if c.opts.BearerToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.opts.BearerToken)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "twitter do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("twitter transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		// Always log lightweight response metadata
		rem, reset, retryAfter := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("rate_remaining", rem).
			Time("rate_reset", reset).
			Int("retry_after_s", retryAfter).
			Msg("twitter http response")

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			return resp, nil
		case http.StatusNotFound:
			// lookup misses surface as-is so endpoints can map them
			return resp, nil
		case http.StatusTooManyRequests:
			// Respect Retry-After and x-rate-limit-reset when present
			wait := computeWait(rem, reset, retryAfter, c.now())
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "twitter rate limited")
			}
			c.log.Warn().Dur("sleep", wait).Msg("twitter rate limited backing off")
			_ = drainAndClose(resp.Body)
			c.sleep(wait)
			attempts++
			continue
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// transient server side
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "twitter transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("twitter transient error retrying")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		case http.StatusUnauthorized, http.StatusForbidden:
			_ = drainAndClose(resp.Body)
			return nil, perr.Newf(perr.ErrorCodeRemote, "twitter auth rejected status %d", resp.StatusCode)
		default:
			// read a small tail for diagnostics then return
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeRemote, "twitter unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}
