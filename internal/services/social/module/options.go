package module

import (
	"time"

	"github.com/santiagozevallosq/sentidata-v2/internal/platform/config"
)

// Options controls social behavior and twitter client settings
type Options struct {
	BearerToken string
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MaxRetries  int
	RetryBase   time.Duration
}

// FromConfig reads SERVICE_TWITTER_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	tc := cfg.Prefix("SERVICE_TWITTER_")
	return Options{
		BearerToken: tc.MayString("BEARER_TOKEN", ""),
		BaseURL:     tc.MayString("BASE_URL", ""),
		UserAgent:   tc.MayString("UA", "sentidata-collector"),
		Timeout:     tc.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries:  tc.MayInt("MAX_RETRIES", 5),
		RetryBase:   tc.MayDuration("RETRY_BASE", 500*time.Millisecond),
	}
}
