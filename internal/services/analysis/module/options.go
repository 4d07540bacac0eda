package module

import (
	"github.com/santiagozevallosq/sentidata-v2/internal/platform/config"
)

// Options controls classifier credentials and model selection
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
}

// FromConfig reads SERVICE_OPENAI_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	oc := cfg.Prefix("SERVICE_OPENAI_")
	return Options{
		APIKey:  oc.MayString("API_KEY", ""),
		BaseURL: oc.MayString("BASE_URL", ""),
		Model:   oc.MayString("MODEL", ""),
	}
}
