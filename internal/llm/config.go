// Package llm wraps the Gemini API behind a small client interface used for resume extraction.
package llm

// ModelTier selects how capable (and how costly) a model call is
type ModelTier string

const (
	// TierLite trades accuracy for latency; fine for short, clean documents
	TierLite ModelTier = "lite"
	// TierStandard is used for resume extraction by default
	TierStandard ModelTier = "standard"
)

// Provider names an LLM backend
type Provider string

// ProviderGemini is the only supported provider
const ProviderGemini Provider = "gemini"

// Config maps model tiers to provider model names
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the Gemini models used when nothing is overridden
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// NewConfig returns the default config with the standard tier replaced by model
// when model is non-empty.
func NewConfig(model string) *Config {
	if model == "" {
		return DefaultConfig()
	}
	return DefaultConfig().WithModel(TierStandard, model)
}

// GetModel returns the model name for tier, falling back to standard then lite.
// An empty string means nothing is configured.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok && model != "" {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of c with tier mapped to model
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Provider: c.Provider, Models: models}
}
