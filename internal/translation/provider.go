package translation

import (
	"context"
	"fmt"
	"time"
)

// Config holds the primary backend configuration
type Config struct {
	Provider string // "openai", "gemini" or "none"

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiKey   string
	GeminiModel string

	ReadyTimeout       time.Duration // wait bound for a cold backend
	MaxChunkTokens     int           // token budget per model call
	BreakerMaxFailures uint32        // consecutive failures that open the circuit
	BreakerOpenTimeout time.Duration // how long the circuit stays open
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:           ProviderOpenAI,
		ReadyTimeout:       DefaultReadyTimeout,
		MaxChunkTokens:     DefaultMaxChunkTokens,
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: time.Minute,
	}
}

// NewPrimary builds the primary backend described by config: the provider
// client behind a chunker and a circuit breaker, constructed lazily as a
// *Lazy. It returns a nil Backend without error when the provider is "none".
func NewPrimary(config *Config) (Backend, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var factory Factory

	switch config.Provider {
	case ProviderNone, "":
		return nil, nil

	case ProviderOpenAI:
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		factory = func(ctx context.Context) (Backend, error) {
			return NewOpenAI(config.OpenAIKey, config.OpenAIModel, config.OpenAIBaseURL), nil
		}

	case ProviderGemini:
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		factory = func(ctx context.Context) (Backend, error) {
			return NewGemini(ctx, config.GeminiKey, config.GeminiModel)
		}

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}

	var wrapped Factory = func(ctx context.Context) (Backend, error) {
		backend, err := factory(ctx)
		if err != nil {
			return nil, err
		}
		chunked := NewChunked(backend, config.MaxChunkTokens)
		return NewBreaker(chunked, BreakerSettings{
			MaxFailures: config.BreakerMaxFailures,
			OpenTimeout: config.BreakerOpenTimeout,
		}), nil
	}

	return NewLazy(config.Provider, wrapped, config.ReadyTimeout), nil
}
