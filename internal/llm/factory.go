package llm

import (
	"context"
	"fmt"
)

// NewClient builds the client for cfg.Provider.
func NewClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg, observer)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
