package factory

import (
	"context"
	"fmt"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/config"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider/gemini"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider/openai"
)

// NewProvider 根据配置创建 LLM 后端
func NewProvider(ctx context.Context, cfg config.LLMConfig) (provider.Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s api key is missing", cfg.Provider)
	}

	switch cfg.Provider {
	case "", config.ProviderOpenAI:
		c, err := openai.NewClient(ctx, openai.Config{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.StrategicModel,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil

	case config.ProviderGemini:
		c, err := gemini.NewClient(ctx, gemini.Config{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.StrategicModel,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
