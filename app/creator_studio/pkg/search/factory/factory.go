package factory

import (
	"fmt"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/config"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search/searxng"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search/tavily"
)

// NewSearcher 根据配置创建搜索实例
func NewSearcher(cfg config.SearchConfig) (search.Searcher, error) {
	switch cfg.Provider {
	case "tavily":
		if cfg.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Tavily.APIKey, 0), nil

	case "searxng":
		if cfg.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		c, err := searxng.NewClient(cfg.SearXNG.BaseURL, cfg.SearXNG.Timeout)
		if err != nil {
			return nil, err
		}
		return c, nil

	case "":
		return nil, fmt.Errorf("search provider not configured")

	default:
		return nil, fmt.Errorf("unknown search provider: %s", cfg.Provider)
	}
}
