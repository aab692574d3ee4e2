package server

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/creator_studio/app/creator_studio/internal/conf"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/config"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/engine"
	studioLogger "github.com/iWorld-y/creator_studio/app/creator_studio/pkg/logger"
)

// NewStudioEngine 初始化内容生成引擎
func NewStudioEngine(c *conf.Studio, logger log.Logger) (*engine.Engine, func(), error) {
	cfg := ToConfig(c)
	cfg.ApplyEnv()
	cfg.Normalize()

	// 初始化日志
	if err := studioLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.NewHelper(logger).Errorf("Failed to init studio logger: %v", err)
		_ = studioLogger.InitLogger("info", "") // 降级处理
	}

	eng, err := engine.NewEngine(context.Background(), cfg)
	if err != nil {
		log.NewHelper(logger).Errorf("Failed to init engine: %v", err)
		return nil, nil, err
	}

	cleanup := func() {
		log.NewHelper(logger).Info("Cleaning up studio engine")
	}
	return eng, cleanup, nil
}

// ToConfig 将 internal/conf.Studio 转换为 pkg/config.Config，缺省的段落保持零值
func ToConfig(c *conf.Studio) *config.Config {
	cfg := &config.Config{}
	if c == nil {
		return cfg
	}
	if l := c.Llm; l != nil {
		cfg.LLM = config.LLMConfig{
			Provider:       l.Provider,
			BaseURL:        l.BaseUrl,
			APIKey:         l.ApiKey,
			StrategicModel: l.StrategicModel,
			EfficientModel: l.EfficientModel,
			Temperature:    l.Temperature,
			Timeout:        parseDuration(l.Timeout),
		}
	}
	if s := c.Search; s != nil {
		cfg.Search.Provider = s.Provider
		cfg.Search.TrendQuery = s.TrendQuery
		if s.Tavily != nil {
			cfg.Search.Tavily.APIKey = s.Tavily.ApiKey
		}
		if s.Searxng != nil {
			cfg.Search.SearXNG = config.SearXNGConfig{
				BaseURL: s.Searxng.BaseUrl,
				Timeout: int(s.Searxng.Timeout),
			}
		}
	}
	if e := c.Enrich; e != nil {
		cfg.Enrich = config.EnrichConfig{
			FetchLinks:   e.FetchLinks,
			FetchTimeout: parseDuration(e.FetchTimeout),
		}
	}
	if lg := c.Log; lg != nil {
		cfg.Log = config.LogConfig{Level: lg.Level, File: lg.File}
	}
	if cc := c.Concurrency; cc != nil {
		cfg.Concurrency = config.ConcurrencyConfig{QPS: int(cc.Qps), RPM: int(cc.Rpm)}
	}
	return cfg
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
