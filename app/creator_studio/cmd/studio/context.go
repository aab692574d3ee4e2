package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/creator_studio/app/creator_studio/internal/usecase"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/config"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/engine"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/logger"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/model"
)

type commandContext struct {
	configFlag string
	langFlag   string
	jsonFlag   bool

	// newGenerator 测试中可替换
	newGenerator func(ctx context.Context, cfg *config.Config) (usecase.Generator, error)

	once sync.Once
	gen  usecase.Generator
	err  error
}

func newCommandContext() *commandContext {
	return &commandContext{
		newGenerator: func(ctx context.Context, cfg *config.Config) (usecase.Generator, error) {
			eng, err := engine.NewEngine(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return eng, nil
		},
	}
}

func (c *commandContext) loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	path := strings.TrimSpace(c.configFlag)
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// generator 首次使用时按配置构造引擎，缺少凭证时在发起任何请求前失败
func (c *commandContext) generator(ctx context.Context) (usecase.Generator, error) {
	c.once.Do(func() {
		cfg, err := c.loadConfig()
		if err != nil {
			c.err = err
			return
		}
		// 日志保持输出到 stderr，不干扰 stdout 上的结果
		if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
			logger.Log.SetLevel(lvl)
		}
		c.gen, c.err = c.newGenerator(ctx, cfg)
	})
	return c.gen, c.err
}

func (c *commandContext) locale() (model.Locale, error) {
	l, ok := model.ParseLocale(c.langFlag)
	if !ok {
		return "", fmt.Errorf("unsupported --lang %q (use pt or en)", c.langFlag)
	}
	return l, nil
}
