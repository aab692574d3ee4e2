package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/config"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/logger"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/model"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider/factory"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search"
	searchfactory "github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search/factory"
)

// FallbackEvent 模型回复无法解析、返回兜底值时的记录
type FallbackEvent struct {
	Op  Operation
	Raw string
	Err error
}

// FallbackObserver 兜底回调
type FallbackObserver func(FallbackEvent)

// LinkFetcher 抓取链接正文摘要
type LinkFetcher func(ctx context.Context, link string) (string, error)

// Engine 内容工作室的 LLM 请求引擎，构造后只读，可并发使用
type Engine struct {
	provider       provider.Provider
	strategicModel string
	efficientModel string
	temperature    float32
	timeout        time.Duration
	trendQuery     string

	searcher   search.Searcher
	fetchLink  LinkFetcher
	onFallback FallbackObserver
	log        *logrus.Logger
}

// Option 引擎可选项
type Option func(*Engine)

// WithSearcher 趋势报告附带搜索结果
func WithSearcher(s search.Searcher) Option {
	return func(e *Engine) { e.searcher = s }
}

// WithLinkFetcher 推介与受众分析附带链接正文
func WithLinkFetcher(f LinkFetcher) Option {
	return func(e *Engine) { e.fetchLink = f }
}

// WithFallbackObserver 注册兜底回调
func WithFallbackObserver(fn FallbackObserver) Option {
	return func(e *Engine) { e.onFallback = fn }
}

// WithLogger 替换默认的全局日志
func WithLogger(l *logrus.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine 按配置创建 provider 与可选的增强组件
func NewEngine(ctx context.Context, cfg *config.Config, opts ...Option) (*Engine, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	p, err := factory.NewProvider(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	var base []Option
	if cfg.Search.Provider != "" {
		searcher, err := searchfactory.NewSearcher(cfg.Search)
		if err != nil {
			return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
		}
		base = append(base, WithSearcher(searcher))
	}
	if cfg.Enrich.FetchLinks {
		base = append(base, WithLinkFetcher(ReadabilityFetcher(cfg.Enrich.FetchTimeout)))
	}
	return New(p, cfg, append(base, opts...)...)
}

// New 使用已有的 provider 创建引擎
func New(p provider.Provider, cfg *config.Config, opts ...Option) (*Engine, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &ConfigurationError{Key: "provider"}
	}

	e := &Engine{
		provider:       p,
		strategicModel: cfg.LLM.StrategicModel,
		efficientModel: cfg.LLM.EfficientModel,
		temperature:    cfg.LLM.Temperature,
		timeout:        cfg.LLM.Timeout,
		trendQuery:     cfg.Search.TrendQuery,
		log:            logger.Log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func validate(cfg *config.Config) error {
	switch {
	case cfg == nil:
		return &ConfigurationError{Key: "config"}
	case strings.TrimSpace(cfg.LLM.APIKey) == "":
		return &ConfigurationError{Key: "llm.api_key"}
	case cfg.LLM.StrategicModel == "":
		return &ConfigurationError{Key: "llm.strategic_model"}
	case cfg.LLM.EfficientModel == "":
		return &ConfigurationError{Key: "llm.efficient_model"}
	}
	return nil
}

// ModelFor 返回操作默认使用的模型
func (e *Engine) ModelFor(op Operation) string {
	if policyFor(op).Tier == TierEfficient {
		return e.efficientModel
	}
	return e.strategicModel
}

// execute 按操作策略发送请求；遇到限流且当前不是 efficient 模型时，改用 efficient 模型重试一次
func (e *Engine) execute(ctx context.Context, op Operation, locale model.Locale, prompt string) (string, error) {
	pol := policyFor(op)
	req := &provider.Request{
		Model:       e.ModelFor(op),
		Prompt:      prompt,
		Temperature: e.temperature,
		MaxTokens:   pol.MaxTokens,
		JSON:        pol.JSON,
	}
	if pol.Temperature > 0 {
		req.Temperature = pol.Temperature
	}
	if pol.JSON {
		req.System = templatesFor(locale).jsonSystem
	}

	entry := e.log.WithFields(logrus.Fields{
		"call_id": uuid.NewString(),
		"op":      op,
		"lang":    locale,
	})

	content, err := e.attempt(ctx, req)
	if err == nil {
		entry.WithField("model", req.Model).Debugf("LLM 调用成功，回复 %d 字节", len(content))
		return content, nil
	}
	if !provider.IsRateLimited(err) || req.Model == e.efficientModel {
		entry.WithField("model", req.Model).Errorf("LLM 调用失败: %v", err)
		return "", &ProviderError{Op: op, Model: req.Model, Err: err}
	}

	entry.WithField("model", req.Model).Warnf("模型被限流，改用 %s 重试: %v", e.efficientModel, err)
	retry := *req
	retry.Model = e.efficientModel
	content, err = e.attempt(ctx, &retry)
	if err != nil {
		entry.WithField("model", retry.Model).Errorf("降级重试失败: %v", err)
		return "", &ProviderError{Op: op, Model: retry.Model, Err: err}
	}
	entry.WithField("model", retry.Model).Debugf("降级重试成功，回复 %d 字节", len(content))
	return content, nil
}

func (e *Engine) attempt(ctx context.Context, req *provider.Request) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	return e.provider.Complete(ctx, req)
}

// fallback 记录兜底并通知观察者
func (e *Engine) fallback(op Operation, raw string, err error) {
	e.log.WithFields(logrus.Fields{
		"op":      op,
		"snippet": summarizeSnippet(raw),
	}).Warnf("模型回复无法解析，返回兜底结果: %v", err)
	if e.onFallback != nil {
		e.onFallback(FallbackEvent{Op: op, Raw: raw, Err: err})
	}
}

// normalizeLocale 空值或无法识别的语言按英文处理
func normalizeLocale(l model.Locale) model.Locale {
	if parsed, ok := model.ParseLocale(string(l)); ok {
		return parsed
	}
	return model.LocaleEN
}
