package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	aclopenai "github.com/cloudwego/eino-ext/libs/acl/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	goopenai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider"
)

// Config OpenAI 兼容接口配置
type Config struct {
	BaseURL string
	APIKey  string
	Model   string // 默认模型，每次请求可覆盖
	Timeout time.Duration
}

// Client 基于 eino ChatModel 的 OpenAI 兼容客户端
type Client struct {
	text model.BaseChatModel
	json model.BaseChatModel
}

// Ensure Client implements provider.Provider
var _ provider.Provider = (*Client)(nil)

// NewClient 创建客户端。JSON 模式需要在 ChatModel 配置层设置，因此分别持有两个实例
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	text, err := newChatModel(ctx, cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	jsonModel, err := newChatModel(ctx, cfg, &aclopenai.ChatCompletionResponseFormat{
		Type: aclopenai.ChatCompletionResponseFormatTypeJSONObject,
	})
	if err != nil {
		return nil, fmt.Errorf("init json chat model: %w", err)
	}
	return &Client{text: text, json: jsonModel}, nil
}

func newChatModel(ctx context.Context, cfg Config, format *aclopenai.ChatCompletionResponseFormat) (model.BaseChatModel, error) {
	cm, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		BaseURL:        cfg.BaseURL,
		APIKey:         cfg.APIKey,
		Model:          cfg.Model,
		Timeout:        cfg.Timeout,
		HTTPClient:     &http.Client{Timeout: cfg.Timeout},
		ResponseFormat: format,
	})
	if err != nil {
		return nil, err
	}
	return cm, nil
}

// Complete implements provider.Provider
func (c *Client) Complete(ctx context.Context, req *provider.Request) (string, error) {
	cm := c.text
	if req.JSON {
		cm = c.json
	}

	var messages []*schema.Message
	if req.System != "" {
		messages = append(messages, schema.SystemMessage(req.System))
	}
	messages = append(messages, schema.UserMessage(req.Prompt))

	opts := []model.Option{model.WithTemperature(req.Temperature)}
	if req.Model != "" {
		opts = append(opts, model.WithModel(req.Model))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}

	resp, err := cm.Generate(ctx, messages, opts...)
	if err != nil {
		return "", classify(err)
	}
	if resp == nil {
		return "", nil
	}
	return strings.TrimSpace(resp.Content), nil
}

// classify 按 go-openai 错误中的 HTTP 状态码识别限流
func classify(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", provider.ErrRateLimited, err)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", provider.ErrRateLimited, err)
	}
	return err
}
