package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider"
)

// Config Gemini 接口配置
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client Gemini API 客户端
type Client struct {
	models       contentGenerator
	defaultModel string
}

// Ensure Client implements provider.Provider
var _ provider.Provider = (*Client)(nil)

// NewClient 创建一个新的 Gemini 客户端
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return &Client{models: client.Models, defaultModel: cfg.Model}, nil
}

// Complete implements provider.Provider
func (c *Client) Complete(ctx context.Context, req *provider.Request) (string, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = c.defaultModel
	}

	gc := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSON {
		gc.ResponseMIMEType = "application/json"
	}
	if req.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, modelName, genai.Text(req.Prompt), gc)
	if err != nil {
		if rateLimited(err) {
			return "", fmt.Errorf("gemini %s: %w: %w", modelName, provider.ErrRateLimited, err)
		}
		return "", fmt.Errorf("gemini %s: %w", modelName, err)
	}
	if resp == nil {
		return "", nil
	}
	return strings.TrimSpace(resp.Text()), nil
}

// rateLimited 只认 APIError 的 429 或 RESOURCE_EXHAUSTED
func rateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == "RESOURCE_EXHAUSTED"
	}
	return false
}
