package provider

import (
	"context"
	"errors"
	"strings"
)

// ErrRateLimited 后端明确识别出限流时返回，可用 errors.Is 判断
var ErrRateLimited = errors.New("rate limited")

// Provider 定义通用的对话补全接口
type Provider interface {
	Complete(ctx context.Context, req *Request) (string, error)
}

// Request 单次对话补全请求
type Request struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	JSON        bool // 要求以 JSON 对象回复
}

// IsRateLimited 判断错误是否为限流 (HTTP 429 或等价信号)。
// 后端能拿到状态码时应包装 ErrRateLimited，文本匹配只兜底常见的错误格式
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "status code: 429") ||
		strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted")
}
