package engine

import (
	"errors"
	"fmt"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider"
)

// ConfigurationError 构造引擎时缺少必需配置，不会重试
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("engine config: %s is required", e.Key)
}

// ProviderError 调用 LLM 后端失败（包括降级重试也失败的情况）
type ProviderError struct {
	Op    Operation
	Model string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s via %s: %v", e.Op, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRateLimited 判断错误链中是否包含限流信号
func IsRateLimited(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return provider.IsRateLimited(pe.Err)
	}
	return provider.IsRateLimited(err)
}
