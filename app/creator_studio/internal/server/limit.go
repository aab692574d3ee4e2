package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/middleware"
	"golang.org/x/time/rate"
)

// RateLimit 入口限流，按每分钟请求数补充令牌，超出时直接返回 429
func RateLimit(rpm, burst int) middleware.Middleware {
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if !limiter.Allow() {
				return nil, errors.New(429, "TOO_MANY_REQUESTS", "studio is busy, retry later")
			}
			return handler(ctx, req)
		}
	}
}
