package server

import (
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/auth/jwt"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/iWorld-y/creator_studio/app/creator_studio/internal/conf"
	"github.com/iWorld-y/creator_studio/app/creator_studio/internal/service"
)

func NewHTTPServer(c *conf.Server, auth *conf.Auth, studio *conf.Studio, s *service.StudioService, logger log.Logger) *http.Server {
	mws := []middleware.Middleware{
		recovery.Recovery(),
		logging.Server(logger),
	}
	// 配置了 jwt_key 才启用鉴权
	if auth != nil && auth.JwtKey != "" {
		key := []byte(auth.JwtKey)
		mws = append(mws, jwt.Server(func(token *jwtv5.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithSigningMethod(jwtv5.SigningMethodHS256)))
	}
	if studio != nil && studio.Concurrency != nil && studio.Concurrency.Rpm > 0 {
		mws = append(mws, RateLimit(int(studio.Concurrency.Rpm), int(studio.Concurrency.Qps)))
	}

	var opts = []http.ServerOption{
		http.Middleware(mws...),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	service.RegisterStudioHTTPServer(srv, s)

	srv.HandleFunc("/healthz", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return srv
}
