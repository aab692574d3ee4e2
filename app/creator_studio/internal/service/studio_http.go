package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/transport/http"
)

// RegisterStudioHTTPServer 注册 /api/v1 路由
func RegisterStudioHTTPServer(s *http.Server, svc *StudioService) {
	r := s.Route("/api/v1")
	r.POST("/pitch", bodyHandler(OperationPitch, svc.Pitch))
	r.POST("/fit", bodyHandler(OperationFit, svc.Fit))
	r.POST("/promotion-kit", bodyHandler(OperationPromotionKit, svc.PromotionKit))
	r.POST("/audience-insights", bodyHandler(OperationAudience, svc.AudienceInsights))
	r.POST("/release-schedule", bodyHandler(OperationSchedule, svc.ReleaseSchedule))
	r.POST("/video-cuts", bodyHandler(OperationVideoCuts, svc.VideoCuts))
	r.POST("/distribution", bodyHandler(OperationDistribution, svc.Distribution))
	r.GET("/trends", langHandler(OperationTrends, svc.Trends))
	r.POST("/thumbnail", bodyHandler(OperationThumbnail, svc.Thumbnail))
	r.POST("/video-analysis", bodyHandler(OperationVideoAnalysis, svc.VideoAnalysis))
	r.GET("/checklist", checklistHandler(svc.Checklist))
}

// bodyHandler 解析 JSON 请求体后经过中间件链调用服务方法
func bodyHandler[Req, Reply any](operation string, call func(context.Context, *Req) (*Reply, error)) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in Req
		if err := ctx.Bind(&in); err != nil {
			return errors.BadRequest("INVALID_BODY", err.Error())
		}
		http.SetOperation(ctx, operation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(*Req))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

// langHandler GET 接口，语言取自 ?lang=
func langHandler[Reply any](operation string, call func(context.Context, string) (*Reply, error)) http.HandlerFunc {
	return func(ctx http.Context) error {
		lang := ctx.Query().Get("lang")
		http.SetOperation(ctx, operation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(string))
		})
		out, err := h(ctx, lang)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

// checklistHandler checked 支持逗号分隔或重复参数
func checklistHandler(call func(context.Context, *ChecklistReq) (*ChecklistReply, error)) http.HandlerFunc {
	return func(ctx http.Context) error {
		q := ctx.Query()
		in := &ChecklistReq{Lang: q.Get("lang")}
		for _, v := range q["checked"] {
			for _, part := range strings.Split(v, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				id, err := strconv.Atoi(part)
				if err != nil {
					return errors.BadRequest("INVALID_ARGUMENT", "checked must be a list of item ids")
				}
				in.Checked = append(in.Checked, id)
			}
		}
		http.SetOperation(ctx, OperationChecklist)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(*ChecklistReq))
		})
		out, err := h(ctx, in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}
