package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/checklist"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/engine"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/model"
)

// Generator 内容生成能力，由 engine.Engine 实现
type Generator interface {
	GeneratePitch(ctx context.Context, req model.PitchRequest, locale model.Locale) (string, error)
	AnalyzeFit(ctx context.Context, description string, locale model.Locale) (model.VibeAnalysis, error)
	GeneratePromotionKit(ctx context.Context, req model.PitchRequest, locale model.Locale) (model.PromotionKit, error)
	GenerateAudienceInsights(ctx context.Context, link, title string, locale model.Locale) (model.AudienceInsights, error)
	GenerateReleaseSchedule(ctx context.Context, title, date string, locale model.Locale) ([]model.ScheduleEvent, error)
	SuggestVideoCuts(ctx context.Context, description string, locale model.Locale) ([]model.VideoSuggestion, error)
	PrepareDistributionConfig(ctx context.Context, title string, locale model.Locale) ([]model.DistributionFormat, error)
	GetContentTrends(ctx context.Context, locale model.Locale) (model.ContentTrendReport, error)
	GenerateThumbnail(ctx context.Context, prompt string, locale model.Locale) (string, error)
	AnalyzeVideoStrategy(ctx context.Context, req model.VideoAnalysisRequest, locale model.Locale) (model.VideoAnalysis, error)
}

// StudioUseCase 内容工作室业务逻辑：入参校验与错误映射
type StudioUseCase struct {
	gen Generator
	log *log.Helper
}

// NewStudioUseCase 创建内容工作室业务逻辑实例
func NewStudioUseCase(gen Generator, logger log.Logger) *StudioUseCase {
	return &StudioUseCase{gen: gen, log: log.NewHelper(logger)}
}

// Pitch 生成推介邮件
func (uc *StudioUseCase) Pitch(ctx context.Context, req model.PitchRequest, locale model.Locale) (string, error) {
	if err := required("author_name", req.AuthorName, "content_title", req.ContentTitle); err != nil {
		return "", err
	}
	req.Category = model.ParseCategory(string(req.Category))
	out, err := uc.gen.GeneratePitch(ctx, req, locale)
	return out, uc.mapErr(err)
}

// Fit 契合度分析
func (uc *StudioUseCase) Fit(ctx context.Context, description string, locale model.Locale) (model.VibeAnalysis, error) {
	if err := required("description", description); err != nil {
		return model.VibeAnalysis{}, err
	}
	out, err := uc.gen.AnalyzeFit(ctx, description, locale)
	return out, uc.mapErr(err)
}

// PromotionKit 推广素材包
func (uc *StudioUseCase) PromotionKit(ctx context.Context, req model.PitchRequest, locale model.Locale) (model.PromotionKit, error) {
	if err := required("content_title", req.ContentTitle); err != nil {
		return model.PromotionKit{}, err
	}
	req.Category = model.ParseCategory(string(req.Category))
	out, err := uc.gen.GeneratePromotionKit(ctx, req, locale)
	return out, uc.mapErr(err)
}

// AudienceInsights 受众洞察
func (uc *StudioUseCase) AudienceInsights(ctx context.Context, link, title string, locale model.Locale) (model.AudienceInsights, error) {
	if err := required("title", title); err != nil {
		return model.AudienceInsights{}, err
	}
	out, err := uc.gen.GenerateAudienceInsights(ctx, link, title, locale)
	return out, uc.mapErr(err)
}

// ReleaseSchedule 发布计划
func (uc *StudioUseCase) ReleaseSchedule(ctx context.Context, title, date string, locale model.Locale) ([]model.ScheduleEvent, error) {
	if err := required("title", title, "date", date); err != nil {
		return nil, err
	}
	out, err := uc.gen.GenerateReleaseSchedule(ctx, title, date, locale)
	return out, uc.mapErr(err)
}

// VideoCuts 剪辑点建议
func (uc *StudioUseCase) VideoCuts(ctx context.Context, description string, locale model.Locale) ([]model.VideoSuggestion, error) {
	if err := required("description", description); err != nil {
		return nil, err
	}
	out, err := uc.gen.SuggestVideoCuts(ctx, description, locale)
	return out, uc.mapErr(err)
}

// Distribution 多平台分发配置
func (uc *StudioUseCase) Distribution(ctx context.Context, title string, locale model.Locale) ([]model.DistributionFormat, error) {
	if err := required("title", title); err != nil {
		return nil, err
	}
	out, err := uc.gen.PrepareDistributionConfig(ctx, title, locale)
	return out, uc.mapErr(err)
}

// Trends 内容趋势
func (uc *StudioUseCase) Trends(ctx context.Context, locale model.Locale) (model.ContentTrendReport, error) {
	out, err := uc.gen.GetContentTrends(ctx, locale)
	return out, uc.mapErr(err)
}

// Thumbnail 缩略图地址
func (uc *StudioUseCase) Thumbnail(ctx context.Context, prompt string, locale model.Locale) (string, error) {
	if err := required("prompt", prompt); err != nil {
		return "", err
	}
	out, err := uc.gen.GenerateThumbnail(ctx, prompt, locale)
	return out, uc.mapErr(err)
}

// VideoAnalysis 视频策略分析
func (uc *StudioUseCase) VideoAnalysis(ctx context.Context, req model.VideoAnalysisRequest, locale model.Locale) (model.VideoAnalysis, error) {
	if err := required("content", req.Content); err != nil {
		return model.VideoAnalysis{}, err
	}
	switch req.Source {
	case "", model.SourceLink, model.SourceFile:
	default:
		return model.VideoAnalysis{}, errors.BadRequest("INVALID_ARGUMENT", "source must be link or file")
	}
	switch req.Mode {
	case "", model.ModeMusic, model.ModeShort, model.ModeLong, model.ModeAd:
	default:
		return model.VideoAnalysis{}, errors.BadRequest("INVALID_ARGUMENT", "mode must be music, short, long or ad")
	}
	out, err := uc.gen.AnalyzeVideoStrategy(ctx, req, locale)
	return out, uc.mapErr(err)
}

// Checklist 发布前检查清单，checked 中的 ID 标记为已完成
func (uc *StudioUseCase) Checklist(locale model.Locale, checked []int) []checklist.Item {
	return checklist.Check(checklist.Default(locale), checked...)
}

// mapErr 将引擎错误转换为带 HTTP 语义的 kratos 错误
func (uc *StudioUseCase) mapErr(err error) error {
	if err == nil {
		return nil
	}
	var pe *engine.ProviderError
	switch {
	case engine.IsRateLimited(err):
		uc.log.Warnf("provider rate limited: %v", err)
		return errors.New(429, "PROVIDER_RATE_LIMITED", err.Error()).WithCause(err)
	case stderrors.Is(err, context.DeadlineExceeded):
		uc.log.Warnf("provider timeout: %v", err)
		return errors.New(504, "PROVIDER_TIMEOUT", err.Error()).WithCause(err)
	case stderrors.As(err, &pe):
		uc.log.Errorf("provider failed: %v", err)
		return errors.New(502, "PROVIDER_ERROR", err.Error()).WithCause(err)
	default:
		return err
	}
}

// required 按 name, value 成对检查必填字段
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return errors.BadRequest("INVALID_ARGUMENT", pairs[i]+" is required")
		}
	}
	return nil
}
