package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/creator_studio/app/creator_studio/internal/usecase"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/checklist"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/model"
)

const (
	OperationPitch         = "/studio.v1.Studio/Pitch"
	OperationFit           = "/studio.v1.Studio/Fit"
	OperationPromotionKit  = "/studio.v1.Studio/PromotionKit"
	OperationAudience      = "/studio.v1.Studio/AudienceInsights"
	OperationSchedule      = "/studio.v1.Studio/ReleaseSchedule"
	OperationVideoCuts     = "/studio.v1.Studio/VideoCuts"
	OperationDistribution  = "/studio.v1.Studio/Distribution"
	OperationTrends        = "/studio.v1.Studio/Trends"
	OperationThumbnail     = "/studio.v1.Studio/Thumbnail"
	OperationVideoAnalysis = "/studio.v1.Studio/VideoAnalysis"
	OperationChecklist     = "/studio.v1.Studio/Checklist"
)

type PitchReq struct {
	Lang         string `json:"lang"`
	AuthorName   string `json:"author_name"`
	ContentTitle string `json:"content_title"`
	Category     string `json:"category"`
	Style        string `json:"style"`
	Link         string `json:"link"`
}

type PitchReply struct {
	Pitch string `json:"pitch"`
}

type FitReq struct {
	Lang        string `json:"lang"`
	Description string `json:"description"`
}

type AudienceReq struct {
	Lang  string `json:"lang"`
	Link  string `json:"link"`
	Title string `json:"title"`
}

type ScheduleReq struct {
	Lang  string `json:"lang"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

type ScheduleReply struct {
	Events []model.ScheduleEvent `json:"events"`
}

type VideoCutsReq struct {
	Lang        string `json:"lang"`
	Description string `json:"description"`
}

type VideoCutsReply struct {
	Suggestions []model.VideoSuggestion `json:"suggestions"`
}

type DistributionReq struct {
	Lang  string `json:"lang"`
	Title string `json:"title"`
}

type DistributionReply struct {
	Formats []model.DistributionFormat `json:"formats"`
}

type ThumbnailReq struct {
	Lang   string `json:"lang"`
	Prompt string `json:"prompt"`
}

type ThumbnailReply struct {
	URL string `json:"url"`
}

type VideoAnalysisReq struct {
	Lang    string `json:"lang"`
	Content string `json:"content"`
	Source  string `json:"source"`
	Mode    string `json:"mode"`
}

// ChecklistReq 通过 GET /api/v1/checklist?lang=pt&checked=1,3 传入
type ChecklistReq struct {
	Lang    string `json:"lang"`
	Checked []int  `json:"checked"`
}

type ChecklistReply struct {
	Items    []checklist.Item `json:"items"`
	Progress int              `json:"progress"`
}

// StudioService 内容工作室 HTTP 服务
type StudioService struct {
	uc  *usecase.StudioUseCase
	log *log.Helper
}

func NewStudioService(uc *usecase.StudioUseCase, logger log.Logger) *StudioService {
	return &StudioService{uc: uc, log: log.NewHelper(logger)}
}

func parseLocale(lang string) (model.Locale, error) {
	locale, ok := model.ParseLocale(lang)
	if !ok {
		return "", errors.BadRequest("INVALID_LANG", "lang must be pt or en")
	}
	return locale, nil
}

func (s *StudioService) Pitch(ctx context.Context, req *PitchReq) (*PitchReply, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	pitch, err := s.uc.Pitch(ctx, pitchRequest(req), locale)
	if err != nil {
		return nil, err
	}
	return &PitchReply{Pitch: pitch}, nil
}

func (s *StudioService) Fit(ctx context.Context, req *FitReq) (*model.VibeAnalysis, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	out, err := s.uc.Fit(ctx, req.Description, locale)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudioService) PromotionKit(ctx context.Context, req *PitchReq) (*model.PromotionKit, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	out, err := s.uc.PromotionKit(ctx, pitchRequest(req), locale)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudioService) AudienceInsights(ctx context.Context, req *AudienceReq) (*model.AudienceInsights, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	out, err := s.uc.AudienceInsights(ctx, req.Link, req.Title, locale)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudioService) ReleaseSchedule(ctx context.Context, req *ScheduleReq) (*ScheduleReply, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	events, err := s.uc.ReleaseSchedule(ctx, req.Title, req.Date, locale)
	if err != nil {
		return nil, err
	}
	return &ScheduleReply{Events: events}, nil
}

func (s *StudioService) VideoCuts(ctx context.Context, req *VideoCutsReq) (*VideoCutsReply, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	cuts, err := s.uc.VideoCuts(ctx, req.Description, locale)
	if err != nil {
		return nil, err
	}
	return &VideoCutsReply{Suggestions: cuts}, nil
}

func (s *StudioService) Distribution(ctx context.Context, req *DistributionReq) (*DistributionReply, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	formats, err := s.uc.Distribution(ctx, req.Title, locale)
	if err != nil {
		return nil, err
	}
	return &DistributionReply{Formats: formats}, nil
}

func (s *StudioService) Trends(ctx context.Context, lang string) (*model.ContentTrendReport, error) {
	locale, err := parseLocale(lang)
	if err != nil {
		return nil, err
	}
	out, err := s.uc.Trends(ctx, locale)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudioService) Thumbnail(ctx context.Context, req *ThumbnailReq) (*ThumbnailReply, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	url, err := s.uc.Thumbnail(ctx, req.Prompt, locale)
	if err != nil {
		return nil, err
	}
	return &ThumbnailReply{URL: url}, nil
}

func (s *StudioService) VideoAnalysis(ctx context.Context, req *VideoAnalysisReq) (*model.VideoAnalysis, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	out, err := s.uc.VideoAnalysis(ctx, model.VideoAnalysisRequest{
		Content: req.Content,
		Source:  model.ContentSource(req.Source),
		Mode:    model.ContentMode(req.Mode),
	}, locale)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudioService) Checklist(ctx context.Context, req *ChecklistReq) (*ChecklistReply, error) {
	locale, err := parseLocale(req.Lang)
	if err != nil {
		return nil, err
	}
	items := s.uc.Checklist(locale, req.Checked)
	return &ChecklistReply{Items: items, Progress: checklist.Progress(items)}, nil
}

func pitchRequest(req *PitchReq) model.PitchRequest {
	return model.PitchRequest{
		AuthorName:   req.AuthorName,
		ContentTitle: req.ContentTitle,
		Category:     model.Category(req.Category),
		Style:        req.Style,
		Link:         req.Link,
	}
}
