package engine

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/model"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search"
)

const (
	defaultFitScore   = 50
	defaultVideoScore = 5

	// PlaceholderThumbnail 模型没有给出图片地址时返回的占位图
	PlaceholderThumbnail = "https://placehold.co/1280x720/png?text=Thumbnail"
)

var errNoURL = errors.New("no url in reply")

var urlPattern = regexp.MustCompile(`https?://[^\s"'<>()\[\]{}]+`)

// fitReply 分数用指针区分缺失与 0
type fitReply struct {
	Score    *float64 `json:"score"`
	Feedback string   `json:"feedback"`
}

// videoReply 外层 score 覆盖内嵌结构的同名字段
type videoReply struct {
	model.VideoAnalysis
	Score *float64 `json:"score"`
}

// GeneratePitch 生成推介邮件正文
func (e *Engine) GeneratePitch(ctx context.Context, req model.PitchRequest, locale model.Locale) (string, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	task := fmt.Sprintf(t.pitch, req.AuthorName, req.ContentTitle, req.Category, req.Style, req.Link)
	prompt := t.compose(task, e.linkContext(ctx, t, req.Link), "")

	content, err := e.execute(ctx, OpGeneratePitch, locale, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// AnalyzeFit 评估内容与频道的契合度，分数缺失或越界时取 50
func (e *Engine) AnalyzeFit(ctx context.Context, description string, locale model.Locale) (model.VibeAnalysis, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	prompt := t.compose(fmt.Sprintf(t.fit, description), "", fitSchema)

	content, err := e.execute(ctx, OpAnalyzeFit, locale, prompt)
	if err != nil {
		return model.VibeAnalysis{}, err
	}

	reply, err := DecodeJSON[fitReply](content)
	if err != nil {
		e.fallback(OpAnalyzeFit, content, err)
		return model.VibeAnalysis{Score: defaultFitScore}, nil
	}
	return model.VibeAnalysis{
		Score:    scoreInRange(reply.Score, 100, defaultFitScore),
		Feedback: strings.TrimSpace(reply.Feedback),
	}, nil
}

// GeneratePromotionKit 生成各平台推广文案
func (e *Engine) GeneratePromotionKit(ctx context.Context, req model.PitchRequest, locale model.Locale) (model.PromotionKit, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	task := fmt.Sprintf(t.kit, req.ContentTitle, req.AuthorName, req.Category, req.Style)
	prompt := t.compose(task, "", kitSchema)

	content, err := e.execute(ctx, OpPromotionKit, locale, prompt)
	if err != nil {
		return emptyKit(), err
	}
	kit, err := DecodeJSON[model.PromotionKit](content)
	if err != nil {
		e.fallback(OpPromotionKit, content, err)
		return emptyKit(), nil
	}
	kit.Hashtags = nonNil(kit.Hashtags)
	kit.Keywords = nonNil(kit.Keywords)
	return kit, nil
}

// GenerateAudienceInsights 生成受众洞察
func (e *Engine) GenerateAudienceInsights(ctx context.Context, link, title string, locale model.Locale) (model.AudienceInsights, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	prompt := t.compose(fmt.Sprintf(t.audience, title, link), e.linkContext(ctx, t, link), audienceSchema)

	content, err := e.execute(ctx, OpAudienceInsights, locale, prompt)
	if err != nil {
		return emptyInsights(), err
	}
	insights, err := DecodeJSON[model.AudienceInsights](content)
	if err != nil {
		e.fallback(OpAudienceInsights, content, err)
		return emptyInsights(), nil
	}
	insights.Alerts = nonNil(insights.Alerts)
	for i := range insights.Alerts {
		insights.Alerts[i].Type = normalizeAlertType(insights.Alerts[i].Type)
	}
	insights.EngagementTips = nonNil(insights.EngagementTips)
	return insights, nil
}

// GenerateReleaseSchedule 生成发布计划，保持模型给出的顺序
func (e *Engine) GenerateReleaseSchedule(ctx context.Context, title, date string, locale model.Locale) ([]model.ScheduleEvent, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	prompt := t.compose(fmt.Sprintf(t.schedule, title, date), "", scheduleSchema)

	content, err := e.execute(ctx, OpReleaseSchedule, locale, prompt)
	if err != nil {
		return []model.ScheduleEvent{}, err
	}
	events, err := decodeList[model.ScheduleEvent](content, "events", "schedule", "plan")
	if err != nil {
		e.fallback(OpReleaseSchedule, content, err)
		return []model.ScheduleEvent{}, nil
	}
	for i := range events {
		events[i].Platform = model.ParsePlatform(string(events[i].Platform))
	}
	return nonNil(events), nil
}

// SuggestVideoCuts 建议短视频剪辑点，每次调用都会重新请求
func (e *Engine) SuggestVideoCuts(ctx context.Context, description string, locale model.Locale) ([]model.VideoSuggestion, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	prompt := t.compose(fmt.Sprintf(t.cuts, description), "", cutsSchema)

	content, err := e.execute(ctx, OpSuggestVideoCuts, locale, prompt)
	if err != nil {
		return []model.VideoSuggestion{}, err
	}
	cuts, err := decodeList[model.VideoSuggestion](content, "suggestions", "cuts")
	if err != nil {
		e.fallback(OpSuggestVideoCuts, content, err)
		return []model.VideoSuggestion{}, nil
	}
	return nonNil(cuts), nil
}

// PrepareDistributionConfig 生成多平台分发配置
func (e *Engine) PrepareDistributionConfig(ctx context.Context, title string, locale model.Locale) ([]model.DistributionFormat, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	prompt := t.compose(fmt.Sprintf(t.distribution, title), "", distributionSchema)

	content, err := e.execute(ctx, OpDistributionConfig, locale, prompt)
	if err != nil {
		return []model.DistributionFormat{}, err
	}
	formats, err := decodeList[model.DistributionFormat](content, "formats", "platforms")
	if err != nil {
		e.fallback(OpDistributionConfig, content, err)
		return []model.DistributionFormat{}, nil
	}
	return nonNil(formats), nil
}

// GetContentTrends 生成内容趋势报告，配置了搜索时附带最新资讯
func (e *Engine) GetContentTrends(ctx context.Context, locale model.Locale) (model.ContentTrendReport, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	prompt := t.compose(t.trends, e.trendContext(ctx, t, locale), trendsSchema)

	content, err := e.execute(ctx, OpContentTrends, locale, prompt)
	if err != nil {
		return emptyTrends(), err
	}
	report, err := DecodeJSON[model.ContentTrendReport](content)
	if err != nil {
		e.fallback(OpContentTrends, content, err)
		return emptyTrends(), nil
	}
	report.TrendingTopics = nonNil(report.TrendingTopics)
	report.TrendingHashtags = nonNil(report.TrendingHashtags)
	report.BestPostingTimes = nonNil(report.BestPostingTimes)
	report.DailyContentSuggestions = nonNil(report.DailyContentSuggestions)
	return report, nil
}

// GenerateThumbnail 请求模型给出缩略图地址，取回复中的第一个 URL
func (e *Engine) GenerateThumbnail(ctx context.Context, prompt string, locale model.Locale) (string, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)

	content, err := e.execute(ctx, OpGenerateThumbnail, locale, t.compose(fmt.Sprintf(t.thumbnail, prompt), "", ""))
	if err != nil {
		return "", err
	}
	if u := ExtractURL(content); u != "" {
		return u, nil
	}
	e.fallback(OpGenerateThumbnail, content, errNoURL)
	return PlaceholderThumbnail, nil
}

// AnalyzeVideoStrategy 分析视频内容策略，分数缺失或越界时取 5
func (e *Engine) AnalyzeVideoStrategy(ctx context.Context, req model.VideoAnalysisRequest, locale model.Locale) (model.VideoAnalysis, error) {
	locale = normalizeLocale(locale)
	t := templatesFor(locale)
	mode := req.Mode
	if mode == "" {
		mode = model.ModeShort
	}
	source := req.Source
	if source == "" {
		source = model.SourceLink
	}
	task := fmt.Sprintf(t.videoAnalysis, mode, source, req.Content)
	extra := ""
	if source == model.SourceLink {
		extra = e.linkContext(ctx, t, req.Content)
	}
	prompt := t.compose(task, extra, videoAnalysisSchema)

	content, err := e.execute(ctx, OpAnalyzeVideoStrategy, locale, prompt)
	if err != nil {
		return emptyVideoAnalysis(), err
	}

	r, err := DecodeJSON[videoReply](content)
	if err != nil {
		e.fallback(OpAnalyzeVideoStrategy, content, err)
		return emptyVideoAnalysis(), nil
	}
	out := r.VideoAnalysis
	out.Score = scoreInRange(r.Score, 10, defaultVideoScore)
	out.Positives = nonNil(out.Positives)
	out.Negatives = nonNil(out.Negatives)
	out.Improvements = nonNil(out.Improvements)
	out.Suggestions = nonNil(out.Suggestions)
	return out, nil
}

// ExtractURL 返回文本中的第一个 http(s) 地址
func ExtractURL(s string) string {
	u := urlPattern.FindString(s)
	return strings.TrimRight(u, ".,;:!?*`")
}

func (e *Engine) linkContext(ctx context.Context, t templates, link string) string {
	link = strings.TrimSpace(link)
	if e.fetchLink == nil || !strings.HasPrefix(link, "http") {
		return ""
	}
	excerpt, err := e.fetchLink(ctx, link)
	if err != nil {
		e.log.WithField("link", link).Warnf("抓取链接正文失败: %v", err)
		return ""
	}
	if excerpt == "" {
		return ""
	}
	return fmt.Sprintf(t.linkContext, excerpt)
}

func (e *Engine) trendContext(ctx context.Context, t templates, locale model.Locale) string {
	if e.searcher == nil {
		return ""
	}
	resp, err := e.searcher.Search(ctx, &search.Request{
		Query:      e.trendQuery,
		Topic:      "news",
		MaxResults: 10,
		Language:   string(locale),
	})
	if err != nil {
		e.log.WithField("query", e.trendQuery).Warnf("趋势搜索失败: %v", err)
		return ""
	}
	headlines := search.Headlines(resp, 8)
	if headlines == "" {
		return ""
	}
	return fmt.Sprintf(t.trendContext, strings.TrimRight(headlines, "\n"))
}

func scoreInRange(v *float64, max int, def int) int {
	if v == nil || *v < 0 || *v > float64(max) {
		return def
	}
	return int(*v + 0.5)
}

func normalizeAlertType(t model.AlertType) model.AlertType {
	switch at := model.AlertType(strings.ToLower(strings.TrimSpace(string(t)))); at {
	case model.AlertViral, model.AlertTiming, model.AlertGrowth:
		return at
	default:
		return model.AlertGrowth
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func emptyKit() model.PromotionKit {
	return model.PromotionKit{Hashtags: []string{}, Keywords: []string{}}
}

func emptyInsights() model.AudienceInsights {
	return model.AudienceInsights{Alerts: []model.AudienceAlert{}, EngagementTips: []string{}}
}

func emptyTrends() model.ContentTrendReport {
	return model.ContentTrendReport{
		TrendingTopics:          []model.TrendingTopic{},
		TrendingHashtags:        []string{},
		BestPostingTimes:        []model.PostingTime{},
		DailyContentSuggestions: []model.ContentSuggestion{},
	}
}

func emptyVideoAnalysis() model.VideoAnalysis {
	return model.VideoAnalysis{
		Score:        defaultVideoScore,
		Positives:    []string{},
		Negatives:    []string{},
		Improvements: []string{},
		Suggestions:  []string{},
	}
}
