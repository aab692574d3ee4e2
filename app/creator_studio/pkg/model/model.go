package model

import "strings"

// Locale 提示词与回复所使用的语言
type Locale string

const (
	LocalePT Locale = "pt"
	LocaleEN Locale = "en"
)

// ParseLocale 解析语言标识，空值默认为英文
func ParseLocale(s string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en", "en-us":
		return LocaleEN, true
	case "pt", "pt-br":
		return LocalePT, true
	default:
		return "", false
	}
}

// Category 内容类别
type Category string

const (
	CategoryMusic   Category = "music"
	CategoryVideo   Category = "video"
	CategoryPodcast Category = "podcast"
	CategoryPost    Category = "post"
	CategoryOther   Category = "other"
)

// ParseCategory 解析内容类别，无法识别时归为 other
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryMusic, CategoryVideo, CategoryPodcast, CategoryPost:
		return c
	default:
		return CategoryOther
	}
}

// PitchRequest 推介请求
type PitchRequest struct {
	AuthorName   string   `json:"author_name"`
	ContentTitle string   `json:"content_title"`
	Category     Category `json:"category"`
	Style        string   `json:"style"`
	Link         string   `json:"link"`
}

// VibeAnalysis 契合度分析
type VibeAnalysis struct {
	Score    int    `json:"score"` // 0-100
	Feedback string `json:"feedback"`
}

// PromotionKit 推广素材包
type PromotionKit struct {
	YoutubeTitle       string   `json:"youtubeTitle"`
	YoutubeDescription string   `json:"youtubeDescription"`
	InstagramCaption   string   `json:"instagramCaption"`
	TiktokCaption      string   `json:"tiktokCaption"`
	TiktokScript       string   `json:"tiktokScript"`
	TwitterPost        string   `json:"twitterPost"`
	Hashtags           []string `json:"hashtags"`
	Keywords           []string `json:"keywords"`
	LaunchStrategy     string   `json:"launchStrategy"`
}

// AlertType 受众提醒类别
type AlertType string

const (
	AlertViral  AlertType = "viral"
	AlertTiming AlertType = "timing"
	AlertGrowth AlertType = "growth"
)

// AudienceAlert 受众提醒
type AudienceAlert struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    AlertType `json:"type"`
}

// AudienceInsights 受众洞察
type AudienceInsights struct {
	Alerts         []AudienceAlert `json:"alerts"`
	PeakHour       string          `json:"peakHour"`
	BestRegion     string          `json:"bestRegion"`
	EngagementTips []string        `json:"engagementTips"`
}

// Platform 发布平台
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram"
	PlatformSpotify   Platform = "Spotify"
	PlatformOther     Platform = "Other"
)

// ParsePlatform 不区分大小写地解析平台名，无法识别时归为 Other
func ParsePlatform(s string) Platform {
	for _, p := range []Platform{PlatformYouTube, PlatformTikTok, PlatformInstagram, PlatformSpotify} {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p
		}
	}
	return PlatformOther
}

// ScheduleEvent 发布计划中的一天，切片顺序即叙事顺序
type ScheduleEvent struct {
	Day             string   `json:"day"`
	Platform        Platform `json:"platform"`
	Action          string   `json:"action"`
	RecommendedTime string   `json:"recommendedTime"`
	ContentIdea     string   `json:"contentIdea"`
}

// VideoSuggestion 建议的剪辑点
type VideoSuggestion struct {
	Timestamp string `json:"timestamp"`
	Reason    string `json:"reason"`
	Hook      string `json:"hook"`
}

// DistributionFormat 单个平台的分发配置
type DistributionFormat struct {
	Platform         string `json:"platform"`
	AspectRatio      string `json:"aspectRatio"`
	MaxDuration      string `json:"maxDuration"`
	OptimizationNote string `json:"optimizationNote"`
	SuggestedAction  string `json:"suggestedAction"`
}

// TrendingTopic 热门话题
type TrendingTopic struct {
	Name   string `json:"name"`
	Growth string `json:"growth"`
}

// PostingTime 平台最佳发布时间
type PostingTime struct {
	Platform string `json:"platform"`
	Time     string `json:"time"`
}

// ContentSuggestion 每日内容建议
type ContentSuggestion struct {
	Title string `json:"title"`
	Idea  string `json:"idea"`
}

// ContentTrendReport 内容趋势报告
type ContentTrendReport struct {
	TrendingTopics          []TrendingTopic     `json:"trendingTopics"`
	TrendingHashtags        []string            `json:"trendingHashtags"`
	BestPostingTimes        []PostingTime       `json:"bestPostingTimes"`
	DailyContentSuggestions []ContentSuggestion `json:"dailyContentSuggestions"`
}

// ContentSource 视频分析的素材来源
type ContentSource string

const (
	SourceLink ContentSource = "link"
	SourceFile ContentSource = "file"
)

// ContentMode 视频分析的内容形态
type ContentMode string

const (
	ModeMusic ContentMode = "music"
	ModeShort ContentMode = "short"
	ModeLong  ContentMode = "long"
	ModeAd    ContentMode = "ad"
)

// VideoAnalysisRequest 视频策略分析请求
type VideoAnalysisRequest struct {
	Content string        `json:"content"`
	Source  ContentSource `json:"source"`
	Mode    ContentMode   `json:"mode"`
}

// VideoAnalysis 视频策略分析结果
type VideoAnalysis struct {
	Score          int      `json:"score"` // 0-10
	ViralPotential string   `json:"viralPotential"`
	Verdict        string   `json:"verdict"`
	Positives      []string `json:"positives"`
	Negatives      []string `json:"negatives"`
	Improvements   []string `json:"improvements"`
	Suggestions    []string `json:"suggestions"`
}
