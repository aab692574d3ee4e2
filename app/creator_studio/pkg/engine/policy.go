package engine

// Operation 引擎对外提供的操作
type Operation string

const (
	OpGeneratePitch        Operation = "generate_pitch"
	OpAnalyzeFit           Operation = "analyze_fit"
	OpPromotionKit         Operation = "generate_promotion_kit"
	OpAudienceInsights     Operation = "generate_audience_insights"
	OpReleaseSchedule      Operation = "generate_release_schedule"
	OpSuggestVideoCuts     Operation = "suggest_video_cuts"
	OpDistributionConfig   Operation = "prepare_distribution_config"
	OpContentTrends        Operation = "get_content_trends"
	OpGenerateThumbnail    Operation = "generate_thumbnail"
	OpAnalyzeVideoStrategy Operation = "analyze_video_strategy"
)

// Tier 模型档位
type Tier int

const (
	TierStrategic Tier = iota
	TierEfficient
)

func (t Tier) String() string {
	if t == TierEfficient {
		return "efficient"
	}
	return "strategic"
}

// policy 单个操作的静态调用策略
type policy struct {
	Tier        Tier
	JSON        bool
	MaxTokens   int
	Temperature float32 // 0 表示使用配置中的默认温度
}

var policies = map[Operation]policy{
	OpGeneratePitch:        {Tier: TierStrategic, MaxTokens: 1024},
	OpAnalyzeFit:           {Tier: TierEfficient, JSON: true, MaxTokens: 512, Temperature: 0.3},
	OpPromotionKit:         {Tier: TierStrategic, JSON: true, MaxTokens: 2048},
	OpAudienceInsights:     {Tier: TierStrategic, JSON: true, MaxTokens: 1536},
	OpReleaseSchedule:      {Tier: TierStrategic, JSON: true, MaxTokens: 2048},
	OpSuggestVideoCuts:     {Tier: TierStrategic, JSON: true, MaxTokens: 1024},
	OpDistributionConfig:   {Tier: TierStrategic, JSON: true, MaxTokens: 1536},
	OpContentTrends:        {Tier: TierEfficient, JSON: true, MaxTokens: 1536},
	OpGenerateThumbnail:    {Tier: TierStrategic, MaxTokens: 256},
	OpAnalyzeVideoStrategy: {Tier: TierStrategic, JSON: true, MaxTokens: 1536},
}

func policyFor(op Operation) policy {
	if p, ok := policies[op]; ok {
		return p
	}
	return policy{Tier: TierStrategic}
}
