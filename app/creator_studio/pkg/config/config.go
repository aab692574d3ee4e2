package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultTimeout     = 60 * time.Second
	defaultTemperature = 0.7
)

// 各 provider 的默认模型（strategic / efficient）
var defaultModels = map[string][2]string{
	ProviderOpenAI: {"gpt-4o", "gpt-4o-mini"},
	ProviderGemini: {"gemini-2.5-pro", "gemini-2.5-flash"},
}

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Enrich      EnrichConfig      `yaml:"enrich"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	Provider       string        `yaml:"provider"` // openai 或 gemini
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"api_key"`
	StrategicModel string        `yaml:"strategic_model"`
	EfficientModel string        `yaml:"efficient_model"`
	Temperature    float32       `yaml:"temperature"`
	Timeout        time.Duration `yaml:"timeout"` // 单次请求超时
}

// SearchConfig 搜索相关配置，provider 为空时不启用
type SearchConfig struct {
	Provider   string        `yaml:"provider"`
	TrendQuery string        `yaml:"trend_query"`
	Tavily     TavilyConfig  `yaml:"tavily"`
	SearXNG    SearXNGConfig `yaml:"searxng"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// EnrichConfig 提示词上下文增强
type EnrichConfig struct {
	FetchLinks   bool          `yaml:"fetch_links"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig HTTP 入口限流配置，RPM 为 0 时不限流
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// LoadConfig 从指定路径加载配置，并应用环境变量与默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	cfg.Normalize()
	return &cfg, nil
}

// Default 返回不依赖配置文件的默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyEnv()
	cfg.Normalize()
	return cfg
}

// ApplyEnv 使用环境变量覆盖凭证
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("STUDIO_LLM_PROVIDER")); v != "" {
		c.LLM.Provider = v
	}
	if v := strings.TrimSpace(os.Getenv("STUDIO_LLM_BASE_URL")); v != "" {
		c.LLM.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("STUDIO_LLM_API_KEY")); v != "" {
		c.LLM.APIKey = v
		return
	}
	if c.LLM.APIKey != "" {
		return
	}
	switch strings.ToLower(c.LLM.Provider) {
	case ProviderGemini:
		c.LLM.APIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	default:
		c.LLM.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
}

// Normalize 填充默认值
func (c *Config) Normalize() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderOpenAI
	}
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	if models, ok := defaultModels[c.LLM.Provider]; ok {
		if c.LLM.StrategicModel == "" {
			c.LLM.StrategicModel = models[0]
		}
		if c.LLM.EfficientModel == "" {
			c.LLM.EfficientModel = models[1]
		}
	}
	if c.LLM.Temperature <= 0 {
		c.LLM.Temperature = defaultTemperature
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = defaultTimeout
	}
	if c.Enrich.FetchTimeout <= 0 {
		c.Enrich.FetchTimeout = 15 * time.Second
	}
	c.Search.Provider = strings.ToLower(strings.TrimSpace(c.Search.Provider))
	if c.Search.TrendQuery == "" {
		c.Search.TrendQuery = "creator economy short-form video music trends"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.RPM > 0 && c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
}
