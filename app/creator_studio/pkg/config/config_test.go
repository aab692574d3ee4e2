package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STUDIO_LLM_API_KEY", "")
	t.Setenv("STUDIO_LLM_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("llm:\n  api_key: sk-file\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LLM.Provider != ProviderOpenAI {
		t.Errorf("provider = %q, want %q", cfg.LLM.Provider, ProviderOpenAI)
	}
	if cfg.LLM.APIKey != "sk-file" {
		t.Errorf("api key = %q, want sk-file", cfg.LLM.APIKey)
	}
	if cfg.LLM.StrategicModel != "gpt-4o" || cfg.LLM.EfficientModel != "gpt-4o-mini" {
		t.Errorf("models = %q/%q", cfg.LLM.StrategicModel, cfg.LLM.EfficientModel)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", cfg.LLM.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestApplyEnvOverridesFile(t *testing.T) {
	t.Setenv("STUDIO_LLM_API_KEY", "sk-env")

	cfg := &Config{LLM: LLMConfig{APIKey: "sk-file"}}
	cfg.ApplyEnv()
	if cfg.LLM.APIKey != "sk-env" {
		t.Fatalf("api key = %q, want sk-env", cfg.LLM.APIKey)
	}
}

func TestApplyEnvProviderKey(t *testing.T) {
	t.Setenv("STUDIO_LLM_API_KEY", "")
	t.Setenv("STUDIO_LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("OPENAI_API_KEY", "oa-key")

	cfg := &Config{LLM: LLMConfig{Provider: "gemini"}}
	cfg.ApplyEnv()
	cfg.Normalize()
	if cfg.LLM.APIKey != "gm-key" {
		t.Fatalf("api key = %q, want gm-key", cfg.LLM.APIKey)
	}
	if cfg.LLM.EfficientModel != "gemini-2.5-flash" {
		t.Fatalf("efficient model = %q", cfg.LLM.EfficientModel)
	}
}

func TestNormalizeKeepsExplicitModels(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{StrategicModel: "big", EfficientModel: "small", Timeout: 5 * time.Second}}
	cfg.Normalize()
	if cfg.LLM.StrategicModel != "big" || cfg.LLM.EfficientModel != "small" {
		t.Fatalf("models overwritten: %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 5*time.Second {
		t.Fatalf("timeout overwritten: %v", cfg.LLM.Timeout)
	}
}
