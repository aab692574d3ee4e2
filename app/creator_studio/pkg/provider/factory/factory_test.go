package factory

import (
	"context"
	"strings"
	"testing"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/config"
)

func TestNewProviderErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LLMConfig
		want string
	}{
		{"missing key", config.LLMConfig{Provider: "openai"}, "api key is missing"},
		{"unknown provider", config.LLMConfig{Provider: "bard", APIKey: "k"}, "unknown llm provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(context.Background(), tt.cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("NewProvider() error = %v, want %q", err, tt.want)
			}
			if p != nil {
				t.Fatalf("NewProvider() provider = %v, want nil", p)
			}
		})
	}
}

func TestNewProviderOpenAI(t *testing.T) {
	p, err := NewProvider(context.Background(), config.LLMConfig{
		Provider:       config.ProviderOpenAI,
		APIKey:         "sk-test",
		BaseURL:        "http://127.0.0.1:1/v1",
		StrategicModel: "gpt-4o",
	})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if p == nil {
		t.Fatal("NewProvider() returned nil provider")
	}
}
