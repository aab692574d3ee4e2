package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider"
)

type fakeModels struct {
	reply  string
	err    error
	model  string
	config *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

func TestCompleteJSONMode(t *testing.T) {
	fake := &fakeModels{reply: "{\"score\":82}\n"}
	c := &Client{models: fake, defaultModel: "gemini-2.5-pro"}

	got, err := c.Complete(context.Background(), &provider.Request{
		Model:     "gemini-2.5-flash",
		System:    "json only",
		Prompt:    "rate it",
		MaxTokens: 256,
		JSON:      true,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != `{"score":82}` {
		t.Errorf("Complete() = %q", got)
	}
	if fake.model != "gemini-2.5-flash" {
		t.Errorf("model = %q", fake.model)
	}
	if fake.config.ResponseMIMEType != "application/json" {
		t.Errorf("mime type = %q", fake.config.ResponseMIMEType)
	}
	if fake.config.MaxOutputTokens != 256 {
		t.Errorf("max tokens = %d", fake.config.MaxOutputTokens)
	}
	if fake.config.SystemInstruction == nil {
		t.Errorf("system instruction not set")
	}
}

func TestCompleteDefaultModel(t *testing.T) {
	fake := &fakeModels{reply: "text"}
	c := &Client{models: fake, defaultModel: "gemini-2.5-pro"}

	if _, err := c.Complete(context.Background(), &provider.Request{Prompt: "x"}); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if fake.model != "gemini-2.5-pro" {
		t.Errorf("model = %q, want default", fake.model)
	}
	if fake.config.ResponseMIMEType != "" {
		t.Errorf("mime type should be empty for text replies")
	}
}

func TestCompleteRateLimit(t *testing.T) {
	fake := &fakeModels{err: genai.APIError{Code: 429, Message: "quota exceeded", Status: "RESOURCE_EXHAUSTED"}}
	c := &Client{models: fake, defaultModel: "gemini-2.5-pro"}

	_, err := c.Complete(context.Background(), &provider.Request{Prompt: "x"})
	if !errors.Is(err, provider.ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}
}

func TestCompleteClassifiesAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"code 429", genai.APIError{Code: 429, Message: "quota exceeded"}, true},
		{"resource exhausted", genai.APIError{Code: 400, Status: "RESOURCE_EXHAUSTED"}, true},
		{"pointer", &genai.APIError{Code: 429}, true},
		{"server error mentioning 429", genai.APIError{Code: 500, Message: "request 4291 failed", Status: "INTERNAL"}, false},
		{"plain error", errors.New("dial tcp: connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{models: &fakeModels{err: tt.err}, defaultModel: "gemini-2.5-pro"}
			_, err := c.Complete(context.Background(), &provider.Request{Prompt: "x"})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, provider.ErrRateLimited); got != tt.want {
				t.Errorf("errors.Is(ErrRateLimited) = %v, want %v (err = %v)", got, tt.want, err)
			}
			if got := provider.IsRateLimited(err); got != tt.want {
				t.Errorf("IsRateLimited() = %v, want %v", got, tt.want)
			}
		})
	}
}
