package openai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	goopenai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/provider"
)

// fakeChatModel 记录调用参数的模拟 ChatModel
type fakeChatModel struct {
	reply    string
	err      error
	messages []*schema.Message
	options  *model.Options
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.messages = input
	f.options = model.GetCommonOptions(&model.Options{}, opts...)
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func TestCompleteSelectsJSONModel(t *testing.T) {
	text := &fakeChatModel{reply: "plain"}
	jsonModel := &fakeChatModel{reply: "  {\"ok\":true}\n"}
	c := &Client{text: text, json: jsonModel}

	got, err := c.Complete(context.Background(), &provider.Request{
		Model:       "gpt-4o-mini",
		System:      "json only",
		Prompt:      "hello",
		Temperature: 0.3,
		MaxTokens:   512,
		JSON:        true,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("Complete() = %q", got)
	}
	if text.messages != nil {
		t.Errorf("text model should not be called")
	}
	if len(jsonModel.messages) != 2 || jsonModel.messages[0].Role != schema.System || jsonModel.messages[1].Content != "hello" {
		t.Errorf("unexpected messages: %+v", jsonModel.messages)
	}
	opts := jsonModel.options
	if opts.Model == nil || *opts.Model != "gpt-4o-mini" {
		t.Errorf("model option = %v", opts.Model)
	}
	if opts.MaxTokens == nil || *opts.MaxTokens != 512 {
		t.Errorf("max tokens option = %v", opts.MaxTokens)
	}
	if opts.Temperature == nil || *opts.Temperature != 0.3 {
		t.Errorf("temperature option = %v", opts.Temperature)
	}
}

func TestCompleteWithoutSystemPrompt(t *testing.T) {
	text := &fakeChatModel{reply: "pitch body"}
	c := &Client{text: text, json: &fakeChatModel{}}

	got, err := c.Complete(context.Background(), &provider.Request{Prompt: "write"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "pitch body" {
		t.Errorf("Complete() = %q", got)
	}
	if len(text.messages) != 1 || text.messages[0].Role != schema.User {
		t.Errorf("unexpected messages: %+v", text.messages)
	}
	if text.options.Model != nil {
		t.Errorf("model option should be unset, got %q", *text.options.Model)
	}
}

func TestCompletePropagatesError(t *testing.T) {
	boom := errors.New("error, status code: 429, status: 429 Too Many Requests")
	c := &Client{text: &fakeChatModel{err: boom}, json: &fakeChatModel{}}

	_, err := c.Complete(context.Background(), &provider.Request{Prompt: "x"})
	if !errors.Is(err, boom) {
		t.Fatalf("Complete() error = %v, want %v", err, boom)
	}
	if !provider.IsRateLimited(err) {
		t.Fatalf("expected rate-limit classification")
	}
}

func TestCompleteClassifiesStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"api 429", &goopenai.APIError{HTTPStatusCode: 429, HTTPStatus: "429 Too Many Requests", Message: "slow down"}, true},
		{"request 429", &goopenai.RequestError{HTTPStatusCode: 429, HTTPStatus: "429 Too Many Requests", Err: errors.New("rate")}, true},
		{"api 500 with 429 in request id", &goopenai.APIError{HTTPStatusCode: 500, HTTPStatus: "500 Internal Server Error", Message: "upstream request req_84291 failed"}, false},
		{"request 503", &goopenai.RequestError{HTTPStatusCode: 503, HTTPStatus: "503 Service Unavailable", Err: errors.New("busy")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// eino 以 %w 包装底层错误
			wrapped := fmt.Errorf("failed to create chat completion: %w", tt.err)
			c := &Client{text: &fakeChatModel{err: wrapped}, json: &fakeChatModel{}}

			_, err := c.Complete(context.Background(), &provider.Request{Prompt: "x"})
			if !errors.Is(err, wrapped) {
				t.Fatalf("Complete() error = %v, want wrapped cause", err)
			}
			if got := errors.Is(err, provider.ErrRateLimited); got != tt.want {
				t.Errorf("errors.Is(ErrRateLimited) = %v, want %v", got, tt.want)
			}
			if got := provider.IsRateLimited(err); got != tt.want {
				t.Errorf("IsRateLimited() = %v, want %v", got, tt.want)
			}
		})
	}
}
