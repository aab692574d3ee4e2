package provider

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", fmt.Errorf("gemini: %w", ErrRateLimited), true},
		{"status code", errors.New("error, status code: 429, status: 429 Too Many Requests"), true},
		{"text", errors.New("Too Many Requests"), true},
		{"gemini status", errors.New("Error 429, Message: quota, Status: RESOURCE_EXHAUSTED"), true},
		{"unauthorized", errors.New("error, status code: 401, status: 401 Unauthorized"), false},
		{"network", errors.New("dial tcp: connection refused"), false},
		{"429 inside request id", errors.New("error, status code: 500, status: 500 Internal Server Error, message: upstream request req_84291 failed"), false},
		{"429 inside token count", errors.New("error, status code: 400, message: prompt has 14290 tokens"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRateLimited(tt.err); got != tt.want {
				t.Errorf("IsRateLimited(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
