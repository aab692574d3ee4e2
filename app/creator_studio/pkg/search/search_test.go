package search

import (
	"strings"
	"testing"
)

func TestHeadlines(t *testing.T) {
	resp := &Response{Results: []Result{
		{Title: "Drill keeps growing", Content: "  Short-form\n clips drive   streams "},
		{Title: "", Content: "ignored"},
		{Title: "Lo-fi study playlists"},
		{Title: "Third headline", Content: "dropped by limit"},
	}}

	got := Headlines(resp, 2)
	want := "- Drill keeps growing: Short-form clips drive streams\n- Lo-fi study playlists\n"
	if got != want {
		t.Fatalf("Headlines() = %q, want %q", got, want)
	}
}

func TestHeadlinesTruncates(t *testing.T) {
	resp := &Response{Results: []Result{{Title: "t", Content: strings.Repeat("á", 200)}}}
	got := Headlines(resp, 0)
	if !strings.HasSuffix(got, "...\n") {
		t.Fatalf("expected truncation, got %q", got)
	}
	if Headlines(nil, 3) != "" {
		t.Fatal("nil response should yield empty headlines")
	}
}
