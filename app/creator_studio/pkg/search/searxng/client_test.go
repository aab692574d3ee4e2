package searxng

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("format") != "json" || q.Get("categories") != "news" || q.Get("time_range") != "week" || q.Get("language") != "pt" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"query":"funk","results":[{"title":"one"},{"title":"two","publishedDate":"2025-03-01"},{"title":"three"}]}`))
	}))
	defer server.Close()

	c, err := NewClient(server.URL, 5)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.Search(context.Background(), &search.Request{Query: "funk", Topic: "news", MaxResults: 2, Language: "pt"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 2 || resp.Results[1].Title != "two" || resp.Results[1].PublishedDate != "2025-03-01" {
		t.Fatalf("Search() results = %+v", resp.Results)
	}
}

func TestSearchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c, _ := NewClient(server.URL, 0)
	_, err := c.Search(context.Background(), &search.Request{Query: "x"})
	var apiErr *search.APIError
	if !errors.As(err, &apiErr) || apiErr.Engine != "searxng" || apiErr.Status != http.StatusTooManyRequests {
		t.Fatalf("Search() error = %v", err)
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	if _, err := NewClient("not a url", 0); err == nil {
		t.Fatal("expected error")
	}
}
