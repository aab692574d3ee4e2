package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search"
)

const (
	endpoint       = "https://api.tavily.com/search"
	newsWindowDays = 7
	defaultResults = 5
)

// Client Tavily 搜索客户端
type Client struct {
	apiKey   string
	endpoint string
	hc       *http.Client
}

var _ search.Searcher = (*Client)(nil)

// NewClient timeout 为 0 时使用 30 秒
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{apiKey: apiKey, endpoint: endpoint, hc: &http.Client{Timeout: timeout}}
}

type query struct {
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth,omitempty"`
	Topic       string `json:"topic,omitempty"`
	MaxResults  int    `json:"max_results,omitempty"`
	Days        int    `json:"days,omitempty"`
}

type reply struct {
	Results []struct {
		Title         string  `json:"title"`
		URL           string  `json:"url"`
		Content       string  `json:"content"`
		Score         float64 `json:"score"`
		PublishedDate string  `json:"published_date"`
	} `json:"results"`
}

func newQuery(req *search.Request) query {
	q := query{Query: req.Query, SearchDepth: "basic", Topic: req.Topic, MaxResults: req.MaxResults}
	switch q.Topic {
	case "news":
		q.Days = newsWindowDays
	case "":
		q.Topic = "general"
	}
	if q.MaxResults <= 0 {
		q.MaxResults = defaultResults
	}
	return q
}

// Search 调用 Tavily 搜索接口
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	payload, err := json.Marshal(newQuery(req))
	if err != nil {
		return nil, fmt.Errorf("tavily: encode query: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("tavily: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tavily: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &search.APIError{Engine: "tavily", Status: res.StatusCode, Body: string(body)}
	}

	var out reply
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("tavily: decode reply: %w", err)
	}
	resp := &search.Response{Results: make([]search.Result, 0, len(out.Results))}
	for _, r := range out.Results {
		resp.Results = append(resp.Results, search.Result{
			Title:         r.Title,
			URL:           r.URL,
			Content:       r.Content,
			PublishedDate: r.PublishedDate,
		})
	}
	return resp, nil
}
