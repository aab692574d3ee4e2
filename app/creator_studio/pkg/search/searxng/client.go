package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/search"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) creator-studio/1.0"

// Client 自建 SearXNG 实例的 JSON 接口
type Client struct {
	base *url.URL
	hc   *http.Client
}

var _ search.Searcher = (*Client)(nil)

// NewClient timeout 单位为秒，0 表示 30 秒
func NewClient(baseURL string, timeout int) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("searxng: invalid base url %q", baseURL)
	}
	t := time.Duration(timeout) * time.Second
	if t <= 0 {
		t = 30 * time.Second
	}
	return &Client{base: base, hc: &http.Client{Timeout: t}}, nil
}

type hit struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Content       string `json:"content"`
	PublishedDate string `json:"publishedDate"`
}

// searchURL 新闻类查询限定最近一周
func (c *Client) searchURL(req *search.Request) string {
	u := *c.base
	u.Path = "/search"
	q := url.Values{}
	q.Set("q", req.Query)
	q.Set("format", "json")
	q.Set("categories", "general")
	if req.Topic == "news" {
		q.Set("categories", "news")
		q.Set("time_range", "week")
	}
	if req.Language != "" {
		q.Set("language", req.Language)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Search 调用 /search?format=json
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(req), nil)
	if err != nil {
		return nil, fmt.Errorf("searxng: build request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("searxng: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &search.APIError{Engine: "searxng", Status: res.StatusCode, Body: string(body)}
	}

	var out struct {
		Results []hit `json:"results"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("searxng: decode reply: %w", err)
	}

	hits := out.Results
	if req.MaxResults > 0 && len(hits) > req.MaxResults {
		hits = hits[:req.MaxResults]
	}
	resp := &search.Response{Results: make([]search.Result, len(hits))}
	for i, h := range hits {
		resp.Results[i] = search.Result(h)
	}
	return resp, nil
}
