package search

import (
	"context"
	"fmt"
	"strings"
)

// Searcher 定义通用的搜索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query      string
	Topic      string // "news" or "general"
	MaxResults int
	Language   string
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果
type Result struct {
	Title         string
	URL           string
	Content       string
	PublishedDate string
}

// APIError 搜索后端返回非 200 状态
type APIError struct {
	Engine string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.Engine, e.Status, e.Body)
}

// Headlines 将搜索结果整理为可嵌入提示词的要点列表
func Headlines(resp *Response, limit int) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	n := 0
	for _, r := range resp.Results {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			continue
		}
		if limit > 0 && n >= limit {
			break
		}
		n++
		snippet := strings.Join(strings.Fields(r.Content), " ")
		if len([]rune(snippet)) > 160 {
			snippet = string([]rune(snippet)[:160]) + "..."
		}
		if snippet != "" {
			fmt.Fprintf(&sb, "- %s: %s\n", title, snippet)
		} else {
			fmt.Fprintf(&sb, "- %s\n", title)
		}
	}
	return sb.String()
}
