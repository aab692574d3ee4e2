package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

const (
	maxExcerptRunes = 1500
	fetchUserAgent  = "Mozilla/5.0 (X11; Linux x86_64) creator-studio/1.0"
)

// ReadabilityFetcher 抓取网页并提取正文，截断后作为提示词上下文。
// 请求绑定调用方的 ctx，取消或超时会中断抓取
func ReadabilityFetcher(timeout time.Duration) LinkFetcher {
	hc := &http.Client{Timeout: timeout}
	return func(ctx context.Context, link string) (string, error) {
		pageURL, err := url.Parse(link)
		if err != nil {
			return "", fmt.Errorf("parse link: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
		if err != nil {
			return "", fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", fetchUserAgent)

		resp, err := hc.Do(req)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", link, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch %s: status %d", link, resp.StatusCode)
		}

		article, err := readability.FromReader(resp.Body, pageURL)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", link, err)
		}
		text := article.TextContent
		if strings.TrimSpace(text) == "" {
			text = article.Excerpt
		}
		return truncateRunes(strings.Join(strings.Fields(text), " "), maxExcerptRunes), nil
	}
}

func truncateRunes(s string, limit int) string {
	if r := []rune(s); len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return s
}
