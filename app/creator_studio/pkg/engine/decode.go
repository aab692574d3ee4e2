package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var fenceReplacer = strings.NewReplacer("```json", "", "```JSON", "", "```", "")

// DecodeJSON 解析模型回复中的 JSON：去掉代码块标记后直接解析，
// 失败时依次截取第一个 '{' 到最后一个 '}'、第一个 '[' 到最后一个 ']' 再解析。
func DecodeJSON[T any](content string) (T, error) {
	var zero T
	trimmed := strings.TrimSpace(fenceReplacer.Replace(content))
	if trimmed == "" {
		return zero, errors.New("empty payload")
	}

	direct, directErr := unmarshal[T](trimmed)
	if directErr == nil {
		return direct, nil
	}
	for _, candidate := range boundedCandidates(trimmed) {
		if v, err := unmarshal[T](candidate); err == nil {
			return v, nil
		}
	}
	return zero, fmt.Errorf("%w (payload snippet: %s)", directErr, summarizeSnippet(trimmed))
}

// decodeList 解析列表回复，兼容裸数组与 {"<key>": [...]} 包装
func decodeList[T any](content string, keys ...string) ([]T, error) {
	list, listErr := DecodeJSON[[]T](content)
	if listErr == nil {
		return list, nil
	}
	obj, err := DecodeJSON[map[string]json.RawMessage](content)
	if err != nil {
		return nil, listErr
	}
	for _, key := range keys {
		if raw, ok := obj[key]; ok {
			if v, err := unmarshal[[]T](string(raw)); err == nil {
				return v, nil
			}
		}
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v, err := unmarshal[[]T](string(obj[name])); err == nil && v != nil {
			return v, nil
		}
	}
	return nil, listErr
}

func unmarshal[T any](s string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

func boundedCandidates(s string) []string {
	var out []string
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(s, pair[0])
		end := strings.LastIndex(s, pair[1])
		if start >= 0 && end > start {
			out = append(out, s[start:end+1])
		}
	}
	return out
}

func summarizeSnippet(content string) string {
	clean := strings.Join(strings.Fields(content), " ")
	if clean == "" {
		return "<empty>"
	}
	const limit = 160
	if runes := []rune(clean); len(runes) > limit {
		clean = string(runes[:limit]) + "..."
	}
	return clean
}
