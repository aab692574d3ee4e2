// Package checklist 提供发布前的推广检查清单
package checklist

import (
	"math"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/model"
)

// Item 检查项
type Item struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

var defaults = map[model.Locale][]string{
	model.LocalePT: {
		"Conteúdo finalizado e revisado em alta qualidade",
		"Thumbnail ou Capa em alta resolução (ex: 1920x1080 / 3000x3000px)",
		"Descrição e metadados otimizados para SEO",
		"Links sociais e CTAs atualizados (Bio, Descrição, etc)",
		"Plano de engajamento pós-publicação definido",
	},
	model.LocaleEN: {
		"Content finished and reviewed in high quality",
		"High-resolution thumbnail or cover (e.g. 1920x1080 / 3000x3000px)",
		"Description and metadata optimized for SEO",
		"Social links and CTAs updated (bio, description, etc)",
		"Post-release engagement plan defined",
	},
}

// Default 返回指定语言的默认清单，全部未勾选
func Default(locale model.Locale) []Item {
	texts, ok := defaults[locale]
	if !ok {
		texts = defaults[model.LocaleEN]
	}
	items := make([]Item, len(texts))
	for i, text := range texts {
		items[i] = Item{ID: i + 1, Text: text}
	}
	return items
}

// Toggle 切换指定 ID 的勾选状态，返回新切片
func Toggle(items []Item, id int) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Checked = !out[i].Checked
		}
	}
	return out
}

// Check 将给定 ID 标记为已勾选，重复或不存在的 ID 忽略
func Check(items []Item, ids ...int) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for i := range out {
		if want[out[i].ID] {
			out[i].Checked = true
		}
	}
	return out
}

// Progress 已勾选项的百分比，四舍五入
func Progress(items []Item) int {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	return int(math.Round(float64(checked) * 100 / float64(len(items))))
}
