// Package catalog 將模型列舉結果整理成可直接給 UI 使用的模型目錄
package catalog

import (
	"slices"
	"strings"
)

const (
	// DefaultModel / DefaultProvider 組成保底目錄
	DefaultModel    = "gpt-4o"
	DefaultProvider = "openai"
	// UnknownProvider 查不到 provider 時的回傳值
	UnknownProvider = "unknown"
)

// Entry 一個模型與其所屬 provider
type Entry struct {
	Model    string `json:"model"`
	Provider string `json:"provider"`
}

// DefaultEntry 保底模型
var DefaultEntry = Entry{Model: DefaultModel, Provider: DefaultProvider}

func (e Entry) IsZero() bool { return e.Model == "" }

// Label "<model> [<provider>]"
func (e Entry) Label() string {
	return Label(e.Model, e.Provider)
}

// Catalog 正規化後的模型目錄，Models 依位元組序排序且不重複
type Catalog struct {
	Models    []string          `json:"models"`
	Providers map[string]string `json:"providers"`

	fallback Entry
}

// Default 只含保底模型的目錄
func Default() Catalog {
	return defaultFor(DefaultEntry)
}

func defaultFor(e Entry) Catalog {
	return Catalog{
		Models:    []string{e.Model},
		Providers: map[string]string{e.Model: e.Provider},
		fallback:  e,
	}
}

// Fallback 本目錄使用的保底模型
func (c Catalog) Fallback() Entry {
	if c.fallback.IsZero() {
		return DefaultEntry
	}
	return c.fallback
}

func (c Catalog) Len() int { return len(c.Models) }

// IsDefault 是否為保底目錄
func (c Catalog) IsDefault() bool {
	fb := c.Fallback()
	return len(c.Models) == 1 && c.Models[0] == fb.Model && c.Providers[fb.Model] == fb.Provider
}

// ProviderOf 查詢模型所屬 provider，不存在時回傳 "unknown"
func (c Catalog) ProviderOf(model string) string {
	if p, ok := c.Providers[model]; ok {
		return p
	}
	return UnknownProvider
}

func (c Catalog) Contains(model string) bool {
	_, ok := c.Providers[model]
	return ok
}

// Entries 依 Models 順序展開
func (c Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.Models))
	for _, m := range c.Models {
		out = append(out, Entry{Model: m, Provider: c.ProviderOf(m)})
	}
	return out
}

// Labels 產生下拉選單用的文字。
// 依整段 label 做不分大小寫排序，保底模型只保留保底 provider 的 label 並放在第一個（不存在則補上）。
func (c Catalog) Labels() []string {
	fb := c.Fallback()
	labels := make([]string, 0, len(c.Models)+1)
	for _, m := range c.Models {
		if m == fb.Model {
			continue
		}
		labels = append(labels, Label(m, c.ProviderOf(m)))
	}
	slices.SortStableFunc(labels, func(a, b string) int {
		if n := strings.Compare(strings.ToLower(a), strings.ToLower(b)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
	return slices.Insert(labels, 0, fb.Label())
}

// Label 組出 "<model> [<provider>]"
func Label(model, provider string) string {
	return model + " [" + provider + "]"
}

// ModelFromLabel 從 label 取回模型 id；不是 label 格式時原樣回傳
func ModelFromLabel(label string) string {
	model, _ := ParseLabel(label)
	return model
}

// ParseLabel 拆出模型 id 與 provider；不是 label 格式時 provider 為空
func ParseLabel(label string) (model, provider string) {
	label = strings.TrimSpace(label)
	if !strings.HasSuffix(label, "]") {
		return label, ""
	}
	i := strings.LastIndex(label, " [")
	if i <= 0 {
		return label, ""
	}
	return label[:i], label[i+2 : len(label)-1]
}
