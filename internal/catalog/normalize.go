package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Normalizer 將 Response 整理成 Catalog，無狀態、可共用
type Normalizer struct {
	fallback Entry
}

// NewNormalizer 指定保底模型；零值沿用 DefaultEntry
func NewNormalizer(fallback Entry) *Normalizer {
	if fallback.IsZero() {
		fallback = DefaultEntry
	}
	if fallback.Provider == "" {
		fallback.Provider = DefaultProvider
	}
	return &Normalizer{fallback: fallback}
}

var defaultNormalizer = NewNormalizer(DefaultEntry)

// Normalize 以預設保底模型正規化
func Normalize(resp Response) (Catalog, error) {
	return defaultNormalizer.Normalize(resp)
}

// NormalizeRaw 辨識格式後正規化
func NormalizeRaw(raw any) (Catalog, error) {
	return defaultNormalizer.NormalizeRaw(raw)
}

// Default 此 Normalizer 的保底目錄
func (n *Normalizer) Default() Catalog {
	return defaultFor(n.fallback)
}

func (n *Normalizer) Fallback() Entry { return n.fallback }

// Normalize 回傳的 Catalog 永遠非空，可直接使用。
// error 不為 nil 時代表回傳的是保底目錄，內容說明原因（ErrUnsupportedShape / ErrEmptyCatalog）。
// 同一模型出現多次時以第一次看到的 provider 為準；provider 空白記為 "unknown"。
func (n *Normalizer) Normalize(resp Response) (Catalog, error) {
	providers := map[string]string{}
	add := func(provider, model string) {
		if strings.TrimSpace(model) == "" {
			return
		}
		if strings.TrimSpace(provider) == "" {
			provider = UnknownProvider
		}
		if _, seen := providers[model]; !seen {
			providers[model] = provider
		}
	}

	switch r := resp.(type) {
	case RowsResponse:
		for _, row := range r {
			add(row.Provider, row.Model)
		}
	case GroupedResponse:
		for _, g := range r {
			for _, m := range g.Models {
				add(g.Provider, m)
			}
		}
	default:
		return n.Default(), fmt.Errorf("%w: %T", ErrUnsupportedShape, resp)
	}

	if len(providers) == 0 {
		return n.Default(), fmt.Errorf("%w: %s response has no models", ErrEmptyCatalog, resp.Shape())
	}

	models := make([]string, 0, len(providers))
	for m := range providers {
		models = append(models, m)
	}
	slices.Sort(models)

	return Catalog{Models: models, Providers: providers, fallback: n.fallback}, nil
}

// NormalizeRaw = Detect + Normalize，任何輸入都得到可用的 Catalog
func (n *Normalizer) NormalizeRaw(raw any) (Catalog, error) {
	resp, err := Detect(raw)
	if err != nil {
		return n.Default(), err
	}
	return n.Normalize(resp)
}
