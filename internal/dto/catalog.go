package dto

import "time"

// 模型目錄
type CatalogResponseDto struct {
	Models    []string          `json:"models"`
	Providers map[string]string `json:"providers"`
	Default   string            `json:"default"`
	// 非空代表目前是保底目錄：unsupported_shape / empty / unavailable
	FallbackReason string    `json:"fallbackReason,omitempty"`
	LoadedAt       time.Time `json:"loadedAt"`
}

type ModelProviderDto struct {
	Model    string `json:"model"`
	Provider string `json:"provider"`
	Label    string `json:"label"`
}

type ProviderQueryDto struct {
	Model string `form:"model" binding:"required"`
}
