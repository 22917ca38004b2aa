package models

import (
	"context"

	"lovedj/internal/core"
)

// 單一 Model
type Model struct {
	ID       string            `json:"id"`
	Provider core.ProviderName `json:"provider"`
	OwnedBy  string            `json:"owned_by,omitempty"`
}

// 服務介面：列出某 provider 目前可用的模型
type Service interface {
	Provider() core.ProviderName
	Available() bool
	List(ctx context.Context) ([]Model, error)
}
