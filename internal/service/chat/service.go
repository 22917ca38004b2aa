package chat

import (
	"context"

	"lovedj/internal/core"
)

// Request 單輪問答
type Request struct {
	Model       string   `json:"model"`
	System      string   `json:"system,omitempty"`
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	// 只給 mock provider 用來產生可預期的內容
	Speaker string `json:"-"`
	Turn    int    `json:"-"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type Result struct {
	Text  string `json:"text"`
	Model string `json:"model"`
	Usage Usage  `json:"usage"`
}

type Service interface {
	Provider() core.ProviderName
	Available() bool
	Complete(ctx context.Context, req *Request) (*Result, error)
}
