package chat

import (
	"context"
	"fmt"
	"strings"

	"lovedj/config"
	"lovedj/internal/core"
)

// MockService 不呼叫外部模型，依發言順序產生固定內容；評分固定回傳 "7"
type MockService struct {
	enabled bool
}

func NewMockService(conf *config.Configuration) *MockService {
	return &MockService{enabled: conf.LLM.MockEnabled}
}

func (s *MockService) Provider() core.ProviderName { return core.ProviderMock }

func (s *MockService) Available() bool { return s.enabled }

func (s *MockService) Complete(ctx context.Context, req *Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text := fmt.Sprintf("Utterance %d from %s", req.Turn+1, req.Speaker)
	if strings.Contains(req.Prompt, "rate this date") {
		text = "7"
	}
	words := len(strings.Fields(req.System)) + len(strings.Fields(req.Prompt))
	return &Result{
		Text:  text,
		Model: req.Model,
		Usage: Usage{PromptTokens: words, CompletionTokens: len(strings.Fields(text)), TotalTokens: words + len(strings.Fields(text))},
	}, nil
}
