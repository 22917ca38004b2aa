package models

import (
	"context"

	"lovedj/config"
	"lovedj/internal/core"
)

// MockModels 離線 mock provider 提供的模型
var MockModels = []string{"mock-date-1", "mock-date-mini"}

type MockService struct {
	enabled bool
}

func NewMockService(conf *config.Configuration) *MockService {
	return &MockService{enabled: conf.LLM.MockEnabled}
}

func (s *MockService) Provider() core.ProviderName { return core.ProviderMock }

func (s *MockService) Available() bool { return s.enabled }

func (s *MockService) List(ctx context.Context) ([]Model, error) {
	out := make([]Model, 0, len(MockModels))
	for _, id := range MockModels {
		out = append(out, Model{ID: id, Provider: core.ProviderMock})
	}
	return out, nil
}
