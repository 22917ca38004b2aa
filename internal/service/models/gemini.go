package models

import (
	"context"
	"strings"

	"lovedj/internal/core"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/service/llm"
	"lovedj/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

type GeminiService struct {
	client *llm.GeminiClient
	trace  *telemetry.Trace
}

func NewGeminiService(client *llm.GeminiClient, trace *telemetry.Trace) *GeminiService {
	return &GeminiService{client: client, trace: trace}
}

func (s *GeminiService) Provider() core.ProviderName { return core.ProviderGoogle }

func (s *GeminiService) Available() bool { return s.client.Available() }

// List 只保留支援 generateContent 的模型，並去掉 "models/" 前綴
func (s *GeminiService) List(ctx context.Context) ([]Model, error) {
	if !s.Available() {
		return nil, cErr.ServiceUnavailable("gemini api key is not configured")
	}
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanLLMListModels))
	span.SetAttributes(attribute.String("ai.provider", string(core.ProviderGoogle)))

	var out []Model
	for m, err := range s.client.Client().Models.All(ctx) {
		if err != nil {
			end(err)
			return nil, cErr.ExternalRequestError("gemini models request failed: " + err.Error())
		}
		if !supportsGenerate(m) {
			continue
		}
		out = append(out, Model{
			ID:       strings.TrimPrefix(m.Name, "models/"),
			Provider: core.ProviderGoogle,
			OwnedBy:  "google",
		})
	}
	span.SetAttributes(attribute.Int("ai.models", len(out)))
	end(nil)
	return out, nil
}

func supportsGenerate(m *genai.Model) bool {
	if m == nil {
		return false
	}
	if len(m.SupportedActions) == 0 {
		return true
	}
	for _, a := range m.SupportedActions {
		if a == "generateContent" {
			return true
		}
	}
	return false
}
