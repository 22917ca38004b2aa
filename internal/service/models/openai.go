package models

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lovedj/config"
	"lovedj/internal/core"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/service/llm"
	"lovedj/internal/telemetry"

	"github.com/openai/openai-go/v3"
	"go.opentelemetry.io/otel/attribute"
)

type OpenAIService struct {
	client    openai.Client
	available bool
	trace     *telemetry.Trace
}

func NewOpenAIService(conf *config.Configuration, trace *telemetry.Trace, httpClient *http.Client) *OpenAIService {
	return &OpenAIService{
		client:    openai.NewClient(llm.OpenAIOptions(conf, httpClient)...),
		available: conf.LLM.OpenAI.APIKey != "",
		trace:     trace,
	}
}

func (s *OpenAIService) Provider() core.ProviderName { return core.ProviderOpenAI }

func (s *OpenAIService) Available() bool { return s.available }

func (s *OpenAIService) List(ctx context.Context) ([]Model, error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanLLMListModels))
	span.SetAttributes(attribute.String("ai.provider", string(core.ProviderOpenAI)))

	page, err := s.client.Models.List(ctx)
	if err != nil {
		end(err)
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, cErr.ExternalRequestError(fmt.Sprintf("openai models: %d %s", apiErr.StatusCode, apiErr.Message))
		}
		return nil, cErr.ExternalRequestError("openai models request failed: " + err.Error())
	}

	out := make([]Model, 0, len(page.Data))
	for _, m := range page.Data {
		out = append(out, Model{ID: m.ID, Provider: core.ProviderOpenAI, OwnedBy: m.OwnedBy})
	}
	span.SetAttributes(attribute.Int("ai.models", len(out)))
	end(nil)
	return out, nil
}
