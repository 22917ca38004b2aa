package chat

import (
	"context"
	"errors"
	"strings"

	"lovedj/internal/core"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/service/llm"
	"lovedj/internal/telemetry"

	"google.golang.org/genai"
)

type GeminiService struct {
	client *llm.GeminiClient
	trace  *telemetry.Trace
	metric *telemetry.Metric
}

func NewGeminiService(client *llm.GeminiClient, trace *telemetry.Trace, metric *telemetry.Metric) *GeminiService {
	return &GeminiService{client: client, trace: trace, metric: metric}
}

func (s *GeminiService) Provider() core.ProviderName { return core.ProviderGoogle }

func (s *GeminiService) Available() bool { return s.client.Available() }

func (s *GeminiService) Complete(ctx context.Context, req *Request) (*Result, error) {
	if !s.Available() {
		return nil, cErr.ServiceUnavailable("gemini api key is not configured")
	}
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanLLMComplete))
	meta := core.TraceLLMMeta{
		Provider:    string(core.ProviderGoogle),
		Model:       req.Model,
		PromptChars: len(req.System) + len(req.Prompt),
	}

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature != nil {
		t := float32(*req.Temperature)
		cfg.Temperature = &t
	}

	resp, err := s.client.Client().Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	s.metric.ObserveLLMRequest(string(core.ProviderGoogle), err)
	if err != nil {
		s.trace.ApplyTraceAttributes(span, &meta)
		end(err)
		return nil, cErr.CompletionFailed("gemini generate content failed: " + err.Error())
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		end(errors.New("gemini returned no text"))
		return nil, cErr.ExternalResponseFormatError("gemini returned no text")
	}

	out := &Result{Text: text, Model: req.Model}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	meta.TokensPrompt = out.Usage.PromptTokens
	meta.TokensCompletion = out.Usage.CompletionTokens
	s.trace.ApplyTraceAttributes(span, &meta)
	end(nil)
	return out, nil
}
