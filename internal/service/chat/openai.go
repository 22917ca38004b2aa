package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lovedj/config"
	"lovedj/internal/core"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/service/llm"
	"lovedj/internal/telemetry"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/packages/param"
)

type OpenAIService struct {
	client    openai.Client
	available bool
	trace     *telemetry.Trace
	metric    *telemetry.Metric
}

func NewOpenAIService(conf *config.Configuration, trace *telemetry.Trace, metric *telemetry.Metric, httpClient *http.Client) *OpenAIService {
	return &OpenAIService{
		client:    openai.NewClient(llm.OpenAIOptions(conf, httpClient)...),
		available: conf.LLM.OpenAI.APIKey != "",
		trace:     trace,
		metric:    metric,
	}
}

func (s *OpenAIService) Provider() core.ProviderName { return core.ProviderOpenAI }

func (s *OpenAIService) Available() bool { return s.available }

func (s *OpenAIService) Complete(ctx context.Context, req *Request) (*Result, error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanLLMComplete))
	meta := core.TraceLLMMeta{
		Provider:    string(core.ProviderOpenAI),
		Model:       req.Model,
		PromptChars: len(req.System) + len(req.Prompt),
	}

	resp, err := s.client.Chat.Completions.New(ctx, buildParams(req))
	s.metric.ObserveLLMRequest(string(core.ProviderOpenAI), err)
	if err != nil {
		s.trace.ApplyTraceAttributes(span, &meta)
		end(err)
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, cErr.MapHttpStatusToError(apiErr.StatusCode, fmt.Sprintf("openai: %s", apiErr.Message))
		}
		return nil, cErr.CompletionFailed("openai chat request failed: " + err.Error())
	}
	if len(resp.Choices) == 0 {
		end(errors.New("openai returned no choices"))
		return nil, cErr.ExternalResponseFormatError("openai returned no choices")
	}

	out := &Result{
		Text:  strings.TrimSpace(resp.Choices[0].Message.Content),
		Model: resp.Model,
		Usage: Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}
	meta.TokensPrompt = out.Usage.PromptTokens
	meta.TokensCompletion = out.Usage.CompletionTokens
	s.trace.ApplyTraceAttributes(span, &meta)
	end(nil)
	return out, nil
}

func buildParams(req *Request) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = param.NewOpt(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = param.NewOpt(*req.Temperature)
	}
	return params
}
