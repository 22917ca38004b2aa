// Package llm 建立各家模型 SDK 的 client
package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lovedj/config"

	"github.com/google/wire"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/genai"
)

var ProviderSet = wire.NewSet(NewGeminiClient)

// OpenAIOptions openai-go 的共用設定
func OpenAIOptions(conf *config.Configuration, httpClient *http.Client) []option.RequestOption {
	c := conf.LLM.OpenAI
	opts := []option.RequestOption{option.WithAPIKey(c.APIKey)}
	if strings.TrimSpace(c.BaseURL) != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(c.BaseURL, "/")+"/"))
	}
	if strings.TrimSpace(c.Organization) != "" {
		opts = append(opts, option.WithOrganization(strings.TrimSpace(c.Organization)))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	if conf.LLM.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(conf.LLM.Timeout)*time.Second))
	}
	return opts
}

// GeminiClient 包一層 genai.Client；未設定 API key 時為不可用狀態
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(conf *config.Configuration, httpClient *http.Client) (*GeminiClient, error) {
	if conf.LLM.Gemini.APIKey == "" {
		return &GeminiClient{}, nil
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     conf.LLM.Gemini.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) Available() bool { return c != nil && c.client != nil }

func (c *GeminiClient) Client() *genai.Client { return c.client }
