package config

type LLM struct {
	// 單次模型呼叫逾時（秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
	// 單次回覆上限 token 數
	MaxTokens int `mapstructure:"MAX_TOKENS" json:"maxTokens" yaml:"maxTokens"`
	// 啟用離線的 mock provider（demo / 測試用）
	MockEnabled bool `mapstructure:"MOCK_ENABLED" json:"mockEnabled" yaml:"mockEnabled"`

	OpenAI struct {
		APIKey       string `mapstructure:"API_KEY" json:"apiKey" yaml:"apiKey"`
		BaseURL      string `mapstructure:"BASE_URL" json:"baseURL" yaml:"baseURL"`
		Organization string `mapstructure:"ORGANIZATION" json:"organization" yaml:"organization"`
	} `mapstructure:"OPENAI" json:"openai" yaml:"openai"`

	Gemini struct {
		APIKey string `mapstructure:"API_KEY" json:"apiKey" yaml:"apiKey"`
	} `mapstructure:"GEMINI" json:"gemini" yaml:"gemini"`
}
