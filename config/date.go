package config

type Date struct {
	DefaultRounds int `mapstructure:"DEFAULT_ROUNDS" json:"defaultRounds" yaml:"defaultRounds"`
	MaxRounds     int `mapstructure:"MAX_ROUNDS" json:"maxRounds" yaml:"maxRounds"`

	RateLimit struct {
		// 每個來源 IP 在視窗內可開始的約會次數，<= 0 代表不限制
		Limit  int64 `mapstructure:"LIMIT" json:"limit" yaml:"limit"`
		Window int64 `mapstructure:"WINDOW_SECONDS" json:"windowSeconds" yaml:"windowSeconds"`
	} `mapstructure:"RATE_LIMIT" json:"rateLimit" yaml:"rateLimit"`
}
