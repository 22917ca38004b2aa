package config

type Catalog struct {
	// providers / http / static
	Source string `mapstructure:"SOURCE" json:"source" yaml:"source"`
	// Source = http 時的來源位址與 bearer token
	URL   string `mapstructure:"URL" json:"url" yaml:"url"`
	Token string `mapstructure:"TOKEN" json:"token" yaml:"token"`
	// Source = static 時的 provider -> models 對照（舊版分組格式）
	Static map[string][]string `mapstructure:"STATIC" json:"static" yaml:"static"`
	// 保底模型
	DefaultModel    string `mapstructure:"DEFAULT_MODEL" json:"defaultModel" yaml:"defaultModel"`
	DefaultProvider string `mapstructure:"DEFAULT_PROVIDER" json:"defaultProvider" yaml:"defaultProvider"`
	// 定時刷新（含秒的 cron 表達式），空值代表不刷新
	RefreshCron string `mapstructure:"REFRESH_CRON" json:"refreshCron" yaml:"refreshCron"`
	// 列舉逾時（秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
}
