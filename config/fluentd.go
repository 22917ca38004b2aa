package config

type Fluentd struct {
	// 空值代表不送出紀錄
	Host string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port int    `mapstructure:"PORT" json:"port" yaml:"port"`
	// tag 前綴，預設 lovedj
	TagPrefix string `mapstructure:"TAG_PREFIX" json:"tagPrefix" yaml:"tagPrefix"`
	// 連線逾時（毫秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
	// 背景重送次數，0 使用 fluent-logger 預設
	MaxRetry int `mapstructure:"MAX_RETRY" json:"maxRetry" yaml:"maxRetry"`
}
