package config

type TelemetryConfig struct {
	Metric struct {
		Enabled bool      `yaml:"enabled" mapstructure:"ENABLED" json:"enabled"`
		Buckets []float64 `yaml:"buckets" mapstructure:"BUCKETS" json:"buckets"`
	} `yaml:"metric" mapstructure:"METRIC" json:"metric"`
	Trace struct {
		Enabled     bool   `yaml:"enabled" mapstructure:"ENABLED" json:"enabled"`
		EndpointUrl string `yaml:"endpointUrl" mapstructure:"ENDPOINT_URL" json:"endpointUrl"`
		// 取樣比例 0~1；0 或未設定時全取樣，上游已取樣的請求一律跟隨
		SampleRatio float64 `yaml:"sampleRatio" mapstructure:"SAMPLE_RATIO" json:"sampleRatio"`
	} `yaml:"trace" mapstructure:"TRACE" json:"trace"`
}
