package config

// Redis 只用於約會限流，Host 為空時停用
type Redis struct {
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
	PoolSize int    `mapstructure:"POOL_SIZE" json:"poolSize" yaml:"poolSize"`
	// 連線逾時（秒）
	DialTimeout int64 `mapstructure:"DIAL_TIMEOUT" json:"dialTimeout" yaml:"dialTimeout"`
}
