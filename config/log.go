package config

type Log struct {
	// debug / info / warn / error
	Level string `mapstructure:"LEVEL" json:"level" yaml:"level"`
	// 檔案輸出（lumberjack 輪替），Path 為空則只輸出到 stdout/stderr
	File struct {
		Path       string `mapstructure:"PATH" json:"path" yaml:"path"`
		MaxSizeMB  int    `mapstructure:"MAX_SIZE_MB" json:"maxSizeMB" yaml:"maxSizeMB"`
		MaxBackups int    `mapstructure:"MAX_BACKUPS" json:"maxBackups" yaml:"maxBackups"`
		MaxAgeDays int    `mapstructure:"MAX_AGE_DAYS" json:"maxAgeDays" yaml:"maxAgeDays"`
		Compress   bool   `mapstructure:"COMPRESS" json:"compress" yaml:"compress"`
	} `mapstructure:"FILE" json:"file" yaml:"file"`
}
