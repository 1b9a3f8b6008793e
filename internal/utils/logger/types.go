package logger

// LoggingConfig defines the configuration for logging.
// LoggingConfig 定义日志配置。
type LoggingConfig struct {
	Enabled bool `yaml:"enabled"`
	// Enabled: write to a rotating file instead of stderr
	Level string `yaml:"level"`
	// Level: debug, info, warn, error
	Format string `yaml:"format"`
	// Format: console (default) or json
	Path string `yaml:"path"`
	// Path: log file path
	MaxSize int `yaml:"max_size"`
	// MaxSize: megabytes before rotation
	MaxBackups int `yaml:"max_backups"`
	// MaxBackups: rotated files to keep
	MaxAge int `yaml:"max_age"`
	// MaxAge: days to keep rotated files
	Compress bool `yaml:"compress"`
	// Compress: gzip rotated files
}
