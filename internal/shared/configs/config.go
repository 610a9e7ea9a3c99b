package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Slack   SlackConfig   `mapstructure:"slack" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// SlackConfig holds Web API client configuration.
type SlackConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Timeout int    `mapstructure:"timeout" validate:"min=0"` // seconds per request, 0 disables the timeout
}

// MetricsConfig holds the optional Prometheus textfile destination.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}
