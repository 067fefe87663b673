package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Wikimedia WikimediaConfig `mapstructure:"wikimedia"`
	Report    ReportConfig    `mapstructure:"report"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// WikimediaConfig holds pageviews API configuration
type WikimediaConfig struct {
	APIBaseURL string        `mapstructure:"api_base_url"`
	Project    string        `mapstructure:"project"`
	Access     string        `mapstructure:"access"`
	UserAgent  string        `mapstructure:"user_agent"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// ReportConfig holds chart output configuration
type ReportConfig struct {
	TopArticles int    `mapstructure:"top_articles"`
	OutputPath  string `mapstructure:"output_path"`
}

// TelegramConfig holds Telegram notification configuration
type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	ChatID         string        `mapstructure:"chat_id"`
	Enabled        bool          `mapstructure:"enabled"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. An empty
// path skips the file and uses defaults plus environment overrides only, so
// the tool runs without any config file present.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Enable environment variable override
	v.SetEnvPrefix("WIKITOP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Wikimedia defaults
	v.SetDefault("wikimedia.api_base_url", "https://wikimedia.org/api/rest_v1/metrics")
	v.SetDefault("wikimedia.project", "en.wikipedia")
	v.SetDefault("wikimedia.access", "all-access")
	v.SetDefault("wikimedia.user_agent", "wikitop pageviews collector")
	v.SetDefault("wikimedia.timeout", "30s")
	v.SetDefault("wikimedia.max_retries", 3)
	v.SetDefault("wikimedia.retry_delay", "1s")

	// Report defaults
	v.SetDefault("report.top_articles", 20)
	v.SetDefault("report.output_path", "img/top_articles.png")

	// Telegram defaults
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.max_retries", 3)
	v.SetDefault("telegram.retry_delay_base", "1s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Wikimedia config
	if c.Wikimedia.APIBaseURL == "" {
		return fmt.Errorf("wikimedia.api_base_url is required")
	}
	if c.Wikimedia.Project == "" {
		return fmt.Errorf("wikimedia.project is required")
	}
	if c.Wikimedia.Access == "" {
		return fmt.Errorf("wikimedia.access is required")
	}
	if c.Wikimedia.Timeout < 1*time.Second {
		return fmt.Errorf("wikimedia.timeout must be at least 1 second")
	}
	if c.Wikimedia.MaxRetries < 1 {
		return fmt.Errorf("wikimedia.max_retries must be at least 1")
	}
	if c.Wikimedia.RetryDelay < 0 {
		return fmt.Errorf("wikimedia.retry_delay must not be negative")
	}

	// Validate Report config
	if c.Report.TopArticles < 1 {
		return fmt.Errorf("report.top_articles must be at least 1")
	}
	if c.Report.OutputPath == "" {
		return fmt.Errorf("report.output_path is required")
	}

	// Validate Telegram config
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
