package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Groq      GroqConfig      `mapstructure:"groq"`
	OCR       OCRConfig       `mapstructure:"ocr"`
	Upload    UploadConfig    `mapstructure:"upload"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	AnalysisTimeout time.Duration `mapstructure:"analysis_timeout"`
}

// GroqConfig holds the completion API configuration. A missing APIKey is not
// a load error: the analyze endpoint answers 503 per request while the
// process stays up.
type GroqConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxPromptChars int           `mapstructure:"max_prompt_chars"`
}

// OCRConfig holds text-recognition configuration
type OCRConfig struct {
	Languages     []string `mapstructure:"languages"`
	MinTextLength int      `mapstructure:"min_text_length"`
}

// UploadConfig holds upload limits
type UploadConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// RateLimitConfig holds the per-IP fixed-window limits
type RateLimitConfig struct {
	Max    int           `mapstructure:"max"`
	Window time.Duration `mapstructure:"window"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("MENUSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.analysis_timeout", "60s")

	// Registered empty so AutomaticEnv surfaces the env-only key through
	// Unmarshal.
	v.SetDefault("groq.api_key", "")
	v.SetDefault("groq.model", "llama-3.3-70b-versatile")
	v.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.timeout", "60s")
	v.SetDefault("groq.max_prompt_chars", 10000)

	v.SetDefault("ocr.languages", []string{"eng"})
	v.SetDefault("ocr.min_text_length", 10)

	v.SetDefault("upload.max_file_size", 5*1024*1024)

	v.SetDefault("ratelimit.max", 100)
	v.SetDefault("ratelimit.window", "15m")
}

func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.RateLimit.Max <= 0 {
		return fmt.Errorf("ratelimit max must be positive, got: %d", config.RateLimit.Max)
	}
	if config.RateLimit.Window <= 0 {
		return fmt.Errorf("ratelimit window must be positive, got: %s", config.RateLimit.Window)
	}

	if config.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("upload max_file_size must be positive, got: %d", config.Upload.MaxFileSize)
	}

	if config.OCR.MinTextLength < 0 {
		return fmt.Errorf("ocr min_text_length must not be negative, got: %d", config.OCR.MinTextLength)
	}

	return nil
}
