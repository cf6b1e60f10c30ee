package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	App      AppConfig
	Session  SessionConfig
	Google   GoogleConfig
	Calendar CalendarConfig
	LLM      LLMConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AppConfig holds public-facing service settings.
type AppConfig struct {
	PublicURL string // e.g. https://taskpilot.example.com, used for OAuth redirects
}

// SessionConfig controls the in-memory session store.
type SessionConfig struct {
	Secret      string
	TTL         time.Duration
	MaxSessions int
	CookieName  string
}

// GoogleConfig holds OAuth client credentials.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

// CalendarConfig controls calendar mirroring.
type CalendarConfig struct {
	CalendarID string
	Timezone   string // IANA timezone used to anchor wall-clock times
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers" mapstructure:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled" mapstructure:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts" mapstructure:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay" mapstructure:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout" mapstructure:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name" mapstructure:"name"`
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Priority int    `yaml:"priority" mapstructure:"priority"`
	APIKey   string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Model    string `yaml:"model" mapstructure:"model"`
}

// RateLimitConfig controls per-IP request limiting.
type RateLimitConfig struct {
	ExtractPerMinute int
	Burst            int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.App.PublicURL = strings.TrimSuffix(viper.GetString("app.public_url"), "/")

	cfg.Session.Secret = viper.GetString("session.secret")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")

	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")

	cfg.Calendar.CalendarID = viper.GetString("calendar.calendar_id")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")

	if err := viper.UnmarshalKey("llm", &cfg.LLM); err != nil {
		return nil, fmt.Errorf("error parsing llm config: %w", err)
	}
	// Flat env fallbacks for the common single-provider deployments.
	if key := viper.GetString("openai_api_key"); key != "" && len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{Name: "openai", Enabled: true, Priority: 1, APIKey: key}}
	}
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
			Name: "gemini", Enabled: true, Priority: len(cfg.LLM.Providers) + 1, APIKey: key,
		})
	}

	cfg.RateLimit.ExtractPerMinute = viper.GetInt("rate_limit.extract_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the settings the service cannot start without.
// A missing LLM credential is deliberately NOT fatal: the extraction
// endpoint degrades to a provider-unavailable error instead.
func (c *Config) validate() error {
	if c.App.PublicURL == "" {
		return fmt.Errorf("app.public_url is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("session.secret is required")
	}
	if c.Google.ClientID == "" || c.Google.ClientSecret == "" {
		return fmt.Errorf("google.client_id and google.client_secret are required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("session.ttl", 24*time.Hour)
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.cookie_name", "taskpilot_session")
	viper.SetDefault("calendar.calendar_id", "primary")
	viper.SetDefault("calendar.timezone", "America/Los_Angeles")
	viper.SetDefault("rate_limit.extract_per_minute", 10)
	viper.SetDefault("rate_limit.burst", 5)
}

// RetryDelayDuration parses the configured retry delay.
func (c *LLMConfig) RetryDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.RetryDelay)
	if err != nil {
		return time.Second
	}
	return d
}

// MaxTotalTimeoutDuration parses the configured fallback-chain timeout.
func (c *LLMConfig) MaxTotalTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.MaxTotalTimeout)
	if err != nil {
		return 0
	}
	return d
}
