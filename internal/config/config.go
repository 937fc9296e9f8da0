package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  Server  `mapstructure:"server"`
	Memegen Memegen `mapstructure:"memegen"`
	Fetch   Fetch   `mapstructure:"fetch"`
	Search  Search  `mapstructure:"search"`
	Suggest Suggest `mapstructure:"suggest"`
	Quotes  Quotes  `mapstructure:"quotes"`
	Logging Logging `mapstructure:"logging"`
}

// Server holds MCP server configuration
type Server struct {
	Name      string `mapstructure:"name"`
	Version   string `mapstructure:"version"`
	Transport string `mapstructure:"transport"`
	Listen    string `mapstructure:"listen"`
}

// Memegen holds meme rendering service configuration
type Memegen struct {
	BaseURL       string `mapstructure:"base_url"`
	Timeout       string `mapstructure:"timeout"`
	MaxConcurrent int    `mapstructure:"max_concurrent"`
}

// Fetch holds URL text fetching configuration
type Fetch struct {
	Timeout  string `mapstructure:"timeout"`
	MaxWords int    `mapstructure:"max_words"`
}

// Search holds keyword search configuration
type Search struct {
	DefaultLimit int `mapstructure:"default_limit"`
}

// Suggest holds template suggestion configuration
type Suggest struct {
	DefaultLimit int `mapstructure:"default_limit"`
}

// Quotes holds quote extraction configuration
type Quotes struct {
	DefaultMaxLength int `mapstructure:"default_max_length"`
	DefaultLimit     int `mapstructure:"default_limit"`
}

// Logging holds logging configuration
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TimeoutDuration returns the render timeout, falling back to the default
// when unset or unparsable.
func (m Memegen) TimeoutDuration() time.Duration {
	return parseDurationOr(m.Timeout, 8*time.Second)
}

// TimeoutDuration returns the fetch timeout, falling back to the default
// when unset or unparsable.
func (f Fetch) TimeoutDuration() time.Duration {
	return parseDurationOr(f.Timeout, 10*time.Second)
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

var globalConfig *Config

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
		}
	}

	// Configure viper
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".meme-mcp")
		viper.SetConfigType("yaml")
	}

	// Set defaults
	setDefaults()

	// Bind environment variables
	bindEnvironmentVariables()

	// Enable automatic environment variable reading
	viper.SetEnvPrefix("MEME_MCP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into struct
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.name", "meme-generator")
	viper.SetDefault("server.version", "1.0.0")
	viper.SetDefault("server.transport", "stdio")
	viper.SetDefault("server.listen", ":8475")

	// Memegen defaults
	viper.SetDefault("memegen.base_url", "https://api.memegen.link")
	viper.SetDefault("memegen.timeout", "8s")
	viper.SetDefault("memegen.max_concurrent", 4)

	// Fetch defaults
	viper.SetDefault("fetch.timeout", "10s")
	viper.SetDefault("fetch.max_words", 8000)

	// Scoring defaults
	viper.SetDefault("search.default_limit", 5)
	viper.SetDefault("suggest.default_limit", 5)
	viper.SetDefault("quotes.default_max_length", 100)
	viper.SetDefault("quotes.default_limit", 10)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	bindEnvKeys("memegen.base_url", []string{
		"MEMEGEN_BASE_URL",
		"MEME_MCP_MEMEGEN_BASE_URL",
	})

	bindEnvKeys("server.transport", []string{
		"MEME_MCP_TRANSPORT",
	})

	bindEnvKeys("server.listen", []string{
		"MEME_MCP_LISTEN",
	})

	bindEnvKeys("logging.level", []string{
		"MEME_MCP_LOG_LEVEL",
		"LOG_LEVEL",
	})

	bindEnvKeys("logging.format", []string{
		"MEME_MCP_LOG_FORMAT",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// validateConfig ensures required configuration is present and well-formed
func validateConfig(config *Config) error {
	var errors []string

	switch config.Server.Transport {
	case "stdio", "sse":
	default:
		errors = append(errors, fmt.Sprintf("Unknown transport: %s. Supported: stdio, sse", config.Server.Transport))
	}
	if config.Server.Transport == "sse" && config.Server.Listen == "" {
		errors = append(errors, "server.listen is required when transport is sse")
	}

	if parsed, err := url.Parse(config.Memegen.BaseURL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		errors = append(errors, fmt.Sprintf("memegen.base_url must be an http(s) URL, got: %s", config.Memegen.BaseURL))
	}
	if config.Memegen.MaxConcurrent < 1 {
		errors = append(errors, "memegen.max_concurrent must be at least 1")
	}

	durations := map[string]string{
		"memegen.timeout": config.Memegen.Timeout,
		"fetch.timeout":   config.Fetch.Timeout,
	}
	for key, duration := range durations {
		if duration != "" {
			if _, err := time.ParseDuration(duration); err != nil {
				errors = append(errors, fmt.Sprintf("invalid duration for %s: %s", key, duration))
			}
		}
	}

	if config.Search.DefaultLimit < 1 || config.Search.DefaultLimit > 10 {
		errors = append(errors, "search.default_limit must be between 1 and 10")
	}
	if config.Suggest.DefaultLimit < 1 || config.Suggest.DefaultLimit > 10 {
		errors = append(errors, "suggest.default_limit must be between 1 and 10")
	}
	if config.Quotes.DefaultMaxLength < 10 || config.Quotes.DefaultMaxLength > 200 {
		errors = append(errors, "quotes.default_max_length must be between 10 and 200")
	}
	if config.Quotes.DefaultLimit < 1 || config.Quotes.DefaultLimit > 20 {
		errors = append(errors, "quotes.default_limit must be between 1 and 20")
	}

	switch strings.ToLower(config.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("Unknown log level: %s. Supported: debug, info, warn, error", config.Logging.Level))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Convenience getters for commonly used configuration values
func GetServer() Server   { return Get().Server }
func GetMemegen() Memegen { return Get().Memegen }
func GetFetch() Fetch     { return Get().Fetch }
func GetSearch() Search   { return Get().Search }
func GetSuggest() Suggest { return Get().Suggest }
func GetQuotes() Quotes   { return Get().Quotes }
func GetLogging() Logging { return Get().Logging }

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
