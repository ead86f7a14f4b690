package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	SQLite    SQLiteConfig
	Redis     RedisConfig
	Cache     CacheConfig
	LLM       LLMConfig
	Alert     AlertConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	ReadTimeout    int
	WriteTimeout   int
	BodyLimit      int
	AllowedOrigins []string
	Development    bool
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GuideTTLHours int
}

type LLMConfig struct {
	BaseURL    string
	Model      string
	APIKey     string
	TimeoutSec int
	MaxRetries int
}

type AlertConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/rightsguard")

	v.SetEnvPrefix("RIGHTSGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// OPENROUTER_API_KEY and OPENAI_API_KEY are honoured as fallbacks, the
	// same names the hosted completion provider documents.
	if config.LLM.APIKey == "" {
		_ = v.BindEnv("llm.fallbackKey", "OPENROUTER_API_KEY", "OPENAI_API_KEY")
		config.LLM.APIKey = v.GetString("llm.fallbackKey")
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.bodyLimit", 1048576)
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.development", false)

	v.SetDefault("sqlite.path", "./data/rightsguard.db")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("cache.guideTTLHours", 24)

	v.SetDefault("llm.baseURL", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.model", "google/gemini-2.0-flash-001")
	v.SetDefault("llm.apiKey", "")
	v.SetDefault("llm.timeoutSec", 30)
	v.SetDefault("llm.maxRetries", 2)

	v.SetDefault("alert.sendGridAPIKey", "")
	v.SetDefault("alert.fromEmail", "alerts@rightsguard.app")
	v.SetDefault("alert.fromName", "RightsGuard")

	v.SetDefault("rateLimit.requestsPerMinute", 60)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputPath", "stdout")
}
