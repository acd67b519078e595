package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration
type Config struct {
	Engine  EngineConfig  `json:"engine"`
	Cache   CacheConfig   `json:"cache"`
	Metrics MetricsConfig `json:"metrics"`
	Logging LoggingConfig `json:"logging"`
}

// EngineConfig represents report engine configuration
type EngineConfig struct {
	Environment          string  `json:"environment"`
	Budget               float64 `json:"budget"`
	TopEscalationGroups  int     `json:"top_escalation_groups"`
	DefaultServiceLevel  float64 `json:"default_service_level"`
	DefaultAnswerTimeSec int     `json:"default_answer_time_sec"`
}

// CacheConfig represents report cache configuration
type CacheConfig struct {
	Enabled  bool          `json:"enabled"`
	Backend  string        `json:"backend"` // memory, redis
	RedisURL string        `json:"redis_url"`
	TTL      time.Duration `json:"ttl"`
}

// MetricsConfig represents Prometheus exposition configuration
type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // json, text
}

// Load loads configuration from environment variables and defaults
func Load() (*Config, error) {
	config := &Config{
		Engine: EngineConfig{
			Environment:          getEnv("ENVIRONMENT", "development"),
			Budget:               getEnvFloat("ENGINE_BUDGET", 0),
			TopEscalationGroups:  getEnvInt("ENGINE_TOP_ESCALATION_GROUPS", 5),
			DefaultServiceLevel:  getEnvFloat("ENGINE_DEFAULT_SERVICE_LEVEL", 0.8),
			DefaultAnswerTimeSec: getEnvInt("ENGINE_DEFAULT_ANSWER_TIME_SEC", 20),
		},
		Cache: CacheConfig{
			Enabled:  getEnvBool("CACHE_ENABLED", true),
			Backend:  getEnv("CACHE_BACKEND", "memory"),
			RedisURL: getEnv("CACHE_REDIS_URL", "redis://localhost:6379/0"),
			TTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", false),
			Addr:    getEnv("METRICS_ADDR", ":9090"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Cache.Enabled {
		if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
			return fmt.Errorf("unknown cache backend: %s", c.Cache.Backend)
		}
		if c.Cache.Backend == "redis" && c.Cache.RedisURL == "" {
			return fmt.Errorf("redis URL is required for the redis cache backend")
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache TTL must be positive")
		}
	}

	if c.Engine.TopEscalationGroups <= 0 {
		return fmt.Errorf("top escalation groups must be positive")
	}

	if c.Engine.DefaultServiceLevel <= 0 || c.Engine.DefaultServiceLevel >= 1 {
		return fmt.Errorf("default service level must be between 0 and 1")
	}

	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics address is required when metrics are enabled")
	}

	return nil
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.Engine.Environment == "production"
}

// Helper functions for environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
