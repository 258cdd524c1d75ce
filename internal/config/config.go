package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultAttributeStaleTicks is how long a cached attribute value may be
// reused before it is looked up again.
const DefaultAttributeStaleTicks = 100

// Config holds all configuration for the targeting binaries
type Config struct {
	Redis     RedisConfig
	Targeting TargetingConfig
}

// RedisConfig holds Redis-specific configuration.
// URL takes precedence over Addr/Password/DB when set.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether any Redis connection was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Addr != ""
}

// TargetingConfig holds engine tunables
type TargetingConfig struct {
	DefinitionsPath     string
	AttributeStaleTicks int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Targeting: TargetingConfig{
			DefinitionsPath:     getEnvOrDefault("ABILITY_DEFINITIONS_PATH", "configs/abilities.json"),
			AttributeStaleTicks: getEnvAsIntOrDefault("ATTRIBUTE_STALE_TICKS", DefaultAttributeStaleTicks),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if c.Targeting.AttributeStaleTicks < 0 {
		return fmt.Errorf("ATTRIBUTE_STALE_TICKS must not be negative, got %d", c.Targeting.AttributeStaleTicks)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", c.Redis.DB)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
