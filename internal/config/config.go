// Package config loads application settings from environment variables
// (with an optional .env file) via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the server.
type Config struct {
	Addr            string `mapstructure:"ADDR"`
	SessionBackend  string `mapstructure:"SESSION_BACKEND"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	CORSOrigins     string `mapstructure:"CORS_ORIGINS"`
}

// Load reads configuration from environment variables, falling back to an
// optional .env file in the given path.
func Load(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("ADDR", ":8080")
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL_HOURS", 24)

	_ = viper.BindEnv("ADDR")
	_ = viper.BindEnv("SESSION_BACKEND")
	_ = viper.BindEnv("REDIS_URL")
	_ = viper.BindEnv("SESSION_TTL_HOURS")
	_ = viper.BindEnv("CORS_ORIGINS")

	// The .env file is optional; only real read errors matter.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	config.SessionBackend = strings.ToLower(strings.TrimSpace(config.SessionBackend))
	switch config.SessionBackend {
	case "memory":
	case "redis":
		if strings.TrimSpace(config.RedisURL) == "" {
			return Config{}, fmt.Errorf("REDIS_URL is required when SESSION_BACKEND=redis")
		}
	default:
		return Config{}, fmt.Errorf("unknown SESSION_BACKEND %q", config.SessionBackend)
	}

	if config.SessionTTLHours <= 0 {
		config.SessionTTLHours = 24
	}

	return config, nil
}

// Origins returns the configured CORS origins as a list.
func (c Config) Origins() []string {
	if strings.TrimSpace(c.CORSOrigins) == "" {
		return nil
	}
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
