package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube   YouTubeConfig   `yaml:"youtube"`
	Server    ServerConfig    `yaml:"server"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`
}

type DiscoveryConfig struct {
	DefaultLanguage   string `yaml:"default_language"`
	HeartbeatSchedule string `yaml:"heartbeat_schedule"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = os.Getenv("PORT")
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = os.Getenv("APP_ENV")
	}
	if cfg.Discovery.DefaultLanguage == "" {
		cfg.Discovery.DefaultLanguage = os.Getenv("DEFAULT_LANGUAGE")
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Discovery.DefaultLanguage == "" {
		cfg.Discovery.DefaultLanguage = "en"
	}
	if cfg.Discovery.HeartbeatSchedule == "" {
		cfg.Discovery.HeartbeatSchedule = "@every 1h"
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or youtube.api_key)")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}
