package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Weather WeatherConfig `yaml:"weather"`
	Insight InsightConfig `yaml:"insight"`
	Events  EventsConfig  `yaml:"events"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
	// Requests per minute per client before 429.
	RateLimit int `yaml:"rate_limit"`
}

type DatasetConfig struct {
	// Source selects where district features come from: "file" or "postgres".
	Source      string `yaml:"source"`
	WardsPath   string `yaml:"wards_path"`
	HazardsPath string `yaml:"hazards_path"`
	DatabaseURL string `yaml:"database_url"`
}

type WeatherConfig struct {
	URL          string `yaml:"url"`
	Key          string `yaml:"key"`
	ForecastDays int    `yaml:"forecast_days"`
}

type InsightConfig struct {
	URL   string `yaml:"url"`
	Key   string `yaml:"key"`
	Model string `yaml:"model"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
			RateLimit:   120,
		},
		Dataset: DatasetConfig{
			Source:      "file",
			WardsPath:   "data/wards_with_risk.geojson",
			HazardsPath: "data/water_logging_spots.json",
		},
		Weather: WeatherConfig{
			URL:          "https://api.weatherapi.com",
			ForecastDays: 3,
		},
		Insight: InsightConfig{
			URL:   "https://openrouter.ai/api",
			Model: "openai/gpt-4o-mini",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Dataset.Source != "file" && cfg.Dataset.Source != "postgres" {
		return nil, fmt.Errorf("dataset source must be file or postgres, got %q", cfg.Dataset.Source)
	}
	if cfg.Dataset.Source == "postgres" && cfg.Dataset.DatabaseURL == "" {
		return nil, fmt.Errorf("dataset source postgres requires a database url")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WARDWATCH_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("WARDWATCH_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("WARDWATCH_DATASET_SOURCE"); v != "" {
		cfg.Dataset.Source = v
	}
	if v := os.Getenv("WARDWATCH_WARDS_PATH"); v != "" {
		cfg.Dataset.WardsPath = v
	}
	if v := os.Getenv("WARDWATCH_HAZARDS_PATH"); v != "" {
		cfg.Dataset.HazardsPath = v
	}
	if v := os.Getenv("WARDWATCH_DATABASE_URL"); v != "" {
		cfg.Dataset.DatabaseURL = v
	}
	if v := os.Getenv("WARDWATCH_WEATHER_URL"); v != "" {
		cfg.Weather.URL = v
	}
	if v := os.Getenv("WARDWATCH_WEATHER_KEY"); v != "" {
		cfg.Weather.Key = v
	}
	if v := os.Getenv("WARDWATCH_INSIGHT_URL"); v != "" {
		cfg.Insight.URL = v
	}
	if v := os.Getenv("WARDWATCH_INSIGHT_KEY"); v != "" {
		cfg.Insight.Key = v
	}
	if v := os.Getenv("WARDWATCH_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("WARDWATCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
