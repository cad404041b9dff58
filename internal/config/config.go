package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API struct {
		BaseURL         string `yaml:"base_url"`
		APIKey          string `yaml:"api_key"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"api"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Prefs struct {
		Path string `yaml:"path"`
	} `yaml:"prefs"`

	Refresh struct {
		MinIntervalSeconds int `yaml:"min_interval_seconds"`
	} `yaml:"refresh"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	UI struct {
		Locale     string `yaml:"locale"`
		ExportPath string `yaml:"export_path"`
	} `yaml:"ui"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Prefs.Path == "" {
		cfg.Prefs.Path = "data/floorline.db"
	}
	if cfg.UI.Locale == "" {
		cfg.UI.Locale = "en"
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Prefs.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CacheTTL returns the snapshot cache TTL, zero when caching is disabled.
func (c *Config) CacheTTL() time.Duration {
	if c.API.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.API.CacheTTLSeconds) * time.Second
}

// RefreshInterval returns the minimum interval between upstream fetches.
func (c *Config) RefreshInterval() time.Duration {
	if c.Refresh.MinIntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Refresh.MinIntervalSeconds) * time.Second
}
