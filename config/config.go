// backend/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CSVSourceConfig holds the fallback locations for the missions dataset.
// An explicit --csv override always wins; otherwise the local path is
// tried first, then the remote URL.
type CSVSourceConfig struct {
	LocalPath string `yaml:"local_path"`
	RemoteURL string `yaml:"remote_url"`
}

type NASAConfig struct {
	APIKey          string `yaml:"api_key"`
	APODURL         string `yaml:"apod_url"`
	NeoFeedURL      string `yaml:"neo_feed_url"`
	ExoplanetURL    string `yaml:"exoplanet_url"`
	EarthImageryURL string `yaml:"earth_imagery_url"`

	RequestTimeoutStr string `yaml:"request_timeout"`
	RequestTimeout    time.Duration

	APODDays       int `yaml:"apod_days"`
	NeoDaysAhead   int `yaml:"neo_days_ahead"`
	ExoplanetLimit int `yaml:"exoplanet_limit"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	CSVSource CSVSourceConfig `yaml:"csv_source"`
	NASA      NASAConfig      `yaml:"nasa"`
}

var AppConfig Config

// LoadConfig reads configuration from the given YAML file and the environment.
// A .env file is honored when present. NASA_API_KEY from the environment
// always overrides the YAML value so the credential never has to live in a
// checked-in file.
func LoadConfig(configPath string) error {
	// Missing .env is fine; the variable may come from the real environment.
	_ = godotenv.Load()

	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, &AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if key := os.Getenv("NASA_API_KEY"); key != "" {
		AppConfig.NASA.APIKey = key
	}

	applyDefaults(&AppConfig)

	if AppConfig.NASA.RequestTimeoutStr != "" {
		var err error
		AppConfig.NASA.RequestTimeout, err = time.ParseDuration(AppConfig.NASA.RequestTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse nasa.request_timeout: %w", err)
		}
	} else {
		AppConfig.NASA.RequestTimeout = 10 * time.Second
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "nasa_missions.db"
	}
	if cfg.NASA.APODURL == "" {
		cfg.NASA.APODURL = "https://api.nasa.gov/planetary/apod"
	}
	if cfg.NASA.NeoFeedURL == "" {
		cfg.NASA.NeoFeedURL = "https://api.nasa.gov/neo/rest/v1/feed"
	}
	if cfg.NASA.ExoplanetURL == "" {
		cfg.NASA.ExoplanetURL = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"
	}
	if cfg.NASA.EarthImageryURL == "" {
		cfg.NASA.EarthImageryURL = "https://api.nasa.gov/planetary/earth/imagery"
	}
	if cfg.NASA.APODDays <= 0 {
		cfg.NASA.APODDays = 7
	}
	if cfg.NASA.NeoDaysAhead <= 0 {
		cfg.NASA.NeoDaysAhead = 7
	}
	if cfg.NASA.ExoplanetLimit <= 0 {
		cfg.NASA.ExoplanetLimit = 50
	}
}

// Validate checks the parts of the configuration that must be present
// before the application talks to external services.
func Validate() error {
	if AppConfig.NASA.APIKey == "" {
		return fmt.Errorf("NASA API key is not configured: set NASA_API_KEY or nasa.api_key")
	}
	return nil
}
