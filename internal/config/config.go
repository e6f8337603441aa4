package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mathquest/app/internal/manuscript"
)

type Config struct {
	Backend struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"backend"`
	Credentials struct {
		Path string `yaml:"path"`
	} `yaml:"credentials"`
	Validator struct {
		Mode        string  `yaml:"mode"`
		Model       string  `yaml:"model"`
		CLIPath     string  `yaml:"cli_path"`
		Timeout     string  `yaml:"timeout"`
		Seed        int64   `yaml:"seed"`
		SuccessRate float64 `yaml:"success_rate"`
		Latency     string  `yaml:"latency"`
	} `yaml:"validator"`
	Ranking struct {
		Limit int `yaml:"limit"`
	} `yaml:"ranking"`
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
	DevBackend struct {
		Port      string `yaml:"port"`
		JWTSecret string `yaml:"jwt_secret"`
		Postgres  string `yaml:"postgres"`
		Redis     string `yaml:"redis"`
	} `yaml:"dev_backend"`

	// Set from the environment only.
	AnthropicAPIKey string `yaml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Backend.URL = "http://localhost:8000"
	cfg.Backend.Timeout = "10s"
	cfg.Credentials.Path = defaultCredentialsPath()
	cfg.Validator.Mode = manuscript.ModeMock
	cfg.Validator.Timeout = "10s"
	cfg.Validator.SuccessRate = 0.7
	cfg.Validator.Latency = "1500ms"
	cfg.Ranking.Limit = 10
	cfg.Log.Level = "info"
	cfg.DevBackend.Port = "8000"
	cfg.DevBackend.JWTSecret = "mathquest-dev-signing-key"
	return cfg
}

// Load reads .env when present, then the YAML file at path over the
// defaults, then environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Backend.URL = getEnv("MATHQUEST_API_URL", cfg.Backend.URL)
	cfg.Credentials.Path = getEnv("MATHQUEST_CREDENTIALS", cfg.Credentials.Path)
	cfg.Validator.Mode = getEnv("MATHQUEST_VALIDATOR", cfg.Validator.Mode)
	cfg.Validator.Model = getEnv("MATHQUEST_VALIDATOR_MODEL", cfg.Validator.Model)
	cfg.Validator.Timeout = getEnv("MATHQUEST_VALIDATOR_TIMEOUT", cfg.Validator.Timeout)
	cfg.Log.Level = getEnv("MATHQUEST_LOG_LEVEL", cfg.Log.Level)
	cfg.DevBackend.Port = getEnv("PORT", cfg.DevBackend.Port)
	cfg.DevBackend.JWTSecret = getEnv("MATHQUEST_JWT_SECRET", cfg.DevBackend.JWTSecret)
	cfg.DevBackend.Postgres = getEnv("DATABASE_URL", cfg.DevBackend.Postgres)
	cfg.DevBackend.Redis = getEnv("REDIS_ADDR", cfg.DevBackend.Redis)
	cfg.AnthropicAPIKey = getEnv("ANTHROPIC_API_KEY", cfg.AnthropicAPIKey)

	if v := os.Getenv("MATHQUEST_RANKING_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ranking.Limit = n
		}
	}
}

// Manuscript builds the validator settings.
func (c Config) Manuscript() manuscript.Config {
	return manuscript.Config{
		Mode:        c.Validator.Mode,
		Model:       c.Validator.Model,
		APIKey:      c.AnthropicAPIKey,
		CLIPath:     c.Validator.CLIPath,
		Seed:        c.Validator.Seed,
		SuccessRate: c.Validator.SuccessRate,
		Latency:     Duration(c.Validator.Latency, 0),
	}
}

func (c Config) BackendTimeout() time.Duration {
	return Duration(c.Backend.Timeout, 10*time.Second)
}

func (c Config) ValidationTimeout() time.Duration {
	return Duration(c.Validator.Timeout, 10*time.Second)
}

// Duration parses a duration string or returns the fallback if empty or
// malformed.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".mathquest/credentials.json"
	}
	return filepath.Join(dir, "mathquest", "credentials.json")
}
