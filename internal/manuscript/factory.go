package manuscript

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Validator modes.
const (
	ModeMock   = "mock"
	ModeAPI    = "api"
	ModeCLI    = "cli"
	ModeAccept = "accept"
	ModeReject = "reject"
)

type Config struct {
	Mode        string
	Model       string
	APIKey      string
	CLIPath     string
	Seed        int64
	SuccessRate float64
	Latency     time.Duration
}

// New builds the validator selected by cfg.Mode.
func New(cfg Config, logger *zap.Logger) (Validator, error) {
	switch cfg.Mode {
	case "", ModeMock:
		logger.Info("manuscript validator using random stub",
			zap.Float64("success_rate", cfg.SuccessRate), zap.Duration("latency", cfg.Latency))
		return NewRandomValidator(cfg.Seed, cfg.SuccessRate, cfg.Latency), nil
	case ModeAccept:
		return Fixed(true), nil
	case ModeReject:
		return Fixed(false), nil
	case ModeCLI:
		path := cfg.CLIPath
		if path == "" {
			path = "claude"
		}
		logger.Info("manuscript validator using claude CLI", zap.String("path", path))
		return NewAIValidator(NewCLIClient(path), "claude-cli", logger), nil
	case ModeAPI:
		model := cfg.Model
		if model == "" {
			model = "claude-sonnet-4-5-20250929"
		}
		logger.Info("manuscript validator using anthropic API", zap.String("model", model))
		return NewAIValidator(NewAPIClient(cfg.APIKey, model, logger), model, logger), nil
	default:
		return nil, fmt.Errorf("unknown validator mode %q", cfg.Mode)
	}
}
