package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/LakshyaPrd/cv-screening-new/internal/config"
	"github.com/LakshyaPrd/cv-screening-new/internal/llm"
)

// loadConfig merges the optional config file with built-in defaults
func loadConfig() (config.Config, error) {
	defaults := config.Config{
		ModelTier:        "standard",
		AITimeoutSecond:  60,
		BatchConcurrency: 8,
	}

	if flagConfig == "" {
		return defaults, nil
	}

	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(defaults), nil
}

// buildLogger returns a console logger, detailed in verbose mode
func buildLogger() *zap.Logger {
	if flagVerbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// resolveAPIKey prefers the flag, then config, then the environment
func resolveAPIKey(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// resolveDatabaseURL prefers the flag, then config, then the environment
func resolveDatabaseURL(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return os.Getenv("DATABASE_URL")
}

func tierFromConfig(cfg config.Config) llm.ModelTier {
	switch cfg.ModelTier {
	case "lite":
		return llm.TierLite
	case "advanced":
		return llm.TierAdvanced
	default:
		return llm.TierStandard
	}
}
