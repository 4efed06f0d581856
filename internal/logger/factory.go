package logger

import (
	"os"
	"strconv"
	"strings"
)

// NewLoggerWithComponent builds the zap-backed logger for cfg and tags every
// entry with component, e.g. "pqbench" for the CLI.
func NewLoggerWithComponent(cfg LoggerConfig, component string) (Logger, error) {
	logger, err := NewZapLogger(cfg)
	if err != nil {
		return nil, err
	}

	return logger.With(Field{Key: "component", Value: component}), nil
}

// BaseConfigFromEnv picks the preset selected by PQBENCH_ENV. Anything other
// than "development" gets the production preset.
func BaseConfigFromEnv() LoggerConfig {
	if strings.ToLower(os.Getenv("PQBENCH_ENV")) == "development" {
		return DevelopmentConfig()
	}
	return DefaultConfig()
}

// ApplyEnv overrides cfg with any PQBENCH_LOG_* variables that are set.
func ApplyEnv(cfg LoggerConfig) LoggerConfig {
	if level := os.Getenv("PQBENCH_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}

	if format := os.Getenv("PQBENCH_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}

	if sampling := os.Getenv("PQBENCH_LOG_SAMPLING"); sampling != "" {
		cfg.EnableSampling = strings.ToLower(sampling) == "true"
	}

	if initial := os.Getenv("PQBENCH_LOG_SAMPLE_INITIAL"); initial != "" {
		if val, err := strconv.Atoi(initial); err == nil {
			cfg.SampleInitial = val
		}
	}

	if thereafter := os.Getenv("PQBENCH_LOG_SAMPLE_THEREAFTER"); thereafter != "" {
		if val, err := strconv.Atoi(thereafter); err == nil {
			cfg.SampleThereafter = val
		}
	}

	if dev := os.Getenv("PQBENCH_LOG_DEVELOPMENT"); dev != "" {
		cfg.Development = strings.ToLower(dev) == "true"
	}

	return cfg
}
