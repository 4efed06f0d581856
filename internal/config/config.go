// Package config loads pqbench settings from an optional YAML file and the
// environment. The zero-file defaults reproduce the stock benchmark: counts
// 50000 down to 10000, both queue types, table output.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pqbench/internal/bench"
	"pqbench/internal/logger"
	"pqbench/internal/pq"
	"pqbench/internal/report"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete runtime configuration.
type Config struct {
	Counts         []int               `yaml:"counts"`
	Queues         []string            `yaml:"queues"`
	Output         string              `yaml:"output"`
	CollectGarbage bool                `yaml:"collect_garbage"`
	MetricsFile    string              `yaml:"metrics_file"`
	Log            logger.LoggerConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	types := pq.Types()
	queues := make([]string, len(types))
	for i, t := range types {
		queues[i] = string(t)
	}

	return Config{
		Counts:         bench.DefaultCounts(),
		Queues:         queues,
		Output:         string(report.FormatTable),
		CollectGarbage: true,
		Log:            logger.BaseConfigFromEnv(),
	}
}

// Read layers the file at path and the environment over the defaults
// without validating. An empty path skips the file. Callers that apply
// further overrides validate once they are done.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := decode(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// Load is Read followed by Validate.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode strictly unmarshals YAML from r into cfg. Unknown keys are
// rejected; an empty document leaves cfg untouched.
func decode(r io.Reader, cfg *Config) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(body))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(typeErr.Errors, "; "))
		}
		return err
	}
	return nil
}

// ApplyEnv overrides fields from PQBENCH_* variables.
func (c *Config) ApplyEnv() {
	if output := os.Getenv("PQBENCH_OUTPUT"); output != "" {
		c.Output = output
	}
	c.Log = logger.ApplyEnv(c.Log)
}

// Validate checks counts, queue names and output format.
func (c Config) Validate() error {
	if len(c.Counts) == 0 {
		return fmt.Errorf("%w: counts must not be empty", ErrInvalidConfig)
	}
	if err := bench.ValidateCounts(c.Counts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Queues) == 0 {
		return fmt.Errorf("%w: queues must not be empty", ErrInvalidConfig)
	}
	if _, err := c.QueueTypes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := report.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// QueueTypes resolves the configured queue names, dropping duplicates.
func (c Config) QueueTypes() ([]pq.Type, error) {
	seen := make(map[pq.Type]bool, len(c.Queues))
	types := make([]pq.Type, 0, len(c.Queues))
	for _, name := range c.Queues {
		t, err := pq.ParseType(name)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types, nil
}
