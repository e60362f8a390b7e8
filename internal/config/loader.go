package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LECTERN_CONFIG is set
//  3. env (prefix LECTERN_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("LECTERN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: LECTERN_ADDR, LECTERN_MAX_SEGMENT_LEN, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("LECTERN_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "lectern_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxSegmentLen <= 0:
		return fmt.Errorf("%w: max_segment_len must be positive", ErrInvalidConfig)
	case c.PauseThreshold <= 0:
		return fmt.Errorf("%w: pause_threshold must be positive", ErrInvalidConfig)
	case c.TopTransitions < 0 || c.TopWords < 0 || c.MaxPaceChanges < 0:
		return fmt.Errorf("%w: report caps must not be negative", ErrInvalidConfig)
	case c.MaxReportLimit < 1:
		return fmt.Errorf("%w: max_report_limit must be at least 1", ErrInvalidConfig)
	}
	return nil
}
