package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if POSEVIEW_CONFIG is set
//  3. env (prefix POSEVIEW_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("POSEVIEW_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: POSEVIEW_ADDR, POSEVIEW_TARGET_FPS, ...
	// Keys stay flat and keep their underscores to match the koanf tags.
	envProvider := env.Provider("POSEVIEW_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "poseview_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	switch c.Detector {
	case "pose", "holistic", "mock":
	default:
		return fmt.Errorf("unknown detector %q", c.Detector)
	}
	switch c.Facing {
	case "front", "back":
	default:
		return fmt.Errorf("unknown facing %q", c.Facing)
	}
	if c.TargetFPS <= 0 {
		return errors.New("target_fps must be positive")
	}
	if c.MotionThreshold <= 0 {
		return errors.New("motion_threshold must be positive")
	}
	return nil
}
