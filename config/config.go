package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libthermctl/curve"
	"github.com/sgostarter/libthermctl/loop"
	"github.com/sgostarter/libthermctl/pid"
	"github.com/sgostarter/libthermctl/tracker"
	"gopkg.in/yaml.v3"
)

const (
	FallbackHold     = "hold"
	FallbackFailSafe = "failsafe"
)

type Config struct {
	Sessions map[string]*SessionConfig `yaml:"sessions" json:"sessions"`
}

type SessionConfig struct {
	Points         []curve.Point `yaml:"points" json:"points"`
	PID            pid.Config    `yaml:"pid" json:"pid"`
	TickInterval   time.Duration `yaml:"tickInterval" json:"tickInterval"`
	StallTimeout   time.Duration `yaml:"stallTimeout" json:"stallTimeout"`
	Fallback       string        `yaml:"fallback" json:"fallback"`
	FailSafeOutput float32       `yaml:"failSafeOutput" json:"failSafeOutput"`
}

func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(d)
}

func Parse(d []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return nil, err
	}

	if len(cfg.Sessions) == 0 {
		return nil, fmt.Errorf("config: no sessions: %w", commerr.ErrInvalidArgument)
	}

	for name, sc := range cfg.Sessions {
		if sc == nil {
			return nil, fmt.Errorf("config: session %q is empty: %w", name, commerr.ErrInvalidArgument)
		}

		if err := sc.applyDefaultsAndValidate(); err != nil {
			return nil, fmt.Errorf("config: session %q: %w", name, err)
		}
	}

	return &cfg, nil
}

func (sc *SessionConfig) applyDefaultsAndValidate() error {
	if sc.TickInterval <= 0 {
		sc.TickInterval = time.Second
	}

	if sc.StallTimeout < 0 {
		sc.StallTimeout = 0
	}

	if sc.Fallback == "" {
		sc.Fallback = FallbackHold
	}

	if sc.Fallback != FallbackHold && sc.Fallback != FallbackFailSafe {
		return fmt.Errorf("unknown fallback %q: %w", sc.Fallback, commerr.ErrInvalidArgument)
	}

	if err := sc.PID.Validate(); err != nil {
		return err
	}

	if _, err := curve.NewPolyline(sc.Points); err != nil {
		return err
	}

	return nil
}

func (sc *SessionConfig) trackerOptions() []tracker.Option {
	if sc.Fallback == FallbackFailSafe {
		return []tracker.Option{tracker.FailSafeOption(sc.FailSafeOutput)}
	}

	return []tracker.Option{tracker.HoldLastOutputOption()}
}

// BuildSession creates a fresh profile and controller for one control session.
func (sc *SessionConfig) BuildSession(logger l.Wrapper) (*tracker.Session, error) {
	profile, err := curve.NewPolyline(sc.Points)
	if err != nil {
		return nil, err
	}

	return tracker.NewSession(profile, sc.PID.Build(), logger, sc.trackerOptions()...), nil
}

func (sc *SessionConfig) LoopConfig() loop.Config {
	return loop.Config{
		Interval:     sc.TickInterval,
		StallTimeout: sc.StallTimeout,
	}
}
