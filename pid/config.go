package pid

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/commerr"
)

type Config struct {
	Kp        float32 `yaml:"kp" json:"kp"`
	Ki        float32 `yaml:"ki" json:"ki"`
	Kd        float32 `yaml:"kd" json:"kd"`
	OutputMin float32 `yaml:"outputMin" json:"outputMin"`
	OutputMax float32 `yaml:"outputMax" json:"outputMax"`
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

// Validate rejects configurations the control law would accept but cannot make sense of.
func (cfg Config) Validate() error {
	if !finite(cfg.Kp, cfg.Ki, cfg.Kd, cfg.OutputMin, cfg.OutputMax) {
		return fmt.Errorf("pid: non-finite config value: %w", commerr.ErrInvalidArgument)
	}

	if cfg.OutputMin > cfg.OutputMax {
		return fmt.Errorf("pid: outputMin %v above outputMax %v: %w", cfg.OutputMin, cfg.OutputMax,
			commerr.ErrInvalidArgument)
	}

	return nil
}

func (cfg Config) Constants() Constants {
	return Constants{
		Kp: cfg.Kp,
		Ki: cfg.Ki,
		Kd: cfg.Kd,
	}
}

func (cfg Config) Limits() Limits {
	return Limits{
		OutputMin: cfg.OutputMin,
		OutputMax: cfg.OutputMax,
	}
}

func (cfg Config) Build() *PID {
	return New(cfg.Constants(), cfg.Limits())
}
