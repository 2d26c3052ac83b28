package loop

import (
	"context"
	"time"

	"github.com/sgostarter/libthermctl/tracker"
)

// Sensor reads the controlled temperature.
type Sensor interface {
	ReadTemperature(ctx context.Context) (float32, error)
}

// Actuator applies controller outputs. FailSafe must put the plant in a safe state, e.g. heater off.
type Actuator interface {
	Apply(ctx context.Context, output float32) error
	FailSafe(ctx context.Context) error
}

// Checkpointer persists the session snapshot after each successful Step.
type Checkpointer interface {
	Save(name string, snap tracker.Snapshot) error
}

type Config struct {
	Interval time.Duration `yaml:"interval" json:"interval"`
	// StallTimeout forces FailSafe when no tick completes for this long; 0 disables it.
	StallTimeout time.Duration `yaml:"stallTimeout" json:"stallTimeout"`
}
