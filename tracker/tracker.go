package tracker

import (
	"fmt"
	"strconv"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libthermctl/curve"
	"github.com/sgostarter/libthermctl/pid"
)

type Status int

const (
	StatusIdle Status = iota
	StatusTracking
	StatusFallback
)

func (s Status) String() string {
	switch s {
	case StatusTracking:
		return "tracking"
	case StatusFallback:
		return "fallback"
	default:
		return "idle"
	}
}

type Snapshot struct {
	Elapsed   float64 `json:"elapsed"`
	Setpoint  float32 `json:"setpoint"`
	Measured  float32 `json:"measured"`
	Output    float32 `json:"output"`
	Status    Status  `json:"status"`
	Faults    int     `json:"faults"`
	LastError string  `json:"last_error,omitempty"`
}

// Session follows a temperature profile with a controller, one Tick per control period.
//
// Not safe for concurrent use.
type Session struct {
	logger     l.Wrapper
	profile    curve.Curve
	controller pid.Controller
	opts       *Options

	snap     Snapshot
	lastGood float32
}

func NewSession(profile curve.Curve, controller pid.Controller, logger l.Wrapper, opts ...Option) *Session {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "trackerSession"))

	if profile == nil || controller == nil {
		logger.Fatal("no dependency objects")
	}

	return &Session{
		logger:     logger,
		profile:    profile,
		controller: controller,
		opts:       optionNew(opts...),
	}
}

// Tick samples the profile at elapsed seconds and feeds the setpoint and measurement to the
// controller. When the profile rejects elapsed the fallback output is returned along with the error.
func (s *Session) Tick(elapsed float64, dt, measured float32) (output float32, err error) {
	s.snap.Elapsed = elapsed
	s.snap.Measured = measured

	desired, err := s.profile.TemperatureAt(elapsed)
	if err != nil {
		output = s.fallbackOutput()

		s.snap.Output = output
		s.snap.Status = StatusFallback
		s.snap.Faults++
		s.snap.LastError = err.Error()

		s.logger.WithFields(l.ErrorField(err), l.StringField("elapsed", strconv.FormatFloat(elapsed, 'g', -1, 64)),
			l.StringField("fallback", s.opts.fallback.String())).Error("setpoint lookup failed")

		err = fmt.Errorf("setpoint lookup: %w", err)

		return
	}

	setpoint := float32(desired)
	output = s.controller.Update(dt, setpoint, measured)

	s.lastGood = output
	s.snap.Setpoint = setpoint
	s.snap.Output = output
	s.snap.Status = StatusTracking
	s.snap.LastError = ""

	return
}

func (s *Session) fallbackOutput() float32 {
	if s.opts.fallback == FallbackFailSafe {
		return s.opts.failSafeOutput
	}

	return s.lastGood
}

// Restart resets the controller and forgets the session history, e.g. for a new run of the profile.
func (s *Session) Restart() {
	s.controller.Reset()

	s.snap = Snapshot{}
	s.lastGood = 0
}

func (s *Session) Snapshot() Snapshot {
	return s.snap
}

func (s *Session) Fallback() Fallback {
	return s.opts.fallback
}
