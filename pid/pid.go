package pid

// PID is a clamped PID control law with integral anti-windup.
//
// Not safe for concurrent use; every control loop owns its own instance.
type PID struct {
	constants Constants
	limits    Limits
	state     State
}

func New(constants Constants, limits Limits) *PID {
	return &PID{
		constants: constants,
		limits:    limits,
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// Update advances the controller by dt and returns the output clamped to the limits.
//
// The integral accumulator is clamped to the output limits, not to a range scaled by Ki.
// A non-positive dt contributes no derivative term.
func (pid *PID) Update(dt, desired, measured float32) float32 {
	err := desired - measured

	pid.state.Integral += err * dt
	pid.state.Integral = clamp(pid.state.Integral, pid.limits.OutputMin, pid.limits.OutputMax)

	var derivative float32
	if dt > 0 {
		derivative = (err - pid.state.PrevError) / dt
	}

	out := pid.constants.Kp*err + pid.constants.Ki*pid.state.Integral + pid.constants.Kd*derivative
	out = clamp(out, pid.limits.OutputMin, pid.limits.OutputMax)

	pid.state.PrevError = err

	return out
}

// Reset clears the accumulated state. Constants and limits are kept.
func (pid *PID) Reset() {
	pid.state = State{}
}

func (pid *PID) Constants() Constants {
	return pid.constants
}

func (pid *PID) Limits() Limits {
	return pid.limits
}

func (pid *PID) State() State {
	return pid.state
}
