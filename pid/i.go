package pid

// Controller turns a setpoint and a measurement into a bounded actuator command once per tick.
type Controller interface {
	Update(dt, desired, measured float32) float32
	Reset()
}

type Constants struct {
	Kp float32
	Ki float32
	Kd float32
}

// Limits bound both the output and the integral accumulator.
type Limits struct {
	OutputMin float32
	OutputMax float32
}

type State struct {
	PrevError float32
	Integral  float32
}
