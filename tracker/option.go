package tracker

type Fallback int

const (
	// FallbackHoldLast repeats the last output of a successful tick, 0 before the first one.
	FallbackHoldLast Fallback = iota
	// FallbackFailSafe emits the configured fail-safe output.
	FallbackFailSafe
)

func (f Fallback) String() string {
	if f == FallbackFailSafe {
		return "failsafe"
	}

	return "hold"
}

type Options struct {
	fallback       Fallback
	failSafeOutput float32
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

func HoldLastOutputOption() Option {
	return func(o *Options) {
		o.fallback = FallbackHoldLast
	}
}

func FailSafeOption(output float32) Option {
	return func(o *Options) {
		o.fallback = FallbackFailSafe
		o.failSafeOutput = output
	}
}
