package multiwire

import "github.com/benbjohnson/clock"

// Pacing selects how Move waits out the interval between step transitions.
type Pacing int

const (
	// PacingSleep sleeps the calling goroutine until the next transition
	// is due. The default.
	PacingSleep Pacing = iota
	// PacingBusy polls the clock in a tight loop, trading a busy CPU for
	// the tightest step timing the clock can resolve.
	PacingBusy
)

// options configures a Stepper.
type options struct {
	clock  clock.Clock
	pacing Pacing
}

// Option configures how we set up the driver.
// Cribbed from https://github.com/grpc/grpc-go/blob/aff571cc86e6e7e740130dbbb32a9741558db805/dialoptions.go#L41
type Option interface {
	apply(*options)
}

// funcOption wraps a function that modifies options into an
// implementation of the Option interface.
type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(o *options) {
	fo.f(o)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithClock returns an Option which sets the clock step transitions are
// paced against. Tests use this to substitute a mock or stub clock.
func WithClock(c clock.Clock) Option {
	return newFuncOption(func(o *options) {
		o.clock = c
	})
}

// WithPacing returns an Option which sets the waiting strategy used
// between step transitions.
func WithPacing(p Pacing) Option {
	return newFuncOption(func(o *options) {
		o.pacing = p
	})
}

func defaultOptions() options {
	return options{
		clock:  clock.New(),
		pacing: PacingSleep,
	}
}
