// Package multiwire implements a driver for 2, 4 and 5 wire stepper motors
// that turns requested step counts into timed coil energization patterns on
// injected digital output lines.
package multiwire

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	minToSec      = 60.0
	secondToMicro = 1e6
)

// Direction is the way the motor last moved.
type Direction uint8

// The two directions a move can latch.
const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "Reverse"
	}
	return "Forward"
}

// Stepper sequences the coils of a stepper motor wired to 2, 4 or 5 digital
// output lines.
//
// A Stepper is single-owner: Move blocks its calling goroutine for the whole
// motion and none of the motion state is synchronized, so calls on one
// Stepper must come from one goroutine at a time. Once started, a move runs
// to completion unless its context is canceled.
type Stepper struct {
	pins        []Pin
	sequence    [][]Level
	stepsPerRev int
	logger      golog.Logger

	clk    clock.Clock
	pacing Pacing

	position  int
	direction Direction
	stepDelay time.Duration
	// lastStep stays the zero time until the first transition. Sub
	// saturates rather than wrapping on such a span, so the first
	// transition of a fresh driver always reads as overdue.
	lastStep time.Time
}

// New returns a driver for a motor wired to the given output lines. The pin
// slice length must match cfg.Wires and the pins must be in wiring order:
// the slot a pin occupies decides which sequence column drives it. Every
// line is driven Low before New returns; the motor does not move.
//
// A fresh driver has no speed set, so moves pace only as fast as the clock
// can be polled until SetSpeed is called or cfg.RPM applies one.
func New(ctx context.Context, cfg Config, pins []Pin, logger golog.Logger, opts ...Option) (*Stepper, error) {
	sequence, err := stepSequence(cfg.Wires)
	if err != nil {
		return nil, err
	}
	if cfg.StepsPerRevolution <= 0 {
		return nil, NewStepsPerRevolutionError(cfg.StepsPerRevolution)
	}
	if len(pins) != cfg.Wires {
		return nil, NewPinCountError(len(pins), cfg.Wires)
	}

	opt := defaultOptions()
	for _, o := range opts {
		o.apply(&opt)
	}

	s := &Stepper{
		pins:        pins,
		sequence:    sequence,
		stepsPerRev: cfg.StepsPerRevolution,
		logger:      logger,
		clk:         opt.clock,
		pacing:      opt.pacing,
	}

	if cfg.RPM != 0 {
		if err := s.SetSpeed(cfg.RPM); err != nil {
			return nil, err
		}
	}

	// Start with every coil de-energized.
	if err := s.Off(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// SetSpeed sets the pace of subsequent moves to rpm revolutions per minute.
// The per-step delay is one minute in microseconds divided by the steps per
// revolution and then by rpm, truncated to whole microseconds. The time of
// the last transition is kept, so the first step of the next move is still
// paced relative to the previous one.
func (s *Stepper) SetSpeed(rpm float64) error {
	if rpm <= 0 {
		return NewInvalidRPMError(rpm)
	}

	micros := minToSec * secondToMicro / float64(s.stepsPerRev) / rpm
	s.stepDelay = time.Duration(micros) * time.Microsecond
	if s.stepDelay == 0 {
		s.logger.Debugf("step delay truncated to zero at %.2f rpm, steps will pace at clock poll speed", rpm)
	}
	return nil
}

// Move blocks until the motor has made the requested number of step
// transitions, each paced one step delay after the previous one on the
// driver's clock. The sign of steps picks the direction; zero steps returns
// immediately, leaving the direction latched by the previous move untouched.
//
// ctx is only checked between transitions, so cancellation never abandons a
// half-written coil pattern. A pin write failure aborts the move with the
// position already advanced and the remaining writes of that transition
// skipped; the coils stay as last written.
func (s *Stepper) Move(ctx context.Context, steps int) error {
	if steps == 0 {
		return nil
	}

	if steps > 0 {
		s.direction = Forward
	} else {
		s.direction = Reverse
	}

	remaining := steps
	if remaining < 0 {
		remaining = -remaining
	}

	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := s.clk.Now()
		if wait := s.stepDelay - now.Sub(s.lastStep); wait > 0 {
			if s.pacing == PacingSleep {
				s.clk.Sleep(wait)
			}
			continue
		}

		if err := s.step(ctx, now); err != nil {
			return err
		}
		remaining--
	}
	return nil
}

// step performs one transition: stamp the time, advance the position one
// slot in the latched direction, and energize the coils for the new slot.
func (s *Stepper) step(ctx context.Context, now time.Time) error {
	s.lastStep = now

	if s.direction == Forward {
		s.position = (s.position + 1) % s.stepsPerRev
	} else {
		s.position = (s.position + s.stepsPerRev - 1) % s.stepsPerRev
	}

	pattern := s.sequence[s.position%len(s.sequence)]
	for i, level := range pattern {
		if err := s.pins[i].Set(ctx, level); err != nil {
			return errors.Wrapf(err, "setting wire %d %s", i, level)
		}
	}
	return nil
}

// Off drives every wire Low so the motor stops holding torque. Every wire
// gets visited even if an earlier write fails; the position and direction
// latch are untouched.
func (s *Stepper) Off(ctx context.Context) error {
	var errs error
	for i, pin := range s.pins {
		if err := pin.Set(ctx, Low); err != nil {
			errs = multierr.Combine(errs, errors.Wrapf(err, "setting wire %d %s", i, Low))
		}
	}
	return errs
}

// Position returns the current logical step position, always in
// [0, steps per revolution).
func (s *Stepper) Position() int {
	return s.position
}

// Direction returns the direction latch: the direction of the last nonzero
// move. A fresh driver latches Forward.
func (s *Stepper) Direction() Direction {
	return s.direction
}

// StepDelay returns the enforced minimum interval between step transitions.
func (s *Stepper) StepDelay() time.Duration {
	return s.stepDelay
}
