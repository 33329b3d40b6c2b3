// Package periphpin adapts periph.io GPIO outputs to multiwire pins.
//
// Host initialization and pin lookup stay with the caller; hand New an
// already resolved gpio.PinOut (for example from gpioreg.ByName after
// host.Init).
package periphpin

import (
	"context"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"

	"github.com/viam-labs/multiwire"
)

// New wraps a periph output pin as a multiwire.Pin.
func New(out gpio.PinOut) multiwire.Pin {
	return &pin{out: out}
}

type pin struct {
	out gpio.PinOut
}

func (p *pin) Set(ctx context.Context, level multiwire.Level) error {
	if err := p.out.Out(gpio.Level(level)); err != nil {
		return errors.Wrapf(err, "setting %s", p.out.Name())
	}
	return nil
}
