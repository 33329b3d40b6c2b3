package inject

import (
	"context"

	"github.com/viam-labs/multiwire"
)

// Pin is an injected pin.
type Pin struct {
	multiwire.Pin
	SetFunc func(ctx context.Context, level multiwire.Level) error
}

// Set calls the injected Set or the real version.
func (p *Pin) Set(ctx context.Context, level multiwire.Level) error {
	if p.SetFunc == nil {
		return p.Pin.Set(ctx, level)
	}
	return p.SetFunc(ctx, level)
}
