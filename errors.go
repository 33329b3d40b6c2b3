package multiwire

import "github.com/pkg/errors"

// NewWireCountError returns an error for a wire count the driver has no
// energization sequence for.
func NewWireCountError(wires int) error {
	return errors.Errorf("no step sequence for %d wire motors, must be 2, 4 or 5", wires)
}

// NewPinCountError returns an error for a pin slice whose length does not
// match the configured wire count.
func NewPinCountError(pins, wires int) error {
	return errors.Errorf("got %d pins for a %d wire motor", pins, wires)
}

// NewStepsPerRevolutionError returns an error for a steps per revolution
// value the position counter cannot wrap on.
func NewStepsPerRevolutionError(steps int) error {
	return errors.Errorf("steps per revolution must be positive, got %d", steps)
}

// NewInvalidRPMError returns an error representing a request to pace the
// motor at zero or negative speed.
func NewInvalidRPMError(rpm float64) error {
	return errors.Errorf("rpm must be positive, got %.2f", rpm)
}
