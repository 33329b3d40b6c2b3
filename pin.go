package multiwire

import "context"

// Level is the logic level of a digital output line.
type Level bool

// The two logic levels.
const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l == High {
		return "High"
	}
	return "Low"
}

// A Pin is a single digital output line. The driver owns one Pin per motor
// wire and is its only writer for the life of the motor.
//
// Real hardware implementations live in the periphpin and linuxgpio
// subpackages; tests use the inject subpackage.
type Pin interface {
	// Set drives the line to the given level.
	Set(ctx context.Context, level Level) error
}
