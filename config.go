package multiwire

import (
	"go.viam.com/utils"
)

// Config describes how a stepper motor is wired and, optionally, how fast
// it should turn.
type Config struct {
	// Wires is the number of driven output lines: 2, 4 or 5. It selects
	// the energization sequence and cannot change after construction.
	Wires int `json:"wires"`
	// StepsPerRevolution is the number of logical positions in one full
	// revolution. It is independent of the sequence length.
	StepsPerRevolution int `json:"steps_per_revolution"`
	// RPM, if nonzero, is an initial speed applied at construction as if
	// by SetSpeed.
	RPM float64 `json:"rpm,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.Wires == 0 {
		return utils.NewConfigValidationFieldRequiredError(path, "wires")
	}
	if _, err := stepSequence(cfg.Wires); err != nil {
		return utils.NewConfigValidationError(path, err)
	}
	if cfg.StepsPerRevolution == 0 {
		return utils.NewConfigValidationFieldRequiredError(path, "steps_per_revolution")
	}
	if cfg.StepsPerRevolution < 0 {
		return utils.NewConfigValidationError(path, NewStepsPerRevolutionError(cfg.StepsPerRevolution))
	}
	if cfg.RPM < 0 {
		return utils.NewConfigValidationError(path, NewInvalidRPMError(cfg.RPM))
	}
	return nil
}
