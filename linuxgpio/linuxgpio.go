//go:build linux

// Package linuxgpio exposes Linux GPIO character device lines as multiwire
// pins, by way of mkch's gpio package.
package linuxgpio

import (
	"context"

	"github.com/mkch/gpio"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"github.com/viam-labs/multiwire"
)

// Line is one requested output line on a GPIO chip.
type Line struct {
	line *gpio.Line
}

var _ multiwire.Pin = (*Line)(nil)

// OpenPin requests the line at offset on the chip at devicePath (for
// example /dev/gpiochip0) as an output. The line starts Low; label shows up
// as the line consumer in the kernel's bookkeeping.
func OpenPin(devicePath string, offset uint32, label string) (*Line, error) {
	chip, err := gpio.OpenChip(devicePath)
	if err != nil {
		return nil, err
	}
	// The line stays valid after its chip handle is closed.
	defer utils.UncheckedErrorFunc(chip.Close)

	line, err := chip.OpenLine(offset, 0, gpio.Output, label)
	if err != nil {
		return nil, err
	}
	return &Line{line: line}, nil
}

// OpenPins requests one output line per offset, in order, for use as a
// motor's wire set. On any failure the already opened lines are closed.
func OpenPins(devicePath string, offsets []uint32, label string) ([]*Line, error) {
	lines := make([]*Line, 0, len(offsets))
	for _, offset := range offsets {
		line, err := OpenPin(devicePath, offset, label)
		if err != nil {
			for _, opened := range lines {
				err = multierr.Combine(err, opened.Close())
			}
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Set drives the line to the given level.
func (l *Line) Set(ctx context.Context, level multiwire.Level) error {
	var value byte
	if level == multiwire.High {
		value = 1
	}
	return l.line.SetValue(value)
}

// Close releases the line back to the kernel.
func (l *Line) Close() error {
	return l.line.Close()
}
