// Package main rotates a stepper motor wired to host GPIO pins, as a small
// demonstration of the multiwire driver.
package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/utils"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/viam-labs/multiwire"
	"github.com/viam-labs/multiwire/periphpin"
)

var (
	pinNames    = flag.String("pins", "GPIO17,GPIO18,GPIO27,GPIO22", "comma separated output pins, one per motor wire, in wiring order")
	stepsPerRev = flag.Int("steps-per-rev", 200, "motor steps per revolution")
	rpm         = flag.Float64("rpm", 30, "speed in revolutions per minute")
	steps       = flag.Int("steps", 200, "signed number of steps to move")
	busy        = flag.Bool("busy", false, "busy poll the clock between steps instead of sleeping")
)

var logger = golog.NewDevelopmentLogger("rotate")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	flag.Parse()

	if _, err := host.Init(); err != nil {
		return errors.Wrap(err, "initializing periph host")
	}

	names := strings.Split(*pinNames, ",")
	pins := make([]multiwire.Pin, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		p := gpioreg.ByName(name)
		if p == nil {
			return errors.Errorf("no gpio pin named %q", name)
		}
		pins = append(pins, periphpin.New(p))
	}

	var opts []multiwire.Option
	if *busy {
		opts = append(opts, multiwire.WithPacing(multiwire.PacingBusy))
	}

	stepper, err := multiwire.New(ctx, multiwire.Config{
		Wires:              len(pins),
		StepsPerRevolution: *stepsPerRev,
		RPM:                *rpm,
	}, pins, logger, opts...)
	if err != nil {
		return err
	}
	defer func() {
		// Drop holding torque on the way out, even if ctx is done.
		utils.UncheckedErrorFunc(func() error { return stepper.Off(context.Background()) })
	}()

	logger.Infow("moving", "steps", *steps, "rpm", *rpm, "wires", len(pins), "step_delay", stepper.StepDelay())
	start := time.Now()
	if err := stepper.Move(ctx, *steps); err != nil {
		return err
	}
	logger.Infow("done", "elapsed", time.Since(start), "position", stepper.Position(), "direction", stepper.Direction())
	return nil
}
