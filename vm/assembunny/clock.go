package assembunny

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/moink/AoC2016/internal/logging"
	"github.com/moink/AoC2016/vm"
)

// ErrNoSeed is returned by FindClockSeed when no seed in range produces a
// clock signal.
var ErrNoSeed = errors.New("assembunny: no seed produces a clock signal")

// errOffBeat stops a run at the first output that breaks the 0,1,0,1 pattern.
var errOffBeat = errors.New("assembunny: output off beat")

// DefaultClockStepLimit bounds each IsClockSignal run unless the caller
// passes its own vm.WithStepLimit.
const DefaultClockStepLimit = 10_000_000

// IsClockSignal runs prog with register a set to seed and reports whether
// its first samples outputs are 0, 1, 0, 1, ... A program that stops, or
// exhausts its step limit, before emitting samples values is not a clock.
func IsClockSignal(ctx context.Context, prog vm.Program, seed, samples int, opts ...vm.Option) (bool, error) {
	if samples <= 0 {
		return false, errors.Wrapf(vm.ErrOptionViolation, "samples must be positive (%d)", samples)
	}
	seen := 0
	hook := func(v int) error {
		if v != seen%2 {
			return errOffBeat
		}
		seen++
		if seen == samples {
			return vm.ErrHalt
		}
		return nil
	}
	all := append([]vm.Option{vm.WithStepLimit(DefaultClockStepLimit)}, opts...)
	all = append(all, vm.WithRegister("a", seed), vm.WithOnOutput(hook))

	_, err := Run(ctx, prog, all...)
	switch {
	case errors.Is(err, errOffBeat), errors.Is(err, vm.ErrStepLimit):
		return false, nil
	case err != nil:
		return false, err
	}
	return seen == samples, nil
}

// FindClockSeed returns the smallest seed in [1, maxSeed] for which
// IsClockSignal holds, or ErrNoSeed.
func FindClockSeed(ctx context.Context, prog vm.Program, samples, maxSeed int, opts ...vm.Option) (int, error) {
	log := logging.Logger(ctx)
	for seed := 1; seed <= maxSeed; seed++ {
		ok, err := IsClockSignal(ctx, prog, seed, samples, opts...)
		if err != nil {
			return 0, err
		}
		if ok {
			log.WithFields(logrus.Fields{"seed": seed, "samples": samples}).Debug("assembunny: clock seed found")
			return seed, nil
		}
	}
	return 0, errors.Wrapf(ErrNoSeed, "seeds 1..%d", maxSeed)
}
