package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/moink/AoC2016/internal/logging"
	"github.com/moink/AoC2016/vm"
	"github.com/moink/AoC2016/vm/assembunny"
)

func runCmd(ctx context.Context, input *Input) *cobra.Command {
	c := &cobra.Command{
		Use:   "run PROGRAM",
		Short: "Run a register-machine program and print its return register.",
		Args:  cobra.ExactArgs(1),
		RunE:  newRunCommand(ctx, input),
	}
	c.Flags().StringVarP(&input.dialect, "dialect", "d", "assembunny", "instruction set: assembunny or turinglock")
	c.Flags().StringVar(&input.configPath, "config", "", "YAML run file (dialect, registers, return_register, step_limit)")
	c.Flags().StringVar(&input.envFile, "env-file", "", "dotenv file of initial register values")
	c.Flags().StringArrayVarP(&input.sets, "set", "s", nil, "initial register value as NAME=VALUE (repeatable)")
	c.Flags().IntVar(&input.stepLimit, "step-limit", 0, "abort after this many instructions (0 = unlimited)")
	c.Flags().StringVar(&input.returnRegister, "return-register", "", "register to print instead of the dialect default")
	return c
}

func clockCmd(ctx context.Context, input *Input) *cobra.Command {
	var samples, maxSeed int
	c := &cobra.Command{
		Use:   "clock PROGRAM",
		Short: "Find the smallest seed for register a that makes an assembunny program emit 0,1,0,1,...",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithLogger(ctx, newLogger(input, cmd.ErrOrStderr()))
			prog, err := readProgram(input.resolve(args[0]))
			if err != nil {
				return err
			}
			var opts []vm.Option
			if input.stepLimit > 0 {
				opts = append(opts, vm.WithStepLimit(input.stepLimit))
			}
			seed, err := assembunny.FindClockSeed(ctx, prog, samples, maxSeed, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seed)
			return nil
		},
	}
	c.Flags().IntVar(&samples, "samples", 20, "number of outputs that must alternate")
	c.Flags().IntVar(&maxSeed, "max-seed", 10000, "largest seed to try")
	c.Flags().IntVar(&input.stepLimit, "step-limit", 0, "per-seed instruction limit (0 = default)")
	return c
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := newLogger(input, cmd.ErrOrStderr())
		ctx := logging.WithLogger(ctx, logger)

		cfg, err := input.runConfig(flagChanged(cmd.Flags()))
		if err != nil {
			return err
		}
		prog, err := readProgram(input.resolve(args[0]))
		if err != nil {
			return err
		}
		logger.WithFields(log.Fields{
			"dialect":      cfg.Dialect,
			"instructions": len(prog),
			"registers":    cfg.Registers,
		}).Debug("starting program")

		m, err := vm.New(dialects[cfg.Dialect].instructions(), cfg.ReturnRegister,
			vm.WithRegisters(cfg.Registers),
			vm.WithStepLimit(cfg.StepLimit),
		)
		if err != nil {
			return err
		}
		m.Load(prog)
		result, err := m.Run(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result)
		if emitted := m.Output(); len(emitted) > 0 {
			vals := make([]string, len(emitted))
			for i, v := range emitted {
				vals[i] = strconv.Itoa(v)
			}
			fmt.Fprintf(out, "output: %s\n", strings.Join(vals, ","))
		}
		return nil
	}
}

func flagChanged(fs *pflag.FlagSet) func(string) bool {
	return func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}
}

func readProgram(path string) (vm.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	prog, err := vm.ParseProgram(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return prog, nil
}
