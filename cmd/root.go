package cmd

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "aoc2016",
		Short:        "Run register-machine programs and search grid mazes.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&input.trace, "trace", false, "log every executed instruction")
	rootCmd.PersistentFlags().BoolVar(&input.jsonLogger, "json", false, "output logs in json format")
	rootCmd.PersistentFlags().StringVarP(&input.workdir, "directory", "C", ".", "working directory")

	rootCmd.AddCommand(
		runCmd(ctx, input),
		clockCmd(ctx, input),
		mazeCmd(ctx, input),
	)
	return rootCmd
}

// newLogger builds the logger handed to the libraries through the context.
func newLogger(input *Input, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	switch {
	case input.trace:
		logger.SetLevel(log.TraceLevel)
	case input.verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	if input.jsonLogger {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			DisableColors: !checkIfTerminal(w),
			FullTimestamp: true,
		})
	}
	return logger
}

func checkIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}
