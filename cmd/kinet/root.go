package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	logger  *slog.Logger
}

// run executes the command line and returns the process exit code.
func run(args []string, out, errOut io.Writer) int {
	a := &app{out: out, errOut: errOut}
	a.logger = newLogger(errOut, false)

	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.logger.Error("command failed", "err", err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "kinet",
		Short:         "Feedforward neural network toolkit",
		Long:          "kinet builds feedforward networks, runs forward passes and generates self-checking tests.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.logger = newLogger(a.errOut, a.verbose)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		newRunCmd(a),
		newGenCmd(a),
		newBackendsCmd(a),
		newVersionCmd(a),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
