package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

// errUsage marks invalid flag combinations or values.
var errUsage = errors.New("usage")

// app carries the streams and the shared logger to every subcommand.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd(inR io.Reader, outW, errW io.Writer) *cobra.Command {
	a := &app{in: inR, out: outW, errOut: errW}

	cmd := &cobra.Command{
		Use:   "skynet",
		Short: "Sever links in a subnet before the agent reaches a gateway",
		Long: `skynet runs the gateway pursuit puzzle: an agent walks the shortest
path to the nearest gateway while you cut one link per turn.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(a.logLevel, a.logFormat, a.errOut)
			if err != nil {
				return err
			}
			a.logger = logger.With(
				slog.String("run_id", ulid.Make().String()),
				slog.String("cmd", cmd.Name()),
			)

			return nil
		},
	}
	cmd.SetIn(inR)
	cmd.SetOut(outW)
	cmd.SetErr(errW)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(newPlayCmd(a), newGenerateCmd(a), newValidateCmd(a))

	return cmd
}
