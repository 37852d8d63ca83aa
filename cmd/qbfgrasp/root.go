package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "qbfgrasp",
		Short:         "GRASP for quadratic binary functions",
		Long:          `Solve QBF and QBFPT instances with plain, reactive or biased GRASP, and benchmark variants.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&ro.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(newSolveCmd(ro), newBenchCmd(ro), newTriplesCmd())

	return cmd
}

// logger builds the slog logger selected by the persistent flags; records
// go to w.
func (ro *rootOptions) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(ro.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(ro.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format: unknown format %q", ro.logFormat)
	}
}
