package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrasp/bench"
	"github.com/katalvlaran/lvgrasp/config"
)

type benchOptions struct {
	config     string
	out        string
	metricsOut string
	namespace  string
}

func newBenchCmd(ro *rootOptions) *cobra.Command {
	bo := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the GRASP variants of a YAML session over its instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := ro.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runBench(cmd, bo, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&bo.config, "config", "", "session file (YAML)")
	f.StringVar(&bo.out, "out", "", "CSV output path; empty writes to stdout")
	f.StringVar(&bo.metricsOut, "metrics-out", "", "Prometheus textfile output path")
	f.StringVar(&bo.namespace, "namespace", "lvgrasp", "metric namespace")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runBench(cmd *cobra.Command, bo *benchOptions, log *slog.Logger) error {
	cfg, err := config.Load(bo.config)
	if err != nil {
		return err
	}
	cases, err := cfg.Cases()
	if err != nil {
		return err
	}
	variants, err := cfg.BenchVariants()
	if err != nil {
		return err
	}

	var metrics *bench.Metrics
	if bo.metricsOut != "" {
		metrics = bench.NewMetrics(bo.namespace)
	}
	records, runErr := cfg.Runner(log, metrics).RunAll(cmd.Context(), cases, variants)

	// Partial results are still written.
	var errs []error
	if runErr != nil {
		errs = append(errs, runErr)
	}
	if bo.out == "" {
		if err := bench.WriteCSV(cmd.OutOrStdout(), records); err != nil {
			errs = append(errs, fmt.Errorf("write csv: %w", err))
		}
	} else if err := bench.WriteCSVFile(bo.out, records); err != nil {
		errs = append(errs, fmt.Errorf("write csv: %w", err))
	}
	if metrics != nil {
		if err := metrics.WriteTextfile(bo.metricsOut); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}

	return errors.Join(errs...)
}
