package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/katalvlaran/lvgrasp/bench"
	"github.com/katalvlaran/lvgrasp/bias"
	"github.com/katalvlaran/lvgrasp/grasp"
	"github.com/katalvlaran/lvgrasp/localsearch"
	"github.com/katalvlaran/lvgrasp/qbf"
)

// LocalSearch returns the local-search options of the session.
func (c Config) LocalSearch() localsearch.Options {
	tol := c.Tolerance
	if tol == 0 {
		// Zero would be replaced by the default; keep it exact.
		tol = -1
	}

	return localsearch.Options{Tolerance: tol}
}

// BenchVariants translates the variant list into engine options.
func (c Config) BenchVariants() ([]bench.Variant, error) {
	out := make([]bench.Variant, 0, len(c.Variants))
	for _, v := range c.Variants {
		iters := c.Iterations
		if v.Iterations > 0 {
			iters = v.Iterations
		}
		opts := []grasp.Option{grasp.WithIterations(iters)}

		if r := v.Reactive; r != nil {
			if len(r.Values) > 0 {
				opts = append(opts, grasp.WithAlphaValues(r.Values...))
			} else {
				opts = append(opts, grasp.WithReactive(r.PoolSize))
			}
			opts = append(opts, grasp.WithUpdateInterval(r.UpdateInterval))
		} else {
			opts = append(opts, grasp.WithAlpha(v.Alpha))
		}

		if v.Bias != "" {
			fn, err := bias.ByName(v.Bias, v.BiasDegree)
			if err != nil {
				return nil, fmt.Errorf("variant %q: %w", v.Name, err)
			}
			opts = append(opts, grasp.WithBias(fn))
		}
		if c.StopOnNoImprovement {
			opts = append(opts, grasp.WithStopOnNoImprovement())
		}
		out = append(out, bench.Variant{Name: v.Name, Options: opts})
	}

	return out, nil
}

// Cases loads the instance files and generates the random instances.
func (c Config) Cases() ([]bench.Case, error) {
	ls := c.LocalSearch()
	out := make([]bench.Case, 0, len(c.Instances)+len(c.Random))
	add := func(name string, inst *qbf.Instance) error {
		if !c.Constrained {
			out = append(out, bench.QBFCase(name, inst, ls))
			return nil
		}
		cs, err := bench.QBFPTCase(name, inst, ls)
		if err != nil {
			return fmt.Errorf("case %s: %w", name, err)
		}
		out = append(out, cs)
		return nil
	}

	for _, path := range c.Instances {
		inst, err := qbf.LoadInstance(path)
		if err != nil {
			return nil, err
		}
		if err := add(filepath.Base(path), inst); err != nil {
			return nil, err
		}
	}
	for _, r := range c.Random {
		inst, err := qbf.RandomInstance(r.N, r.Lo, r.Hi, grasp.NewRand(r.Seed))
		if err != nil {
			return nil, err
		}
		if err := add(fmt.Sprintf("random-n%d-s%d", r.N, r.Seed), inst); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Runner returns the bench runner of the session.
func (c Config) Runner(log *slog.Logger, m *bench.Metrics) bench.Runner {
	return bench.Runner{
		Runs:        c.Runs,
		BaseSeed:    c.Seed,
		Parallelism: c.Parallelism,
		Logger:      log,
		Metrics:     m,
	}
}
