package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrasp/bias"
	"github.com/katalvlaran/lvgrasp/grasp"
	"github.com/katalvlaran/lvgrasp/localsearch"
	"github.com/katalvlaran/lvgrasp/qbf"
	"github.com/katalvlaran/lvgrasp/qbfpt"
)

type solveOptions struct {
	instance            string
	randomN             int
	randomSeed          int64
	constrained         bool
	alpha               float64
	reactive            int
	updateInterval      int
	bias                string
	biasDegree          float64
	iterations          int
	seed                int64
	tolerance           float64
	stopOnNoImprovement bool
}

func newSolveCmd(ro *rootOptions) *cobra.Command {
	so := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Maximize one QBF or QBFPT instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := ro.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runSolve(cmd, so, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&so.instance, "instance", "", "instance file (upper-triangular QBF format)")
	f.IntVar(&so.randomN, "random", 0, "solve a random instance with this many variables instead of --instance")
	f.Int64Var(&so.randomSeed, "random-seed", 1, "seed of the random instance")
	f.BoolVar(&so.constrained, "constrained", false, "apply the generated prohibited triples (QBFPT)")
	f.Float64Var(&so.alpha, "alpha", grasp.DefaultAlpha, "fixed greediness in [0, 1]")
	f.IntVar(&so.reactive, "reactive", 0, "reactive pool size m (values i/m); 0 disables")
	f.IntVar(&so.updateInterval, "update-interval", 0, "iterations between reactive updates; 0 means ceil(sqrt(m))")
	f.StringVar(&so.bias, "bias", "", "rank bias: random, linear, log, exponential, inverse-square, polynomial")
	f.Float64Var(&so.biasDegree, "bias-degree", 2, "degree of the polynomial bias")
	f.IntVar(&so.iterations, "iterations", grasp.DefaultIterations, "main-loop iterations")
	f.Int64Var(&so.seed, "seed", grasp.DefaultSeed, "random seed")
	f.Float64Var(&so.tolerance, "tolerance", localsearch.DefaultTolerance, "minimum local-search improvement")
	f.BoolVar(&so.stopOnNoImprovement, "stop-on-no-improvement", false, "end construction when no insertion improves")
	cmd.MarkFlagsMutuallyExclusive("instance", "random")

	return cmd
}

func (so *solveOptions) engineOptions(log *slog.Logger) ([]grasp.Option, error) {
	opts := []grasp.Option{
		grasp.WithIterations(so.iterations),
		grasp.WithSeed(so.seed),
		grasp.WithLogger(log),
	}
	if so.reactive > 0 {
		opts = append(opts, grasp.WithReactive(so.reactive), grasp.WithUpdateInterval(so.updateInterval))
	} else {
		opts = append(opts, grasp.WithAlpha(so.alpha))
	}
	if so.bias != "" {
		fn, err := bias.ByName(so.bias, so.biasDegree)
		if err != nil {
			return nil, err
		}
		opts = append(opts, grasp.WithBias(fn))
	}
	if so.stopOnNoImprovement {
		opts = append(opts, grasp.WithStopOnNoImprovement())
	}

	return opts, nil
}

func (so *solveOptions) loadInstance() (*qbf.Instance, error) {
	switch {
	case so.instance != "":
		return qbf.LoadInstance(so.instance)
	case so.randomN > 0:
		return qbf.RandomInstance(so.randomN, -10, 10, grasp.NewRand(so.randomSeed))
	default:
		return nil, errors.New("one of --instance or --random is required")
	}
}

func runSolve(cmd *cobra.Command, so *solveOptions, log *slog.Logger) error {
	inst, err := so.loadInstance()
	if err != nil {
		return err
	}
	ls := localsearch.Options{Tolerance: so.tolerance}
	if ls.Tolerance == 0 {
		ls.Tolerance = -1
	}

	var (
		eval    *qbf.Evaluator
		prob    grasp.Problem
		triples *qbfpt.TripleSet
	)
	if so.constrained {
		var b *qbfpt.Binding
		if eval, b, err = qbfpt.New(inst, ls); err != nil {
			return err
		}
		prob, triples = b, b.Triples()
	} else {
		var b *qbf.Binding
		if eval, b, err = qbf.New(inst, ls); err != nil {
			return err
		}
		prob = b
	}

	opts, err := so.engineOptions(log)
	if err != nil {
		return err
	}
	e, err := grasp.New(eval, prob, opts...)
	if err != nil {
		return err
	}
	log.Info("solving",
		slog.Int("n", eval.Instance().Size()),
		slog.Bool("constrained", so.constrained),
		slog.Int("iterations", so.iterations),
	)
	res, err := e.Solve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "n: %d\n", eval.Instance().Size())
	fmt.Fprintf(out, "value: %g\n", eval.Value(res.Best))
	fmt.Fprintf(out, "cost: %g\n", res.Best.Cost)
	fmt.Fprintf(out, "size: %d\n", res.Best.Len())
	fmt.Fprintf(out, "elements: %v\n", res.Best.Sorted())
	fmt.Fprintf(out, "best_iteration: %d\n", res.BestIteration)
	fmt.Fprintf(out, "improvements: %d\n", res.Improvements)
	if triples != nil {
		fmt.Fprintf(out, "feasible: %t\n", triples.Feasible(res.Best))
	}
	for _, a := range res.Alphas {
		fmt.Fprintf(out, "alpha %.4f: p=%.4f avg=%g uses=%d\n", a.Value, a.Probability, a.Average, a.Uses)
	}
	fmt.Fprintf(out, "time: %s\n", res.Duration)

	return nil
}
