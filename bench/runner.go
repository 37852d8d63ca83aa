package bench

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgrasp/grasp"
)

// Runner executes Runs independent runs per (case, variant) pair.
//
// BaseSeed    – parent seed of the per-run generators (0 ⇒ grasp.DefaultSeed).
// Parallelism – concurrent runs; ≤ 0 ⇒ GOMAXPROCS.
// Logger      – Info per record, Debug per run; nil ⇒ discard.
// Metrics     – optional Prometheus collectors.
type Runner struct {
	Runs        int
	BaseSeed    int64
	Parallelism int
	Logger      *slog.Logger
	Metrics     *Metrics
}

// Run executes the runs of c under v and aggregates them. Cancelling ctx
// stops runs that have not started yet; a started run always completes.
func (r Runner) Run(ctx context.Context, c Case, v Variant) (Record, error) {
	if r.Runs <= 0 {
		return Record{}, ErrBadRuns
	}
	if c.New == nil {
		return Record{}, ErrNilFactory
	}
	log := r.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	par := r.Parallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}

	id := uuid.New()
	log = log.With(
		slog.String("run_id", id.String()),
		slog.String("variant", v.Name),
		slog.String("case", c.Name),
	)

	outcomes := make([]runOutcome, r.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(par)
	for i := 0; i < r.Runs; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := r.runOnce(c, v, i)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			outcomes[i] = out
			log.Debug("run finished",
				slog.Int("run", i),
				slog.Float64("cost", out.cost),
				slog.Float64("ms", out.ms),
			)
			r.Metrics.observeRun(v.Name, out)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Record{}, fmt.Errorf("bench %s/%s: %w", c.Name, v.Name, err)
	}

	rec := aggregate(outcomes)
	rec.RunID = id
	rec.Variant = v.Name
	rec.Case = c.Name
	rec.N = c.Size
	r.Metrics.observeRecord(rec)
	log.Info("variant finished",
		slog.Int("runs", rec.Runs),
		slog.Float64("best_cost", rec.BestCost),
		slog.Float64("mean_cost", rec.MeanCost),
		slog.Float64("time_mean_ms", rec.TimeMeanMs),
		slog.Bool("feasible", rec.Feasible),
	)

	return rec, nil
}

// RunAll runs every variant on every case, in order.
func (r Runner) RunAll(ctx context.Context, cases []Case, variants []Variant) ([]Record, error) {
	records := make([]Record, 0, len(cases)*len(variants))
	for _, c := range cases {
		for _, v := range variants {
			rec, err := r.Run(ctx, c, v)
			if err != nil {
				return records, err
			}
			records = append(records, rec)
		}
	}

	return records, nil
}

// runOnce builds a fresh engine for run i and solves.
func (r Runner) runOnce(c Case, v Variant, i int) (runOutcome, error) {
	eval, prob, err := c.New()
	if err != nil {
		return runOutcome{}, err
	}
	opts := make([]grasp.Option, 0, len(v.Options)+1)
	opts = append(opts, v.Options...)
	opts = append(opts, grasp.WithRand(grasp.DeriveRand(r.BaseSeed, uint64(i))))

	e, err := grasp.New(eval, prob, opts...)
	if err != nil {
		return runOutcome{}, err
	}
	start := time.Now()
	res, err := e.Solve()
	dur := time.Since(start)
	if err != nil {
		return runOutcome{}, err
	}
	if res.Best == nil {
		return runOutcome{}, ErrInvalidSolution
	}

	feasible := true
	if c.Feasible != nil {
		feasible = c.Feasible(res.Best)
	}

	return runOutcome{
		cost:       res.Best.Cost,
		ms:         float64(dur.Microseconds()) / 1000.0,
		iterations: res.Iterations,
		improved:   res.Improvements,
		feasible:   feasible,
		elems:      res.Best.Sorted(),
	}, nil
}
