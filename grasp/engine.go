// Package grasp - construction and main loop.
//
// Construct builds one solution; Solve repeats construct, local search and
// incumbent update for the configured number of iterations.
//
// Design:
//   - Every insertion delta is computed once per step and reused for the
//     min/max, the threshold and the admission test.
//   - The restricted pool is emptied before each selection and after each
//     accepted step; it never carries candidates between steps.
//   - Reactive bookkeeping (Update, Recompute) is skipped on the final iteration.
//
// Contracts:
//   - Problem.Candidates and Problem.EmptySolution return fresh structures.
//   - Problem.Refresh runs after every evaluation, before the CL emptiness check.
//   - Errors from the biased draw are returned wrapped with the step index.
//
// Complexity:
//   - One step: |CL| InsertionCost calls plus O(k log k) ranking when biased.
//   - One construction: at most n steps.
package grasp

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvgrasp/bias"
	"github.com/katalvlaran/lvgrasp/reactive"
)

// Result is the outcome of Solve.
type Result struct {
	Best          *Solution // incumbent; a copy never shared with the engine
	Iterations    int
	Improvements  int // number of incumbent replacements
	BestIteration int // 0-based iteration that produced Best
	Alphas        []AlphaStat
	Duration      time.Duration
}

// Engine runs GRASP for one Evaluator / Problem pair.
type Engine struct {
	eval     Evaluator
	prob     Problem
	opts     Options
	rng      *rand.Rand
	log      *slog.Logger
	pool     *reactive.Pool // nil in plain mode
	interval int

	// per-step scratch, reused across construction steps
	cands  []int
	deltas []float64
	rcl    []int
	rcm    *bias.CandidatePool
}

// New validates the configuration and returns a ready engine.
//
// Errors: ErrNilEvaluator, ErrNilProblem, ErrBadIterations,
// ErrAlphaOutOfRange, ErrPoolTooSmall, ErrBadUpdateInterval.
func New(eval Evaluator, prob Problem, opts ...Option) (*Engine, error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if prob == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		eval: eval,
		prob: prob,
		opts: o,
		rng:  o.Rand,
		log:  o.Logger,
	}
	if e.rng == nil {
		e.rng = NewRand(o.Seed)
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	if o.Reactive() {
		pool, err := o.newPool()
		if err != nil {
			return nil, err
		}
		e.pool = pool
		e.interval = o.UpdateInterval
		if e.interval == 0 {
			e.interval = reactive.UpdateInterval(pool.Len())
		}
	}
	n := eval.DomainSize()
	e.cands = make([]int, 0, n)
	e.deltas = make([]float64, 0, n)
	e.rcl = make([]int, 0, n)
	if o.Bias != nil {
		e.rcm = bias.NewCandidatePool(n)
	}

	return e, nil
}

// Options returns the effective configuration.
func (e *Engine) Options() Options { return e.opts }

// Construct runs one greedy randomized construction with greediness alpha
// and returns the solution together with the candidate list left over.
func (e *Engine) Construct(alpha float64) (*Solution, *Set, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, nil, ErrAlphaOutOfRange
	}
	cl := e.prob.Candidates()
	sol := e.prob.EmptySolution()
	if cl == nil || sol == nil {
		return nil, nil, ErrNilSolution
	}

	for step := 0; ; step++ {
		e.eval.Evaluate(sol)
		e.prob.Refresh(cl, sol)
		if cl.Len() == 0 {
			break
		}

		// Every candidate's delta is computed once per step.
		e.cands = append(e.cands[:0], cl.items...)
		e.deltas = e.deltas[:0]
		minCost, maxCost := math.Inf(1), math.Inf(-1)
		for _, c := range e.cands {
			d := e.eval.InsertionCost(c, sol)
			e.deltas = append(e.deltas, d)
			if d < minCost {
				minCost = d
			}
			if d > maxCost {
				maxCost = d
			}
		}
		if e.opts.StopOnNoImprovement && minCost >= 0 {
			break
		}
		threshold := admissionThreshold(alpha, minCost, maxCost)

		selected, err := e.selectCandidate(threshold)
		if err != nil {
			return nil, nil, fmt.Errorf("grasp: construction step %d: %w", step, err)
		}
		if e.opts.StepHook != nil {
			e.opts.StepHook(e.snapshotStep(alpha, minCost, maxCost, threshold, sol, selected))
		}

		cl.Remove(selected)
		sol.Add(selected)
		e.eval.Evaluate(sol)
		e.resetRestricted()
	}

	return sol, cl, nil
}

// admissionThreshold returns min + alpha·(max − min), pinned to the exact
// extremes at alpha 0 and 1.
func admissionThreshold(alpha, minCost, maxCost float64) float64 {
	switch alpha {
	case 0:
		return minCost
	case 1:
		return maxCost
	default:
		return minCost + alpha*(maxCost-minCost)
	}
}

// resetRestricted empties the restricted pool; its contents never outlive
// one construction step.
func (e *Engine) resetRestricted() {
	e.rcl = e.rcl[:0]
	if e.rcm != nil {
		e.rcm.Reset()
	}
}

// selectCandidate fills the restricted pool with every candidate whose delta
// is within threshold and draws one of them. The pool starts empty even when
// a previous step failed before clearing it.
func (e *Engine) selectCandidate(threshold float64) (int, error) {
	e.resetRestricted()
	if e.rcm == nil {
		for i, c := range e.cands {
			if e.deltas[i] <= threshold {
				e.rcl = append(e.rcl, c)
			}
		}
		if len(e.rcl) == 0 {
			return 0, ErrNoAdmissible
		}
		return e.rcl[e.rng.Intn(len(e.rcl))], nil
	}

	for i, c := range e.cands {
		if e.deltas[i] <= threshold {
			e.rcl = append(e.rcl, c)
			e.rcm.Add(c, e.deltas[i])
		}
	}
	if len(e.rcl) == 0 {
		return 0, ErrNoAdmissible
	}
	if err := e.rcm.Assign(e.opts.Bias); err != nil {
		return 0, err
	}

	return e.rcm.Select(e.rng)
}

// snapshotStep copies the current step state for the step hook.
func (e *Engine) snapshotStep(alpha, minCost, maxCost, threshold float64, sol *Solution, selected int) Step {
	return Step{
		Alpha:      alpha,
		Min:        minCost,
		Max:        maxCost,
		Threshold:  threshold,
		Candidates: append([]int(nil), e.cands...),
		Deltas:     append([]float64(nil), e.deltas...),
		Solution:   sol.Elements(),
		Admitted:   append([]int(nil), e.rcl...),
		Selected:   selected,
	}
}

// Solve runs the main loop and returns the best solution found.
func (e *Engine) Solve() (Result, error) {
	start := time.Now()
	n := e.opts.Iterations

	var (
		best          *Solution
		bestIter      int
		improvements  int
		chosen        *reactive.Alpha
		alpha         = e.opts.Alpha
		err           error
		sol           *Solution
		cl            *Set
		constructCost float64
	)
	for i := 0; i < n; i++ {
		if e.pool != nil {
			if chosen, err = e.pool.Select(e.rng); err != nil {
				return Result{}, fmt.Errorf("grasp: iteration %d: alpha draw: %w", i, err)
			}
			alpha = chosen.Value()
		}

		if sol, cl, err = e.Construct(alpha); err != nil {
			return Result{}, fmt.Errorf("grasp: iteration %d: %w", i, err)
		}
		constructCost = sol.Cost
		moves := e.prob.LocalSearch(sol, cl)

		improved := best == nil || sol.Cost < best.Cost
		if improved {
			best = sol.Clone()
			bestIter = i
			improvements++
			e.log.Debug("incumbent improved",
				slog.Int("iteration", i),
				slog.Float64("cost", best.Cost),
				slog.Float64("alpha", alpha),
				slog.Int("size", best.Len()),
			)
		}

		poolUpdated := false
		if chosen != nil && i < n-1 {
			chosen.Update(sol.Cost)
			if (i+1)%e.interval == 0 {
				removed := e.pool.Recompute(best.Cost)
				poolUpdated = true
				if removed > 0 {
					e.log.Debug("alpha pool pruned",
						slog.Int("iteration", i),
						slog.Int("removed", removed),
						slog.Int("remaining", e.pool.Len()),
					)
				}
			}
		}

		if e.opts.Observer != nil {
			e.opts.Observer(IterationStats{
				Iteration:       i,
				Alpha:           alpha,
				ConstructedCost: constructCost,
				Cost:            sol.Cost,
				IncumbentCost:   best.Cost,
				Improved:        improved,
				Moves:           moves,
				PoolUpdated:     poolUpdated,
			})
		}
	}

	return Result{
		Best:          best,
		Iterations:    n,
		Improvements:  improvements,
		BestIteration: bestIter,
		Alphas:        e.AlphaStats(),
		Duration:      time.Since(start),
	}, nil
}

// AlphaStats returns the current state of the reactive pool (nil in plain mode).
func (e *Engine) AlphaStats() []AlphaStat {
	if e.pool == nil {
		return nil
	}
	alphas := e.pool.Alphas()
	out := make([]AlphaStat, len(alphas))
	for i, a := range alphas {
		out[i] = AlphaStat{
			Value:       a.Value(),
			Probability: a.Probability(),
			Average:     a.Average(),
			Uses:        a.Uses(),
		}
	}

	return out
}
