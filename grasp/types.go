package grasp

import "errors"

// Sentinel errors returned by the engine. Precondition violations are
// reported by New; Solve only fails on broken collaborators.
var (
	// ErrNilEvaluator indicates that New was called without an Evaluator.
	ErrNilEvaluator = errors.New("grasp: evaluator is nil")

	// ErrNilProblem indicates that New was called without a Problem.
	ErrNilProblem = errors.New("grasp: problem is nil")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("grasp: iterations must be positive")

	// ErrAlphaOutOfRange indicates a greediness parameter outside [0, 1].
	ErrAlphaOutOfRange = errors.New("grasp: alpha must lie in [0, 1]")

	// ErrPoolTooSmall indicates a reactive pool with fewer than two values.
	ErrPoolTooSmall = errors.New("grasp: reactive pool needs at least 2 values")

	// ErrBadUpdateInterval indicates a negative reactive update cadence.
	ErrBadUpdateInterval = errors.New("grasp: update interval must be non-negative")

	// ErrNoAdmissible indicates that no candidate passed the admission
	// threshold, which only happens with NaN insertion costs.
	ErrNoAdmissible = errors.New("grasp: no admissible candidate")

	// ErrNilSolution indicates that the Problem returned a nil solution or candidate list.
	ErrNilSolution = errors.New("grasp: problem returned nil solution or candidate list")
)

// Evaluator is the objective function consumed by the engine.
// All costs follow the minimization convention.
type Evaluator interface {
	// DomainSize returns the number of addressable elements (0..n-1).
	DomainSize() int

	// Evaluate computes the cost of sol, stores it in sol.Cost and returns it.
	Evaluate(sol *Solution) float64

	// InsertionCost returns the cost change of adding elem to sol.
	InsertionCost(elem int, sol *Solution) float64

	// RemovalCost returns the cost change of dropping elem from sol.
	RemovalCost(elem int, sol *Solution) float64

	// ExchangeCost returns the cost change of swapping out for in.
	ExchangeCost(in, out int, sol *Solution) float64
}

// Problem supplies the problem-specific hooks of the engine.
type Problem interface {
	// Candidates builds the initial candidate list for a construction.
	Candidates() *Set

	// Refresh removes committed or infeasible candidates from cl given sol.
	Refresh(cl *Set, sol *Solution)

	// EmptySolution returns a new solution with no elements.
	EmptySolution() *Solution

	// LocalSearch improves sol in place until a local optimum, keeping cl in
	// sync, and returns the number of applied moves. sol.Cost must be
	// current on return.
	LocalSearch(sol *Solution, cl *Set) int
}

// IterationStats describes one main-loop iteration. It is passed to the
// observer installed with WithObserver.
type IterationStats struct {
	Iteration       int     // 0-based
	Alpha           float64 // greediness used by the construction
	ConstructedCost float64 // cost right after construction
	Cost            float64 // cost after local search
	IncumbentCost   float64 // best cost so far, including this iteration
	Improved        bool    // incumbent replaced in this iteration
	Moves           int     // local-search moves applied
	PoolUpdated     bool    // reactive probabilities recomputed after this iteration
}

// Step describes one constructive selection. It is passed to the hook
// installed with WithStepHook; slices are copies owned by the hook.
type Step struct {
	Alpha      float64
	Min, Max   float64 // extreme insertion deltas over the candidate list
	Threshold  float64 // min + alpha·(max − min)
	Candidates []int   // candidate list after refresh
	Deltas     []float64
	Solution   []int // solution before the insertion
	Admitted   []int // restricted candidates
	Selected   int
}

// AlphaStat is the final state of one reactive pool member.
type AlphaStat struct {
	Value       float64
	Probability float64
	Average     float64
	Uses        int
}
