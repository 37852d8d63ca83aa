package bench

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvgrasp/grasp"
)

// Sentinel errors returned by the bench package.
var (
	// ErrBadRuns indicates a non-positive run count.
	ErrBadRuns = errors.New("bench: runs must be positive")

	// ErrNilFactory indicates a case without a constructor.
	ErrNilFactory = errors.New("bench: case has no constructor")

	// ErrInvalidSolution indicates a run that returned no solution.
	ErrInvalidSolution = errors.New("bench: run returned no solution")
)

// Variant is a named engine configuration.
type Variant struct {
	Name    string
	Options []grasp.Option
}

// Case is one problem instance under benchmark.
//
// New must return a fresh, unshared evaluator and binding on every call.
// Feasible may be nil, in which case every solution counts as feasible.
type Case struct {
	Name     string
	Size     int
	New      func() (grasp.Evaluator, grasp.Problem, error)
	Feasible func(*grasp.Solution) bool
}

// Record aggregates the runs of one (case, variant) pair. Costs follow the
// engine's minimization convention.
type Record struct {
	RunID   uuid.UUID
	Variant string
	Case    string
	N       int
	Runs    int

	BestCost float64
	MeanCost float64
	StdCost  float64

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	Feasible bool  // every run returned a feasible solution
	Best     []int // sorted elements of the best run
}

// runOutcome is the result of one run.
type runOutcome struct {
	cost       float64
	ms         float64
	iterations int
	improved   int
	feasible   bool
	elems      []int
}
