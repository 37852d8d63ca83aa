package qbf

import (
	"github.com/katalvlaran/lvgrasp/grasp"
	"github.com/katalvlaran/lvgrasp/localsearch"
)

// Binding supplies the unconstrained QBF hooks to the engine.
type Binding struct {
	eval *Evaluator
	ls   localsearch.Options
	last localsearch.Stats
}

var _ grasp.Problem = (*Binding)(nil)

// NewBinding returns a binding over eval. A zero ls.Tolerance is replaced
// by localsearch.DefaultTolerance; pass a negative value for an exact zero.
func NewBinding(eval *Evaluator, ls localsearch.Options) (*Binding, error) {
	if eval == nil {
		return nil, ErrNilInstance
	}
	if ls.Tolerance == 0 {
		ls.Tolerance = localsearch.DefaultTolerance
	}

	return &Binding{eval: eval, ls: ls}, nil
}

// New builds the evaluator and binding of inst in one call.
func New(inst *Instance, ls localsearch.Options) (*Evaluator, *Binding, error) {
	eval, err := NewEvaluator(inst)
	if err != nil {
		return nil, nil, err
	}
	b, err := NewBinding(eval, ls)
	if err != nil {
		return nil, nil, err
	}

	return eval, b, nil
}

// Candidates returns every variable index.
func (b *Binding) Candidates() *grasp.Set { return grasp.RangeSet(b.eval.DomainSize()) }

// Refresh is a no-op: construction and local search keep cl in sync.
func (b *Binding) Refresh(*grasp.Set, *grasp.Solution) {}

// EmptySolution returns x = 0, whose cost is 0.
func (b *Binding) EmptySolution() *grasp.Solution { return grasp.NewSolution(0) }

// LocalSearch runs best-improvement search and returns the applied moves.
func (b *Binding) LocalSearch(sol *grasp.Solution, cl *grasp.Set) int {
	b.last = localsearch.BestImprovement(b.eval, sol, cl, nil, b.ls)

	return b.last.Moves
}

// LastSearch returns the statistics of the latest LocalSearch call.
func (b *Binding) LastSearch() localsearch.Stats { return b.last }
