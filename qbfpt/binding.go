package qbfpt

import (
	"github.com/katalvlaran/lvgrasp/grasp"
	"github.com/katalvlaran/lvgrasp/localsearch"
	"github.com/katalvlaran/lvgrasp/qbf"
)

// Binding supplies the QBFPT hooks to the engine: QBF costs, candidate
// lists filtered against the triple set.
type Binding struct {
	eval    *qbf.Evaluator
	triples *TripleSet
	ls      localsearch.Options
	last    localsearch.Stats
}

var _ grasp.Problem = (*Binding)(nil)

// NewBinding pairs eval with triples. A zero ls.Tolerance is replaced by
// localsearch.DefaultTolerance.
func NewBinding(eval *qbf.Evaluator, triples *TripleSet, ls localsearch.Options) (*Binding, error) {
	if eval == nil {
		return nil, qbf.ErrNilInstance
	}
	if triples == nil {
		return nil, ErrNilTriples
	}
	if triples.N() != eval.DomainSize() {
		return nil, ErrSizeMismatch
	}
	if ls.Tolerance == 0 {
		ls.Tolerance = localsearch.DefaultTolerance
	}

	return &Binding{eval: eval, triples: triples, ls: ls}, nil
}

// New builds the evaluator, the generated triple set and the binding of
// inst in one call.
func New(inst *qbf.Instance, ls localsearch.Options) (*qbf.Evaluator, *Binding, error) {
	eval, err := qbf.NewEvaluator(inst)
	if err != nil {
		return nil, nil, err
	}
	ts, err := Generate(inst.Size())
	if err != nil {
		return nil, nil, err
	}
	b, err := NewBinding(eval, ts, ls)
	if err != nil {
		return nil, nil, err
	}

	return eval, b, nil
}

// Triples returns the prohibited triples.
func (b *Binding) Triples() *TripleSet { return b.triples }

// Candidates returns the full universe; the first Refresh filters it.
func (b *Binding) Candidates() *grasp.Set { return grasp.RangeSet(b.eval.DomainSize()) }

// Refresh applies the triple filter.
func (b *Binding) Refresh(cl *grasp.Set, sol *grasp.Solution) { b.triples.Filter(cl, sol) }

// EmptySolution returns x = 0, whose cost is 0.
func (b *Binding) EmptySolution() *grasp.Solution { return grasp.NewSolution(0) }

// LocalSearch runs best-improvement search, filtering cl before every pass.
func (b *Binding) LocalSearch(sol *grasp.Solution, cl *grasp.Set) int {
	b.last = localsearch.BestImprovement(b.eval, sol, cl, b.triples.Filter, b.ls)

	return b.last.Moves
}

// LastSearch returns the statistics of the latest LocalSearch call.
func (b *Binding) LastSearch() localsearch.Stats { return b.last }
