package qbf

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgrasp/grasp"
)

// Evaluator is the inverse QBF: every cost it reports is the negation of
// the QBF value, so minimizing it maximizes f.
//
// An Evaluator keeps an indicator vector as scratch space and must not be
// shared between goroutines.
type Evaluator struct {
	inst *Instance
	x    *mat.VecDense
}

var _ grasp.Evaluator = (*Evaluator)(nil)

// NewEvaluator returns the inverse-QBF evaluator of inst.
func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if inst == nil || inst.a == nil {
		return nil, ErrNilInstance
	}

	return &Evaluator{inst: inst, x: mat.NewVecDense(inst.Size(), nil)}, nil
}

// Instance returns the evaluated instance.
func (e *Evaluator) Instance() *Instance { return e.inst }

// DomainSize returns n.
func (e *Evaluator) DomainSize() int { return e.inst.Size() }

// Evaluate stores −xᵀAx in sol.Cost and returns it.
func (e *Evaluator) Evaluate(sol *grasp.Solution) float64 {
	sol.Cost = -e.Value(sol)

	return sol.Cost
}

// Value returns the QBF value xᵀAx of sol without touching sol.Cost.
func (e *Evaluator) Value(sol *grasp.Solution) float64 {
	if sol.Len() == 0 {
		return 0
	}
	e.x.Zero()
	sol.Each(func(i int) { e.x.SetVec(i, 1) })

	return mat.Inner(e.x, e.inst.a, e.x)
}

// InsertionCost returns the change of −f when i joins sol; 0 if i ∈ sol.
func (e *Evaluator) InsertionCost(i int, sol *grasp.Solution) float64 {
	if sol.Contains(i) {
		return 0
	}

	return -e.contribution(i, sol)
}

// RemovalCost returns the change of −f when i leaves sol; 0 if i ∉ sol.
func (e *Evaluator) RemovalCost(i int, sol *grasp.Solution) float64 {
	if !sol.Contains(i) {
		return 0
	}

	return e.contribution(i, sol)
}

// ExchangeCost returns the change of −f when out leaves and in joins sol.
// It degrades to a removal when in ∈ sol and to an insertion when out ∉ sol.
func (e *Evaluator) ExchangeCost(in, out int, sol *grasp.Solution) float64 {
	switch {
	case in == out:
		return 0
	case sol.Contains(in):
		return e.RemovalCost(out, sol)
	case !sol.Contains(out):
		return e.InsertionCost(in, sol)
	}
	a := e.inst.a
	gain := e.contribution(in, sol) - e.contribution(out, sol) - (a.At(in, out) + a.At(out, in))

	return -gain
}

// contribution returns a_ii + Σ_{j∈S, j≠i} (a_ij + a_ji).
func (e *Evaluator) contribution(i int, sol *grasp.Solution) float64 {
	a := e.inst.a
	row := a.RawRowView(i)
	sum := row[i]
	sol.Each(func(j int) {
		if j != i {
			sum += row[j] + a.At(j, i)
		}
	})

	return sum
}
