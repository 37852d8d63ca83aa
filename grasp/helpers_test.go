// Package grasp_test exercises the engine through small linear and QBF
// objectives.
package grasp_test

import "github.com/katalvlaran/lvgrasp/grasp"

// linear is the separable objective Σ_{i∈S} w_i.
type linear struct{ w []float64 }

func (l linear) DomainSize() int { return len(l.w) }

func (l linear) Evaluate(sol *grasp.Solution) float64 {
	var sum float64
	sol.Each(func(e int) { sum += l.w[e] })
	sol.Cost = sum

	return sum
}

func (l linear) InsertionCost(e int, sol *grasp.Solution) float64 {
	if sol.Contains(e) {
		return 0
	}

	return l.w[e]
}

func (l linear) RemovalCost(e int, sol *grasp.Solution) float64 {
	if !sol.Contains(e) {
		return 0
	}

	return -l.w[e]
}

func (l linear) ExchangeCost(in, out int, sol *grasp.Solution) float64 {
	switch {
	case in == out:
		return 0
	case sol.Contains(in):
		return l.RemovalCost(out, sol)
	case !sol.Contains(out):
		return l.InsertionCost(in, sol)
	}

	return l.w[in] - l.w[out]
}

// plainProblem offers the whole universe and performs no local search.
type plainProblem struct {
	n int
}

func (p plainProblem) Candidates() *grasp.Set { return grasp.RangeSet(p.n) }
func (p plainProblem) Refresh(*grasp.Set, *grasp.Solution) {}
func (p plainProblem) EmptySolution() *grasp.Solution { return grasp.NewSolution(0) }
func (p plainProblem) LocalSearch(*grasp.Solution, *grasp.Set) int { return 0 }

// brokenProblem hands the engine nil structures.
type brokenProblem struct{ plainProblem }

func (brokenProblem) EmptySolution() *grasp.Solution { return nil }
