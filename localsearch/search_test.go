// Package localsearch_test covers move selection, tolerance handling and
// the refresh contract of BestImprovement.
package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrasp/grasp"
	"github.com/katalvlaran/lvgrasp/localsearch"
	"github.com/katalvlaran/lvgrasp/qbf"
)

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

func solutionOf(elems ...int) *grasp.Solution {
	sol := grasp.NewSolution(0)
	for _, e := range elems {
		sol.Add(e)
	}

	return sol
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "none", localsearch.None.String())
	assert.Equal(t, "insertion", localsearch.Insertion.String())
	assert.Equal(t, "removal", localsearch.Removal.String())
	assert.Equal(t, "exchange", localsearch.Exchange.String())
}

func TestBestMove(t *testing.T) {
	eval := linear{w: []float64{3, -5, -1, 2}}

	m := localsearch.BestMove(eval, solutionOf(0, 1), grasp.NewSet(2, 3))
	assert.Equal(t, localsearch.Move{Kind: localsearch.Exchange, In: 2, Out: 0, Delta: -4}, m)

	m = localsearch.BestMove(eval, solutionOf(), grasp.NewSet())
	assert.Equal(t, localsearch.None, m.Kind)
}

func TestBestMove_FirstFoundWinsTies(t *testing.T) {
	eval := linear{w: []float64{-2, -2, 2}}

	m := localsearch.BestMove(eval, solutionOf(), grasp.NewSet(1, 0))
	assert.Equal(t, localsearch.Insertion, m.Kind)
	assert.Equal(t, 1, m.In, "candidate list order decides")
}

func TestApply(t *testing.T) {
	sol, cl := solutionOf(0, 1), grasp.NewSet(2, 3)

	localsearch.Apply(localsearch.Move{Kind: localsearch.Exchange, In: 2, Out: 0}, sol, cl)
	assert.Equal(t, []int{1, 2}, sol.Sorted())
	assert.Equal(t, []int{0, 3}, cl.Sorted())

	localsearch.Apply(localsearch.Move{Kind: localsearch.Insertion, In: 3}, sol, cl)
	localsearch.Apply(localsearch.Move{Kind: localsearch.Removal, Out: 1}, sol, cl)
	assert.Equal(t, []int{2, 3}, sol.Sorted())
	assert.Equal(t, []int{0, 1}, cl.Sorted())

	localsearch.Apply(localsearch.Move{Kind: localsearch.None}, sol, cl)
	assert.Equal(t, []int{2, 3}, sol.Sorted())
}

func TestBestImprovement_Linear(t *testing.T) {
	eval := linear{w: []float64{3, -5, -1, 2}}
	sol, cl := solutionOf(0, 1), grasp.NewSet(2, 3)

	refreshes := 0
	st := localsearch.BestImprovement(eval, sol, cl, func(*grasp.Set, *grasp.Solution) { refreshes++ }, localsearch.DefaultOptions())

	assert.Equal(t, []int{1, 2}, sol.Sorted())
	assert.Equal(t, -6.0, sol.Cost)
	assert.Equal(t, localsearch.Stats{Passes: 2, Moves: 1, Exchanges: 1}, st)
	assert.Equal(t, st.Passes, refreshes, "refresh runs before every pass")
}

func TestBestImprovement_Tolerance(t *testing.T) {
	eval := linear{w: []float64{-1e-12}}

	sol, cl := solutionOf(), grasp.NewSet(0)
	st := localsearch.BestImprovement(eval, sol, cl, nil, localsearch.DefaultOptions())
	assert.Zero(t, st.Moves, "noise below the tolerance is not a move")
	assert.Zero(t, sol.Len())

	sol, cl = solutionOf(), grasp.NewSet(0)
	st = localsearch.BestImprovement(eval, sol, cl, nil, localsearch.Options{Tolerance: -1})
	assert.Equal(t, 1, st.Insertions, "negative tolerance is treated as zero")
}

func TestBestImprovement_MaxPasses(t *testing.T) {
	eval := linear{w: []float64{-1, -2, -3, -4}}
	sol, cl := solutionOf(), grasp.NewSet(0, 1, 2, 3)

	st := localsearch.BestImprovement(eval, sol, cl, nil, localsearch.Options{MaxPasses: 2})
	assert.Equal(t, 2, st.Moves)
	assert.Equal(t, []int{2, 3}, sol.Sorted())
	assert.Equal(t, -7.0, sol.Cost)
}

// The refresh result is what the pass scans.
func TestBestImprovement_RefreshRestrictsCandidates(t *testing.T) {
	eval := linear{w: []float64{-1, -2, -3, -4}}
	sol, cl := solutionOf(), grasp.NewSet(0, 1, 2, 3)

	// Element 3 is never offered.
	refresh := func(cl *grasp.Set, sol *grasp.Solution) {
		cl.Clear()
		for e := 0; e < 3; e++ {
			if !sol.Contains(e) {
				cl.Add(e)
			}
		}
	}
	localsearch.BestImprovement(eval, sol, cl, refresh, localsearch.DefaultOptions())
	assert.Equal(t, []int{0, 1, 2}, sol.Sorted())
	assert.Equal(t, -6.0, sol.Cost)
}

// Returned solutions are local optima of the QBF neighborhood.
func TestBestImprovement_QBFLocalOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	in, err := qbf.RandomInstance(20, -10, 10, rng)
	require.NoError(t, err)
	eval, err := qbf.NewEvaluator(in)
	require.NoError(t, err)

	for k := 0; k < 25; k++ {
		sol, cl := solutionOf(), grasp.NewSet()
		for i := 0; i < 20; i++ {
			if rng.Intn(2) == 0 {
				sol.Add(i)
			} else {
				cl.Add(i)
			}
		}
		start := eval.Evaluate(sol)

		st := localsearch.BestImprovement(eval, sol, cl, nil, localsearch.DefaultOptions())
		assert.LessOrEqual(t, sol.Cost, start)
		assert.Equal(t, st.Moves+1, st.Passes)
		assert.Equal(t, 20, sol.Len()+cl.Len())

		m := localsearch.BestMove(eval, sol, cl)
		assert.False(t, m.Delta < -localsearch.DefaultTolerance, "improving move %+v left", m)
	}
}
