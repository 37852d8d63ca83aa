package qbf_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgrasp/bias"
	"github.com/katalvlaran/lvgrasp/grasp"
	"github.com/katalvlaran/lvgrasp/localsearch"
	"github.com/katalvlaran/lvgrasp/qbf"
)

// smallInstance has the unique maximum f({1}) = 3; the full set is worth −1.
func smallInstance(t *testing.T) *qbf.Instance {
	t.Helper()
	in, err := qbf.NewInstance(mat.NewDense(3, 3, []float64{
		2, -5, 0,
		0, 3, 0,
		0, 0, -1,
	}))
	require.NoError(t, err)

	return in
}

func TestBinding_Hooks(t *testing.T) {
	_, err := qbf.NewBinding(nil, localsearch.DefaultOptions())
	assert.ErrorIs(t, err, qbf.ErrNilInstance)

	_, b, err := qbf.New(smallInstance(t), localsearch.Options{})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, b.Candidates().Sorted())
	empty := b.EmptySolution()
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Cost)

	cl := grasp.NewSet(0, 2)
	sol := grasp.NewSolution(0)
	sol.Add(1)
	b.Refresh(cl, sol)
	assert.Equal(t, []int{0, 2}, cl.Sorted(), "refresh leaves the list alone")
}

func TestBinding_LocalSearchReachesOptimum(t *testing.T) {
	eval, b, err := qbf.New(smallInstance(t), localsearch.DefaultOptions())
	require.NoError(t, err)

	sol := grasp.NewSolution(0)
	for i := 0; i < 3; i++ {
		sol.Add(i)
	}
	cl := grasp.NewSet()

	moves := b.LocalSearch(sol, cl)
	assert.Equal(t, 2, moves)
	assert.Equal(t, []int{1}, sol.Sorted())
	assert.Equal(t, []int{0, 2}, cl.Sorted())
	assert.InDelta(t, -3, sol.Cost, 1e-12)
	assert.InDelta(t, 3, eval.Value(sol), 1e-12)
	assert.Equal(t, 2, b.LastSearch().Removals)
}

func TestBinding_SolveVariants(t *testing.T) {
	variants := map[string][]grasp.Option{
		"plain":    {grasp.WithAlpha(0.2)},
		"reactive": {grasp.WithReactive(4)},
		"biased":   {grasp.WithAlpha(0.5), grasp.WithBias(bias.Linear)},
		"greedy":   {grasp.WithAlpha(0), grasp.WithStopOnNoImprovement()},
	}
	for name, opts := range variants {
		t.Run(name, func(t *testing.T) {
			eval, b, err := qbf.New(smallInstance(t), localsearch.DefaultOptions())
			require.NoError(t, err)

			e, err := grasp.New(eval, b, append(opts, grasp.WithIterations(20), grasp.WithSeed(3))...)
			require.NoError(t, err)
			res, err := e.Solve()
			require.NoError(t, err)

			assert.Equal(t, []int{1}, res.Best.Sorted())
			assert.InDelta(t, -3, res.Best.Cost, 1e-12)
		})
	}
}

// On a random instance the result is a local optimum and consistent with
// a fresh evaluation.
func TestBinding_SolveRandomInstance(t *testing.T) {
	in, err := qbf.RandomInstance(25, -10, 10, rand.New(rand.NewSource(21)))
	require.NoError(t, err)
	eval, b, err := qbf.New(in, localsearch.DefaultOptions())
	require.NoError(t, err)

	e, err := grasp.New(eval, b,
		grasp.WithIterations(15),
		grasp.WithAlpha(0.3),
		grasp.WithStopOnNoImprovement(),
		grasp.WithSeed(4),
	)
	require.NoError(t, err)
	res, err := e.Solve()
	require.NoError(t, err)

	best := res.Best.Clone()
	assert.InDelta(t, res.Best.Cost, eval.Evaluate(best), 1e-9)
	assert.LessOrEqual(t, res.Best.Cost, 0.0, "never worse than the empty solution")

	cl := grasp.NewSet()
	for i := 0; i < in.Size(); i++ {
		if !best.Contains(i) {
			cl.Add(i)
		}
	}
	m := localsearch.BestMove(eval, best, cl)
	assert.False(t, m.Delta < -localsearch.DefaultTolerance, "best move %+v improves", m)
}
