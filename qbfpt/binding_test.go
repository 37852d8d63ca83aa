package qbfpt_test

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
	"github.com/katalvlaran/lvgrasp/qbfpt"
)

func TestNewBinding_Validation(t *testing.T) {
	in, err := qbf.RandomInstance(6, -5, 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	eval, err := qbf.NewEvaluator(in)
	require.NoError(t, err)
	ts, err := qbfpt.Generate(5)
	require.NoError(t, err)

	_, err = qbfpt.NewBinding(nil, ts, localsearch.Options{})
	assert.ErrorIs(t, err, qbf.ErrNilInstance)
	_, err = qbfpt.NewBinding(eval, nil, localsearch.Options{})
	assert.ErrorIs(t, err, qbfpt.ErrNilTriples)
	_, err = qbfpt.NewBinding(eval, ts, localsearch.Options{})
	assert.ErrorIs(t, err, qbfpt.ErrSizeMismatch)

	small, err := qbf.NewInstance(mat.NewDense(2, 2, []float64{1, 1, 0, 1}))
	require.NoError(t, err)
	_, _, err = qbfpt.New(small, localsearch.Options{})
	assert.ErrorIs(t, err, qbfpt.ErrTooFewElements)
}

// All-positive coefficients make every element attractive, so only the
// triples keep the solution from being the full set.
func TestBinding_TriplesBlockTheFullSet(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		1, 1, 1,
		0, 1, 1,
		0, 0, 1,
	})
	in, err := qbf.NewInstance(a)
	require.NoError(t, err)
	eval, b, err := qbfpt.New(in, localsearch.DefaultOptions())
	require.NoError(t, err)

	e, err := grasp.New(eval, b, grasp.WithIterations(10), grasp.WithAlpha(0.5), grasp.WithSeed(2))
	require.NoError(t, err)
	res, err := e.Solve()
	require.NoError(t, err)

	assert.Equal(t, 2, res.Best.Len())
	assert.InDelta(t, -3, res.Best.Cost, 1e-12)
	assert.True(t, b.Triples().Feasible(res.Best))
}

func TestBinding_ConstructionNeverOffersCompletingCandidate(t *testing.T) {
	in, err := qbf.RandomInstance(30, -5, 10, rand.New(rand.NewSource(17)))
	require.NoError(t, err)

	variants := map[string][]grasp.Option{
		"plain":    {grasp.WithAlpha(0.3)},
		"reactive": {grasp.WithReactive(5)},
		"biased":   {grasp.WithAlpha(0.6), grasp.WithBias(bias.Exponential)},
	}
	for name, opts := range variants {
		t.Run(name, func(t *testing.T) {
			eval, b, err := qbfpt.New(in, localsearch.DefaultOptions())
			require.NoError(t, err)
			triples := b.Triples().Triples()

			steps := 0
			hook := func(s grasp.Step) {
				steps++
				inSol := make(map[int]bool, len(s.Solution))
				for _, e := range s.Solution {
					inSol[e] = true
				}
				for _, c := range s.Candidates {
					require.False(t, inSol[c], "candidate %d already committed", c)
					for _, tr := range triples {
						present := 0
						has := false
						for _, e := range tr {
							if e == c {
								has = true
							} else if inSol[e] {
								present++
							}
						}
						require.False(t, has && present == 2, "candidate %d completes %v", c, tr)
					}
				}
			}

			var observed []grasp.IterationStats
			e, err := grasp.New(eval, b, append(opts,
				grasp.WithIterations(8),
				grasp.WithSeed(6),
				grasp.WithStepHook(hook),
				grasp.WithObserver(func(s grasp.IterationStats) { observed = append(observed, s) }),
			)...)
			require.NoError(t, err)
			res, err := e.Solve()
			require.NoError(t, err)

			assert.Positive(t, steps)
			assert.True(t, b.Triples().Feasible(res.Best), "violations: %v", b.Triples().Violations(res.Best))
			assert.InDelta(t, res.Best.Cost, eval.Evaluate(res.Best.Clone()), 1e-9)
			require.Len(t, observed, 8)
			for i := 1; i < len(observed); i++ {
				assert.LessOrEqual(t, observed[i].IncumbentCost, observed[i-1].IncumbentCost)
			}
		})
	}
}

func TestBinding_LocalSearchKeepsFeasibility(t *testing.T) {
	in, err := qbf.RandomInstance(25, -2, 10, rand.New(rand.NewSource(23)))
	require.NoError(t, err)
	eval, b, err := qbfpt.New(in, localsearch.DefaultOptions())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(4))
	for k := 0; k < 20; k++ {
		// Random feasible start: add elements while the filter allows.
		sol := b.EmptySolution()
		cl := b.Candidates()
		for {
			b.Refresh(cl, sol)
			if cl.Len() == 0 || rng.Intn(4) == 0 {
				break
			}
			elems := cl.Elements()
			sol.Add(elems[rng.Intn(len(elems))])
		}
		require.True(t, b.Triples().Feasible(sol))

		b.LocalSearch(sol, cl)
		assert.True(t, b.Triples().Feasible(sol))
		assert.Zero(t, b.LastSearch().Moves-b.LastSearch().Insertions-b.LastSearch().Removals-b.LastSearch().Exchanges)

		b.Refresh(cl, sol)
		m := localsearch.BestMove(eval, sol, cl)
		assert.False(t, m.Delta < -localsearch.DefaultTolerance, "improving move %+v left", m)
	}
}
