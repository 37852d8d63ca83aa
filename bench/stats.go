package bench

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the minimum, mean and sample standard deviation of a series.
type Summary struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

// Summarize computes the Summary of values. Std is 0 for fewer than two
// values.
func Summarize(values []float64) Summary {
	s := Summary{N: len(values)}
	if s.N == 0 {
		return s
	}
	s.Best = floats.Min(values)
	if s.N == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)

	return s
}

// aggregate folds per-run outcomes into a Record without identity fields.
func aggregate(outcomes []runOutcome) Record {
	costs := make([]float64, len(outcomes))
	times := make([]float64, len(outcomes))
	rec := Record{Runs: len(outcomes), Feasible: true}
	bestIdx := 0
	for i, o := range outcomes {
		costs[i] = o.cost
		times[i] = o.ms
		rec.Feasible = rec.Feasible && o.feasible
		if o.cost < outcomes[bestIdx].cost {
			bestIdx = i
		}
	}

	cs, ts := Summarize(costs), Summarize(times)
	rec.BestCost, rec.MeanCost, rec.StdCost = cs.Best, cs.Mean, cs.Std
	rec.TimeBestMs, rec.TimeMeanMs, rec.TimeStdMs = ts.Best, ts.Mean, ts.Std
	if len(outcomes) > 0 {
		rec.Best = outcomes[bestIdx].elems
	}

	return rec
}
