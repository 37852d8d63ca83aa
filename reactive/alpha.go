package reactive

import "github.com/katalvlaran/lvgrasp/weighted"

// Alpha is one candidate greediness value together with its selection
// probability and performance history.
type Alpha struct {
	item *weighted.Item[float64] // value + probability, shared with the pool selector
	avg  float64                 // A: mean cost of solutions built with this value
	acc  float64                 // accumulated cost
	uses int
}

// Value returns the greediness value in [0, 1].
func (a *Alpha) Value() float64 { return a.item.Value() }

// Probability returns the current selection probability.
func (a *Alpha) Probability() float64 { return a.item.Weight() }

// Average returns A, the running mean cost (0 before the first Update).
func (a *Alpha) Average() float64 { return a.avg }

// Uses returns how many solutions were recorded for this value.
func (a *Alpha) Uses() int { return a.uses }

// Update records the cost of one more solution built with this value.
func (a *Alpha) Update(cost float64) {
	a.uses++
	a.acc += cost
	a.avg = a.acc / float64(a.uses)
}

// Q scores the value against the incumbent: incumbentCost / A for positive
// averages, 0 while A == 0. The incumbent is never worse than A, so the
// ratio lies in (0, 1] and grows as A approaches the incumbent. For negative
// averages the ratio is taken the other way round (A / incumbentCost) to keep
// that ordering: incumbentCost / A would exceed 1 and score the worst averages
// highest. A negative result means mixed signs and is left to the pool.
func (a *Alpha) Q(incumbentCost float64) float64 {
	switch {
	case a.avg == 0:
		return 0
	case a.avg < 0:
		if incumbentCost == 0 {
			return 0
		}
		return a.avg / incumbentCost
	default:
		return incumbentCost / a.avg
	}
}
