// Package bias - rank-weighted restricted candidate pool.
//
// Design:
//   - Assign ranks admitted candidates by ascending delta with a stable sort,
//     so equal deltas keep admission order.
//   - Weights come from the bias function of the rank and must be positive,
//     finite and non-increasing.
//
// Contracts:
//   - The pool holds one construction step; Reset clears it.
//   - A failed Assign leaves nothing to draw.
//
// Complexity:
//   - Assign: O(k log k). Select: O(k) for k admitted candidates.
package bias

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/lvgrasp/weighted"
)

// Ranked is one admissible candidate after ranking.
type Ranked struct {
	Candidate int
	Delta     float64
	Rank      int
	Weight    float64
}

// CandidatePool is the per-step weighted restricted candidate pool.
type CandidatePool struct {
	ranked []Ranked
	sel    *weighted.Selector[int]
}

// NewCandidatePool returns an empty pool with room for capacity candidates.
func NewCandidatePool(capacity int) *CandidatePool {
	if capacity < 0 {
		capacity = 0
	}

	return &CandidatePool{
		ranked: make([]Ranked, 0, capacity),
		sel:    weighted.NewSelector[int](capacity),
	}
}

// Add admits candidate c with insertion delta into the pool.
// The candidate is unranked until Assign.
func (p *CandidatePool) Add(c int, delta float64) {
	p.ranked = append(p.ranked, Ranked{Candidate: c, Delta: delta})
	p.sel.Reset()
}

// Len returns the number of admitted candidates.
func (p *CandidatePool) Len() int { return len(p.ranked) }

// Reset empties the pool for the next construction step.
func (p *CandidatePool) Reset() {
	p.ranked = p.ranked[:0]
	p.sel.Reset()
}

// Assign ranks the candidates by ascending delta (ties keep admission order)
// and weighs rank r with fn(r).
func (p *CandidatePool) Assign(fn Func) error {
	if fn == nil {
		return ErrNilBias
	}
	sort.SliceStable(p.ranked, func(i, j int) bool { return p.ranked[i].Delta < p.ranked[j].Delta })

	p.sel.Reset()
	prev := math.Inf(1)
	for i := range p.ranked {
		r := i + 1
		w := fn(r)
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			p.sel.Reset()
			return ErrBadBiasWeight
		}
		if w > prev {
			p.sel.Reset()
			return ErrBiasNotMonotone
		}
		prev = w
		p.ranked[i].Rank = r
		p.ranked[i].Weight = w
		if _, err := p.sel.Add(p.ranked[i].Candidate, w); err != nil {
			p.sel.Reset()
			return err
		}
	}

	return nil
}

// Ranked returns the ranked candidates (valid after Assign).
func (p *CandidatePool) Ranked() []Ranked {
	out := make([]Ranked, len(p.ranked))
	copy(out, p.ranked)

	return out
}

// Select draws a candidate with probability proportional to its weight.
// Calling Select before Assign yields weighted.ErrEmptySelector.
func (p *CandidatePool) Select(rng *rand.Rand) (int, error) {
	return p.sel.Select(rng)
}
