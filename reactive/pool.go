// Package reactive - the α pool.
//
// Design:
//   - Probabilities live in a weighted.Selector, so Select is a prefix-sum draw.
//   - Recompute normalizes Q over the pool and prunes α values whose
//     probability drops to exactly zero.
//
// Contracts:
//   - Negative or non-finite Q counts as zero.
//   - When ΣQ ≤ 0 the previous probabilities are kept; the pool never empties.
//
// Complexity:
//   - Select, Recompute: O(m) for m values.
package reactive

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvgrasp/weighted"
)

// Pool is the fixed set of α candidates drawn by Reactive GRASP.
// Values are never added after construction; they are only pruned.
type Pool struct {
	alphas  []*Alpha
	byValue map[float64]*Alpha
	sel     *weighted.Selector[float64]
}

// NewPool builds m values i/m (i = 1..m), each with probability 1/m.
func NewPool(m int) (*Pool, error) {
	if m < MinPoolSize {
		return nil, ErrPoolTooSmall
	}
	values := make([]float64, m)
	for i := 1; i <= m; i++ {
		values[i-1] = float64(i) / float64(m)
	}

	return NewPoolFromValues(values...)
}

// NewPoolFromValues builds a pool over explicit values with uniform
// probabilities. Values must be distinct and lie in [0, 1].
func NewPoolFromValues(values ...float64) (*Pool, error) {
	if len(values) < MinPoolSize {
		return nil, ErrPoolTooSmall
	}
	p := &Pool{
		alphas:  make([]*Alpha, 0, len(values)),
		byValue: make(map[float64]*Alpha, len(values)),
		sel:     weighted.NewSelector[float64](len(values)),
	}
	initial := 1 / float64(len(values))
	for _, v := range values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, ErrAlphaOutOfRange
		}
		if _, dup := p.byValue[v]; dup {
			return nil, ErrDuplicateAlpha
		}
		it, err := p.sel.Add(v, initial)
		if err != nil {
			return nil, err
		}
		a := &Alpha{item: it}
		p.alphas = append(p.alphas, a)
		p.byValue[v] = a
	}

	return p, nil
}

// Len returns the number of α values still in the pool.
func (p *Pool) Len() int { return len(p.alphas) }

// Alphas returns the pool members in construction order.
func (p *Pool) Alphas() []*Alpha {
	out := make([]*Alpha, len(p.alphas))
	copy(out, p.alphas)

	return out
}

// Lookup returns the member holding value v.
func (p *Pool) Lookup(v float64) (*Alpha, bool) {
	a, ok := p.byValue[v]

	return a, ok
}

// Probabilities returns value → probability for every member.
func (p *Pool) Probabilities() map[float64]float64 {
	out := make(map[float64]float64, len(p.alphas))
	for _, a := range p.alphas {
		out[a.Value()] = a.Probability()
	}

	return out
}

// Select draws one member with probability equal to its weight.
func (p *Pool) Select(rng *rand.Rand) (*Alpha, error) {
	v, err := p.sel.Select(rng)
	if err != nil {
		return nil, err
	}

	return p.byValue[v], nil
}

// Recompute turns every member's Q into a normalized probability and prunes
// members whose probability is exactly zero. It returns the number of pruned
// members; a skipped update (Σ Q ≤ 0) returns 0 and changes nothing.
func (p *Pool) Recompute(incumbentCost float64) int {
	qs := make([]float64, len(p.alphas))
	var sum float64
	for i, a := range p.alphas {
		q := a.Q(incumbentCost)
		if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			q = 0
		}
		qs[i] = q
		sum += q
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return 0
	}

	for i, a := range p.alphas {
		// qs[i]/sum is finite and in [0, 1]; SetWeight cannot fail here.
		_ = a.item.SetWeight(qs[i] / sum)
	}

	kept := p.alphas[:0]
	for _, a := range p.alphas {
		if a.Probability() == 0 {
			delete(p.byValue, a.Value())
			continue
		}
		kept = append(kept, a)
	}
	removed := len(p.alphas) - len(kept)
	for i := len(kept); i < len(p.alphas); i++ {
		p.alphas[i] = nil
	}
	p.alphas = kept
	p.sel.RemoveIf(func(it *weighted.Item[float64]) bool { return it.Weight() == 0 })

	return removed
}

// UpdateInterval returns the default recomputation cadence ⌈√m⌉.
func UpdateInterval(m int) int {
	if m <= 1 {
		return 1
	}

	return int(math.Ceil(math.Sqrt(float64(m))))
}
