package weighted

import (
	"math/rand"
	"sort"
)

// Selector is an ordered collection of weighted items supporting
// proportional random draws.
type Selector[T any] struct {
	items []*Item[T]
	cum   []float64 // prefix-sum scratch reused across draws
}

// NewSelector returns an empty selector with room for capacity items.
func NewSelector[T any](capacity int) *Selector[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Selector[T]{
		items: make([]*Item[T], 0, capacity),
		cum:   make([]float64, 0, capacity),
	}
}

// Add appends value v with weight w and returns the stored item, so that the
// caller can later adjust its weight in place.
func (s *Selector[T]) Add(v T, w float64) (*Item[T], error) {
	it, err := NewItem(v, w)
	if err != nil {
		return nil, err
	}
	s.items = append(s.items, it)

	return it, nil
}

// Len returns the number of items held by the selector.
func (s *Selector[T]) Len() int { return len(s.items) }

// Items returns the items in insertion order. The slice is a copy; the items
// are shared with the selector.
func (s *Selector[T]) Items() []*Item[T] {
	out := make([]*Item[T], len(s.items))
	copy(out, s.items)

	return out
}

// Total returns the sum of all weights.
func (s *Selector[T]) Total() float64 {
	var total float64
	for _, it := range s.items {
		total += it.weight
	}

	return total
}

// Reset removes every item while keeping the allocated capacity.
func (s *Selector[T]) Reset() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
	s.cum = s.cum[:0]
}

// RemoveIf drops every item for which pred returns true, preserving the
// relative order of the survivors. It returns the number of removed items.
func (s *Selector[T]) RemoveIf(pred func(*Item[T]) bool) int {
	kept := s.items[:0]
	for _, it := range s.items {
		if !pred(it) {
			kept = append(kept, it)
		}
	}
	removed := len(s.items) - len(kept)
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept

	return removed
}

// Select draws one value with probability proportional to its weight.
//
// Errors:
//   - ErrNilRand         if rng is nil.
//   - ErrEmptySelector   if the selector holds no items.
//   - ErrInvalidWeight   if a stored weight is not a valid weight.
//   - ErrZeroTotalWeight if every weight is zero.
func (s *Selector[T]) Select(rng *rand.Rand) (T, error) {
	var zero T
	if rng == nil {
		return zero, ErrNilRand
	}
	if len(s.items) == 0 {
		return zero, ErrEmptySelector
	}

	// Running prefix sums: {3: "cat", 8: "dog"} for weights {cat:3, dog:5}.
	s.cum = s.cum[:0]
	var total float64
	for _, it := range s.items {
		if !validWeight(it.weight) {
			return zero, ErrInvalidWeight
		}
		total += it.weight
		s.cum = append(s.cum, total)
	}
	if total <= 0 {
		return zero, ErrZeroTotalWeight
	}

	u := rng.Float64() * total // u ∈ [0, total)
	idx := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > u })
	if idx == len(s.cum) {
		// Unreachable for u < total; kept to stay in bounds under FP rounding.
		idx = s.lastPositive()
	}

	return s.items[idx].value, nil
}

// lastPositive returns the index of the last item with a positive weight.
func (s *Selector[T]) lastPositive() int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].weight > 0 {
			return i
		}
	}

	return len(s.items) - 1
}
