package weighted

import (
	"errors"
	"math"
)

// Sentinel errors returned by the weighted selection primitives.
var (
	// ErrEmptySelector indicates a draw from a selector that holds no items.
	ErrEmptySelector = errors.New("weighted: selector is empty")

	// ErrZeroTotalWeight indicates a draw from a selector whose weights sum to zero.
	ErrZeroTotalWeight = errors.New("weighted: total weight is zero")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("weighted: weight must be finite and non-negative")

	// ErrNilRand indicates that a nil *rand.Rand was passed to Select.
	ErrNilRand = errors.New("weighted: random source is nil")
)

// Item is a value paired with a selection weight.
// The value is fixed at construction; the weight may be updated in place.
type Item[T any] struct {
	value  T
	weight float64
}

// NewItem returns an item carrying value v with weight w.
// Returns ErrInvalidWeight if w is negative, NaN or infinite.
func NewItem[T any](v T, w float64) (*Item[T], error) {
	if !validWeight(w) {
		return nil, ErrInvalidWeight
	}

	return &Item[T]{value: v, weight: w}, nil
}

// Value returns the immutable value of the item.
func (it *Item[T]) Value() T { return it.value }

// Weight returns the current weight of the item.
func (it *Item[T]) Weight() float64 { return it.weight }

// SetWeight replaces the weight of the item.
// Returns ErrInvalidWeight (and leaves the weight untouched) for invalid w.
func (it *Item[T]) SetWeight(w float64) error {
	if !validWeight(w) {
		return ErrInvalidWeight
	}
	it.weight = w

	return nil
}

// validWeight reports whether w is a usable selection weight.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}
