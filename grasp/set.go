package grasp

import "sort"

// Set is an unordered collection of distinct domain elements with O(1)
// membership, insertion and removal. Iteration order is deterministic for a
// given sequence of operations.
type Set struct {
	items []int
	index map[int]int // element → position in items
}

// NewSet returns a set holding elems (duplicates are ignored).
func NewSet(elems ...int) *Set {
	s := &Set{
		items: make([]int, 0, len(elems)),
		index: make(map[int]int, len(elems)),
	}
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// RangeSet returns the set {0, 1, …, n-1}.
func RangeSet(n int) *Set {
	if n < 0 {
		n = 0
	}
	s := &Set{items: make([]int, n), index: make(map[int]int, n)}
	for i := 0; i < n; i++ {
		s.items[i] = i
		s.index[i] = i
	}

	return s
}

// Add inserts e and reports whether it was absent.
func (s *Set) Add(e int) bool {
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = len(s.items)
	s.items = append(s.items, e)

	return true
}

// Remove deletes e and reports whether it was present.
// The last element takes the place of the removed one.
func (s *Set) Remove(e int) bool {
	pos, ok := s.index[e]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if pos != last {
		moved := s.items[last]
		s.items[pos] = moved
		s.index[moved] = pos
	}
	s.items = s.items[:last]
	delete(s.index, e)

	return true
}

// Contains reports whether e is in the set.
func (s *Set) Contains(e int) bool {
	_, ok := s.index[e]

	return ok
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.items) }

// Elements returns a copy of the elements in iteration order.
func (s *Set) Elements() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)

	return out
}

// Sorted returns a copy of the elements in ascending order.
func (s *Set) Sorted() []int {
	out := s.Elements()
	sort.Ints(out)

	return out
}

// Each calls fn for every element in iteration order.
// fn must not mutate the set.
func (s *Set) Each(fn func(e int)) {
	for _, e := range s.items {
		fn(e)
	}
}

// Clear removes every element.
func (s *Set) Clear() {
	s.items = s.items[:0]
	clear(s.index)
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set {
	c := &Set{
		items: make([]int, len(s.items)),
		index: make(map[int]int, len(s.items)),
	}
	copy(c.items, s.items)
	for k, v := range s.index {
		c.index[k] = v
	}

	return c
}

// Solution is a set of committed elements plus a cached cost.
// Cost is only refreshed by Evaluator.Evaluate; mutations leave it stale.
type Solution struct {
	Set
	Cost float64
}

// NewSolution returns an empty solution with the given initial cost.
func NewSolution(cost float64) *Solution {
	return &Solution{Set: *NewSet(), Cost: cost}
}

// Clone returns a deep value copy of the solution, cost included.
func (s *Solution) Clone() *Solution {
	return &Solution{Set: *s.Set.Clone(), Cost: s.Cost}
}
