// Package qbfpt - prohibited triples and the candidate filter.
//
// Design:
//   - Triples are stored 0-based with their elements in ascending order;
//     String prints them 1-based. Set order is the order of first occurrence.
//   - Generate follows the l_g / l_h maps of the QBFPT benchmark.
//
// Contracts:
//   - A TripleSet is read-only after construction and safe to share.
//   - Filter recomputes CL from scratch: universe \ S, minus every element
//     that would complete a triple with two members of S.
//
// Complexity:
//   - Filter, Violations, Feasible: O(n + |T|). Generate: O(n).
package qbfpt

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvgrasp/grasp"
)

// Sentinel errors returned by the qbfpt package.
var (
	// ErrTooFewElements indicates n < 3, where no triple can exist.
	ErrTooFewElements = errors.New("qbfpt: at least 3 elements are required")

	// ErrTripleOutOfRange indicates a triple element outside [0, n).
	ErrTripleOutOfRange = errors.New("qbfpt: triple element out of range")

	// ErrTripleNotDistinct indicates a triple with a repeated element.
	ErrTripleNotDistinct = errors.New("qbfpt: triple elements must be distinct")

	// ErrSizeMismatch indicates triples built for a different domain size.
	ErrSizeMismatch = errors.New("qbfpt: triple set and instance sizes differ")

	// ErrNilTriples indicates a nil triple set.
	ErrNilTriples = errors.New("qbfpt: triple set is nil")
)

// Generator constants of the benchmark triple maps.
const (
	gMul, gAdd = 131, 1031
	hMul, hAdd = 193, 1093
)

// Triple is a prohibited combination of three distinct 0-based elements,
// stored in ascending order.
type Triple [3]int

// String renders the triple 1-based, as benchmark listings do.
func (t Triple) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t[0]+1, t[1]+1, t[2]+1)
}

// TripleSet is an immutable set of prohibited triples over {0, …, n-1}.
type TripleSet struct {
	n       int
	triples []Triple
}

// NewTripleSet validates, sorts and deduplicates triples. The first
// occurrence of each triple fixes its position.
func NewTripleSet(n int, triples []Triple) (*TripleSet, error) {
	if n < 3 {
		return nil, ErrTooFewElements
	}
	ts := &TripleSet{n: n, triples: make([]Triple, 0, len(triples))}
	seen := make(map[Triple]struct{}, len(triples))
	for _, t := range triples {
		for _, e := range t {
			if e < 0 || e >= n {
				return nil, fmt.Errorf("%w: %v with n=%d", ErrTripleOutOfRange, t, n)
			}
		}
		sort.Ints(t[:])
		if t[0] == t[1] || t[1] == t[2] {
			return nil, fmt.Errorf("%w: %v", ErrTripleNotDistinct, t)
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		ts.triples = append(ts.triples, t)
	}

	return ts, nil
}

// Generate returns the benchmark triple set for n elements.
func Generate(n int) (*TripleSet, error) {
	if n < 3 {
		return nil, ErrTooFewElements
	}
	raw := make([]Triple, 0, n)
	for u := 1; u <= n; u++ {
		g, h := partners(u, n)
		raw = append(raw, Triple{u - 1, g - 1, h - 1})
	}

	return NewTripleSet(n, raw)
}

// partners computes the 1-based g(u) and h(u), shifting each away from
// the elements already chosen.
func partners(u, n int) (g, h int) {
	lg := 1 + (gMul*(u-1)+gAdd)%n
	lh := 1 + (hMul*(u-1)+hAdd)%n

	g = lg
	if g == u {
		g = 1 + lg%n
	}

	switch {
	case lh != u && lh != g:
		h = lh
	case 1+lh%n != u && 1+lh%n != g:
		h = 1 + lh%n
	default:
		h = 1 + (lh+1)%n
	}

	return g, h
}

// N returns the domain size.
func (ts *TripleSet) N() int { return ts.n }

// Len returns the number of distinct triples.
func (ts *TripleSet) Len() int { return len(ts.triples) }

// Triples returns a copy of the triples in insertion order.
func (ts *TripleSet) Triples() []Triple {
	out := make([]Triple, len(ts.triples))
	copy(out, ts.triples)

	return out
}

// Violations returns every triple fully contained in sol.
func (ts *TripleSet) Violations(sol *grasp.Solution) []Triple {
	var out []Triple
	for _, t := range ts.triples {
		if sol.Contains(t[0]) && sol.Contains(t[1]) && sol.Contains(t[2]) {
			out = append(out, t)
		}
	}

	return out
}

// Feasible reports whether sol contains no complete triple.
func (ts *TripleSet) Feasible(sol *grasp.Solution) bool {
	for _, t := range ts.triples {
		if sol.Contains(t[0]) && sol.Contains(t[1]) && sol.Contains(t[2]) {
			return false
		}
	}

	return true
}

// Filter rebuilds cl in place as the elements outside sol that do not
// complete any triple with two elements of sol.
func (ts *TripleSet) Filter(cl *grasp.Set, sol *grasp.Solution) {
	cl.Clear()
	for e := 0; e < ts.n; e++ {
		if !sol.Contains(e) {
			cl.Add(e)
		}
	}
	for _, t := range ts.triples {
		a, b, c := sol.Contains(t[0]), sol.Contains(t[1]), sol.Contains(t[2])
		switch {
		case a && b:
			cl.Remove(t[2])
		case a && c:
			cl.Remove(t[1])
		case b && c:
			cl.Remove(t[0])
		}
	}
}
