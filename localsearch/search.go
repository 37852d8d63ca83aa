// Package localsearch - best-improvement insertion / removal / exchange.
//
// BestImprovement applies the single best move of each pass until no move
// improves the cost by more than Tolerance.
//
// Design:
//   - Families are scanned in the order insertion, removal, exchange; ties
//     keep the move found first (strict <).
//   - The caller's refresh runs before every pass, so constrained problems
//     only ever see admissible candidates.
//
// Contracts:
//   - cl and sol are disjoint; both are updated in place.
//   - sol.Cost is re-evaluated after every applied move.
//
// Complexity:
//   - One pass: O(|CL| + |S| + |CL|·|S|) delta evaluations.
package localsearch

import (
	"math"

	"github.com/katalvlaran/lvgrasp/grasp"
)

// DefaultTolerance is the improvement a move must exceed to be applied.
const DefaultTolerance = 1e-9

// Kind is the move family.
type Kind int

const (
	// None marks the absence of a move.
	None Kind = iota
	// Insertion adds Move.In to the solution.
	Insertion
	// Removal drops Move.Out from the solution.
	Removal
	// Exchange swaps Move.Out for Move.In.
	Exchange
)

// String returns the lower-case family name.
func (k Kind) String() string {
	switch k {
	case Insertion:
		return "insertion"
	case Removal:
		return "removal"
	case Exchange:
		return "exchange"
	default:
		return "none"
	}
}

// Move is one neighborhood move and its cost change.
type Move struct {
	Kind  Kind
	In    int // entering element (Insertion, Exchange)
	Out   int // leaving element (Removal, Exchange)
	Delta float64
}

// Options tunes BestImprovement.
//
// Tolerance – a move is applied only if Delta < −Tolerance (≥ 0).
// MaxPasses – upper bound on applied moves; 0 ⇒ run to the local optimum.
type Options struct {
	Tolerance float64
	MaxPasses int
}

// DefaultOptions returns DefaultTolerance and no pass limit.
func DefaultOptions() Options { return Options{Tolerance: DefaultTolerance} }

// Stats counts the work done by one BestImprovement call.
type Stats struct {
	Passes     int
	Moves      int
	Insertions int
	Removals   int
	Exchanges  int
}

// Refresh updates the candidate list for the current solution.
type Refresh func(cl *grasp.Set, sol *grasp.Solution)

// BestMove scans every insertion, removal and exchange and returns the one
// with the lowest delta. Ties keep the first move found, in the order
// insertions, removals, exchanges. Kind is None when both sets are empty.
func BestMove(eval grasp.Evaluator, sol *grasp.Solution, cl *grasp.Set) Move {
	best := Move{Kind: None, Delta: math.Inf(1)}

	cl.Each(func(in int) {
		if d := eval.InsertionCost(in, sol); d < best.Delta {
			best = Move{Kind: Insertion, In: in, Delta: d}
		}
	})
	sol.Each(func(out int) {
		if d := eval.RemovalCost(out, sol); d < best.Delta {
			best = Move{Kind: Removal, Out: out, Delta: d}
		}
	})
	cl.Each(func(in int) {
		sol.Each(func(out int) {
			if d := eval.ExchangeCost(in, out, sol); d < best.Delta {
				best = Move{Kind: Exchange, In: in, Out: out, Delta: d}
			}
		})
	})

	return best
}

// Apply performs m on sol and cl. It does not re-evaluate sol.
func Apply(m Move, sol *grasp.Solution, cl *grasp.Set) {
	switch m.Kind {
	case Insertion:
		sol.Add(m.In)
		cl.Remove(m.In)
	case Removal:
		sol.Remove(m.Out)
		cl.Add(m.Out)
	case Exchange:
		sol.Remove(m.Out)
		cl.Add(m.Out)
		sol.Add(m.In)
		cl.Remove(m.In)
	}
}

// BestImprovement applies best-improvement moves to sol until none improves
// by more than opts.Tolerance. refresh may be nil. sol is evaluated on return.
func BestImprovement(eval grasp.Evaluator, sol *grasp.Solution, cl *grasp.Set, refresh Refresh, opts Options) Stats {
	tol := opts.Tolerance
	if tol < 0 || math.IsNaN(tol) {
		tol = 0
	}

	var st Stats
	eval.Evaluate(sol)
	for {
		if refresh != nil {
			refresh(cl, sol)
		}
		st.Passes++

		m := BestMove(eval, sol, cl)
		if m.Kind == None || !(m.Delta < -tol) {
			break
		}
		Apply(m, sol, cl)
		eval.Evaluate(sol)

		st.Moves++
		switch m.Kind {
		case Insertion:
			st.Insertions++
		case Removal:
			st.Removals++
		case Exchange:
			st.Exchanges++
		}
		if opts.MaxPasses > 0 && st.Moves >= opts.MaxPasses {
			break
		}
	}

	return st
}
