// Package weighted implements roulette-wheel selection over a collection of
// (value, weight) pairs.
//
// 🚀 What is it for?
//
//	Both adaptive components of the GRASP engine draw from weighted pools:
//	  • reactive: the greediness parameter α is drawn with a probability
//	    proportional to its historical performance;
//	  • bias: a construction candidate is drawn with a probability that
//	    depends on its rank in the restricted candidate pool.
//
// ✨ Contract:
//   - Weights are finite and ≥ 0; at least one must be > 0 for Select.
//   - Select builds running prefix sums in insertion order, draws u ∈ [0, Σw)
//     and returns the value of the smallest prefix sum strictly greater than u.
//     A value of weight w is therefore drawn with probability w / Σw.
//   - Items sharing a prefix sum (zero-weight items) resolve to the earliest
//     positive-weight item, so zero-weight items are never drawn.
//   - An empty selector or an all-zero selector is a usage error
//     (ErrEmptySelector / ErrZeroTotalWeight), never a silent "nothing left".
//
// Concurrency:
//
//	A Selector is not safe for concurrent use. The *rand.Rand passed to
//	Select is owned by the caller and must not be shared across goroutines.
//
// Complexity:
//   - Add:    O(1) amortized.
//   - Select: O(k) prefix sums + O(log k) binary search, k = Len().
package weighted
