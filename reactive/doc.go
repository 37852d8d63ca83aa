// Package reactive implements the adaptive α-pool of Reactive GRASP.
//
// Each candidate greediness value α keeps a running average A of the costs
// of the solutions produced while it was active. Periodically the pool turns
// those averages into selection probabilities:
//
//	Q_i = incumbentCost / A_i      (0 when A_i == 0, i.e. never used;
//	                                A_i / incumbentCost when A_i < 0)
//	p_i = Q_i / Σ_j Q_j
//
// and drops every α whose probability is exactly zero. For a minimization
// problem a smaller average cost relative to the incumbent yields a larger Q,
// so well-performing values are drawn more often.
//
// Decisions:
//   - A negative or non-finite Q_i is treated as 0.
//   - When Σ Q ≤ 0 the update is skipped and the previous probabilities stay.
//     The pool therefore never becomes empty.
//
// Concurrency: a Pool is owned by one engine and is not safe for concurrent use.
package reactive
