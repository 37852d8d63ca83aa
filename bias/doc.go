// Package bias provides rank-based bias functions and the weighted restricted
// candidate pool used by Biased GRASP.
//
// At every construction step the admissible candidates are ranked by
// ascending insertion delta (rank 1 = most negative delta) and each one gets
// weight fn(rank). fn must be positive and non-increasing in rank so that
// better candidates are favored while every admissible candidate keeps a
// non-zero probability.
//
// Built-in functions (Bresina's family):
//
//	Random        1
//	Linear        1 / r
//	Log           1 / ln(r + 1)
//	Exponential   e^(−r)
//	Polynomial(n) r^(−n)
//
// Ranks and weights are recomputed from scratch at every step; a pool keeps
// nothing across Reset.
package bias
