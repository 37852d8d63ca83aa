// Package qbf binds the GRASP engine to the quadratic binary function (QBF)
//
//	f(x) = Σ_i Σ_j a_ij · x_i · x_j,   x ∈ {0, 1}^n
//
// which is maximized by minimizing −f (the "inverse" QBF). A solution is
// the set S = {i : x_i = 1}.
//
// ✨ Contents:
//   - Instance  — n×n coefficients in a gonum *mat.Dense, text loader and a
//     seeded random generator.
//   - Evaluator — grasp.Evaluator for −f with O(|S|) insertion, removal and
//     exchange deltas.
//   - Binding   — grasp.Problem: every index is a candidate, refresh is a
//     no-op and local search is localsearch.BestImprovement.
//
// Instance file format (whitespace separated):
//
//	n
//	a_00 a_01 … a_0(n-1)
//	a_11 … a_1(n-1)
//	…
//	a_(n-1)(n-1)
//
// Row i lists the upper triangle a_ii … a_i(n-1); the lower triangle is zero.
package qbf
