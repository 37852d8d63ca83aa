// Package localsearch implements best-improvement neighborhood search over
// subset solutions.
//
// A pass scans three move families against a grasp.Evaluator:
//
//	insertion: add one candidate-list element;
//	removal:   drop one solution element;
//	exchange:  swap one solution element for one candidate.
//
// The single move with the lowest delta across the three families is applied
// when delta < −Tolerance; passes repeat until no such move exists, which is
// a local optimum. The tolerance keeps floating-point noise from triggering
// endless zero-gain cycles.
//
// Constrained problems pass a refresh function, which is called before every
// pass so the candidate list only ever offers feasible insertions.
//
// Complexity: one pass is O(|CL|·|S|) delta evaluations.
package localsearch
