// Package qbfpt extends the QBF binding with prohibited triples (QBFPT):
// for every triple (e1, e2, e3) in T, a feasible solution never holds all
// three elements.
//
// Feasibility is enforced through the candidate list only. Before every
// construction step and every local-search pass the list is rebuilt as
//
//	CL = {0, …, n-1} \ S,  then for each t ∈ T with |t ∩ S| = 2: CL ← CL \ t
//
// so no insertion or exchange can complete a triple. The rebuild is done
// from scratch each time because removals and exchanges change S in both
// directions.
//
// Generate builds the standard triple set of the QBFPT benchmark from the
// two linear congruential maps l_g(u) = 1 + ((131(u−1) + 1031) mod n) and
// l_h(u) = 1 + ((193(u−1) + 1093) mod n), one triple per element u.
//
// Complexity: Filter is O(n + |T|); Violations is O(|T|).
package qbfpt
