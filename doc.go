// Package lvgrasp is a toolkit for GRASP (Greedy Randomized Adaptive Search
// Procedure) applied to quadratic binary functions, with and without
// prohibited triples.
//
// 🚀 What is lvgrasp?
//
//	One engine, three selection modes, two problem bindings:
//		• Plain GRASP: fixed greediness α, uniform restricted candidate list
//		• Reactive GRASP: α drawn from a pool whose probabilities follow performance
//		• Biased GRASP: rank-weighted draws inside the restricted pool
//		• QBF: maximize xᵀAx over x ∈ {0, 1}^n
//		• QBFPT: QBF where no prohibited triple may be fully selected
//
// ✨ Why lvgrasp?
//
//   - Reproducible – every engine owns its generator; same seed, same run
//   - Concurrent benchmarks – independent per-run streams, errgroup fan-out
//   - Small contracts – an Evaluator and a Problem are all a new problem needs
//   - Observable – slog records, per-iteration observers, Prometheus textfiles
//
// Packages:
//
//	weighted/    — generic weighted item and roulette-wheel selector
//	reactive/    — α values and the adaptive α pool
//	bias/        — rank bias functions and the biased candidate pool
//	grasp/       — engine, candidate/solution sets, options, RNG streams
//	localsearch/ — best-improvement insertion / removal / exchange search
//	qbf/         — QBF instances (gonum), inverse evaluator, binding
//	qbfpt/       — prohibited triples, triple generator, filtered binding
//	bench/       — multi-run harness, CSV records, Prometheus metrics
//	config/      — YAML sessions validated with go-playground/validator
//	cmd/qbfgrasp — cobra CLI: solve, bench, triples
//
// Quick start:
//
//	inst, _ := qbf.LoadInstance("instances/qbf040")
//	eval, prob, _ := qbf.New(inst, localsearch.DefaultOptions())
//	e, _ := grasp.New(eval, prob, grasp.WithReactive(10), grasp.WithIterations(1000))
//	res, _ := e.Solve()
//	fmt.Println(eval.Value(res.Best), res.Best.Sorted())
package lvgrasp
