// Package grasp implements the GRASP (Greedy Randomized Adaptive Search
// Procedure) metaheuristic for combinatorial minimization.
//
// 🚀 What is GRASP?
//
//	Iterate construct-then-improve and keep the best result:
//	  1. Construct a solution greedily but randomly: at each step every
//	     candidate whose insertion delta is within
//	         min + α·(max − min)
//	     enters the restricted candidate list and one of them is drawn.
//	  2. Improve it with a problem-specific local search.
//	  3. Replace the incumbent on strict improvement.
//
// ✨ Selection strategies:
//   - plain    — fixed α (WithAlpha), uniform draw from the RCL;
//   - reactive — α is drawn each iteration from an adaptive pool
//     (WithReactive / WithAlphaValues), see package reactive;
//   - biased   — the draw uses rank-dependent weights (WithBias),
//     see package bias. Biased and reactive modes combine.
//
// ⚙️ Usage:
//
//	eval, prob, err := qbf.New(inst, localsearch.DefaultOptions())
//	if err != nil {
//	    // handle qbf.ErrNilInstance
//	}
//	eng, err := grasp.New(eval, prob,
//	    grasp.WithIterations(1000),
//	    grasp.WithReactive(10),
//	    grasp.WithBias(bias.Linear),
//	    grasp.WithSeed(7),
//	)
//	if err != nil {
//	    // handle ErrAlphaOutOfRange, ErrPoolTooSmall, ...
//	}
//	res, err := eng.Solve()
//
// Contracts:
//   - The Evaluator is the only source of objective information.
//   - The Problem is a strategy object: candidate universe, candidate
//     refresh, empty solution, local search. Variants are interchangeable.
//   - The construction loop stops when the candidate list is exhausted.
//     WithStopOnNoImprovement adds an opt-in greedy stop.
//
// Concurrency:
//
//	Strictly sequential. An Engine owns its *rand.Rand and its working state
//	for the duration of Solve; use one Engine per goroutine and DeriveRand
//	to give each one an independent stream.
package grasp
