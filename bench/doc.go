// Package bench runs GRASP variants repeatedly over problem cases and
// aggregates the outcomes.
//
// Every run gets a fresh evaluator/binding pair and its own generator
// grasp.DeriveRand(BaseSeed, run), so runs are independent, reproducible
// and safe to execute concurrently. Runs of one (case, variant) pair are
// spread over Parallelism goroutines with errgroup; records are written as
// CSV and metrics can be exported as a Prometheus textfile.
package bench
