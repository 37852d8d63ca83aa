// Command qbfgrasp solves QBF and QBFPT instances with GRASP and benchmarks
// GRASP variants.
//
//	qbfgrasp solve --instance instances/qbf040 --alpha 0.05 --iterations 1000
//	qbfgrasp solve --instance instances/qbf040 --constrained --reactive 10
//	qbfgrasp bench --config session.yaml --out results.csv --metrics-out grasp.prom
//	qbfgrasp triples --n 20
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
