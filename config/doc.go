// Package config loads benchmark sessions from YAML.
//
// A session names the instances (files or seeded random ones), the shared
// run policy and a list of GRASP variants:
//
//	instances: [instances/qbf020, instances/qbf040]
//	random:
//	  - {n: 60, lo: -10, hi: 10, seed: 7}
//	constrained: true
//	iterations: 1000
//	runs: 10
//	seed: 1
//	parallelism: 4
//	tolerance: 1e-9
//	variants:
//	  - name: plain
//	    alpha: 0.05
//	  - name: reactive
//	    reactive: {pool_size: 10}
//	  - name: biased
//	    alpha: 0.3
//	    bias: linear
//
// Struct tags are checked with go-playground/validator; rules that span
// fields (reactive pool shape, bias names, at least one instance) are
// checked in Validate.
package config
