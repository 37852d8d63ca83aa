// Package config_test covers YAML decoding, validation and the translation
// into bench cases and variants.
package config_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrasp/config"
	"github.com/katalvlaran/lvgrasp/localsearch"
)

const session = `
random:
  - {n: 12, lo: -10, hi: 10, seed: 7}
constrained: true
iterations: 6
runs: 2
seed: 5
parallelism: 2
stop_on_no_improvement: true
variants:
  - name: plain
    alpha: 0.05
  - name: reactive
    reactive: {pool_size: 4, update_interval: 2}
  - name: biased
    alpha: 0.3
    bias: polynomial
    bias_degree: 2
    iterations: 3
`

func TestParse_Session(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(session))
	require.NoError(t, err)

	assert.True(t, cfg.Constrained)
	assert.Equal(t, 6, cfg.Iterations)
	assert.Equal(t, 2, cfg.Runs)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, localsearch.DefaultTolerance, cfg.Tolerance, "default kept")
	require.Len(t, cfg.Variants, 3)
	require.NotNil(t, cfg.Variants[1].Reactive)
	assert.Equal(t, 4, cfg.Variants[1].Reactive.PoolSize)
	assert.Equal(t, config.RandomSpec{N: 12, Lo: -10, Hi: 10, Seed: 7}, cfg.Random[0])
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("instances: [a]\nvariants: [{name: v}]\n"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultIterations, cfg.Iterations)
	assert.Equal(t, config.DefaultRuns, cfg.Runs)
	assert.Equal(t, int64(config.DefaultSeed), cfg.Seed)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty document":      "",
		"no variants":         "instances: [a]\n",
		"no instances":        "variants: [{name: v}]\n",
		"alpha out of range":  "instances: [a]\nvariants: [{name: v, alpha: 1.5}]\n",
		"unnamed variant":     "instances: [a]\nvariants: [{alpha: 0.5}]\n",
		"duplicate names":     "instances: [a]\nvariants: [{name: v}, {name: v}]\n",
		"unknown bias":        "instances: [a]\nvariants: [{name: v, bias: zipf}]\n",
		"tiny reactive pool":  "instances: [a]\nvariants: [{name: v, reactive: {pool_size: 1}}]\n",
		"empty reactive":      "instances: [a]\nvariants: [{name: v, reactive: {}}]\n",
		"single alpha value":  "instances: [a]\nvariants: [{name: v, reactive: {values: [0.5]}}]\n",
		"zero runs":           "instances: [a]\nruns: 0\nvariants: [{name: v}]\n",
		"negative tolerance":  "instances: [a]\ntolerance: -1\nvariants: [{name: v}]\n",
		"inverted bounds":     "random: [{n: 5, lo: 3, hi: 1}]\nvariants: [{name: v}]\n",
		"empty instance path": "instances: ['']\nvariants: [{name: v}]\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(src))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse(strings.NewReader("instances: [a]\nvariants: [{name: v}]\nitrations: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")
	_, err = config.Parse(strings.NewReader("runs: [1"))
	assert.Error(t, err)
}

func TestParse_BiasNames(t *testing.T) {
	for _, name := range []string{"random", "uniform", "linear", "inverse", "log", "logarithmic",
		"exp", "exponential", "inverse-square", "quadratic", "polynomial", "poly"} {
		t.Run(name, func(t *testing.T) {
			src := "instances: [a]\nvariants: [{name: v, bias: " + name + ", bias_degree: 2}]\n"
			cfg, err := config.Parse(strings.NewReader(src))
			require.NoError(t, err)
			assert.Equal(t, name, cfg.Variants[0].Bias)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	inst := filepath.Join(dir, "qbf003")
	require.NoError(t, os.WriteFile(inst, []byte("3\n1 -2 0\n3 0\n-1\n"), 0o600))
	cfgPath := filepath.Join(dir, "session.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("instances: ["+inst+"]\nruns: 1\nvariants: [{name: v, alpha: 0.1}]\n"), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	cases, err := cfg.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "qbf003", cases[0].Name)
	assert.Equal(t, 3, cases[0].Size)
	assert.Nil(t, cases[0].Feasible, "unconstrained case")

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg.Instances = []string{filepath.Join(dir, "missing")}
	_, err = cfg.Cases()
	assert.Error(t, err)
}

func TestConfig_EndToEnd(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(session))
	require.NoError(t, err)

	variants, err := cfg.BenchVariants()
	require.NoError(t, err)
	require.Len(t, variants, 3)
	assert.Equal(t, []string{"plain", "reactive", "biased"},
		[]string{variants[0].Name, variants[1].Name, variants[2].Name})

	cases, err := cfg.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "random-n12-s7", cases[0].Name)
	require.NotNil(t, cases[0].Feasible, "constrained case checks triples")

	records, err := cfg.Runner(nil, nil).RunAll(context.Background(), cases, variants)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, 2, rec.Runs)
		assert.True(t, rec.Feasible)
	}
}

func TestConfig_LocalSearchTolerance(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, localsearch.DefaultTolerance, cfg.LocalSearch().Tolerance)

	cfg.Tolerance = 0
	assert.Negative(t, cfg.LocalSearch().Tolerance, "exact zero survives the binding default")
}
