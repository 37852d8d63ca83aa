package grasp

import (
	"errors"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvgrasp/bias"
	"github.com/katalvlaran/lvgrasp/reactive"
)

// Default configuration values.
const (
	// DefaultIterations is the main-loop length used when none is given.
	DefaultIterations = 1000

	// DefaultAlpha is the fixed greediness used by plain GRASP.
	DefaultAlpha = 0.1
)

// Options configures an Engine.
//
// Iterations          – main-loop length (> 0).
// Alpha               – fixed greediness in [0, 1]; ignored in reactive mode.
// PoolSize            – reactive pool of values i/PoolSize (≥ 2); 0 disables.
// AlphaValues         – explicit reactive pool; takes precedence over PoolSize.
// UpdateInterval      – reactive recomputation cadence; 0 ⇒ ⌈√m⌉.
// Bias                – rank bias for the restricted pool; nil ⇒ uniform RCL.
// Seed / Rand         – random source; Rand wins when both are set.
// StopOnNoImprovement – also stop construction when no insertion improves.
// Logger              – receives Debug records on improvements; nil ⇒ discard.
// Observer / StepHook – optional per-iteration / per-step callbacks.
type Options struct {
	Iterations          int
	Alpha               float64
	PoolSize            int
	AlphaValues         []float64
	UpdateInterval      int
	Bias                bias.Func
	Seed                int64
	Rand                *rand.Rand
	StopOnNoImprovement bool
	Logger              *slog.Logger
	Observer            func(IterationStats)
	StepHook            func(Step)
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns plain GRASP with DefaultAlpha, DefaultIterations
// and DefaultSeed.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Alpha:      DefaultAlpha,
		Seed:       DefaultSeed,
	}
}

// Reactive reports whether the options select reactive mode.
func (o Options) Reactive() bool { return len(o.AlphaValues) > 0 || o.PoolSize > 0 }

// WithIterations sets the main-loop length.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithAlpha sets the fixed greediness of plain GRASP.
func WithAlpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// WithReactive enables Reactive GRASP over the values i/m, i = 1..m.
func WithReactive(m int) Option { return func(o *Options) { o.PoolSize = m } }

// WithAlphaValues enables Reactive GRASP over explicit values.
func WithAlphaValues(values ...float64) Option {
	return func(o *Options) { o.AlphaValues = append([]float64(nil), values...) }
}

// WithUpdateInterval sets how many iterations pass between pool recomputations.
func WithUpdateInterval(k int) Option { return func(o *Options) { o.UpdateInterval = k } }

// WithBias enables Biased GRASP with the given rank bias.
func WithBias(fn bias.Func) Option { return func(o *Options) { o.Bias = fn } }

// WithSeed seeds the engine-owned generator (0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithRand hands the engine an already built generator.
// The engine becomes its only user.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithStopOnNoImprovement stops construction as soon as the best insertion
// delta is non-negative, in addition to candidate-list exhaustion.
func WithStopOnNoImprovement() Option { return func(o *Options) { o.StopOnNoImprovement = true } }

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithObserver installs a callback invoked after every iteration.
func WithObserver(fn func(IterationStats)) Option { return func(o *Options) { o.Observer = fn } }

// WithStepHook installs a callback invoked after every constructive selection.
func WithStepHook(fn func(Step)) Option { return func(o *Options) { o.StepHook = fn } }

// validate checks o and returns the first violated precondition.
func (o Options) validate() error {
	if o.Iterations <= 0 {
		return ErrBadIterations
	}
	if o.UpdateInterval < 0 {
		return ErrBadUpdateInterval
	}
	if !o.Reactive() {
		if math.IsNaN(o.Alpha) || o.Alpha < 0 || o.Alpha > 1 {
			return ErrAlphaOutOfRange
		}
		return nil
	}
	if len(o.AlphaValues) == 0 && o.PoolSize < reactive.MinPoolSize {
		return ErrPoolTooSmall
	}

	return nil
}

// newPool builds the reactive pool described by o, mapping reactive
// sentinels onto the engine's own.
func (o Options) newPool() (*reactive.Pool, error) {
	var (
		p   *reactive.Pool
		err error
	)
	if len(o.AlphaValues) > 0 {
		p, err = reactive.NewPoolFromValues(o.AlphaValues...)
	} else {
		p, err = reactive.NewPool(o.PoolSize)
	}
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, reactive.ErrPoolTooSmall):
		return nil, ErrPoolTooSmall
	case errors.Is(err, reactive.ErrAlphaOutOfRange):
		return nil, ErrAlphaOutOfRange
	default:
		return nil, err
	}
}
