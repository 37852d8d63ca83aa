package bias

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the bias package.
var (
	// ErrUnknownBias indicates a bias function name that ByName does not know.
	ErrUnknownBias = errors.New("bias: unknown bias function")

	// ErrBadBiasWeight indicates a bias function returned a non-positive or non-finite weight.
	ErrBadBiasWeight = errors.New("bias: weight must be finite and positive")

	// ErrBiasNotMonotone indicates a bias function whose weight grows with rank.
	ErrBiasNotMonotone = errors.New("bias: weight must be non-increasing in rank")

	// ErrNilBias indicates Assign was called without a bias function.
	ErrNilBias = errors.New("bias: nil bias function")
)

// Func maps a 1-based rank to a selection weight.
type Func func(rank int) float64

// Random gives every rank the same weight; the pool degenerates to a uniform draw.
func Random(int) float64 { return 1 }

// Linear weighs rank r as 1/r.
func Linear(r int) float64 { return 1 / float64(r) }

// Log weighs rank r as 1/ln(r+1).
func Log(r int) float64 { return 1 / math.Log(float64(r)+1) }

// Exponential weighs rank r as e^(−r).
func Exponential(r int) float64 { return math.Exp(-float64(r)) }

// InverseSquare weighs rank r as r^(−2).
func InverseSquare(r int) float64 { return Polynomial(2)(r) }

// Polynomial returns the bias r^(−n). n ≤ 0 is clamped to 0 (Random).
func Polynomial(n float64) Func {
	if n < 0 {
		n = 0
	}
	return func(r int) float64 { return math.Pow(float64(r), -n) }
}

// ByName resolves a configuration name to a bias function.
// degree is only used by "polynomial".
func ByName(name string, degree float64) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "uniform":
		return Random, nil
	case "linear", "inverse":
		return Linear, nil
	case "log", "logarithmic":
		return Log, nil
	case "exp", "exponential":
		return Exponential, nil
	case "inverse-square", "quadratic":
		return InverseSquare, nil
	case "polynomial", "poly":
		return Polynomial(degree), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBias, name)
	}
}
