package qbf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the qbf package.
var (
	// ErrNilInstance indicates a nil instance or coefficient matrix.
	ErrNilInstance = errors.New("qbf: instance is nil")

	// ErrNonSquare indicates a coefficient matrix that is not n×n.
	ErrNonSquare = errors.New("qbf: coefficient matrix is not square")

	// ErrEmptyInstance indicates n == 0.
	ErrEmptyInstance = errors.New("qbf: instance has no variables")

	// ErrBadFormat indicates a malformed instance file.
	ErrBadFormat = errors.New("qbf: malformed instance")

	// ErrNaNInf indicates a non-finite coefficient.
	ErrNaNInf = errors.New("qbf: NaN or Inf coefficient")
)

// Instance holds the QBF coefficient matrix.
type Instance struct {
	a *mat.Dense
}

// NewInstance wraps a square, finite coefficient matrix.
// The matrix is used as is; callers must not mutate it afterwards.
func NewInstance(a *mat.Dense) (*Instance, error) {
	if a == nil {
		return nil, ErrNilInstance
	}
	r, c := a.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if r == 0 {
		return nil, ErrEmptyInstance
	}
	for i := 0; i < r; i++ {
		for _, v := range a.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
	}

	return &Instance{a: a}, nil
}

// Size returns the number of binary variables.
func (in *Instance) Size() int {
	r, _ := in.a.Dims()

	return r
}

// At returns a_ij.
func (in *Instance) At(i, j int) float64 { return in.a.At(i, j) }

// Matrix returns the coefficient matrix as a read-only view.
func (in *Instance) Matrix() mat.Matrix { return in.a }

// ReadInstance parses the upper-triangular text format described in the
// package documentation.
func ReadInstance(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: unexpected end of input", ErrBadFormat)
		}
		return sc.Text(), nil
	}

	tok, err := next()
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: size %q", ErrBadFormat, tok)
	}
	if n == 0 {
		return nil, ErrEmptyInstance
	}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if tok, err = next(); err != nil {
				return nil, err
			}
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: a[%d][%d]=%q", ErrBadFormat, i, j, tok)
			}
			a.Set(i, j, v)
		}
	}

	return NewInstance(a)
}

// LoadInstance reads an instance file from path.
func LoadInstance(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := ReadInstance(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return inst, nil
}

// WriteInstance writes the upper triangle of in in the text format.
func WriteInstance(w io.Writer, in *Instance) error {
	bw := bufio.NewWriter(w)
	n := in.Size()
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if j > i {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(in.At(i, j), 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RandomInstance builds an n-variable upper-triangular instance with integer
// coefficients drawn uniformly from [lo, hi].
func RandomInstance(n, lo, hi int, rng *rand.Rand) (*Instance, error) {
	if rng == nil {
		return nil, errors.New("qbf: random source is nil")
	}
	if n <= 0 {
		return nil, ErrEmptyInstance
	}
	if hi < lo {
		return nil, fmt.Errorf("qbf: invalid coefficient bounds [%d, %d]", lo, hi)
	}
	span := hi - lo + 1
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a.Set(i, j, float64(lo+rng.Intn(span)))
		}
	}

	return NewInstance(a)
}
