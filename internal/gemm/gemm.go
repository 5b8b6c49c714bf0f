// Package gemm multiplies dense row-major matrices.
package gemm

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrDims is returned when operand lengths do not match the given sizes.
var ErrDims = errors.New("gemm: dimension mismatch")

// Mul computes C = A·B where A is m×k, B is k×n and C is m×n, all row-major.
// C is overwritten.
func Mul(c, a, b []float64, m, k, n int) error {
	if len(a) != m*k || len(b) != k*n || len(c) != m*n {
		return fmt.Errorf("%w: a=%d b=%d c=%d for %dx%d·%dx%d",
			ErrDims, len(a), len(b), len(c), m, k, k, n)
	}
	if k == 0 {
		clear(c)
		return nil
	}

	// Columns of B packed as rows so every output is one dot product.
	bt := make([]float64, k*n)
	for i := range k {
		for j := range n {
			bt[j*k+i] = b[i*n+j]
		}
	}
	for i := range m {
		row := a[i*k : (i+1)*k]
		for j := range n {
			c[i*n+j] = vecmath.DotProduct(row, bt[j*k:(j+1)*k])
		}
	}
	return nil
}
