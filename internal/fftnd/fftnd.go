// Package fftnd runs multi-dimensional complex FFTs over row-major
// buffers with algo-fft N-D plans.
package fftnd

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrShape is returned when the buffer does not match the shape.
var ErrShape = errors.New("fftnd: buffer length does not match shape")

// Direction selects the transform sign.
type Direction int

const (
	// Forward computes the unnormalized forward transform.
	Forward Direction = iota
	// Inverse computes the inverse transform normalized by 1/N.
	Inverse
)

// Transform replaces data with its N-dimensional transform. data holds a
// row-major array of the given shape; any axis length is accepted.
func Transform(dir Direction, data []complex128, shape []int) error {
	size := 1
	dims := make([]int, 0, len(shape))
	for _, n := range shape {
		size *= n
		if n != 1 {
			dims = append(dims, n)
		}
	}
	if len(data) != size {
		return fmt.Errorf("%w: len=%d, shape %v", ErrShape, len(data), shape)
	}
	// Unit axes leave the row-major layout unchanged.
	if size == 0 || len(dims) == 0 {
		return nil
	}

	plan, err := algofft.NewPlanND64(dims)
	if err != nil {
		return fmt.Errorf("fftnd: plan %v: %w", dims, err)
	}
	if dir == Inverse {
		err = plan.InverseInPlace(data)
	} else {
		err = plan.ForwardInPlace(data)
	}
	if err != nil {
		return fmt.Errorf("fftnd: transform %v: %w", dims, err)
	}
	return nil
}
