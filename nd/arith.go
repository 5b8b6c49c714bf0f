package nd

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

type binaryKernel func(a, b float64) float64

func addKernel(a, b float64) float64 { return a + b }
func subKernel(a, b float64) float64 { return a - b }
func mulKernel(a, b float64) float64 { return a * b }
func divKernel(a, b float64) float64 { return a / b }
func modKernel(a, b float64) float64 { return math.Mod(a, b) }

// binaryInPlace applies dst = k(dst, x) after checking shapes, so a
// mismatch never leaves dst half written.
func (a *NdArray) binaryInPlace(op string, x *NdArray, k binaryKernel) (*NdArray, error) {
	if err := checkSameShape(op, a, x); err != nil {
		return nil, err
	}
	if dst, ok := a.float64Run(); ok {
		if src, ok := x.float64Run(); ok {
			switch op {
			case "add":
				vecmath.AddBlockInPlace(dst, src)
				return a, nil
			case "multiply":
				vecmath.MulBlockInPlace(dst, src)
				return a, nil
			}
		}
	}
	walk(a.shape, []int{a.offset, x.offset}, [][]int{a.stride, x.stride}, false, func(p, _ []int) {
		a.buf.SetAt(p[0], k(a.buf.At(p[0]), x.buf.At(p[1])))
	})
	return a, nil
}

func (a *NdArray) binary(op string, x *NdArray, k binaryKernel) (*NdArray, error) {
	if err := checkSameShape(op, a, x); err != nil {
		return nil, err
	}
	return a.Clone().binaryInPlace(op, x, k)
}

func (a *NdArray) scalarInPlace(s float64, k binaryKernel) *NdArray {
	a.each(func(p int) {
		a.buf.SetAt(p, k(a.buf.At(p), s))
	})
	return a
}

// Add returns a + x elementwise. Shapes must match.
func (a *NdArray) Add(x *NdArray) (*NdArray, error) { return a.binary("add", x, addKernel) }

// Subtract returns a - x elementwise. Shapes must match.
func (a *NdArray) Subtract(x *NdArray) (*NdArray, error) { return a.binary("subtract", x, subKernel) }

// Multiply returns a * x elementwise. Shapes must match.
func (a *NdArray) Multiply(x *NdArray) (*NdArray, error) { return a.binary("multiply", x, mulKernel) }

// Divide returns a / x elementwise. Division by zero yields IEEE-754
// infinities or NaN for float dtypes.
func (a *NdArray) Divide(x *NdArray) (*NdArray, error) { return a.binary("divide", x, divKernel) }

// Pow returns a raised to x elementwise.
func (a *NdArray) Pow(x *NdArray) (*NdArray, error) { return a.binary("pow", x, math.Pow) }

// Mod returns the remainder of a / x elementwise, with the sign of a.
func (a *NdArray) Mod(x *NdArray) (*NdArray, error) { return a.binary("mod", x, modKernel) }

// AddInPlace adds x into a's buffer and returns a.
func (a *NdArray) AddInPlace(x *NdArray) (*NdArray, error) {
	return a.binaryInPlace("add", x, addKernel)
}

// SubtractInPlace subtracts x from a's buffer and returns a.
func (a *NdArray) SubtractInPlace(x *NdArray) (*NdArray, error) {
	return a.binaryInPlace("subtract", x, subKernel)
}

// MultiplyInPlace multiplies a's buffer by x and returns a.
func (a *NdArray) MultiplyInPlace(x *NdArray) (*NdArray, error) {
	return a.binaryInPlace("multiply", x, mulKernel)
}

// DivideInPlace divides a's buffer by x and returns a.
func (a *NdArray) DivideInPlace(x *NdArray) (*NdArray, error) {
	return a.binaryInPlace("divide", x, divKernel)
}

// PowInPlace raises a's buffer to x and returns a.
func (a *NdArray) PowInPlace(x *NdArray) (*NdArray, error) {
	return a.binaryInPlace("pow", x, math.Pow)
}

// ModInPlace replaces a's buffer with a mod x and returns a.
func (a *NdArray) ModInPlace(x *NdArray) (*NdArray, error) {
	return a.binaryInPlace("mod", x, modKernel)
}

// AddScalar returns a + s.
func (a *NdArray) AddScalar(s float64) *NdArray { return a.Clone().scalarInPlace(s, addKernel) }

// SubtractScalar returns a - s.
func (a *NdArray) SubtractScalar(s float64) *NdArray { return a.Clone().scalarInPlace(s, subKernel) }

// MultiplyScalar returns a * s.
func (a *NdArray) MultiplyScalar(s float64) *NdArray { return a.Clone().MultiplyScalarInPlace(s) }

// DivideScalar returns a / s.
func (a *NdArray) DivideScalar(s float64) *NdArray { return a.Clone().scalarInPlace(s, divKernel) }

// PowScalar returns a raised to s.
func (a *NdArray) PowScalar(s float64) *NdArray { return a.Clone().PowScalarInPlace(s) }

// ModScalar returns a mod s.
func (a *NdArray) ModScalar(s float64) *NdArray { return a.Clone().scalarInPlace(s, modKernel) }

// AddScalarInPlace adds s to every element of a's buffer and returns a.
func (a *NdArray) AddScalarInPlace(s float64) *NdArray { return a.scalarInPlace(s, addKernel) }

// SubtractScalarInPlace subtracts s from every element and returns a.
func (a *NdArray) SubtractScalarInPlace(s float64) *NdArray { return a.scalarInPlace(s, subKernel) }

// MultiplyScalarInPlace scales every element by s and returns a.
func (a *NdArray) MultiplyScalarInPlace(s float64) *NdArray {
	if run, ok := a.float64Run(); ok {
		vecmath.ScaleBlockInPlace(run, s)
		return a
	}
	return a.scalarInPlace(s, mulKernel)
}

// DivideScalarInPlace divides every element by s and returns a.
func (a *NdArray) DivideScalarInPlace(s float64) *NdArray { return a.scalarInPlace(s, divKernel) }

// PowScalarInPlace raises every element to s and returns a.
func (a *NdArray) PowScalarInPlace(s float64) *NdArray {
	if s == 2 {
		return a.scalarInPlace(s, func(v, _ float64) float64 { return v * v })
	}
	return a.scalarInPlace(s, math.Pow)
}

// ModScalarInPlace replaces every element with its remainder mod s and returns a.
func (a *NdArray) ModScalarInPlace(s float64) *NdArray { return a.scalarInPlace(s, modKernel) }

// Assign copies src into a's buffer and returns a. Shapes must match.
func (a *NdArray) Assign(src *NdArray) (*NdArray, error) {
	if err := checkSameShape("assign", a, src); err != nil {
		return nil, err
	}
	copyInto(a, src)
	return a, nil
}

// Fill sets every element to v and returns a.
func (a *NdArray) Fill(v float64) *NdArray {
	a.each(func(p int) {
		a.buf.SetAt(p, v)
	})
	return a
}
