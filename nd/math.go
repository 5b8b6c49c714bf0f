package nd

import "math"

// unary returns a copy of a with fn applied to every element.
func (a *NdArray) unary(fn func(float64) float64) *NdArray {
	out := a.Clone()
	Apply(out, fn)
	return out
}

// Exp returns e raised to each element.
func (a *NdArray) Exp() *NdArray { return a.unary(mathExp) }

// Log returns the natural logarithm of each element.
func (a *NdArray) Log() *NdArray { return a.unary(math.Log) }

// Sqrt returns the non-negative square root of each element.
func (a *NdArray) Sqrt() *NdArray { return a.unary(math.Sqrt) }

// Abs returns the absolute value of each element.
func (a *NdArray) Abs() *NdArray { return a.unary(math.Abs) }

// Sin returns the sine of each element.
func (a *NdArray) Sin() *NdArray { return a.unary(math.Sin) }

// Cos returns the cosine of each element.
func (a *NdArray) Cos() *NdArray { return a.unary(math.Cos) }

// Tan returns the tangent of each element.
func (a *NdArray) Tan() *NdArray { return a.unary(math.Tan) }

// Arcsin returns the inverse sine of each element.
func (a *NdArray) Arcsin() *NdArray { return a.unary(math.Asin) }

// Arccos returns the inverse cosine of each element.
func (a *NdArray) Arccos() *NdArray { return a.unary(math.Acos) }

// Arctan returns the inverse tangent of each element.
func (a *NdArray) Arctan() *NdArray { return a.unary(math.Atan) }

// Negative returns -x for each element.
func (a *NdArray) Negative() *NdArray {
	return a.unary(func(v float64) float64 { return -v })
}

// Round rounds each element to the nearest integer, halves toward +Inf.
func (a *NdArray) Round() *NdArray { return a.unary(roundHalfUp) }

// RoundInPlace rounds a's buffer and returns a.
func (a *NdArray) RoundInPlace() *NdArray {
	Apply(a, roundHalfUp)
	return a
}

func roundHalfUp(v float64) float64 { return math.Floor(v + 0.5) }

// Tanh returns the hyperbolic tangent of each element.
func (a *NdArray) Tanh() *NdArray {
	return a.unary(func(v float64) float64 {
		if v > 20 {
			return 1
		}
		if v < -20 {
			return -1
		}
		e := mathExp(2 * v)
		return (e - 1) / (e + 1)
	})
}

// Sigmoid returns 1/(1+exp(-t*x)) for each element, saturating to 0 and 1
// outside [-30, 30]. A zero t means 1.
func (a *NdArray) Sigmoid(t float64) *NdArray {
	if t == 0 {
		t = 1
	}
	return a.unary(func(v float64) float64 {
		switch {
		case v < -30:
			return 0
		case v > 30:
			return 1
		default:
			return 1 / (1 + mathExp(-t*v))
		}
	})
}

// Clip limits each element to [lo, hi].
func (a *NdArray) Clip(lo, hi float64) *NdArray {
	return a.unary(func(v float64) float64 {
		return math.Min(math.Max(lo, v), hi)
	})
}

// LeakyRelu returns max(alpha*x, x) for each element. A zero alpha means 1e-3.
func (a *NdArray) LeakyRelu(alpha float64) *NdArray {
	if alpha == 0 {
		alpha = 1e-3
	}
	return a.unary(func(v float64) float64 {
		return math.Max(alpha*v, v)
	})
}

// Softmax returns exp(x)/Σexp(x) over all elements.
func (a *NdArray) Softmax() *NdArray {
	e := a.Exp()
	return e.DivideScalarInPlace(e.Sum())
}
