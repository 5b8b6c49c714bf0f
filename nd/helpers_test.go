package nd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// arange returns Arange(n) reshaped to shape.
func arange(t testing.TB, n int, shape ...int) *NdArray {
	t.Helper()
	a := Arange(n)
	if len(shape) == 0 {
		return a
	}
	r, err := a.Reshape(shape...)
	require.NoError(t, err)
	return r
}

func rows(r ...[]float64) []any {
	out := make([]any, len(r))
	for i, v := range r {
		out[i] = v
	}
	return out
}
