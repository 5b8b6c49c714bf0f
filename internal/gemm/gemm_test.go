package gemm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float64
		m, k, n int
		want    []float64
	}{
		{
			name: "2x3 times 3x2",
			a:    []float64{1, 2, 3, 4, 5, 6},
			b:    []float64{7, 8, 9, 10, 11, 12},
			m:    2, k: 3, n: 2,
			want: []float64{58, 64, 139, 154},
		},
		{
			name: "row times column",
			a:    []float64{1, 2, 3},
			b:    []float64{4, 5, 6},
			m:    1, k: 3, n: 1,
			want: []float64{32},
		},
		{
			name: "column times row",
			a:    []float64{1, 2},
			b:    []float64{3, 4},
			m:    2, k: 1, n: 2,
			want: []float64{3, 4, 6, 8},
		},
		{
			name: "empty inner dimension",
			a:    nil,
			b:    nil,
			m:    2, k: 0, n: 2,
			want: []float64{0, 0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := make([]float64, tt.m*tt.n)
			for i := range c {
				c[i] = -1
			}
			require.NoError(t, Mul(c, tt.a, tt.b, tt.m, tt.k, tt.n))
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestMulDimensionMismatch(t *testing.T) {
	err := Mul(make([]float64, 4), make([]float64, 6), make([]float64, 5), 2, 3, 2)
	if !errors.Is(err, ErrDims) {
		t.Fatalf("err = %v, want ErrDims", err)
	}
}

func BenchmarkMul64(b *testing.B) {
	const n = 64
	a := make([]float64, n*n)
	bb := make([]float64, n*n)
	c := make([]float64, n*n)
	for i := range a {
		a[i] = float64(i % 7)
		bb[i] = float64(i % 5)
	}
	for b.Loop() {
		_ = Mul(c, a, bb, n, n, n)
	}
}
