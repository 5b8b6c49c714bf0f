package nd

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// String renders the array as array([...], dtype=...) using the package
// Config for summarization and precision.
func (a *NdArray) String() string {
	cfg := CurrentConfig()
	f := formatter{a: a, cfg: cfg}
	a.each(func(p int) {
		f.width = max(f.width, len(f.number(a.buf.At(p))))
	})

	var sb strings.Builder
	sb.WriteString("array(")
	f.axis(&sb, 0, a.offset, len("array("))
	if a.DType() != Generic {
		sb.WriteString(", dtype=")
		sb.WriteString(a.DType().String())
	}
	sb.WriteString(")")
	return sb.String()
}

// LogValue reports shape and dtype so arrays can be passed to slog directly.
func (a *NdArray) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dtype", a.DType().String()),
		slog.Any("shape", a.shape),
	)
}

type formatter struct {
	a     *NdArray
	cfg   Config
	width int
}

func (f *formatter) number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	scale := math.Pow(10, float64(f.cfg.Precision))
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// entries lists the indices printed along an axis of length n; -1 marks
// the elided middle.
func (f *formatter) entries(n int) []int {
	th := f.cfg.PrintThreshold
	out := make([]int, 0, min(n, th+1))
	if n <= th {
		for i := range n {
			out = append(out, i)
		}
		return out
	}
	half := th / 2
	for i := range half {
		out = append(out, i)
	}
	out = append(out, -1)
	for i := n - half; i < n; i++ {
		out = append(out, i)
	}
	return out
}

func (f *formatter) axis(sb *strings.Builder, axis, p, indent int) {
	a := f.a
	last := axis == len(a.shape)-1
	sb.WriteByte('[')
	for k, i := range f.entries(a.shape[axis]) {
		if k > 0 {
			if last {
				sb.WriteString(", ")
			} else {
				sb.WriteString(",\n")
				sb.WriteString(strings.Repeat(" ", indent+axis+1))
			}
		}
		if i < 0 {
			sb.WriteString("...")
			continue
		}
		q := p + i*a.stride[axis]
		if last {
			s := f.number(a.buf.At(q))
			sb.WriteString(strings.Repeat(" ", f.width-len(s)))
			sb.WriteString(s)
			continue
		}
		f.axis(sb, axis+1, q, indent)
	}
	sb.WriteByte(']')
}
