package nd

// Broadcast returns the shape produced by combining arrays of shapes a and
// b under right-aligned broadcasting. Missing or size-1 axes stretch to the
// other side; the second result is false when the shapes are incompatible
// or either is empty.
func Broadcast(a, b []int) ([]int, bool) {
	if len(a) == 0 || len(b) == 0 {
		return nil, false
	}
	n := max(len(a), len(b))
	out := make([]int, n)
	for i := 0; i < n; i++ {
		da, db := 1, 1
		if k := len(a) - 1 - i; k >= 0 {
			da = a[k]
		}
		if k := len(b) - 1 - i; k >= 0 {
			db = b[k]
		}
		switch {
		case da == 1:
			out[n-1-i] = db
		case db == 1:
			out[n-1-i] = da
		case da == db:
			out[n-1-i] = da
		default:
			return nil, false
		}
	}
	return out, true
}
