package images

import (
	"fmt"

	"github.com/cwbudde/algo-nd/nd"
)

// RawData packs img into a row-major interleaved byte buffer of
// H*W*K values. Values are converted like a Uint8 store.
func RawData(img *nd.NdArray) ([]uint8, error) {
	k, err := channels(img)
	if err != nil {
		return nil, err
	}
	if k != 1 && k != 3 && k != 4 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidImage, k)
	}
	return toBytes(img.AsType(nd.Uint8).Data()), nil
}

// RGBA packs img into a row-major RGBA byte buffer of H*W*4 values as
// expected by canvas-like consumers. Gray pixels are replicated into
// R, G and B; missing alpha is 255.
func RGBA(img *nd.NdArray) ([]uint8, error) {
	k, err := channels(img)
	if err != nil {
		return nil, err
	}
	if k != 1 && k != 3 && k != 4 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidImage, k)
	}
	src := toBytes(img.AsType(nd.Uint8).Data())
	n := len(src) / k
	out := make([]uint8, 0, n*4)
	for p := range n {
		px := src[p*k : (p+1)*k]
		switch k {
		case 1:
			out = append(out, px[0], px[0], px[0], 255)
		case 3:
			out = append(out, px[0], px[1], px[2], 255)
		default:
			out = append(out, px...)
		}
	}
	return out, nil
}

// FromRaw wraps an interleaved pixel buffer as an (H, W, K) Uint8 image,
// or (H, W) when k is 1. The array shares data.
func FromRaw(data []uint8, h, w, k int) (*nd.NdArray, error) {
	if k == 1 {
		return nd.FromSlice(data, h, w)
	}
	if k != 3 && k != 4 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidImage, k)
	}
	return nd.FromSlice(data, h, w, k)
}

func toBytes(v []float64) []uint8 {
	out := make([]uint8, len(v))
	for i, x := range v {
		out[i] = uint8(x)
	}
	return out
}
