package images

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-nd/nd"
)

// ErrInvalidImage is returned for arrays that are not (H, W) or (H, W, K)
// images with a supported channel count.
var ErrInvalidImage = errors.New("images: invalid image")

// channels returns the channel count of img, validating its rank.
func channels(img *nd.NdArray) (int, error) {
	shape := img.Shape()
	switch len(shape) {
	case 2:
		return 1, nil
	case 3:
		return shape[2], nil
	default:
		return 0, fmt.Errorf("%w: shape %v", ErrInvalidImage, shape)
	}
}

// RGB2Gray converts an RGB or RGBA image to an (H, W) Uint8 luma image
// using fixed-point BT.601 weights. Grayscale input is returned as an
// (H, W) view without conversion.
func RGB2Gray(img *nd.NdArray) (*nd.NdArray, error) {
	k, err := channels(img)
	if err != nil {
		return nil, err
	}
	switch {
	case img.NDim() == 2:
		return img, nil
	case k == 1:
		return img.Pick(nd.All, nd.All, 0)
	case k < 3:
		return nil, fmt.Errorf("%w: cannot convert %d channels to gray", ErrInvalidImage, k)
	}

	shape := img.Shape()
	out := nd.Zeros(shape[:2], nd.Uint8)
	r, _ := img.Pick(nd.All, nd.All, 0)
	g, _ := img.Pick(nd.All, nd.All, 1)
	b, _ := img.Pick(nd.All, nd.All, 2)
	err = nd.Apply4(out, r, g, b, func(_, r, g, b float64) float64 {
		return float64((int64(r)*4899 + int64(g)*9617 + int64(b)*1868 + 8192) >> 14)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IsGrayscale reports whether img holds gray pixels: a 2-D image, a single
// channel image, or an RGB(A) image whose R, G and B planes are equal.
func IsGrayscale(img *nd.NdArray) bool {
	shape := img.Shape()
	switch {
	case len(shape) == 2:
		return true
	case len(shape) != 3:
		return false
	case shape[2] == 1:
		return true
	case shape[2] != 3 && shape[2] != 4:
		return false
	}
	r, _ := img.Pick(nd.All, nd.All, 0)
	g, _ := img.Pick(nd.All, nd.All, 1)
	b, _ := img.Pick(nd.All, nd.All, 2)
	return r.Equal(g) && g.Equal(b)
}

// Flip mirrors img horizontally. The result is a view.
func Flip(img *nd.NdArray) *nd.NdArray {
	return img.Step(nd.All, -1)
}
