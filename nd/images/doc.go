// Package images provides image-processing helpers built on nd arrays.
//
// Images are (H, W) grayscale arrays or (H, W, K) arrays with K color
// channels (1, 3 for RGB, 4 for RGBA). Decoding and encoding image files
// is left to the caller; RawData and FromRaw convert between arrays and
// interleaved pixel buffers.
package images
