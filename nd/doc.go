// Package nd implements typed N-dimensional arrays as strided views over
// shared buffers.
//
// An NdArray is a (shape, stride, offset) descriptor over a Buffer. View
// operations such as Pick, Lo, Hi, Step, Slice, Transpose and most
// Reshape calls return new descriptors over the same Buffer, so writes
// through one view are visible through the others. Operations that cannot
// be expressed by strides copy.
//
// Arithmetic and math come in copying and InPlace forms. Convolve and
// FFTConvolve compute "valid" N-dimensional convolutions; small 2-D
// filters run as direct stencils, everything else in the frequency domain.
//
// Views and buffers are not safe for concurrent mutation.
package nd
