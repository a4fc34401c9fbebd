// Package grid provides a labeled multi-dimensional float64 array.
//
// An [Array] addresses its axes by name rather than by position, so
// callers can slice, concatenate, and run windowed reductions along an
// axis without tracking where that axis currently sits in memory.
// Values are stored row-major in a flat []float64; whole-array
// arithmetic goes through SIMD-optimized block kernels.
//
// All axis operations return a new Array and leave the receiver
// untouched. Negative indexes count from the end of the axis where the
// method documents it.
package grid
