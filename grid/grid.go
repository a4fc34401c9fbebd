package grid

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Array is a labeled N-dimensional float64 array stored row-major.
// The zero value is not usable; construct with [New] or [FromValues].
type Array struct {
	dims  []string
	shape []int
	data  []float64
}

// New returns a zero-filled Array with the given axis names and lengths.
// Axis names must be unique and non-empty.
func New(dims []string, shape []int) (*Array, error) {
	if err := validateDims(dims, shape); err != nil {
		return nil, err
	}
	size := 1
	for _, n := range shape {
		size *= n
	}
	return &Array{
		dims:  slices.Clone(dims),
		shape: slices.Clone(shape),
		data:  make([]float64, size),
	}, nil
}

// FromValues returns an Array wrapping a copy of values, which must have
// exactly product(shape) elements laid out row-major in dims order.
func FromValues(dims []string, shape []int, values []float64) (*Array, error) {
	a, err := New(dims, shape)
	if err != nil {
		return nil, err
	}
	if len(values) != len(a.data) {
		return nil, fmt.Errorf("%w: %d values for size %d", ErrShapeMismatch, len(values), len(a.data))
	}
	copy(a.data, values)
	return a, nil
}

// Scalar returns a zero-dimensional Array holding a single value.
func Scalar(v float64) *Array {
	return &Array{data: []float64{v}}
}

// Dims returns the axis names in storage order.
func (a *Array) Dims() []string {
	return slices.Clone(a.dims)
}

// Shape returns the axis lengths in storage order.
func (a *Array) Shape() []int {
	return slices.Clone(a.shape)
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return len(a.dims)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// HasDim reports whether the array has an axis with the given name.
func (a *Array) HasDim(dim string) bool {
	return slices.Contains(a.dims, dim)
}

// Len returns the length of the named axis.
func (a *Array) Len(dim string) (int, error) {
	k, err := a.axis(dim)
	if err != nil {
		return 0, err
	}
	return a.shape[k], nil
}

// Data returns the underlying storage without copying.
// Mutations through the slice are visible in the Array and vice versa.
func (a *Array) Data() []float64 {
	return a.data
}

// Values returns a copy of the underlying storage.
func (a *Array) Values() []float64 {
	return slices.Clone(a.data)
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{
		dims:  slices.Clone(a.dims),
		shape: slices.Clone(a.shape),
		data:  slices.Clone(a.data),
	}
}

// At returns the element at the given positional index, one per axis.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, err
	}
	return a.data[off], nil
}

// Set stores v at the given positional index, one per axis.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return err
	}
	a.data[off] = v
	return nil
}

// Fill sets every element to v.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Scale multiplies every element by f in place.
func (a *Array) Scale(f float64) {
	vecmath.ScaleBlockInPlace(a.data, f)
}

// Add accumulates b into a element-wise. Both arrays must have the same
// dims and shape.
func (a *Array) Add(b *Array) error {
	if err := a.sameLayout(b); err != nil {
		return err
	}
	vecmath.AddBlockInPlace(a.data, b.data)
	return nil
}

// MaxAbs returns the largest absolute element value, or 0 for an empty
// array.
func (a *Array) MaxAbs() float64 {
	return vecmath.MaxAbs(a.data)
}

// AllClose reports whether b has the same dims and shape and every
// element pair agrees within tol. NaN compares equal to NaN.
func (a *Array) AllClose(b *Array, tol float64) bool {
	if a.sameLayout(b) != nil {
		return false
	}
	for i, v := range a.data {
		w := b.data[i]
		if math.IsNaN(v) && math.IsNaN(w) {
			continue
		}
		if math.IsNaN(v) != math.IsNaN(w) {
			return false
		}
		if math.Abs(v-w) > tol {
			return false
		}
	}
	return true
}

// Transpose returns a new Array with axes reordered to the given names,
// which must be a permutation of the array's dims.
func (a *Array) Transpose(dims ...string) (*Array, error) {
	if len(dims) != len(a.dims) {
		return nil, fmt.Errorf("%w: %d names for %d axes", ErrDimMismatch, len(dims), len(a.dims))
	}
	perm := make([]int, len(dims))
	used := make([]bool, len(dims))
	for i, d := range dims {
		k, err := a.axis(d)
		if err != nil {
			return nil, err
		}
		if used[k] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDim, d)
		}
		used[k] = true
		perm[i] = k
	}

	shape := make([]int, len(perm))
	for i, k := range perm {
		shape[i] = a.shape[k]
	}
	out := &Array{
		dims:  slices.Clone(dims),
		shape: shape,
		data:  make([]float64, len(a.data)),
	}

	srcStrides := rowMajorStrides(a.shape)
	coords := make([]int, len(shape))
	for di := range out.data {
		si := 0
		for i, c := range coords {
			si += c * srcStrides[perm[i]]
		}
		out.data[di] = a.data[si]

		// Advance the row-major counter over the output shape.
		for i := len(coords) - 1; i >= 0; i-- {
			coords[i]++
			if coords[i] < shape[i] {
				break
			}
			coords[i] = 0
		}
	}
	return out, nil
}

// axis returns the storage position of the named axis.
func (a *Array) axis(dim string) (int, error) {
	for k, d := range a.dims {
		if d == dim {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (have %v)", ErrUnknownDim, dim, a.dims)
}

// lane decomposes the layout around axis k: the array is viewed as
// outer blocks of n slices, each slice inner elements wide.
func (a *Array) lane(k int) (outer, n, inner int) {
	outer, inner = 1, 1
	for i := 0; i < k; i++ {
		outer *= a.shape[i]
	}
	for i := k + 1; i < len(a.shape); i++ {
		inner *= a.shape[i]
	}
	return outer, a.shape[k], inner
}

func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indexes for %d axes", ErrBadIndex, len(idx), len(a.shape))
	}
	off := 0
	for i, c := range idx {
		if c < 0 || c >= a.shape[i] {
			return 0, fmt.Errorf("%w: %d on axis %q of length %d", ErrBadIndex, c, a.dims[i], a.shape[i])
		}
		off = off*a.shape[i] + c
	}
	return off, nil
}

func (a *Array) sameLayout(b *Array) error {
	if !slices.Equal(a.dims, b.dims) {
		return fmt.Errorf("%w: %v vs %v", ErrDimMismatch, a.dims, b.dims)
	}
	if !slices.Equal(a.shape, b.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	return nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}
	return strides
}

// normIndex maps a possibly negative index onto [0, n).
func normIndex(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, fmt.Errorf("%w: %d on axis of length %d", ErrBadIndex, i, n)
	}
	return j, nil
}
