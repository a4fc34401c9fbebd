package grid

import (
	"fmt"
	"math"
	"slices"
)

// Isel selects index i along the named axis and returns a new Array
// without that axis. Negative i counts from the end.
func (a *Array) Isel(dim string, i int) (*Array, error) {
	k, err := a.axis(dim)
	if err != nil {
		return nil, err
	}
	idx, err := normIndex(i, a.shape[k])
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", dim, err)
	}

	outer, n, inner := a.lane(k)
	out := &Array{
		dims:  slices.Delete(a.Dims(), k, k+1),
		shape: slices.Delete(a.Shape(), k, k+1),
		data:  make([]float64, outer*inner),
	}
	for o := 0; o < outer; o++ {
		src := (o*n + idx) * inner
		copy(out.data[o*inner:(o+1)*inner], a.data[src:src+inner])
	}
	return out, nil
}

// Slice returns the half-open range [start, stop) along the named axis.
// Negative bounds count from the end, so Slice(dim, 1, -1) drops one
// element from each side.
func (a *Array) Slice(dim string, start, stop int) (*Array, error) {
	k, err := a.axis(dim)
	if err != nil {
		return nil, err
	}
	n := a.shape[k]
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 || stop > n || start > stop {
		return nil, fmt.Errorf("%w: [%d, %d) on axis %q of length %d", ErrBadIndex, start, stop, dim, n)
	}

	outer, _, inner := a.lane(k)
	m := stop - start
	shape := a.Shape()
	shape[k] = m
	out := &Array{
		dims:  a.Dims(),
		shape: shape,
		data:  make([]float64, outer*m*inner),
	}
	for o := 0; o < outer; o++ {
		src := (o*n + start) * inner
		dst := o * m * inner
		copy(out.data[dst:dst+m*inner], a.data[src:src+m*inner])
	}
	return out, nil
}

// Shift moves values by n positions along the named axis, filling the
// vacated positions with NaN. Positive n shifts toward higher indexes.
func (a *Array) Shift(dim string, n int) (*Array, error) {
	k, err := a.axis(dim)
	if err != nil {
		return nil, err
	}

	outer, length, inner := a.lane(k)
	out := a.Clone()
	for o := 0; o < outer; o++ {
		base := o * length * inner
		for i := 0; i < length; i++ {
			src := i - n
			dst := base + i*inner
			if src < 0 || src >= length {
				for j := 0; j < inner; j++ {
					out.data[dst+j] = math.NaN()
				}
				continue
			}
			copy(out.data[dst:dst+inner], a.data[base+src*inner:base+src*inner+inner])
		}
	}
	return out, nil
}

// RollingMean computes a trailing mean of the given window size along
// the named axis. The first window-1 positions have no complete window
// and are NaN; a NaN anywhere inside a window makes that output NaN.
func (a *Array) RollingMean(dim string, window int) (*Array, error) {
	k, err := a.axis(dim)
	if err != nil {
		return nil, err
	}
	if window < 1 {
		return nil, fmt.Errorf("%w: window %d", ErrBadIndex, window)
	}

	outer, n, inner := a.lane(k)
	out := a.Clone()
	inv := 1 / float64(window)
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for i := 0; i < n; i++ {
			dst := base + i*inner
			if i < window-1 {
				for j := 0; j < inner; j++ {
					out.data[dst+j] = math.NaN()
				}
				continue
			}
			for j := 0; j < inner; j++ {
				sum := 0.0
				for t := i - window + 1; t <= i; t++ {
					sum += a.data[base+t*inner+j]
				}
				out.data[dst+j] = sum * inv
			}
		}
	}
	return out, nil
}

// Concat concatenates arrays along the named axis. At least one input
// must carry the axis; inputs without it count as length 1, which
// restores slices produced by [Array.Isel]. All inputs must otherwise
// share the same dims, order, and lengths.
func Concat(dim string, arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("%w: no arrays to concatenate", ErrDimMismatch)
	}

	var ref *Array
	for _, src := range arrays {
		if src.HasDim(dim) {
			ref = src
			break
		}
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: %q on no input", ErrUnknownDim, dim)
	}
	k, _ := ref.axis(dim)
	reducedDims := slices.Delete(ref.Dims(), k, k+1)
	reducedShape := slices.Delete(ref.Shape(), k, k+1)

	total := 0
	for _, src := range arrays {
		m, err := concatLen(src, dim, k, reducedDims, reducedShape)
		if err != nil {
			return nil, err
		}
		total += m
	}

	outer, _, inner := ref.lane(k)
	shape := ref.Shape()
	shape[k] = total
	out := &Array{
		dims:  ref.Dims(),
		shape: shape,
		data:  make([]float64, outer*total*inner),
	}

	pos := 0
	for _, src := range arrays {
		m, _ := concatLen(src, dim, k, reducedDims, reducedShape)
		for o := 0; o < outer; o++ {
			dst := (o*total + pos) * inner
			s := o * m * inner
			copy(out.data[dst:dst+m*inner], src.data[s:s+m*inner])
		}
		pos += m
	}
	return out, nil
}

// concatLen validates src against the reference layout and returns its
// length along the concat axis (1 when the axis is absent).
func concatLen(src *Array, dim string, k int, reducedDims []string, reducedShape []int) (int, error) {
	if !src.HasDim(dim) {
		if !slices.Equal(src.dims, reducedDims) || !slices.Equal(src.shape, reducedShape) {
			return 0, fmt.Errorf("%w: %v%v does not fit concat along %q", ErrDimMismatch, src.dims, src.shape, dim)
		}
		return 1, nil
	}
	sk, _ := src.axis(dim)
	if sk != k ||
		!slices.Equal(slices.Delete(src.Dims(), sk, sk+1), reducedDims) ||
		!slices.Equal(slices.Delete(src.Shape(), sk, sk+1), reducedShape) {
		return 0, fmt.Errorf("%w: %v%v does not fit concat along %q", ErrDimMismatch, src.dims, src.shape, dim)
	}
	return src.shape[sk], nil
}
