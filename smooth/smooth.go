package smooth

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-grid/grid"
)

var (
	// ErrInvalidAxis reports a smoothing or periodic axis absent from
	// the array.
	ErrInvalidAxis = errors.New("smooth: invalid axis")
	// ErrInvalidPassCount reports a negative pass count.
	ErrInvalidPassCount = errors.New("smooth: pass count must be >= 0")
)

// Smooth121 applies the 1-2-1 stencil along each named axis in order,
// repeating the whole sweep cfg.Passes times, and returns a new array
// with the input's shape and axis order. The input is never mutated.
//
// Axes listed in WithPeriodic wrap around at the boundary; all other
// axes replicate their edge value, so the edge output is
// (3*edge + neighbor)/4. A pass count of zero returns a copy of the
// input unchanged.
func Smooth121(v *grid.Array, dims []string, opts ...Option) (*grid.Array, error) {
	cfg := applyOptions(opts)
	if cfg.Passes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPassCount, cfg.Passes)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: no axes given", ErrInvalidAxis)
	}
	for _, dim := range dims {
		if !v.HasDim(dim) {
			return nil, fmt.Errorf("%w: %q not in %v", ErrInvalidAxis, dim, v.Dims())
		}
	}
	for _, dim := range cfg.Periodic {
		if !v.HasDim(dim) {
			return nil, fmt.Errorf("%w: periodic %q not in %v", ErrInvalidAxis, dim, v.Dims())
		}
	}

	origDims := v.Dims()
	out := v.Clone()
	for pass := 0; pass < cfg.Passes; pass++ {
		for _, dim := range dims {
			var err error
			out, err = SmoothAxis(out, dim, slices.Contains(cfg.Periodic, dim))
			if err != nil {
				return nil, err
			}
		}
	}
	return out.Transpose(origDims...)
}

// SmoothAxis applies one 1-2-1 pass along a single named axis and
// returns a new array of the same shape.
//
// The axis is padded by one slice on each end (wrapped if periodic,
// edge-replicated otherwise), then averaged from centers to edges and
// back with two 2-point running means; shifting the result back by one
// and dropping the pad leaves the original length.
func SmoothAxis(v *grid.Array, dim string, periodic bool) (*grid.Array, error) {
	first, err := v.Isel(dim, 0)
	if err != nil {
		if errors.Is(err, grid.ErrUnknownDim) {
			return nil, fmt.Errorf("%w: %q not in %v", ErrInvalidAxis, dim, v.Dims())
		}
		return nil, err
	}
	last, err := v.Isel(dim, -1)
	if err != nil {
		return nil, err
	}

	var pad *grid.Array
	if periodic {
		pad, err = grid.Concat(dim, last, v, first)
	} else {
		pad, err = grid.Concat(dim, first, v, last)
	}
	if err != nil {
		return nil, err
	}

	// Average from centers to edges, then back to centers.
	sm, err := pad.RollingMean(dim, 2)
	if err != nil {
		return nil, err
	}
	sm, err = sm.RollingMean(dim, 2)
	if err != nil {
		return nil, err
	}
	sm, err = sm.Shift(dim, -1)
	if err != nil {
		return nil, err
	}
	return sm.Slice(dim, 1, -1)
}
