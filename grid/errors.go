package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDim reports a dimension name absent from the array.
	ErrUnknownDim = errors.New("grid: unknown dimension")
	// ErrDuplicateDim reports a dimension name used more than once.
	ErrDuplicateDim = errors.New("grid: duplicate dimension")
	// ErrShapeMismatch reports a shape that does not fit the data or dims.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
	// ErrDimMismatch reports arrays whose dimensions do not line up.
	ErrDimMismatch = errors.New("grid: dimension mismatch")
	// ErrBadIndex reports an index or range outside the axis.
	ErrBadIndex = errors.New("grid: index out of range")
)

func validateDims(dims []string, shape []int) error {
	if len(dims) != len(shape) {
		return fmt.Errorf("%w: %d dims for %d axes", ErrShapeMismatch, len(dims), len(shape))
	}
	seen := make(map[string]struct{}, len(dims))
	for i, d := range dims {
		if d == "" {
			return fmt.Errorf("%w: empty name at axis %d", ErrUnknownDim, i)
		}
		if _, ok := seen[d]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateDim, d)
		}
		seen[d] = struct{}{}
		if shape[i] < 0 {
			return fmt.Errorf("%w: negative length %d for %q", ErrShapeMismatch, shape[i], d)
		}
	}
	return nil
}
