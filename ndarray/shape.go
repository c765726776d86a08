package ndarray

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/labelarray/errs"
)

// Shape is the extent of each axis of an array, outermost axis first.
// A nil or empty Shape describes a zero-dimensional (scalar) array.
type Shape []int

// Size returns the number of elements described by the shape.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// NDim returns the number of axes.
func (s Shape) NDim() int {
	return len(s)
}

// Equal reports whether both shapes have the same axes.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return Shape{}
	}

	return slices.Clone(s)
}

// String formats the shape like a tuple, e.g. "(2, 3)" or "(5,)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (s Shape) validate() error {
	for i, d := range s {
		if d < 0 {
			return fmt.Errorf("%w: axis %d has negative extent %d", errs.ErrInvalidDimension, i, d)
		}
	}

	return nil
}

// contiguousStrides returns row-major element strides for the shape.
func contiguousStrides(s Shape) []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}

	return strides
}

// BroadcastShapes returns the shape two operands broadcast to.
//
// Axes are aligned from the right; each pair must be equal or contain a 1.
// Incompatible shapes yield errs.ErrShapeMismatch.
func BroadcastShapes(a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	out := make(Shape, n)
	for i := 1; i <= n; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}

		switch {
		case da == db:
			out[n-i] = da
		case da == 1:
			out[n-i] = db
		case db == 1:
			out[n-i] = da
		default:
			return nil, fmt.Errorf("%w: operands could not be broadcast together with shapes %s %s",
				errs.ErrShapeMismatch, a, b)
		}
	}

	return out, nil
}
