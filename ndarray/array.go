package ndarray

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/arloliu/labelarray/errs"
)

// Array is a strided N-dimensional view over a flat buffer.
//
// Arrays are values: copying an Array copies the view, not the elements.
// Views produced by Index, Reshape or BroadcastTo share the buffer of their
// source, so writes through one are visible through the others. The buffer
// is not synchronized; concurrent writers to overlapping regions must
// coordinate externally.
type Array[T any] struct {
	data    []T
	shape   Shape
	strides []int
	offset  int
}

// New wraps data as an array of the given shape without copying.
//
// When no shape is given the result is one-dimensional. The buffer length
// must equal the shape size.
func New[T any](data []T, shape ...int) (Array[T], error) {
	s := Shape(shape)
	if len(shape) == 0 {
		s = Shape{len(data)}
	}
	if err := s.validate(); err != nil {
		return Array[T]{}, err
	}
	if s.Size() != len(data) {
		return Array[T]{}, fmt.Errorf("%w: cannot shape %d elements into %s", errs.ErrShapeMismatch, len(data), s)
	}

	return Array[T]{data: data, shape: s.Clone(), strides: contiguousStrides(s)}, nil
}

// MustNew is like New but panics on error. It is intended for literals in
// tests and examples.
func MustNew[T any](data []T, shape ...int) Array[T] {
	a, err := New(data, shape...)
	if err != nil {
		panic(err)
	}

	return a
}

// Filled returns a new contiguous array of the given shape with every element set to value.
func Filled[T any](value T, shape ...int) Array[T] {
	s := Shape(shape).Clone()
	data := make([]T, s.Size())
	for i := range data {
		data[i] = value
	}

	return Array[T]{data: data, shape: s, strides: contiguousStrides(s)}
}

// Zeros returns a new contiguous array of the given shape holding zero values.
func Zeros[T any](shape ...int) Array[T] {
	s := Shape(shape).Clone()

	return Array[T]{data: make([]T, s.Size()), shape: s, strides: contiguousStrides(s)}
}

// Shape returns a copy of the array shape.
func (a Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// NDim returns the number of axes.
func (a Array[T]) NDim() int {
	return len(a.shape)
}

// Size returns the number of elements. The zero Array has no elements.
func (a Array[T]) Size() int {
	if a.shape == nil {
		return 0
	}

	return a.shape.Size()
}

// IsZero reports whether a is the zero Array rather than a constructed one.
func (a Array[T]) IsZero() bool {
	return a.shape == nil
}

// Len returns the extent of the outermost axis, or 0 for a scalar array.
func (a Array[T]) Len() int {
	if len(a.shape) == 0 {
		return 0
	}

	return a.shape[0]
}

// IsContiguous reports whether the elements are laid out densely in row-major order.
func (a Array[T]) IsContiguous() bool {
	want := contiguousStrides(a.shape)
	for i, d := range a.shape {
		if d > 1 && a.strides[i] != want[i] {
			return false
		}
	}

	return true
}

// SharesBuffer reports whether both arrays are views of the same buffer.
func (a Array[T]) SharesBuffer(other Array[T]) bool {
	if cap(a.data) == 0 || cap(other.data) == 0 {
		return false
	}

	return unsafe.SliceData(a.data) == unsafe.SliceData(other.data)
}

func (a Array[T]) flatOffset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: got %d indices for array of dimension %d", errs.ErrInvalidSelector, len(idx), len(a.shape))
	}

	off := a.offset
	for axis, i := range idx {
		pos, err := At(i).resolveIndex(axis, a.shape[axis])
		if err != nil {
			return 0, err
		}
		off += pos * a.strides[axis]
	}

	return off, nil
}

// Get returns the element at the given position, one index per axis.
func (a Array[T]) Get(idx ...int) (T, error) {
	off, err := a.flatOffset(idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[off], nil
}

// Put stores value at the given position, one index per axis.
func (a Array[T]) Put(value T, idx ...int) error {
	off, err := a.flatOffset(idx)
	if err != nil {
		return err
	}
	a.data[off] = value

	return nil
}

// Index returns the view selected by sel.
//
// Each selector applies to the next leading axis. Axes beyond the selectors
// are kept whole. Integer selectors drop their axis, so selecting every axis
// with At yields a zero-dimensional array.
func (a Array[T]) Index(sel ...Selector) (Array[T], error) {
	if a.shape == nil {
		return Array[T]{}, nil
	}
	if len(sel) > len(a.shape) {
		return Array[T]{}, fmt.Errorf("%w: too many indices: array is %d-dimensional, but %d were given",
			errs.ErrInvalidSelector, len(a.shape), len(sel))
	}

	shape := make(Shape, 0, len(a.shape))
	strides := make([]int, 0, len(a.shape))
	offset := a.offset

	for axis, dim := range a.shape {
		if axis >= len(sel) {
			shape = append(shape, dim)
			strides = append(strides, a.strides[axis])
			continue
		}

		s := sel[axis]
		if s.IsIndex() {
			pos, err := s.resolveIndex(axis, dim)
			if err != nil {
				return Array[T]{}, err
			}
			offset += pos * a.strides[axis]
			continue
		}

		first, length, step, err := s.resolveSlice(axis, dim)
		if err != nil {
			return Array[T]{}, err
		}
		if length > 0 {
			offset += first * a.strides[axis]
		}
		shape = append(shape, length)
		strides = append(strides, a.strides[axis]*step)
	}

	return Array[T]{data: a.data, shape: shape, strides: strides, offset: offset}, nil
}

// Reshape returns an array with the same elements in a new shape.
//
// The result is a view when the source is contiguous and a copy otherwise.
// A single -1 extent is inferred from the remaining ones.
func (a Array[T]) Reshape(shape ...int) (Array[T], error) {
	s, err := inferShape(Shape(shape), a.Size())
	if err != nil {
		return Array[T]{}, err
	}

	src := a
	if !a.IsContiguous() {
		src = a.Clone()
	}

	return Array[T]{data: src.data, shape: s, strides: contiguousStrides(s), offset: src.offset}, nil
}

func inferShape(s Shape, size int) (Shape, error) {
	s = s.Clone()
	unknown := -1
	known := 1
	for i, d := range s {
		switch {
		case d == -1 && unknown < 0:
			unknown = i
		case d < 0:
			return nil, fmt.Errorf("%w: invalid extent %d in shape %s", errs.ErrInvalidDimension, d, s)
		default:
			known *= d
		}
	}

	if unknown >= 0 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("%w: cannot reshape array of size %d into shape %s", errs.ErrShapeMismatch, size, s)
		}
		s[unknown] = size / known
	}
	if s.Size() != size {
		return nil, fmt.Errorf("%w: cannot reshape array of size %d into shape %s", errs.ErrShapeMismatch, size, s)
	}

	return s, nil
}

// BroadcastTo returns a read-oriented view of a with the given shape.
//
// Broadcast axes have a zero stride, so writing through the result writes
// the same source element several times.
func (a Array[T]) BroadcastTo(shape Shape) (Array[T], error) {
	if len(shape) < len(a.shape) {
		return Array[T]{}, fmt.Errorf("%w: cannot broadcast shape %s to %s", errs.ErrShapeMismatch, a.shape, shape)
	}

	lead := len(shape) - len(a.shape)
	strides := make([]int, len(shape))
	for i := range shape {
		if i < lead {
			continue
		}

		src := a.shape[i-lead]
		switch {
		case src == shape[i]:
			strides[i] = a.strides[i-lead]
		case src == 1:
			strides[i] = 0
		default:
			return Array[T]{}, fmt.Errorf("%w: cannot broadcast shape %s to %s", errs.ErrShapeMismatch, a.shape, shape)
		}
	}

	return Array[T]{data: a.data, shape: shape.Clone(), strides: strides, offset: a.offset}, nil
}

// Clone returns a contiguous copy of the array with its own buffer.
func (a Array[T]) Clone() Array[T] {
	if a.shape == nil {
		return Array[T]{}
	}

	return Array[T]{data: a.Flatten(), shape: a.shape.Clone(), strides: contiguousStrides(a.shape)}
}

// Flatten returns the elements in row-major order as a new slice.
func (a Array[T]) Flatten() []T {
	out := make([]T, a.Size())
	a.walk(func(i, off int) {
		out[i] = a.data[off]
	})

	return out
}

// All iterates over elements in row-major order, yielding the flat position and the value.
func (a Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := a.Size()
		if n == 0 {
			return
		}

		idx := make([]int, len(a.shape))
		off := a.offset
		for i := 0; i < n; i++ {
			if !yield(i, a.data[off]) {
				return
			}
			off = advance(idx, a.shape, a.strides, off)
		}
	}
}

func (a Array[T]) layout() layout {
	return layout{strides: a.strides, offset: a.offset}
}

func (a Array[T]) walk(fn func(i, off int)) {
	if a.shape == nil {
		return
	}
	walk(a.shape, []layout{a.layout()}, func(i int, offs []int) {
		fn(i, offs[0])
	})
}

type layout struct {
	strides []int
	offset  int
}

// advance steps a row-major multi-index and returns the updated buffer offset.
func advance(idx []int, shape Shape, strides []int, off int) int {
	for axis := len(shape) - 1; axis >= 0; axis-- {
		idx[axis]++
		off += strides[axis]
		if idx[axis] < shape[axis] {
			return off
		}
		off -= strides[axis] * shape[axis]
		idx[axis] = 0
	}

	return off
}

// walk visits every position of shape in row-major order, passing the flat
// position and the buffer offset of each layout.
func walk(shape Shape, layouts []layout, fn func(i int, offs []int)) {
	n := shape.Size()
	if n == 0 {
		return
	}

	idx := make([]int, len(shape))
	offs := make([]int, len(layouts))
	for k, l := range layouts {
		offs[k] = l.offset
	}

	for i := 0; i < n; i++ {
		fn(i, offs)
		for axis := len(shape) - 1; axis >= 0; axis-- {
			idx[axis]++
			for k, l := range layouts {
				offs[k] += l.strides[axis]
			}
			if idx[axis] < shape[axis] {
				break
			}
			for k, l := range layouts {
				offs[k] -= l.strides[axis] * shape[axis]
			}
			idx[axis] = 0
		}
	}
}
