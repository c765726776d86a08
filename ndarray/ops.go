package ndarray

import (
	"fmt"

	"github.com/arloliu/labelarray/errs"
)

// Map applies fn to every element and returns a new contiguous array of the same shape.
func Map[T, U any](a Array[T], fn func(T) U) Array[U] {
	if a.shape == nil {
		return Array[U]{}
	}

	out := Zeros[U](a.shape...)
	a.walk(func(i, off int) {
		out.data[i] = fn(a.data[off])
	})

	return out
}

// Zip combines two arrays elementwise after broadcasting them to a common
// shape. Incompatible shapes yield errs.ErrShapeMismatch.
func Zip[A, B, U any](a Array[A], b Array[B], fn func(A, B) U) (Array[U], error) {
	if a.shape == nil || b.shape == nil {
		return Array[U]{}, fmt.Errorf("%w: operand is an uninitialized array", errs.ErrShapeMismatch)
	}

	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return Array[U]{}, err
	}

	ab, err := a.BroadcastTo(shape)
	if err != nil {
		return Array[U]{}, err
	}
	bb, err := b.BroadcastTo(shape)
	if err != nil {
		return Array[U]{}, err
	}

	out := Zeros[U](shape...)
	walk(shape, []layout{ab.layout(), bb.layout()}, func(i int, offs []int) {
		out.data[i] = fn(ab.data[offs[0]], bb.data[offs[1]])
	})

	return out, nil
}

// Assign copies src into dst elementwise, broadcasting src to dst's shape.
//
// dst is written in place, so every array sharing its buffer observes the
// change. When src overlaps dst it is copied first.
func Assign[T any](dst, src Array[T]) error {
	if dst.shape == nil || src.shape == nil {
		return fmt.Errorf("%w: operand is an uninitialized array", errs.ErrShapeMismatch)
	}
	if src.SharesBuffer(dst) {
		src = src.Clone()
	}

	sb, err := src.BroadcastTo(dst.shape)
	if err != nil {
		return err
	}

	walk(dst.shape, []layout{dst.layout(), sb.layout()}, func(_ int, offs []int) {
		dst.data[offs[0]] = sb.data[offs[1]]
	})

	return nil
}

// Fill sets every element of dst to value in place.
func Fill[T any](dst Array[T], value T) {
	dst.walk(func(_, off int) {
		dst.data[off] = value
	})
}

// Equal compares two arrays elementwise with broadcasting.
func Equal[T comparable](a, b Array[T]) (Array[bool], error) {
	return Zip(a, b, func(x, y T) bool { return x == y })
}

// NotEqual compares two arrays elementwise with broadcasting.
func NotEqual[T comparable](a, b Array[T]) (Array[bool], error) {
	return Zip(a, b, func(x, y T) bool { return x != y })
}

// AllTrue reports whether every element of a is true. An empty array yields true.
func AllTrue(a Array[bool]) bool {
	for _, v := range a.All() {
		if !v {
			return false
		}
	}

	return true
}

// AnyTrue reports whether at least one element of a is true.
func AnyTrue(a Array[bool]) bool {
	for _, v := range a.All() {
		if v {
			return true
		}
	}

	return false
}
