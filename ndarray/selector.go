package ndarray

import (
	"fmt"

	"github.com/arloliu/labelarray/errs"
)

type selectorKind uint8

const (
	selectIndex selectorKind = iota + 1
	selectSlice
)

// Selector picks elements along one axis. A list of selectors, one per
// leading axis, forms a tuple index; axes without a selector are taken whole.
//
// Integer selectors remove their axis from the result. Slice selectors keep
// it, following half-open [start, stop) semantics with an optional step.
// Negative positions count from the end of the axis.
type Selector struct {
	kind     selectorKind
	index    int
	start    int
	stop     int
	step     int
	hasStart bool
	hasStop  bool
}

// At selects a single position and drops the axis.
func At(i int) Selector {
	return Selector{kind: selectIndex, index: i}
}

// Range selects positions [start, stop).
func Range(start, stop int) Selector {
	return Selector{kind: selectSlice, start: start, stop: stop, step: 1, hasStart: true, hasStop: true}
}

// RangeStep selects positions from start towards stop (exclusive) every step.
// A negative step walks the axis backwards.
func RangeStep(start, stop, step int) Selector {
	return Selector{kind: selectSlice, start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// From selects positions from start to the end of the axis.
func From(start int) Selector {
	return Selector{kind: selectSlice, start: start, step: 1, hasStart: true}
}

// To selects positions from the beginning of the axis up to stop.
func To(stop int) Selector {
	return Selector{kind: selectSlice, stop: stop, step: 1, hasStop: true}
}

// Full selects the whole axis.
func Full() Selector {
	return Selector{kind: selectSlice, step: 1}
}

// Reverse selects the whole axis in reverse order.
func Reverse() Selector {
	return Selector{kind: selectSlice, step: -1}
}

// IsIndex reports whether the selector drops its axis.
func (s Selector) IsIndex() bool {
	return s.kind == selectIndex
}

func (s Selector) String() string {
	if s.kind == selectIndex {
		return fmt.Sprintf("%d", s.index)
	}

	start, stop := "", ""
	if s.hasStart {
		start = fmt.Sprintf("%d", s.start)
	}
	if s.hasStop {
		stop = fmt.Sprintf("%d", s.stop)
	}
	if s.step == 1 {
		return start + ":" + stop
	}

	return fmt.Sprintf("%s:%s:%d", start, stop, s.step)
}

// resolveIndex normalizes an integer selector against an axis of length dim.
func (s Selector) resolveIndex(axis, dim int) (int, error) {
	i := s.index
	if i < 0 {
		i += dim
	}
	if i < 0 || i >= dim {
		return 0, fmt.Errorf("%w: index %d is out of bounds for axis %d with size %d",
			errs.ErrIndexOutOfRange, s.index, axis, dim)
	}

	return i, nil
}

// resolveSlice normalizes a slice selector against an axis of length dim and
// returns the first position, the number of selected positions and the step.
func (s Selector) resolveSlice(axis, dim int) (first, length, step int, err error) {
	step = s.step
	if s.kind == 0 {
		step = 1
	}
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: slice step cannot be zero (axis %d)", errs.ErrInvalidSelector, axis)
	}

	var start, stop int
	if step > 0 {
		start, stop = 0, dim
		if s.hasStart {
			start = clamp(s.start, dim, 0, dim)
		}
		if s.hasStop {
			stop = clamp(s.stop, dim, 0, dim)
		}
		if stop > start {
			length = (stop - start + step - 1) / step
		}

		return start, length, step, nil
	}

	start, stop = dim-1, -1
	if s.hasStart {
		start = clamp(s.start, dim, -1, dim-1)
	}
	if s.hasStop {
		stop = clamp(s.stop, dim, -1, dim-1)
	}
	if start > stop {
		length = (start - stop - step - 1) / -step
	}

	return start, length, step, nil
}

// clamp turns a possibly negative position into an absolute one bounded by [lo, hi].
func clamp(pos, dim, lo, hi int) int {
	if pos < 0 {
		pos += dim
	}

	return min(max(pos, lo), hi)
}
