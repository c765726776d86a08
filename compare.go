package labelarray

import (
	"fmt"
	"reflect"

	"github.com/arloliu/labelarray/category"
	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/ndarray"
)

// Op is an identity comparison supported by label arrays.
type Op uint8

const (
	OpEq Op = iota + 1 // elementwise ==
	OpNe               // elementwise !=
)

func (op Op) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	default:
		return "unknown"
	}
}

// OperandKind tags the variant held by an Operand.
type OperandKind uint8

const (
	OperandOther   OperandKind = iota // any value without label array semantics
	OperandLabels                     // another label array
	OperandStrings                    // an array of strings
	OperandString                     // a single string
	OperandNumber                     // a numeric scalar
)

// Operand is the right-hand side of a comparison, classified once by OperandOf.
type Operand struct {
	kind    OperandKind
	labels  *Array
	strings ndarray.Array[string]
	str     string
	other   any
	err     error
}

// OperandOf classifies v:
//
//   - *Array: OperandLabels
//   - ndarray.Array[string], ndarray.Array[any], ndarray.Array[[]byte],
//     []string and any nested slice or Go array accepted by From:
//     OperandStrings (object elements use their string form)
//   - string: OperandString
//   - Go integer and floating point scalars: OperandNumber
//   - anything else: OperandOther
//
// A nested slice that From would reject, because it is ragged or holds
// non-string elements, is still an OperandStrings; Compare reports the
// flattening error.
func OperandOf(v any) Operand {
	switch x := v.(type) {
	case *Array:
		return Operand{kind: OperandLabels, labels: x}
	case ndarray.Array[string]:
		return Operand{kind: OperandStrings, strings: x}
	case ndarray.Array[any]:
		return Operand{kind: OperandStrings, strings: ndarray.Map(x, stringForm)}
	case ndarray.Array[[]byte]:
		return Operand{kind: OperandStrings, strings: ndarray.Map(x, func(b []byte) string { return string(b) })}
	case []string:
		return Operand{kind: OperandStrings, strings: ndarray.MustNew(x)}
	case string:
		return Operand{kind: OperandString, str: x}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr, float32, float64:
		return Operand{kind: OperandNumber, other: x}
	default:
		if v != nil && isSequence(reflect.TypeOf(v)) {
			strs, err := flattenNested(reflect.ValueOf(v))
			return Operand{kind: OperandStrings, strings: strs, err: err}
		}

		return Operand{kind: OperandOther, other: v}
	}
}

// Kind returns the operand variant.
func (o Operand) Kind() OperandKind {
	return o.kind
}

// Compare compares a elementwise with other and returns a new boolean array.
//
// Against another label array, the category tables must be compatible and
// codes are compared directly; otherwise a *errs.CategoryMismatchError is
// returned. Against a string array, a is reconstructed and compared with
// broadcasting; shapes that cannot broadcast yield errs.ErrShapeMismatch. Against a string, the reverse lookup decides: a value that is
// not a category matches nothing. Numbers are not comparable and yield
// errs.ErrNotComparable so the caller can apply its own policy. Any other
// operand gets the plain integer array behaviour: an ndarray.Array[int64] is
// compared against the codes, everything else matches nothing.
//
// Neither operand is modified.
func (a *Array) Compare(other Operand, op Op) (ndarray.Array[bool], error) {
	if err := a.validate(); err != nil {
		return ndarray.Array[bool]{}, err
	}
	if op != OpEq && op != OpNe {
		return ndarray.Array[bool]{}, fmt.Errorf("%w: unsupported comparison %d", errs.ErrNotComparable, op)
	}

	switch other.kind {
	case OperandLabels:
		if err := other.labels.validate(); err != nil {
			return ndarray.Array[bool]{}, err
		}
		if !category.Compatible(a.table, other.labels.table) {
			return ndarray.Array[bool]{}, category.Mismatch(a.table, other.labels.table)
		}

		return compareArrays(a.codes, other.labels.codes, op)

	case OperandStrings:
		if other.err != nil {
			return ndarray.Array[bool]{}, other.err
		}
		strs, err := a.Strings()
		if err != nil {
			return ndarray.Array[bool]{}, err
		}

		return compareArrays(strs, other.strings, op)

	case OperandString:
		code, ok := a.table.Lookup(other.str)
		if !ok {
			return ndarray.Filled(op == OpNe, a.codes.Shape()...), nil
		}

		return compareScalar(a.codes, code, op), nil

	case OperandNumber:
		return ndarray.Array[bool]{}, fmt.Errorf("%w: %T", errs.ErrNotComparable, other.other)

	default:
		if codes, ok := other.other.(ndarray.Array[int64]); ok {
			return compareArrays(a.codes, codes, op)
		}

		return ndarray.Filled(op == OpNe, a.codes.Shape()...), nil
	}
}

// Equal reports elementwise a == v. See Compare.
func (a *Array) Equal(v any) (ndarray.Array[bool], error) {
	return a.Compare(OperandOf(v), OpEq)
}

// NotEqual reports elementwise a != v. See Compare.
func (a *Array) NotEqual(v any) (ndarray.Array[bool], error) {
	return a.Compare(OperandOf(v), OpNe)
}

func compareArrays[T comparable](x, y ndarray.Array[T], op Op) (ndarray.Array[bool], error) {
	if op == OpNe {
		return ndarray.NotEqual(x, y)
	}

	return ndarray.Equal(x, y)
}

func compareScalar(codes ndarray.Array[int64], code int64, op Op) ndarray.Array[bool] {
	if op == OpNe {
		return ndarray.Map(codes, func(c int64) bool { return c != code })
	}

	return ndarray.Map(codes, func(c int64) bool { return c == code })
}
