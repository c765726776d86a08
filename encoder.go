package labelarray

import (
	"fmt"
	"reflect"

	"github.com/arloliu/labelarray/category"
	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/internal/pool"
	"github.com/arloliu/labelarray/ndarray"
)

// New dictionary-encodes raw into a label array of the same shape.
//
// The categories are the distinct values of raw in ascending byte order and
// each element's code is the position of its value in that order. An empty
// input yields an empty array with an empty category table. raw is not
// modified and does not share memory with the result.
func New(raw ndarray.Array[string]) *Array {
	if raw.IsZero() {
		raw = ndarray.Zeros[string](0)
	}

	n := raw.Size()
	flat, release := pool.GetStringSlice(n)
	defer release()

	for i, v := range raw.All() {
		flat[i] = v
	}

	b := category.NewBuilder(min(n, 1024))
	// a fresh builder cannot be frozen
	_ = b.AddAll(flat)
	table, _ := b.Build()

	buf := make([]int64, n)
	for i, v := range flat {
		buf[i], _ = table.Lookup(v)
	}

	codes := ndarray.MustNew(buf)
	codes, _ = codes.Reshape(raw.Shape()...)

	return &Array{codes: codes, table: table}
}

// From dictionary-encodes a generic array value.
//
// Accepted inputs are ndarray arrays of string, []byte or any elements,
// []string, []any, [][]byte and rectangular nested slices or arrays of those.
// Elements of interface type are converted to their string form: strings as
// is, []byte by conversion, fmt.Stringer through String and anything else
// through fmt.Sprint.
//
// Inputs of any other element kind fail with errs.ErrTypeKind and ragged
// nested slices with errs.ErrShapeMismatch.
func From(v any) (*Array, error) {
	switch x := v.(type) {
	case ndarray.Array[string]:
		return New(x), nil
	case ndarray.Array[[]byte]:
		return New(ndarray.Map(x, func(b []byte) string { return string(b) })), nil
	case ndarray.Array[any]:
		return New(ndarray.Map(x, stringForm)), nil
	case interface{ Kind() ndarray.Kind }:
		return nil, fmt.Errorf("%w: cannot encode %s array as label array", errs.ErrTypeKind, x.Kind())
	case []string:
		return New(ndarray.MustNew(x)), nil
	case nil:
		return nil, fmt.Errorf("%w: cannot encode nil as label array", errs.ErrTypeKind)
	}

	raw, err := flattenNested(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}

	return New(raw), nil
}

func stringForm(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

var bytesType = reflect.TypeFor[[]byte]()

func isSequence(t reflect.Type) bool {
	k := t.Kind()
	return (k == reflect.Slice || k == reflect.Array) && t != bytesType
}

// flattenNested converts rectangular nested slices into a string array.
func flattenNested(v reflect.Value) (ndarray.Array[string], error) {
	t := v.Type()
	depth := 0
	for isSequence(t) {
		t = t.Elem()
		depth++
	}
	if depth == 0 {
		return ndarray.Array[string]{}, fmt.Errorf("%w: expected an array of strings, got %s", errs.ErrTypeKind, v.Type())
	}

	var leaf func(reflect.Value) string
	switch {
	case t == bytesType:
		leaf = func(e reflect.Value) string { return string(e.Bytes()) }
	case t.Kind() == reflect.String:
		leaf = func(e reflect.Value) string { return e.String() }
	case t.Kind() == reflect.Interface:
		leaf = func(e reflect.Value) string {
			if e.IsNil() {
				return stringForm(nil)
			}
			return stringForm(e.Interface())
		}
	default:
		return ndarray.Array[string]{}, fmt.Errorf("%w: cannot encode elements of kind %s as label array", errs.ErrTypeKind, t.Kind())
	}

	shape := make([]int, depth)
	cur := v
	for d := 0; d < depth; d++ {
		shape[d] = cur.Len()
		if cur.Len() == 0 {
			break
		}
		cur = cur.Index(0)
	}

	flat := make([]string, 0, ndarray.Shape(shape).Size())
	var fill func(reflect.Value, int) error
	fill = func(e reflect.Value, d int) error {
		if d == depth {
			flat = append(flat, leaf(e))
			return nil
		}
		if e.Len() != shape[d] {
			return fmt.Errorf("%w: ragged input, axis %d has length %d, expected %d",
				errs.ErrShapeMismatch, d, e.Len(), shape[d])
		}
		for i := 0; i < e.Len(); i++ {
			if err := fill(e.Index(i), d+1); err != nil {
				return err
			}
		}

		return nil
	}
	if err := fill(v, 0); err != nil {
		return ndarray.Array[string]{}, err
	}

	return ndarray.New(flat, shape...)
}
