// Package labelarray provides a categorical (dictionary-encoded) array of strings.
//
// An Array stores an N-dimensional array of strings as int64 codes plus a
// shared, immutable category table holding the distinct values in ascending
// order. Repeated strings cost one code each, and comparisons against a
// string scalar reduce to integer comparisons.
//
// # Core Features
//
//   - Dictionary encoding of any N-dimensional string array
//   - Zero-copy slicing: views share both the codes buffer and the category table
//   - Equality and inequality against strings, string arrays and other label arrays
//   - Exact round trip back to the original strings
//   - In-place assignment restricted to values already in the categories
//
// # Basic Usage
//
//	raw := ndarray.MustNew([]string{"", "a", "b", "a"}, 2, 2)
//	arr := labelarray.New(raw)
//
//	arr.Categories().Values() // ["", "a", "b"]
//	arr.Codes().Flatten()     // [0 1 2 1]
//
//	mask, _ := arr.Equal("a") // [[false true] [false true]]
//	row, _ := arr.Index(ndarray.At(0))
//	row.Categories() == arr.Categories() // true, shared table
//
// # Construction
//
// New and From are the only ways to create an Array. There is no exported
// constructor taking a codes buffer, so every code is guaranteed to index the
// category table. A zero Array, the only value that bypasses the encoder,
// fails every operation with errs.ErrDirectConstruction.
//
// # Thread Safety
//
// Category tables are immutable and safe for concurrent use. Set writes into
// the codes buffer shared by all views of an array without synchronization.
package labelarray

import (
	"fmt"
	"strconv"

	"github.com/arloliu/labelarray/category"
	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/ndarray"
)

// Array is a dictionary-encoded N-dimensional array of strings.
type Array struct {
	codes ndarray.Array[int64]
	table *category.Table
}

// derive wraps codes as an Array sharing a's category table. codes must only
// hold codes produced against that table.
func (a *Array) derive(codes ndarray.Array[int64]) *Array {
	return &Array{codes: codes, table: a.table}
}

func (a *Array) validate() error {
	if a == nil || a.table == nil {
		return errs.ErrDirectConstruction
	}

	return nil
}

// Categories returns the shared category table, or nil for an Array that was
// not created by New or From.
func (a *Array) Categories() *category.Table {
	if a == nil {
		return nil
	}

	return a.table
}

// SharesCategories reports whether a and other hold the very same category table.
func (a *Array) SharesCategories(other *Array) bool {
	return a.Categories() != nil && a.Categories() == other.Categories()
}

// Codes returns the integer codes as a zero-copy view. Writes through the
// view bypass category checks; use Set to assign values.
func (a *Array) Codes() ndarray.Array[int64] {
	if a == nil {
		return ndarray.Array[int64]{}
	}

	return a.codes
}

// Strings reconstructs the string array by mapping every code through the category table.
//
// A code outside the table, only reachable by writing through Codes, fails
// with errs.ErrCodeOutOfRange.
func (a *Array) Strings() (ndarray.Array[string], error) {
	if err := a.validate(); err != nil {
		return ndarray.Array[string]{}, err
	}

	flat := make([]string, a.codes.Size())
	for i, code := range a.codes.All() {
		value, ok := a.table.At(code)
		if !ok {
			return ndarray.Array[string]{}, fmt.Errorf("%w: code %d at flat index %d, %d categories",
				errs.ErrCodeOutOfRange, code, i, a.table.Len())
		}
		flat[i] = value
	}

	return ndarray.MustNew(flat).Reshape(a.codes.Shape()...)
}

// Shape returns the array shape.
func (a *Array) Shape() ndarray.Shape {
	return a.Codes().Shape()
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return a.Codes().NDim()
}

// Size returns the number of elements.
func (a *Array) Size() int {
	return a.Codes().Size()
}

// Len returns the extent of the outermost axis.
func (a *Array) Len() int {
	return a.Codes().Len()
}

// At returns the string at the given position, one index per axis.
func (a *Array) At(idx ...int) (string, error) {
	code, err := a.CodeAt(idx...)
	if err != nil {
		return "", err
	}

	value, ok := a.table.At(code)
	if !ok {
		return "", fmt.Errorf("%w: code %d, %d categories", errs.ErrCodeOutOfRange, code, a.table.Len())
	}

	return value, nil
}

// CodeAt returns the code at the given position, one index per axis.
func (a *Array) CodeAt(idx ...int) (int64, error) {
	if err := a.validate(); err != nil {
		return 0, err
	}

	return a.codes.Get(idx...)
}

// Copy returns an Array with its own codes buffer and the same category table.
func (a *Array) Copy() (*Array, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	return a.derive(a.codes.Clone()), nil
}

// String renders the array as LabelArray([...]) with quoted values.
func (a *Array) String() string {
	strs, err := a.Strings()
	if err != nil {
		return "LabelArray(<invalid: " + err.Error() + ">)"
	}

	return fmt.Sprintf("LabelArray(%s)", ndarray.Format(strs, strconv.Quote))
}
