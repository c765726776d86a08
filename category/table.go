// Package category implements the immutable category table behind label arrays.
//
// A Table is the sorted list of distinct strings of one encoding pass. The
// position of a value in the table is its code. Tables are produced by a
// Builder, never change afterwards, and are shared by pointer between every
// array derived from the same encoding, so they are safe for concurrent readers.
package category

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/internal/hash"
)

// Table is an immutable, ascending list of unique category values together
// with its reverse value-to-code lookup.
type Table struct {
	values      []string
	reverse     map[string]int64
	fingerprint uint64
}

var emptyTable = newTable(nil)

// Empty returns the shared table with no categories.
func Empty() *Table {
	return emptyTable
}

// newTable takes ownership of values, which must be sorted and unique.
func newTable(values []string) *Table {
	reverse := make(map[string]int64, len(values))
	for i, v := range values {
		reverse[v] = int64(i)
	}

	return &Table{
		values:      values,
		reverse:     reverse,
		fingerprint: hash.Strings(values),
	}
}

// Len returns the number of categories.
func (t *Table) Len() int {
	return len(t.values)
}

// At returns the category with the given code.
func (t *Table) At(code int64) (string, bool) {
	if code < 0 || code >= int64(len(t.values)) {
		return "", false
	}

	return t.values[code], true
}

// Lookup returns the code of value, or false if value is not a category.
func (t *Table) Lookup(value string) (int64, bool) {
	code, ok := t.reverse[value]
	return code, ok
}

// Contains reports whether value is one of the categories.
func (t *Table) Contains(value string) bool {
	_, ok := t.reverse[value]
	return ok
}

// Values returns a copy of the categories in code order.
func (t *Table) Values() []string {
	return slices.Clone(t.values)
}

// All iterates over (code, value) pairs in code order.
func (t *Table) All() iter.Seq2[int64, string] {
	return func(yield func(int64, string) bool) {
		for i, v := range t.values {
			if !yield(int64(i), v) {
				return
			}
		}
	}
}

// Fingerprint returns the xxHash64 fingerprint of the ordered categories.
// Equal tables always have equal fingerprints.
func (t *Table) Fingerprint() uint64 {
	return t.fingerprint
}

func (t *Table) String() string {
	quoted := make([]string, len(t.values))
	for i, v := range t.values {
		quoted[i] = strconv.Quote(v)
	}

	return "[" + strings.Join(quoted, " ") + "]"
}

// Compatible reports whether two tables hold the same categories in the same order.
//
// Identical pointers match without inspecting values; tables whose lengths
// or fingerprints differ are rejected before the elementwise comparison.
func Compatible(a, b *Table) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.values) != len(b.values) || a.fingerprint != b.fingerprint {
		return false
	}

	return slices.Equal(a.values, b.values)
}

// Mismatch describes how a and b differ as a *errs.CategoryMismatchError.
//
// Every differing position is reported, including positions past the end of
// the shorter table. It returns nil when the tables are compatible.
func Mismatch(a, b *Table) error {
	if Compatible(a, b) {
		return nil
	}

	left, right := valuesOf(a), valuesOf(b)
	n := max(len(left), len(right))
	e := &errs.CategoryMismatchError{LeftLen: len(left), RightLen: len(right)}
	for i := 0; i < n; i++ {
		var m errs.Mismatch
		m.Index = i
		if i < len(left) {
			m.Left, m.LeftOK = left[i], true
		}
		if i < len(right) {
			m.Right, m.RightOK = right[i], true
		}
		if m.LeftOK && m.RightOK && m.Left == m.Right {
			continue
		}
		e.Mismatches = append(e.Mismatches, m)
	}

	return e
}

func valuesOf(t *Table) []string {
	if t == nil {
		return nil
	}

	return t.values
}
