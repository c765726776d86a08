package category

import (
	"errors"
	"testing"

	"github.com/arloliu/labelarray/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, values ...string) *Table {
	t.Helper()

	b := NewBuilder(len(values))
	require.NoError(t, b.AddAll(values))
	table, err := b.Build()
	require.NoError(t, err)

	return table
}

func TestBuilder_SortsAndDeduplicates(t *testing.T) {
	table := build(t, "b", "", "a", "ab", "a", "", "z")

	require.Equal(t, []string{"", "a", "ab", "b", "z"}, table.Values())
	require.Equal(t, 5, table.Len())
}

func TestBuilder_Frozen(t *testing.T) {
	b := NewBuilder(0)
	require.NoError(t, b.Add("x"))
	require.Equal(t, 1, b.Len())

	_, err := b.Build()
	require.NoError(t, err)

	require.ErrorIs(t, b.Add("y"), errs.ErrImmutableState)
	require.ErrorIs(t, b.AddAll([]string{"y"}), errs.ErrImmutableState)
	_, err = b.Build()
	require.ErrorIs(t, err, errs.ErrImmutableState)
}

func TestBuilder_Empty(t *testing.T) {
	table, err := NewBuilder(-1).Build()
	require.NoError(t, err)
	require.Equal(t, 0, table.Len())
	require.Same(t, Empty(), table)
	require.Empty(t, table.Values())
}

func TestTable_Lookup(t *testing.T) {
	table := build(t, "b", "", "a")

	tests := []struct {
		value string
		code  int64
		ok    bool
	}{
		{"", 0, true},
		{"a", 1, true},
		{"b", 2, true},
		{"q", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			code, ok := table.Lookup(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.ok, table.Contains(tt.value))
		})
	}

	// reverse[values[i]] == i
	for code, v := range table.All() {
		got, ok := table.Lookup(v)
		require.True(t, ok)
		require.Equal(t, code, got)
	}
}

func TestTable_At(t *testing.T) {
	table := build(t, "x", "y")

	v, ok := table.At(1)
	require.True(t, ok)
	require.Equal(t, "y", v)

	_, ok = table.At(2)
	require.False(t, ok)
	_, ok = table.At(-1)
	require.False(t, ok)
}

func TestTable_ValuesIsACopy(t *testing.T) {
	table := build(t, "a", "b")

	values := table.Values()
	values[0] = "mutated"

	require.Equal(t, []string{"a", "b"}, table.Values())
	code, ok := table.Lookup("a")
	require.True(t, ok)
	require.Equal(t, int64(0), code)
}

func TestTable_String(t *testing.T) {
	require.Equal(t, `["" "a"]`, build(t, "a", "").String())
}

func TestCompatible(t *testing.T) {
	a := build(t, "", "a", "b")
	same := build(t, "b", "a", "")
	other := build(t, "", "a", "c")
	shorter := build(t, "", "a")

	require.True(t, Compatible(a, a))
	require.True(t, Compatible(a, same))
	require.Equal(t, a.Fingerprint(), same.Fingerprint())
	require.False(t, Compatible(a, other))
	require.False(t, Compatible(a, shorter))
	require.False(t, Compatible(a, nil))
	require.True(t, Compatible(nil, nil))
}

func TestMismatch(t *testing.T) {
	t.Run("compatible tables", func(t *testing.T) {
		require.NoError(t, Mismatch(build(t, "a"), build(t, "a")))
	})

	t.Run("equal length", func(t *testing.T) {
		err := Mismatch(build(t, "", "a", "b"), build(t, "", "a", "c"))
		require.ErrorIs(t, err, errs.ErrCategoryMismatch)

		var mm *errs.CategoryMismatchError
		require.True(t, errors.As(err, &mm))
		require.Equal(t, []int{2}, mm.Indices())
		require.Equal(t, "b", mm.Mismatches[0].Left)
		require.Equal(t, "c", mm.Mismatches[0].Right)
	})

	t.Run("disjoint", func(t *testing.T) {
		err := Mismatch(build(t, "a", "b"), build(t, "c", "d"))

		var mm *errs.CategoryMismatchError
		require.True(t, errors.As(err, &mm))
		require.Equal(t, []int{0, 1}, mm.Indices())
	})

	t.Run("different length", func(t *testing.T) {
		err := Mismatch(build(t, "a", "b", "c"), build(t, "a"))

		var mm *errs.CategoryMismatchError
		require.True(t, errors.As(err, &mm))
		require.Equal(t, []int{1, 2}, mm.Indices())
		require.False(t, mm.Mismatches[0].RightOK)
		require.Equal(t, 3, mm.LeftLen)
		require.Equal(t, 1, mm.RightLen)
	})
}

func TestFromSorted(t *testing.T) {
	table, ok := FromSorted([]string{"", "a", "b"})
	require.True(t, ok)
	require.Equal(t, 3, table.Len())
	require.True(t, Compatible(table, build(t, "a", "b", "")))

	_, ok = FromSorted([]string{"b", "a"})
	require.False(t, ok)
	_, ok = FromSorted([]string{"a", "a"})
	require.False(t, ok)

	empty, ok := FromSorted(nil)
	require.True(t, ok)
	require.Same(t, Empty(), empty)
}
