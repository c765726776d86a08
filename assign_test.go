package labelarray

import (
	"errors"
	"testing"

	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/ndarray"
	"github.com/stretchr/testify/require"
)

func flatStrings(t *testing.T, arr *Array) []string {
	t.Helper()

	strs, err := arr.Strings()
	require.NoError(t, err)

	return strs.Flatten()
}

func TestSet_String(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"", "a", "b", "a"}, 2, 2))
	table := arr.Categories()

	require.NoError(t, arr.Set("b", ndarray.At(0), ndarray.At(0)))
	require.Equal(t, []string{"b", "a", "b", "a"}, flatStrings(t, arr))

	require.NoError(t, arr.Set("", ndarray.Full(), ndarray.At(1)))
	require.Equal(t, []string{"b", "", "b", ""}, flatStrings(t, arr))

	require.NoError(t, arr.Set("a"))
	require.Equal(t, []string{"a", "a", "a", "a"}, flatStrings(t, arr))

	require.Same(t, table, arr.Categories())
	require.Equal(t, []string{"", "a", "b"}, table.Values())
}

func TestSet_VisibleThroughViews(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"x", "y", "z", "x"}, 2, 2))

	row, err := arr.Index(ndarray.At(1))
	require.NoError(t, err)
	require.NoError(t, row.Set("y", ndarray.At(0)))

	require.Equal(t, []string{"x", "y", "y", "x"}, flatStrings(t, arr))
}

func TestSet_ValueNotInCategories(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a", "b"}))

	err := arr.Set("q", ndarray.At(0))
	require.ErrorIs(t, err, errs.ErrValueNotInCategories)
	require.Contains(t, err.Error(), `"q"`)
	require.Equal(t, []string{"a", "b"}, flatStrings(t, arr))
}

func TestSet_UnsupportedType(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a", "b"}))

	for _, v := range []any{1, 2.5, []string{"a"}, ndarray.MustNew([]string{"a"}), nil} {
		err := arr.Set(v, ndarray.At(0))
		require.ErrorIs(t, err, errs.ErrUnsupportedAssignmentType, "%T", v)
	}
}

func TestSet_LabelArray(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a", "b", "c", "a", "b", "c"}, 2, 3))

	t.Run("compatible copies codes", func(t *testing.T) {
		dst, err := arr.Copy()
		require.NoError(t, err)
		src, err := arr.Index(ndarray.At(1), ndarray.Reverse())
		require.NoError(t, err)

		require.NoError(t, dst.Set(src, ndarray.At(0)))
		require.Equal(t, []string{"c", "b", "a", "a", "b", "c"}, flatStrings(t, dst))
	})

	t.Run("broadcasts into selection", func(t *testing.T) {
		dst, err := arr.Copy()
		require.NoError(t, err)
		src, err := arr.Index(ndarray.At(0), ndarray.Range(2, 3))
		require.NoError(t, err)

		require.NoError(t, dst.Set(src))
		require.Equal(t, []string{"c", "c", "c", "c", "c", "c"}, flatStrings(t, dst))
	})

	t.Run("separately encoded but equal categories", func(t *testing.T) {
		dst, err := arr.Copy()
		require.NoError(t, err)
		src := New(ndarray.MustNew([]string{"c", "b", "a"}))

		require.NoError(t, dst.Set(src, ndarray.At(1)))
		require.Equal(t, []string{"a", "b", "c", "c", "b", "a"}, flatStrings(t, dst))
	})

	t.Run("overlapping views", func(t *testing.T) {
		dst := New(ndarray.MustNew([]string{"a", "b", "c"}))
		head, err := dst.Index(ndarray.From(1))
		require.NoError(t, err)
		tail, err := dst.Index(ndarray.To(2))
		require.NoError(t, err)

		require.NoError(t, head.Set(tail))
		require.Equal(t, []string{"a", "a", "b"}, flatStrings(t, dst))
	})

	t.Run("mismatched categories", func(t *testing.T) {
		dst, err := arr.Copy()
		require.NoError(t, err)
		src := New(ndarray.MustNew([]string{"a", "b", "z"}))

		err = dst.Set(src, ndarray.At(0))
		require.ErrorIs(t, err, errs.ErrCategoryMismatch)

		var mm *errs.CategoryMismatchError
		require.True(t, errors.As(err, &mm))
		require.Equal(t, []int{2}, mm.Indices())
		require.Equal(t, flatStrings(t, arr), flatStrings(t, dst))
	})

	t.Run("shape mismatch", func(t *testing.T) {
		dst, err := arr.Copy()
		require.NoError(t, err)
		src := New(ndarray.MustNew([]string{"a", "b", "c", "a"}))

		err = dst.Set(src, ndarray.At(0))
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})
}

func TestSet_BadSelector(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a"}))

	require.ErrorIs(t, arr.Set("a", ndarray.At(3)), errs.ErrIndexOutOfRange)
}
