package labelarray

import (
	"errors"
	"testing"

	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/ndarray"
	"github.com/stretchr/testify/require"
)

func TestOperandOf(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a"}))

	tests := []struct {
		name string
		v    any
		kind OperandKind
	}{
		{"label array", arr, OperandLabels},
		{"string array", ndarray.MustNew([]string{"a"}), OperandStrings},
		{"object array", ndarray.MustNew([]any{"a", 1}), OperandStrings},
		{"bytes array", ndarray.MustNew([][]byte{[]byte("a")}), OperandStrings},
		{"string slice", []string{"a"}, OperandStrings},
		{"nested string slice", [][]string{{"a"}}, OperandStrings},
		{"object slice", []any{"a", 1}, OperandStrings},
		{"go array", [2]string{"a", "b"}, OperandStrings},
		{"int slice", []int{1}, OperandStrings},
		{"bytes", []byte("a"), OperandOther},
		{"string", "a", OperandString},
		{"int", 1, OperandNumber},
		{"float", 1.5, OperandNumber},
		{"uint8", uint8(3), OperandNumber},
		{"int array", ndarray.MustNew([]int64{0}), OperandOther},
		{"struct", struct{}{}, OperandOther},
		{"nil", nil, OperandOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, OperandOf(tt.v).Kind())
		})
	}
}

func TestCompare_String(t *testing.T) {
	strs := testStrings(t)

	for _, shape := range [][]int{{27}, {9, 3}, {3, 9}, {3, 3, 3}} {
		raw := reshaped(t, strs, shape...)
		arr := New(raw)

		for _, s := range []string{"", "a", "z", "aa", "not in the array"} {
			t.Run(ndarray.Shape(shape).String()+"/"+s, func(t *testing.T) {
				wantEq := ndarray.Map(raw, func(v string) bool { return v == s })
				wantNe := ndarray.Map(raw, func(v string) bool { return v != s })

				eq, err := arr.Equal(s)
				require.NoError(t, err)
				require.Equal(t, wantEq.Shape(), eq.Shape())
				require.Equal(t, wantEq.Flatten(), eq.Flatten())

				ne, err := arr.NotEqual(s)
				require.NoError(t, err)
				require.Equal(t, wantNe.Flatten(), ne.Flatten())
			})
		}
	}
}

// Code 0 is a real category and must match like any other.
func TestCompare_FirstCategory(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a", "b", "a"}))

	eq, err := arr.Equal("a")
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, eq.Flatten())

	ne, err := arr.NotEqual("a")
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, ne.Flatten())
}

func TestCompare_Absent(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a", "b", "a", "c"}, 2, 2))

	eq, err := arr.Equal("q")
	require.NoError(t, err)
	require.Equal(t, ndarray.Shape{2, 2}, eq.Shape())
	require.False(t, ndarray.AnyTrue(eq))

	ne, err := arr.NotEqual("q")
	require.NoError(t, err)
	require.True(t, ndarray.AllTrue(ne))
}

func TestCompare_StringArray(t *testing.T) {
	strs := testStrings(t)
	arr := New(strs)

	eq, err := arr.Equal(strs)
	require.NoError(t, err)
	require.True(t, ndarray.AllTrue(eq))

	ne, err := arr.NotEqual(strs)
	require.NoError(t, err)
	require.False(t, ndarray.AnyTrue(ne))

	seen := map[string]bool{}
	for _, v := range rowValues {
		if seen[v] {
			continue
		}
		seen[v] = true

		for _, op := range []Op{OpEq, OpNe} {
			want := ndarray.Map(strs, func(s string) bool { return (s == v) == (op == OpEq) })

			operands := map[string]any{
				"full":   ndarray.Filled(v, 3, 9),
				"row":    ndarray.Filled(v, 3, 1),
				"column": ndarray.Filled(v, 1, 9),
				"object": ndarray.Filled[any](v, 1, 9),
			}
			for name, other := range operands {
				got, err := arr.Compare(OperandOf(other), op)
				require.NoError(t, err, name)
				require.Equal(t, want.Shape(), got.Shape(), name)
				require.Equal(t, want.Flatten(), got.Flatten(), "%s %s %q", name, op, v)
			}
		}
	}
}

func TestCompare_StringArrayShapeMismatch(t *testing.T) {
	arr := New(testStrings(t))

	_, err := arr.Equal(ndarray.Filled("a", 2, 9))
	require.ErrorIs(t, err, errs.ErrShapeMismatch)

	_, err = arr.NotEqual([]string{"a", "b"})
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestCompare_LabelArrays(t *testing.T) {
	strs := testStrings(t)
	arr := New(strs)

	t.Run("same table", func(t *testing.T) {
		row, err := arr.Index(ndarray.At(0))
		require.NoError(t, err)

		eq, err := arr.Equal(row)
		require.NoError(t, err)
		require.Equal(t, ndarray.Shape{3, 9}, eq.Shape())

		want := ndarray.MustNew([]bool{true, true, true, true, true, true, true, true, true}, 9)
		first, err := eq.Index(ndarray.At(0))
		require.NoError(t, err)
		require.Equal(t, want.Flatten(), first.Flatten())
	})

	t.Run("equal tables from separate encodings", func(t *testing.T) {
		other := New(reshaped(t, strs, 3, 9))
		require.NotSame(t, arr.Categories(), other.Categories())

		eq, err := arr.Equal(other)
		require.NoError(t, err)
		require.True(t, ndarray.AllTrue(eq))

		ne, err := arr.NotEqual(other)
		require.NoError(t, err)
		require.False(t, ndarray.AnyTrue(ne))
	})

	t.Run("disjoint categories", func(t *testing.T) {
		left := New(ndarray.MustNew([]string{"a", "b"}))
		right := New(ndarray.MustNew([]string{"c", "d"}))

		_, err := left.Equal(right)
		require.ErrorIs(t, err, errs.ErrCategoryMismatch)

		var mm *errs.CategoryMismatchError
		require.True(t, errors.As(err, &mm))
		require.NotEmpty(t, mm.Indices())
		require.Equal(t, 0, mm.Indices()[0])
		require.Equal(t, "a", mm.Mismatches[0].Left)
		require.Equal(t, "c", mm.Mismatches[0].Right)

		_, err = left.NotEqual(right)
		require.ErrorIs(t, err, errs.ErrCategoryMismatch)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		other := New(reshaped(t, strs, 9, 3))
		_, err := arr.Equal(other)
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})
}

func TestCompare_Number(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a"}))

	for _, v := range []any{0, int64(1), 2.5, float32(1), uint(7)} {
		_, err := arr.Equal(v)
		require.ErrorIs(t, err, errs.ErrNotComparable, "%T", v)
	}
}

func TestCompare_Other(t *testing.T) {
	arr := New(ndarray.MustNew([]string{"a", "b", "a"}))

	t.Run("integer array compares codes", func(t *testing.T) {
		eq, err := arr.Equal(ndarray.MustNew([]int64{0, 0, 1}))
		require.NoError(t, err)
		require.Equal(t, []bool{true, false, false}, eq.Flatten())
	})

	t.Run("unrelated values match nothing", func(t *testing.T) {
		eq, err := arr.Equal(struct{ X int }{1})
		require.NoError(t, err)
		require.Equal(t, []bool{false, false, false}, eq.Flatten())

		ne, err := arr.NotEqual(nil)
		require.NoError(t, err)
		require.Equal(t, []bool{true, true, true}, ne.Flatten())
	})

	t.Run("unknown op", func(t *testing.T) {
		_, err := arr.Compare(OperandOf("a"), Op(42))
		require.ErrorIs(t, err, errs.ErrNotComparable)
	})
}

func TestCompare_DoesNotMutate(t *testing.T) {
	raw := ndarray.MustNew([]string{"x", "y"})
	arr := New(raw)
	before := arr.Codes().Flatten()

	_, err := arr.Equal(raw)
	require.NoError(t, err)
	_, err = arr.NotEqual("x")
	require.NoError(t, err)

	require.Equal(t, before, arr.Codes().Flatten())
	require.Equal(t, []string{"x", "y"}, raw.Flatten())
}

func TestCompare_NestedSlices(t *testing.T) {
	nested := [][]string{{"", "a"}, {"b", "a"}}
	arr, err := From(nested)
	require.NoError(t, err)

	t.Run("same nested input", func(t *testing.T) {
		eq, err := arr.Equal(nested)
		require.NoError(t, err)
		require.Equal(t, ndarray.Shape{2, 2}, eq.Shape())
		require.True(t, ndarray.AllTrue(eq))

		ne, err := arr.NotEqual(nested)
		require.NoError(t, err)
		require.False(t, ndarray.AnyTrue(ne))
	})

	t.Run("object row broadcasts", func(t *testing.T) {
		eq, err := arr.Equal([]any{"", "a"})
		require.NoError(t, err)
		require.Equal(t, []bool{true, true, false, true}, eq.Flatten())
	})

	t.Run("column broadcasts", func(t *testing.T) {
		ne, err := arr.NotEqual([][]string{{"a"}, {"b"}})
		require.NoError(t, err)
		require.Equal(t, []bool{true, false, false, true}, ne.Flatten())
	})

	t.Run("deeper nesting", func(t *testing.T) {
		cube := [][][]string{{{"x", "y"}, {"y", "x"}}}
		labels, err := From(cube)
		require.NoError(t, err)

		eq, err := labels.Equal(cube)
		require.NoError(t, err)
		require.Equal(t, ndarray.Shape{1, 2, 2}, eq.Shape())
		require.True(t, ndarray.AllTrue(eq))
	})

	t.Run("cannot broadcast", func(t *testing.T) {
		_, err := arr.NotEqual([][]string{{"x"}, {"y"}, {"z"}})
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := arr.Equal([][]string{{"a", "b"}, {"c"}})
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})

	t.Run("non-string elements", func(t *testing.T) {
		_, err := arr.Equal([][]int{{1, 2}, {3, 4}})
		require.ErrorIs(t, err, errs.ErrTypeKind)
	})
}
