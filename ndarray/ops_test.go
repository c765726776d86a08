package ndarray

import (
	"testing"

	"github.com/arloliu/labelarray/errs"
	"github.com/stretchr/testify/require"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want Shape
		err  bool
	}{
		{"equal", Shape{2, 3}, Shape{2, 3}, Shape{2, 3}, false},
		{"row", Shape{2, 3}, Shape{1, 3}, Shape{2, 3}, false},
		{"column", Shape{2, 1}, Shape{2, 3}, Shape{2, 3}, false},
		{"leading axes", Shape{3}, Shape{4, 2, 3}, Shape{4, 2, 3}, false},
		{"scalar", Shape{}, Shape{2, 2}, Shape{2, 2}, false},
		{"incompatible", Shape{2, 3}, Shape{3, 2}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.a, tt.b)
			if tt.err {
				require.ErrorIs(t, err, errs.ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMap(t *testing.T) {
	a := MustNew(seq(4), 2, 2)
	col, err := a.Index(Full(), At(1))
	require.NoError(t, err)

	doubled := Map(col, func(v int64) int64 { return v * 2 })
	require.Equal(t, Shape{2}, doubled.Shape())
	require.Equal(t, []int64{2, 6}, doubled.Flatten())
	require.False(t, doubled.SharesBuffer(a))
}

func TestEqual_Broadcast(t *testing.T) {
	a := MustNew([]string{"x", "y", "y", "x"}, 2, 2)

	row := MustNew([]string{"x", "y"}, 1, 2)
	eq, err := Equal(a, row)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false, false}, eq.Flatten())

	col := MustNew([]string{"y", "x"}, 2, 1)
	ne, err := NotEqual(a, col)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true, false}, ne.Flatten())

	_, err = Equal(a, MustNew([]string{"x", "y", "z"}))
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestAssign(t *testing.T) {
	a := MustNew(seq(6), 2, 3)

	dst, err := a.Index(Full(), Range(0, 2))
	require.NoError(t, err)
	require.NoError(t, Assign(dst, MustNew([]int64{9, 8}, 2)))
	require.Equal(t, []int64{9, 8, 2, 9, 8, 5}, a.Flatten())

	err = Assign(dst, MustNew([]int64{1, 2, 3}))
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestAssign_Overlapping(t *testing.T) {
	a := MustNew(seq(4))

	head, err := a.Index(Range(1, 4))
	require.NoError(t, err)
	tail, err := a.Index(Range(0, 3))
	require.NoError(t, err)

	require.NoError(t, Assign(head, tail))
	require.Equal(t, []int64{0, 0, 1, 2}, a.Flatten())
}

func TestAllAnyTrue(t *testing.T) {
	require.True(t, AllTrue(MustNew([]bool{true, true})))
	require.False(t, AllTrue(MustNew([]bool{true, false})))
	require.True(t, AllTrue(Zeros[bool](0)))
	require.True(t, AnyTrue(MustNew([]bool{false, true})))
	require.False(t, AnyTrue(Filled(false, 2, 2)))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindInt64, KindOf[int64]())
	require.Equal(t, KindString, KindOf[string]())
	require.Equal(t, KindBool, KindOf[bool]())
	require.Equal(t, KindObject, KindOf[any]())
	require.Equal(t, KindUnknown, KindOf[int32]())
	require.Equal(t, "int64", MustNew(seq(1)).Kind().String())
}
