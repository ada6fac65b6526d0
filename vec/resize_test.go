// File: vec/resize_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/smallvec/api"
	"github.com/momentics/smallvec/vec"
)

func TestResizeGrowWithValue(t *testing.T) {
	v := vec.Of(1, 2, 3, 4, 5)

	require.NoError(t, v.ResizeWith(10, 5))
	require.Equal(t, 10, v.Len())
	for i := 0; i < 5; i++ {
		require.Equal(t, i+1, v.Get(i))
	}
	for i := 5; i < 10; i++ {
		require.Equal(t, 5, v.Get(i))
	}
}

func TestResizeGrowZero(t *testing.T) {
	v := vec.Of(7)
	require.NoError(t, v.Resize(4))
	require.Equal(t, []int{7, 0, 0, 0}, v.Data())
	require.True(t, v.Inline())
}

func TestResizeShrink(t *testing.T) {
	v := vec.Of(1, 2, 3, 4, 5)
	require.NoError(t, v.Resize(2))
	require.Equal(t, []int{1, 2}, v.Data())
}

func TestResizeSameCountIsNoop(t *testing.T) {
	v := vec.Of(1, 2, 3)
	require.NoError(t, v.Resize(3))
	require.Equal(t, []int{1, 2, 3}, v.Data())
	require.True(t, v.Inline())
}

func TestResizeErrors(t *testing.T) {
	v := vec.Of(1, 2, 3)

	err := v.Resize(-1)
	require.ErrorIs(t, err, api.ErrInvalidArgument)

	err = v.Resize(v.MaxLen() + 1)
	require.ErrorIs(t, err, api.ErrLengthOverflow)

	require.Equal(t, []int{1, 2, 3}, v.Data(), "failed resize leaves the vector alone")
}

func TestResizePastInlineSpills(t *testing.T) {
	v := vec.Of(1, 2, 3)
	require.NoError(t, v.ResizeWith(20, 9))
	require.True(t, v.Spilled())
	require.Equal(t, 20, v.Len())
	require.Equal(t, 9, v.Back())
}

// size always matches the count a plain slice oracle produces for the same
// operation sequence.
func TestSizeAgainstSliceOracle(t *testing.T) {
	v := vec.New[int]()
	var oracle []int

	push := func(x int) {
		v.PushBack(x)
		oracle = append(oracle, x)
	}
	insert := func(i, x int) {
		v.Insert(i, x)
		oracle = append(oracle[:i], append([]int{x}, oracle[i:]...)...)
	}
	erase := func(i, j int) {
		v.EraseRange(i, j)
		oracle = append(oracle[:i], oracle[j:]...)
	}

	for i := 0; i < 30; i++ {
		push(i)
	}
	insert(0, -1)
	insert(15, -2)
	erase(3, 9)
	erase(0, 1)
	v.PopBack()
	oracle = oracle[:len(oracle)-1]
	insert(len(oracle), 99)

	require.Equal(t, len(oracle), v.Len())
	require.Equal(t, oracle, v.Data())
}
