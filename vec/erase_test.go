// File: vec/erase_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/smallvec/vec"
)

func TestEraseSingle(t *testing.T) {
	v := vec.New[int]()
	for i := 0; i < 10; i++ {
		v.PushBack(i)
	}

	v.Erase(1) // second element
	pos := v.Erase(0)
	require.Equal(t, 2, v.Get(pos))
	require.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, v.Data())

	pos = v.Erase(v.Len() - 1) // last element
	require.Equal(t, v.Len(), pos, "erasing the tail returns the end position")
	require.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, v.Data())
}

func TestEraseRange(t *testing.T) {
	v := vec.Of(1, 2, 3, 4, 5, 6, 7)

	pos := v.EraseRange(1, 3)
	require.Equal(t, []int{1, 4, 5, 6, 7}, v.Data())
	require.Equal(t, 4, v.Get(pos))

	pos = v.Erase(0)
	require.Equal(t, []int{4, 5, 6, 7}, v.Data())
	require.Equal(t, 4, v.Get(pos))
}

func TestEraseRangeEmptyIsNoop(t *testing.T) {
	v := vec.Of(1, 2, 3)
	pos := v.EraseRange(1, 1)
	require.Equal(t, 1, pos)
	require.Equal(t, []int{1, 2, 3}, v.Data())
}

func TestEraseWholeVector(t *testing.T) {
	v := vec.Of(1, 2, 3)
	pos := v.EraseRange(0, v.Len())
	require.Equal(t, 0, pos)
	require.Equal(t, v.Len(), pos)
	require.True(t, v.IsEmpty())
}

func TestEraseHeapMode(t *testing.T) {
	v := vec.New[int]()
	for i := 0; i < 12; i++ {
		v.PushBack(i)
	}
	require.True(t, v.Spilled())

	v.EraseRange(2, 5)
	require.Equal(t, []int{0, 1, 5, 6, 7, 8, 9, 10, 11}, v.Data())
	require.True(t, v.Spilled())
}

func TestPopBack(t *testing.T) {
	v := vec.Of(4, 5, 6, 7, 8)
	v.PopBack()
	require.Equal(t, 7, v.Back())
	require.Equal(t, 4, v.Len())

	for !v.IsEmpty() {
		v.PopBack()
	}
	require.Equal(t, 0, v.Len())

	require.Panics(t, func() { v.PopBack() })
}

func TestClear(t *testing.T) {
	v := vec.Of(1, 2, 3, 4, 5)
	v.Clear()
	require.Equal(t, 0, v.Len())
	require.True(t, v.IsEmpty())
	require.True(t, v.Inline(), "clearing never changes the storage mode")

	for i := 0; i < 12; i++ {
		v.PushBack(i)
	}
	capBefore := v.Cap()
	v.Clear()
	require.True(t, v.Spilled())
	require.Equal(t, capBefore, v.Cap(), "heap capacity survives a clear")
}
