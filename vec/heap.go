// File: vec/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap region: the spillover target.

package vec

import "slices"

// heapStore delegates storage to a conventional growable array with
// amortized doubling growth. Once installed it stays authoritative for the
// life of the container; the element count always equals len(data).
type heapStore[T any] struct {
	data []T
}

func newHeapStore[T any](capacity int) *heapStore[T] {
	return &heapStore[T]{data: make([]T, 0, capacity)}
}

func (h *heapStore[T]) At(i int) *T { return &h.data[i] }

func (h *heapStore[T]) Set(i int, v T) { h.data[i] = v }

func (h *heapStore[T]) Append(_ int, v T) { h.data = append(h.data, v) }

func (h *heapStore[T]) Insert(i, _ int, v T) { h.data = slices.Insert(h.data, i, v) }

func (h *heapStore[T]) Erase(first, last, _ int) { h.data = slices.Delete(h.data, first, last) }

func (h *heapStore[T]) Cap() int { return cap(h.data) }

// Reserve grows capacity to hold at least n elements; no-op when already
// satisfied.
func (h *heapStore[T]) Reserve(n int) {
	if extra := n - len(h.data); extra > 0 {
		h.data = slices.Grow(h.data, extra)
	}
}

// Trim releases capacity beyond the live length.
func (h *heapStore[T]) Trim() { h.data = slices.Clip(h.data) }

func (h *heapStore[T]) View(int) []T { return h.data }

// Clear destroys all elements, keeping capacity for reuse.
func (h *heapStore[T]) Clear(int) {
	clear(h.data)
	h.data = h.data[:0]
}
