// File: vec/mutate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutating sequence algorithms, written once against the backend contract.
// Each mutator first settles which region is authoritative (spilling when
// growth demands it), then delegates the index-based element movement.

package vec

import "github.com/momentics/smallvec/api"

// PushBack appends val. Growing past the inline capacity spills to heap
// storage first.
func (v *Vec[T]) PushBack(val T) {
	if v.heap == nil && v.n+1 > v.InlineCap() {
		v.spill(v.n + 1)
	}
	v.store().Append(v.n, val)
	v.n++
}

// EmplaceBack appends a zero element and hands it to init for in-place
// construction, returning the element pointer.
func (v *Vec[T]) EmplaceBack(init func(*T)) *T {
	var zero T
	v.PushBack(zero)
	p := v.store().At(v.n - 1)
	if init != nil {
		init(p)
	}
	return p
}

// Insert places val at index i, 0 <= i <= Len(), shifting the elements at
// [i, Len()) one slot rightward, and returns a pointer to the inserted
// element.
func (v *Vec[T]) Insert(i int, val T) *T {
	if v.heap == nil && v.n+1 > v.InlineCap() {
		v.spill(v.n + 1)
	}
	s := v.store()
	s.Insert(i, v.n, val)
	v.n++
	return s.At(i)
}

// Emplace inserts a zero element at i and hands it to init, returning the
// element pointer.
func (v *Vec[T]) Emplace(i int, init func(*T)) *T {
	var zero T
	p := v.Insert(i, zero)
	if init != nil {
		init(p)
	}
	return p
}

// Erase removes element i and returns the index now occupied by its
// successor, which equals Len() when the last element was removed.
func (v *Vec[T]) Erase(i int) int {
	return v.EraseRange(i, i+1)
}

// EraseRange removes [first, last) and returns the index of the first
// surviving element after the removed range, or Len() when none survive.
// An empty range is a no-op.
func (v *Vec[T]) EraseRange(first, last int) int {
	if first >= last {
		return first
	}
	v.store().Erase(first, last, v.n)
	v.n -= last - first
	return first
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vec[T]) PopBack() {
	v.store().Erase(v.n-1, v.n, v.n)
	v.n--
}

// Resize grows or shrinks the vector to count elements, appending zero
// values as needed.
func (v *Vec[T]) Resize(count int) error {
	var zero T
	return v.ResizeWith(count, zero)
}

// ResizeWith grows or shrinks the vector to count elements, appending
// copies of val as needed. Counts beyond MaxLen fail with
// api.ErrLengthOverflow.
func (v *Vec[T]) ResizeWith(count int, val T) error {
	switch {
	case count < 0:
		return api.NewError(api.ErrCodeInvalidArgument, "vec: negative resize").
			WithContext("count", count)
	case count > v.MaxLen():
		return api.NewError(api.ErrCodeLengthOverflow, "vec: resize beyond max length").
			WithContext("count", count).
			WithContext("max", v.MaxLen())
	case count == v.n:
	case count < v.n:
		v.EraseRange(count, v.n)
	default:
		v.Reserve(count)
		for v.n < count {
			v.PushBack(val)
		}
	}
	return nil
}

// Clear destroys all elements. Storage mode is preserved: a spilled vector
// stays heap-backed with its capacity intact, which is what makes cleared
// vectors cheap to reuse.
func (v *Vec[T]) Clear() {
	v.store().Clear(v.n)
	v.n = 0
}

// Append copies other's elements onto the end of v. Appending a vector to
// itself duplicates its contents.
func (v *Vec[T]) Append(other *Vec[T]) {
	if other == nil || other.n == 0 {
		return
	}
	m := other.n
	v.Reserve(v.n + m)
	// Reserve guarantees room for the whole batch, so the source view stays
	// valid even when v and other are the same vector.
	src := other.Data()[:m]
	for i := 0; i < m; i++ {
		v.PushBack(src[i])
	}
}

// AppendMove moves other's elements onto the end of v and clears other.
// No-op when other is v itself, nil, or empty.
func (v *Vec[T]) AppendMove(other *Vec[T]) {
	if other == nil || other == v || other.n == 0 {
		return
	}
	m := other.n
	v.Reserve(v.n + m)
	src := other.Data()
	for i := 0; i < m; i++ {
		v.PushBack(src[i])
	}
	other.Clear()
}

// Swap exchanges contents with other wholesale: inline regions, heap
// holders and size counters. No element-wise work and no allocation.
func (v *Vec[T]) Swap(other *Vec[T]) {
	v.inline, other.inline = other.inline, v.inline
	v.heap, other.heap = other.heap, v.heap
	v.n, other.n = other.n, v.n
}
