// File: vec/vec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vec core: construction, storage selection, spillover, capacity, access.

package vec

import (
	"github.com/momentics/smallvec/api"
)

// Vec is a contiguous growable sequence of T. Up to InlineCap elements live
// in a fixed inline region inside the struct, with no heap allocation; the
// first growth beyond that spills all elements into a heap-backed array,
// and the container stays heap-backed from then on even if it shrinks.
//
// The zero value is an empty vector ready for use. Share a Vec by pointer:
// copying the value while heap-backed aliases the heap region.
//
// Vec is not synchronized. Exclusive mutable access or shared read-only
// access is the caller's responsibility, as with a plain slice.
type Vec[T any] struct {
	inline inlineStore[T]
	heap   *heapStore[T]
	n      int
}

var (
	_ api.Store[int] = (*inlineStore[int])(nil)
	_ api.Store[int] = (*heapStore[int])(nil)
)

// New returns an empty vector. Equivalent to &Vec[T]{}.
func New[T any]() *Vec[T] { return &Vec[T]{} }

// NewLen returns a vector of n zero-value elements. Panics if n is not a
// valid length.
func NewLen[T any](n int) *Vec[T] {
	v := &Vec[T]{}
	if err := v.Resize(n); err != nil {
		panic(err)
	}
	return v
}

// NewFill returns a vector of n copies of val. Panics if n is not a valid
// length.
func NewFill[T any](n int, val T) *Vec[T] {
	v := &Vec[T]{}
	if err := v.ResizeWith(n, val); err != nil {
		panic(err)
	}
	return v
}

// Of returns a vector holding the given elements in order.
func Of[T any](vals ...T) *Vec[T] {
	v := &Vec[T]{}
	v.Reserve(len(vals))
	for _, val := range vals {
		v.PushBack(val)
	}
	return v
}

// store selects the authoritative region. The heap pointer doubles as the
// mode tag: nil means the inline region is authoritative.
func (v *Vec[T]) store() api.Store[T] {
	if v.heap != nil {
		return v.heap
	}
	return &v.inline
}

// spill performs the one-way transition from inline to heap storage,
// reserving the given capacity. Live inline elements move over in ascending
// index order and every vacated slot is destroyed. The transition never
// reverses.
func (v *Vec[T]) spill(capacity int) {
	if v.heap != nil {
		panic("vec: spillover with heap region already installed")
	}
	if capacity < v.n {
		panic("vec: spillover capacity below live count")
	}
	h := newHeapStore[T](capacity)
	for i := 0; i < v.n; i++ {
		h.Append(i, v.inline.take(i))
	}
	v.heap = h
}

// ----- CAPACITY -----

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.n }

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.n == 0 }

// Cap returns the inline capacity until spillover and the heap region's
// capacity afterwards. It never reverts to the inline figure.
func (v *Vec[T]) Cap() int { return v.store().Cap() }

// InlineCap returns the configured inline capacity for this element type.
// Exposed for testing and tuning; correctness never depends on it.
func (v *Vec[T]) InlineCap() int { return inlineCapOf(elemSize[T]()) }

// MaxLen is the largest length the vector can be asked to grow to.
func (v *Vec[T]) MaxLen() int { return maxLenOf(elemSize[T]()) }

// Inline reports whether the inline region is authoritative.
func (v *Vec[T]) Inline() bool { return v.heap == nil }

// Spilled reports whether the vector has transitioned to heap storage.
func (v *Vec[T]) Spilled() bool { return v.heap != nil }

// Reserve ensures capacity for at least n elements. Requests within the
// inline capacity are no-ops; anything larger triggers spillover, or grows
// the heap region if spillover already happened.
func (v *Vec[T]) Reserve(n int) {
	if n <= v.InlineCap() {
		return
	}
	if v.heap == nil {
		v.spill(n)
		return
	}
	v.heap.Reserve(n)
}

// ReserveChecked is Reserve with a length check, for counts that come from
// untrusted arithmetic.
func (v *Vec[T]) ReserveChecked(n int) error {
	if n < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "vec: negative reserve").
			WithContext("count", n)
	}
	if n > v.MaxLen() {
		return api.NewError(api.ErrCodeLengthOverflow, "vec: reserve beyond max length").
			WithContext("count", n).
			WithContext("max", v.MaxLen())
	}
	v.Reserve(n)
	return nil
}

// Shrink releases surplus heap capacity. No-op while inline-authoritative.
func (v *Vec[T]) Shrink() { v.store().Trim() }

// ----- ELEMENT ACCESS -----

// At returns a pointer to element i, or an error wrapping api.ErrOutOfRange
// when i is not a live index.
func (v *Vec[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.n {
		return nil, api.NewError(api.ErrCodeOutOfRange, "vec: at").
			WithContext("index", i).
			WithContext("len", v.n)
	}
	return v.store().At(i), nil
}

// Get returns element i with no bounds check. Callers must keep i < Len().
func (v *Vec[T]) Get(i int) T { return *v.store().At(i) }

// Set overwrites element i with no bounds check.
func (v *Vec[T]) Set(i int, val T) { v.store().Set(i, val) }

// Ptr returns a pointer to element i with no bounds check. The pointer is
// invalidated by spillover and by shifts at or before i.
func (v *Vec[T]) Ptr(i int) *T { return v.store().At(i) }

// Front returns the first element. The vector must not be empty.
func (v *Vec[T]) Front() T { return v.Get(0) }

// Back returns the last element. The vector must not be empty.
func (v *Vec[T]) Back() T { return v.Get(v.n - 1) }

// Data returns the live elements as one contiguous slice in both storage
// modes. The view is invalidated by the same operations that invalidate Ptr.
func (v *Vec[T]) Data() []T { return v.store().View(v.n) }
