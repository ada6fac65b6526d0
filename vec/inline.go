// File: vec/inline.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity inline region with explicit slot lifecycle.

package vec

// inlineStore is the inline region: a fixed array manipulated through
// explicit construct (write) and destroy (zero) steps. Slots beyond the
// live prefix always hold the zero value, so the collector never sees a
// stale reference through a vacated slot.
type inlineStore[T any] struct {
	slots [inlineSlots]T
}

func (s *inlineStore[T]) At(i int) *T { return &s.slots[i] }

func (s *inlineStore[T]) Set(i int, v T) { s.slots[i] = v }

func (s *inlineStore[T]) Append(n int, v T) { s.slots[n] = v }

// Insert opens a gap at i by shifting [i, n) rightward, highest index
// first. Each shift moves the element and destroys the vacated source slot
// before v is constructed in the gap.
func (s *inlineStore[T]) Insert(i, n int, v T) {
	for j := n; j > i; j-- {
		s.slots[j] = s.slots[j-1]
		s.zero(j - 1)
	}
	s.slots[i] = v
}

// Erase destroys [first, last), then closes the gap by shifting the tail
// [last, n) leftward, lowest index first.
func (s *inlineStore[T]) Erase(first, last, n int) {
	for j := first; j < last; j++ {
		s.zero(j)
	}
	d := last - first
	for j := last; j < n; j++ {
		s.slots[j-d] = s.slots[j]
		s.zero(j)
	}
}

func (s *inlineStore[T]) Cap() int { return inlineCapOf(elemSize[T]()) }

// Reserve is a no-op: the region is fixed-size and the container spills
// before the capacity could be exceeded.
func (s *inlineStore[T]) Reserve(int) {}

// Trim is a no-op while inline-authoritative.
func (s *inlineStore[T]) Trim() {}

func (s *inlineStore[T]) View(n int) []T { return s.slots[:n] }

// Clear destroys the live prefix in descending index order.
func (s *inlineStore[T]) Clear(n int) {
	for i := n - 1; i >= 0; i-- {
		s.zero(i)
	}
}

// zero destroys the element at i. Resetting the slot is what releases
// anything the element referenced.
func (s *inlineStore[T]) zero(i int) {
	var zero T
	s.slots[i] = zero
}

// take moves the element out of slot i, leaving the slot destroyed.
func (s *inlineStore[T]) take(i int) T {
	v := s.slots[i]
	s.zero(i)
	return v
}
