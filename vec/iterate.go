// File: vec/iterate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

import "iter"

// All returns a forward iterator over (index, element) pairs. Like Data,
// the iteration reads the authoritative region directly and is invalidated
// by spillover or by shifting mutations.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range v.Data() {
			if !yield(i, val) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over (index, element) pairs: the same
// contiguous range as All, traversed in decreasing index order.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		d := v.Data()
		for i := len(d) - 1; i >= 0; i-- {
			if !yield(i, d[i]) {
				return
			}
		}
	}
}

// Values returns a forward iterator over elements alone.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.Data() {
			if !yield(val) {
				return
			}
		}
	}
}
