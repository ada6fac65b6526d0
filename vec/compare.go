// File: vec/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

import "slices"

// Equal reports whether a and b hold the same elements in the same order.
// Storage mode does not participate: an inline vector equals a spilled one
// with the same contents. A nil vector equals an empty one.
func Equal[T comparable](a, b *Vec[T]) bool {
	return slices.Equal(view(a), view(b))
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T1, T2 any](a *Vec[T1], b *Vec[T2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(view(a), view(b), eq)
}

func view[T any](v *Vec[T]) []T {
	if v == nil {
		return nil
	}
	return v.Data()
}
