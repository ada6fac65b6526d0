// File: api/store.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage backend contract for sequence containers with dual storage modes.

package api

// Store is the storage backend for a contiguous sequence of T. Exactly one
// Store is authoritative for a container at any time; the container owns the
// logical element count and passes it in wherever the backend needs it, so a
// backend never tracks size on its own.
//
// Index arguments follow the usual half-open conventions. Bounds are the
// caller's responsibility: a Store performs no checking of its own.
type Store[T any] interface {
	// At returns a pointer to the element at index i.
	At(i int) *T

	// Set overwrites the element at index i.
	Set(i int, v T)

	// Append writes v at index n, the current element count.
	Append(n int, v T)

	// Insert opens a gap at index i by shifting [i, n) one slot rightward
	// and writes v into the gap.
	Insert(i, n int, v T)

	// Erase removes [first, last), shifting the tail [last, n) leftward.
	// Vacated slots hold no live elements afterwards.
	Erase(first, last, n int)

	// Cap reports the current element capacity of the backend.
	Cap() int

	// Reserve ensures capacity for at least n elements. It is a no-op if
	// the capacity is already sufficient, or if the backend is fixed-size.
	Reserve(n int)

	// Trim releases surplus capacity where the backend supports it.
	Trim()

	// View returns the contiguous live region holding the first n elements.
	View(n int) []T

	// Clear destroys the first n elements, leaving capacity in place.
	Clear(n int)
}
