// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines the abstract pooling API for object reuse.

package api

// Pool provides generic pooling of objects allocated transiently.
type Pool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}
