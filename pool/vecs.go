// File: pool/vecs.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"sync"

	"github.com/momentics/smallvec/api"
	"github.com/momentics/smallvec/vec"
)

// Vecs is a pool of scratch vectors built on sync.Pool. Put clears the
// vector but keeps whatever heap capacity it grew, so heavily used pools
// converge on vectors that never reallocate.
type Vecs[T any] struct {
	pool *sync.Pool
}

// NewVecs creates a new vector pool.
func NewVecs[T any]() *Vecs[T] {
	return &Vecs[T]{
		pool: &sync.Pool{New: func() any { return vec.New[T]() }},
	}
}

// Get returns an empty vector from the pool.
func (vp *Vecs[T]) Get() *vec.Vec[T] {
	return vp.pool.Get().(*vec.Vec[T])
}

// Put clears v and returns it for reuse. v must not be used afterwards.
func (vp *Vecs[T]) Put(v *vec.Vec[T]) {
	if v == nil {
		return
	}
	v.Clear()
	vp.pool.Put(v)
}

var _ api.Pool[*vec.Vec[int]] = (*Vecs[int])(nil)
