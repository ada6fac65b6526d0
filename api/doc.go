// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract layer for the smallvec library.
// Defines the storage backend interface shared by the inline and heap
// regions, the pooling contract, and the library error taxonomy.
// The package is dependency-free so that implementation packages stay
// free to choose their own stacks.
package api
