// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse pooling for scratch vectors.
// A cleared vector keeps its storage mode and heap capacity, so recycling
// vectors through a pool amortizes both the spillover and the heap growth
// across uses. See vecs.go.
package pool
