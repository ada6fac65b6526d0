// Package vec
// Author: momentics <momentics@gmail.com>
//
// Small-buffer vector for allocation-sensitive paths.
// Vec stores small element counts in a fixed inline region with no heap
// allocation and migrates once, irreversibly, to a heap-backed growable
// array when the inline capacity is exceeded. Both regions sit behind the
// api.Store backend contract so the sequence algorithms are written once.
// See sizing.go for the cache-line driven inline capacity heuristic.
package vec
