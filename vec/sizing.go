// File: vec/sizing.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pure sizing heuristics for the inline region. Everything here is a
// function of the element size only, fixed per instantiation.

package vec

import (
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	// cacheLineBytes drives the inline sizing heuristic: small elements
	// get enough inline slots to fill one cache line.
	cacheLineBytes = int(unsafe.Sizeof(cpu.CacheLinePad{}))

	// maxInlineBytes caps the live inline region for mid-sized elements.
	maxInlineBytes = 256

	// defaultSlots is the fallback count for elements that do not fit a
	// cache line.
	defaultSlots = 8

	// inlineSlots is the physical length of the inline backing array. Go
	// array lengths cannot vary with a type parameter, so the usable
	// capacity computed by inlineCapOf is a clamped prefix of this array.
	inlineSlots = 8
)

// inlineCapOf reports the usable inline capacity for elements of the given
// size: one cache line's worth when the element fits in a line, otherwise
// defaultSlots, capped by the maxInlineBytes budget and by the physical
// array length, and never less than one element.
func inlineCapOf(size uintptr) int {
	if size == 0 {
		return inlineSlots
	}
	n := defaultSlots
	if int(size) <= cacheLineBytes {
		n = cacheLineBytes / int(size)
	}
	if byteCap := maxInlineBytes / int(size); n > byteCap {
		n = byteCap
	}
	if n > inlineSlots {
		n = inlineSlots
	}
	if n < 1 {
		n = 1
	}
	return n
}

// maxLenOf is the largest element count whose total byte size stays
// addressable for the given element size.
func maxLenOf(size uintptr) int {
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / int(size)
}

// elemSize reports the in-memory size of T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
