// Package common holds the unsafe aliasing helpers shared by the rc
// constructors. All pointer reinterpretation in the module lives here.
package common

import "unsafe"

// BytesToString aliases b as a string without copying. The caller gives up
// the buffer: mutating b afterwards breaks string immutability.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Clip shrinks the capacity of v to its length. Appends through other
// references to the same array can then no longer alias v's elements.
func Clip[E any](v []E) []E {
	return v[:len(v):len(v)]
}

// SameData reports whether two slices share a backing array start. Used by
// tests to prove an adoption did not copy.
func SameData[E any](a, b []E) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
