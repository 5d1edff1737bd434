package rc

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// Comparison and hashing delegate to the values behind the handles. This is
// value identity, not allocation identity: two independently constructed
// handles over equal content compare and hash equal.

// Equal reports whether a and b point at equal values.
func Equal[T comparable](a, b *Rc[T]) bool {
	return a.Value() == b.Value()
}

// EqualFunc is Equal for value types without a built-in comparison.
func EqualFunc[T any](a, b *Rc[T], eq func(T, T) bool) bool {
	return eq(a.Value(), b.Value())
}

// EqualSlices reports whether a and b point at element-wise equal slices.
func EqualSlices[E comparable](a, b *Rc[[]E]) bool {
	return slices.Equal(a.Value(), b.Value())
}

// Compare orders two handles by their values.
func Compare[T cmp.Ordered](a, b *Rc[T]) int {
	return cmp.Compare(a.Value(), b.Value())
}

// Hash hashes the value behind p. Handles over equal values hash equal
// under the same seed.
func Hash[T comparable](seed maphash.Seed, p *Rc[T]) uint64 {
	return maphash.Comparable(seed, p.Value())
}

// HashBytes hashes the byte content behind p.
func HashBytes(seed maphash.Seed, p *Rc[[]byte]) uint64 {
	return maphash.Bytes(seed, p.Value())
}
