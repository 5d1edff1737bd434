package rc

import "github.com/rawbytedev/rc/internal/common"

// Constructors for values whose size is only known at run time: slices,
// text, and anything reached through an interface or func value. The handle
// stays two references wide; the length (or dispatch) word rides inside the
// boxed slice, string, interface or func header.

// FromSlice copies s into a fresh buffer of exactly len(s) elements and
// adopts the copy. The caller keeps ownership of s. O(len(s)).
func FromSlice[E any](s []E) *Rc[[]E] {
	own := make([]E, len(s))
	copy(own, s)
	return Adopt(&own)
}

// FromBytes is FromSlice for byte data.
func FromBytes(b []byte) *Rc[[]byte] {
	return FromSlice(b)
}

// FromString adopts a boxed copy of the string header. Go strings are
// immutable, so unlike FromSlice no byte copy is needed: sharing the backing
// bytes is already safe. O(1).
func FromString(s string) *Rc[string] {
	return Adopt(&s)
}

// AdoptSlice takes ownership of v without copying its elements. The capacity
// is clipped to the length first, so an append through a stale reference to
// v cannot write into the shared elements. The caller must not use v
// afterwards.
func AdoptSlice[E any](v []E) *Rc[[]E] {
	own := common.Clip(v)
	return Adopt(&own)
}

// AdoptString reinterprets an owned byte buffer as text and adopts it
// without copying. The bytes are assumed to hold valid UTF-8 from their
// origin; this is not re-checked. The caller must not read or write b
// afterwards, the bytes now back the shared string.
func AdoptString(b []byte) *Rc[string] {
	s := common.BytesToString(b)
	return Adopt(&s)
}
