// Package pool hands out byte buffers from size-tiered sync.Pools as
// counted handles. The last Release of a handle returns its buffer to the
// tier it came from, so pooled memory is recycled exactly once no matter how
// many owners the buffer had.
package pool

import (
	"sync"

	"github.com/rawbytedev/rc"
)

// Pool tiers. Requests above the largest tier fall through to plain
// allocation and are left to the garbage collector on release.
const (
	Size512 = 1 << 9  // 512 bytes
	Size4K  = 1 << 12 // 4 KB
	Size64K = 1 << 16 // 64 KB
	Size1M  = 1 << 20 // 1 MB
)

var (
	pool512 = sync.Pool{New: func() any { return make([]byte, Size512) }}
	pool4K  = sync.Pool{New: func() any { return make([]byte, Size4K) }}
	pool64K = sync.Pool{New: func() any { return make([]byte, Size64K) }}
	pool1M  = sync.Pool{New: func() any { return make([]byte, Size1M) }}
)

// Bytes returns a counted handle over a pooled buffer of the given size.
// The buffer's teardown puts it back in its tier.
func Bytes(size int) *rc.Rc[[]byte] {
	b := alloc(size)
	return rc.AdoptFunc(&b, func(pb *[]byte) { free(*pb) })
}

// alloc returns a buffer of the requested length from the smallest tier
// that fits, or a direct allocation if none does.
func alloc(size int) []byte {
	switch {
	case size <= Size512:
		return pool512.Get().([]byte)[:size]
	case size <= Size4K:
		return pool4K.Get().([]byte)[:size]
	case size <= Size64K:
		return pool64K.Get().([]byte)[:size]
	case size <= Size1M:
		return pool1M.Get().([]byte)[:size]
	default:
		return make([]byte, size)
	}
}

// free returns a buffer to the tier matching its capacity. Buffers that did
// not come from a tier are left to the garbage collector.
func free(buf []byte) {
	if buf == nil {
		return
	}
	switch cap(buf) {
	case Size512:
		pool512.Put(buf[:cap(buf)])
	case Size4K:
		pool4K.Put(buf[:cap(buf)])
	case Size64K:
		pool64K.Put(buf[:cap(buf)])
	case Size1M:
		pool1M.Put(buf[:cap(buf)])
	}
}
