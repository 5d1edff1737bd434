// Package rc implements a shared-ownership pointer over immutable values.
//
// An Rc hands the same heap-allocated value to any number of owners and runs
// its teardown hook exactly once, when the last owner releases it. Unlike a
// plain Go pointer, an Rc keeps an observable live-handle count and supports
// adopting an allocation that already exists (a slice, a string buffer, a
// pooled []byte) without copying or relocating it.
//
// Layout: a handle holds two references, one to the counter cell and one to
// the value. The two are separate allocations on purpose, so that adoption
// never has to move the value next to its counter.
//
//	handle          |  heap
//	+-----------+   |
//	| count ----|---|-> 3
//	| data  ----|---|-> "Hello, world!"
//	+-----------+   |
//
// The count is a plain int, not an atomic. Handles sharing a value must stay
// on the goroutine that created the first one; hand the value itself (never
// a handle) to other goroutines. Concurrent Clone/Release would corrupt the
// count or double-run the teardown hook, and the race detector will flag it.
package rc

// cell is the counter allocation shared by every handle to one value. The
// teardown hook lives here rather than in the handle so all handles agree on
// it and it can be dropped once run.
type cell struct {
	refs int
	drop func()
}

// Rc is a handle to a shared immutable value.
//
// Handles are created by the constructors in this package and by Clone;
// the zero Rc and by-value copies of an Rc are invalid (go vet flags the
// latter). A released handle must not be used again: Value, Clone and Count
// panic on it, while Release is a no-op.
type Rc[T any] struct {
	noCopy noCopy

	// count is nil exactly when this handle has been released.
	count *cell
	data  *T
}

// New allocates v on the heap and returns the first handle to it, with a
// count of one.
//
// If the value already lives on the heap, use Adopt instead to avoid the
// extra copy.
func New[T any](v T) *Rc[T] {
	return Adopt(&v)
}

// Adopt takes ownership of an already-allocated value without copying or
// relocating it. Only the counter cell is freshly allocated. The caller must
// not use box afterwards; the value now belongs to the returned handle and
// its clones.
//
// Adopt is the primitive every other constructor funnels through.
func Adopt[T any](box *T) *Rc[T] {
	return AdoptFunc(box, nil)
}

// AdoptFunc is Adopt with a teardown hook. drop runs exactly once, with the
// adopted allocation, when the last handle is released. A nil drop means the
// value needs no teardown beyond garbage collection.
func AdoptFunc[T any](box *T, drop func(*T)) *Rc[T] {
	if box == nil {
		panic("rc: adopt of nil allocation")
	}
	c := &cell{refs: 1}
	if drop != nil {
		c.drop = func() { drop(box) }
	}
	return &Rc[T]{count: c, data: box}
}

// Clone returns a new handle to the same value and raises the count by one.
// The value itself is not copied.
func (p *Rc[T]) Clone() *Rc[T] {
	p.use("Clone")
	p.count.refs++
	return &Rc[T]{count: p.count, data: p.data}
}

// Count returns the number of live handles currently sharing the value.
func (p *Rc[T]) Count() int {
	p.use("Count")
	return p.count.refs
}

// Value returns the shared value. The value is shared and immutable for as
// long as any handle exists: callers must not mutate anything reachable
// through it (the backing array of a slice, for example).
func (p *Rc[T]) Value() T {
	p.use("Value")
	return *p.data
}

// Release drops this handle. When the count reaches zero the teardown hook
// runs and the counter and value are let go, exactly once. Releasing an
// already-released handle does nothing, so a deferred Release is safe next
// to an explicit one.
func (p *Rc[T]) Release() {
	c := p.count
	if c == nil {
		return
	}
	// Mark released before touching the count, so a teardown hook that
	// reaches this handle again sees a dead handle.
	p.count = nil
	p.data = nil
	c.refs--
	if c.refs < 0 {
		panic("rc: negative refcount")
	}
	if c.refs == 0 {
		if c.drop != nil {
			c.drop()
			c.drop = nil
		}
	}
}

func (p *Rc[T]) use(op string) {
	if p.count == nil {
		panic("rc: " + op + " on released handle")
	}
}

// noCopy trips the go vet copylocks check on by-value copies of Rc.
// Duplicating a handle without going through Clone would desynchronize the
// count from the number of live handles.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
