package cache

// Pool is a fixed-capacity circular arena. Acquire hands out the next slot and
// overwrites whatever a previous caller stored there once the cursor wraps, so
// a pooled value is only valid until the slot is handed out again. Callers copy
// the fields they need before acquiring further slots from the same pool and
// never keep a pointer across a frame boundary.
type Pool[T any] struct {
	slots []T
	gens  []uint64
	next  int
	gen   uint64
}

// Lease identifies one acquisition of a pool slot.
type Lease struct {
	idx int
	gen uint64
}

// NewPool allocates a pool with size slots.
func NewPool[T any](size int) *Pool[T] {
	if size <= 0 {
		size = 1
	}
	return &Pool[T]{slots: make([]T, size), gens: make([]uint64, size)}
}

// Acquire returns the next slot, zeroed, together with a lease that can later
// tell whether the slot has been handed out again.
func (p *Pool[T]) Acquire() (*T, Lease) {
	i := p.next
	p.next = (p.next + 1) % len(p.slots)
	p.gen++
	p.gens[i] = p.gen
	var zero T
	p.slots[i] = zero
	return &p.slots[i], Lease{idx: i, gen: p.gen}
}

// Live reports whether the leased slot still holds the value written after
// its acquisition.
func (p *Pool[T]) Live(l Lease) bool {
	if l.idx < 0 || l.idx >= len(p.gens) {
		return false
	}
	return p.gens[l.idx] == l.gen
}

// Reset moves the cursor back to the first slot. Outstanding leases become
// stale as soon as their slot is acquired again.
func (p *Pool[T]) Reset() { p.next = 0 }

// Acquired returns how many slots have been handed out since creation.
func (p *Pool[T]) Acquired() uint64 { return p.gen }

// Cap returns the slot count.
func (p *Pool[T]) Cap() int { return len(p.slots) }
