package maxheap

import "sync"

// Locked guards a Heap with a single exclusive lock held for the whole of
// every operation. Sift-up and sift-down perform multi-step mutations, so
// readers take the same lock as writers.
type Locked[T any, P Priority] struct {
	mu sync.Mutex
	h  *Heap[T, P]
}

// NewLocked wraps h. The caller must stop using h directly.
func NewLocked[T any, P Priority](h *Heap[T, P]) *Locked[T, P] {
	return &Locked[T, P]{h: h}
}

// Len returns the number of entries.
func (l *Locked[T, P]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.Len()
}

// Insert is Heap.Insert under the lock.
func (l *Locked[T, P]) Insert(payload T, priority P) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.Insert(payload, priority)
}

// Push is Heap.Push under the lock.
func (l *Locked[T, P]) Push(e Entry[T, P]) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.Push(e)
}

// Peek is Heap.Peek under the lock.
func (l *Locked[T, P]) Peek() (Entry[T, P], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.Peek()
}

// ExtractMax is Heap.ExtractMax under the lock.
func (l *Locked[T, P]) ExtractMax() (Entry[T, P], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.ExtractMax()
}

// DeleteByPriority is Heap.DeleteByPriority under the lock.
func (l *Locked[T, P]) DeleteByPriority(target P) (Entry[T, P], error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.DeleteByPriority(target)
}

// Valid is Heap.Valid under the lock.
func (l *Locked[T, P]) Valid() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.Valid()
}

// Entries is a consistent snapshot of the storage order. The copy is the
// caller's; later operations do not change it.
func (l *Locked[T, P]) Entries() []Entry[T, P] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.Entries()
}

// Drain empties the heap in one critical section, so no concurrent Insert
// can interleave with the returned order.
func (l *Locked[T, P]) Drain() []Entry[T, P] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.h.Drain()
}
