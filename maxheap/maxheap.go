// Every exported method in this file leaves the max-heap property intact:
// for each non-root slot i, priority(parent(i)) >= priority(i).

package maxheap

import (
	"fmt"
)

// Heap is an array-backed binary max-heap.
//
// The zero value is an empty growable heap.
// A Heap is not safe for concurrent use; see Locked.
type Heap[T any, P Priority] struct {
	// items[0] is unused; the active range is items[1:].
	items []Entry[T, P]

	// capacity bounds Len(); 0 means growable.
	capacity int
}

// New returns an empty heap configured by opts.
// Returns ErrOptionViolation for an invalid option.
func New[T any, P Priority](opts ...Option) (*Heap[T, P], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	size := 1
	if o.Capacity > 0 {
		size += o.Capacity
	}

	return &Heap[T, P]{
		items:    make([]Entry[T, P], 1, size),
		capacity: o.Capacity,
	}, nil
}

// Build loads entries in the given order and restores the heap property
// bottom-up. The input slice is copied, never aliased.
//
// Error Conditions:
//   - ErrOptionViolation : invalid option.
//   - ErrOverflow        : len(entries) exceeds a fixed capacity.
//   - ErrBadPriority     : an entry carries a NaN priority.
//
// Complexity: O(n) time, O(n) memory.
func Build[T any, P Priority](entries []Entry[T, P], opts ...Option) (*Heap[T, P], error) {
	h, err := New[T, P](opts...)
	if err != nil {
		return nil, err
	}
	if h.capacity > 0 && len(entries) > h.capacity {
		return nil, fmt.Errorf("%w: %d entries for capacity %d", ErrOverflow, len(entries), h.capacity)
	}
	for i, e := range entries {
		if isNaN(e.Priority) {
			return nil, fmt.Errorf("%w: entry %d", ErrBadPriority, i)
		}
	}

	h.items = append(h.items, entries...)
	h.heapify()

	return h, nil
}

// Len returns the number of entries currently held.
func (h *Heap[T, P]) Len() int {
	if len(h.items) == 0 {
		return 0
	}

	return len(h.items) - 1
}

// Cap returns the fixed capacity, or 0 for a growable heap.
func (h *Heap[T, P]) Cap() int { return h.capacity }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[T, P]) IsEmpty() bool { return h.Len() == 0 }

// IsFull reports whether a fixed-capacity heap has no free slot.
// A growable heap is never full.
func (h *Heap[T, P]) IsFull() bool {
	return h.capacity > 0 && h.Len() >= h.capacity
}

// Insert adds payload with the given priority.
// The new entry is appended at slot Len()+1 and sifted up.
//
// Returns ErrOverflow when the heap is full and ErrBadPriority for NaN;
// in both cases the heap is unchanged.
// Complexity: O(log n).
func (h *Heap[T, P]) Insert(payload T, priority P) error {
	return h.Push(Entry[T, P]{Payload: payload, Priority: priority})
}

// Push is Insert taking a ready-made Entry.
func (h *Heap[T, P]) Push(e Entry[T, P]) error {
	if isNaN(e.Priority) {
		return ErrBadPriority
	}
	if h.IsFull() {
		return fmt.Errorf("%w: capacity %d", ErrOverflow, h.capacity)
	}

	if h.items == nil {
		h.items = make([]Entry[T, P], 1)
	}
	h.items = append(h.items, e)
	h.siftUp(h.Len())

	return nil
}

// Peek returns the root entry without removing it.
// The boolean is false when the heap is empty.
func (h *Heap[T, P]) Peek() (Entry[T, P], bool) {
	if h.IsEmpty() {
		var zero Entry[T, P]
		return zero, false
	}

	return h.items[1], true
}

// ExtractMax removes and returns the root entry.
// The last entry takes the root slot and is sifted down.
// The boolean is false when the heap is empty.
// Complexity: O(log n).
func (h *Heap[T, P]) ExtractMax() (Entry[T, P], bool) {
	if h.IsEmpty() {
		var zero Entry[T, P]
		return zero, false
	}

	root := h.items[1]
	h.removeAt(1)

	return root, true
}

// DeleteByPriority removes the first entry, in storage order, whose priority
// equals target. Storage order means the lowest slot index wins among ties.
//
// The last entry is moved into the vacated slot. It is sifted down, and if it
// did not move it is sifted up, since it may outrank its new parent.
//
// Returns the removed entry, or ErrNotFound with the heap unchanged.
// Complexity: O(n) for the scan, O(log n) for the repair.
func (h *Heap[T, P]) DeleteByPriority(target P) (Entry[T, P], error) {
	idx := h.indexOf(target)
	if idx == 0 {
		var zero Entry[T, P]
		return zero, fmt.Errorf("%w: %v", ErrNotFound, target)
	}

	removed := h.items[idx]
	h.removeAt(idx)

	return removed, nil
}

// Drain extracts every entry, returning them in non-increasing priority order.
// The heap is empty afterwards.
func (h *Heap[T, P]) Drain() []Entry[T, P] {
	out := make([]Entry[T, P], 0, h.Len())
	for !h.IsEmpty() {
		e, _ := h.ExtractMax()
		out = append(out, e)
	}

	return out
}

// Entries returns a copy of the active range in storage (level) order.
// out[k] is the entry at slot k+1.
func (h *Heap[T, P]) Entries() []Entry[T, P] {
	out := make([]Entry[T, P], h.Len())
	if len(out) > 0 {
		copy(out, h.items[1:])
	}

	return out
}

// Valid reports whether the max-heap property holds over the active range.
func (h *Heap[T, P]) Valid() bool {
	for i := 2; i <= h.Len(); i++ {
		if h.items[parent(i)].Priority < h.items[i].Priority {
			return false
		}
	}

	return true
}

// indexOf returns the lowest slot holding target, or 0 if none does.
func (h *Heap[T, P]) indexOf(target P) int {
	for i := 1; i <= h.Len(); i++ {
		if h.items[i].Priority == target {
			return i
		}
	}

	return 0
}

// removeAt drops slot idx: the last entry replaces it, the slice shrinks,
// and the replacement is repaired in whichever direction it violates.
func (h *Heap[T, P]) removeAt(idx int) {
	last := h.Len()
	h.items[idx] = h.items[last]
	h.items[last] = Entry[T, P]{} // release payload
	h.items = h.items[:last]

	if idx < last {
		if !h.siftDown(idx) {
			h.siftUp(idx)
		}
	}
}
