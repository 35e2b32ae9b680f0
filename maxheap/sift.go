package maxheap

// Index arithmetic for the 1-indexed layout: slot 0 is unused,
// children of i live at 2i and 2i+1.
func parent(i int) int { return i / 2 }
func left(i int) int   { return 2 * i }
func right(i int) int  { return 2*i + 1 }

// swap exchanges the entries at slots i and j.
func (h *Heap[T, P]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// siftUp moves the entry at slot i toward the root while it beats its parent.
// Reports whether the entry moved.
func (h *Heap[T, P]) siftUp(i int) bool {
	start := i
	for i > 1 && h.items[i].Priority > h.items[parent(i)].Priority {
		h.swap(i, parent(i))
		i = parent(i)
	}

	return i != start
}

// siftDown moves the entry at slot i toward the leaves while a child beats it.
// When both children beat it with equal priority the left child is chosen.
// Reports whether the entry moved.
//
// Iterative form of the classical recursive max-heapify; depth is bounded by
// the tree height either way.
func (h *Heap[T, P]) siftDown(i int) bool {
	start := i
	n := h.Len()
	for {
		largest := i
		l, r := left(i), right(i)
		if l <= n && h.items[l].Priority > h.items[largest].Priority {
			largest = l
		}
		// strict '>' keeps the left child on a tie
		if r <= n && h.items[r].Priority > h.items[largest].Priority {
			largest = r
		}
		if largest == i {
			break
		}
		h.swap(i, largest)
		i = largest
	}

	return i != start
}

// heapify restores the invariant over the whole active range, bottom-up:
// every internal node from the last non-leaf down to the root is sifted down.
// Complexity: O(n).
func (h *Heap[T, P]) heapify() {
	for i := h.Len() / 2; i >= 1; i-- {
		h.siftDown(i)
	}
}
