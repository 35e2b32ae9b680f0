// Package maxheap provides a generic binary max-heap priority queue:
// the entry with the largest priority is always at the root.
//
// What & Why
//
//   - Each Entry carries an opaque Payload (a job ID, a passenger name, a vertex)
//     and a numeric Priority. Any integer or float type may be used as the
//     priority; there is no comparator hook.
//
//   - Typical uses: scheduling the most urgent job, screening the riskiest
//     passenger first, or (with negated keys) driving Prim and Dijkstra.
//
// Layout
//
//	Storage is 1-indexed. Slot 0 is unused, the root is slot 1, and the
//	children of slot i are 2i and 2i+1:
//
//	            [1]
//	          /     \
//	       [2]       [3]
//	      /   \     /   \
//	    [4]   [5] [6]   [7]
//
// Operations
//
//   - Build(entries, opts...)    – load in given order, then bottom-up heapify. O(n).
//   - Insert(payload, priority)  – append and sift up. O(log n).
//   - Peek()                     – root without mutation. O(1).
//   - ExtractMax()               – remove root, last entry to root, sift down. O(log n).
//   - DeleteByPriority(p)        – linear scan for the first match, then repair. O(n).
//   - Drain()                    – extract everything in non-increasing order. O(n log n).
//
// Tie-breaks
//
//   - Sift-down picks the left child when both children carry the same priority.
//   - DeleteByPriority removes the match at the lowest slot index.
//
// Capacity
//
//	WithCapacity(n) fixes the heap at n entries; an Insert or Build past n fails
//	with ErrOverflow and changes nothing. Without it the heap grows as needed.
//
// Errors
//
//   - ErrOverflow        – insert/build beyond a fixed capacity.
//   - ErrNotFound        – DeleteByPriority target absent.
//   - ErrBadPriority     – NaN priority offered.
//   - ErrOptionViolation – negative capacity.
//
// An empty heap is not an error: Peek and ExtractMax return (zero, false).
//
// Concurrency
//
//	Heap is single-owner. Locked wraps one with a mutex held for each whole operation.
//
// Example:
//
//	h, _ := maxheap.Build([]maxheap.Entry[rune, int]{
//	    {Payload: 'A', Priority: 42},
//	    {Payload: 'B', Priority: 17},
//	    {Payload: 'C', Priority: 93},
//	})
//	top, _ := h.Peek() // {C 93}
package maxheap
