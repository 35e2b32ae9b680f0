package maxheap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for heap operations.
var (
	// ErrOverflow is returned when an insert or build would exceed a fixed capacity.
	// The heap is left exactly as it was.
	ErrOverflow = errors.New("maxheap: capacity exceeded")

	// ErrNotFound is returned by DeleteByPriority when no entry carries the target priority.
	ErrNotFound = errors.New("maxheap: priority not found")

	// ErrBadPriority is returned when a NaN priority is offered. NaN does not order under '>'.
	ErrBadPriority = errors.New("maxheap: priority is NaN")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maxheap: invalid option supplied")
)

// Priority is any numeric type usable as a heap key.
type Priority interface {
	constraints.Integer | constraints.Float
}

// Entry is the unit stored in a Heap: an opaque payload and the priority it is ordered by.
//
// Entries are copied in and out of the heap; the heap never hands out a pointer
// into its own storage.
type Entry[T any, P Priority] struct {
	// Payload identifies the element (a job letter, a passenger name, a vertex ID...).
	Payload T

	// Priority orders the heap. Larger values sit closer to the root.
	Priority P
}

// Option configures a Heap at construction time.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New or Build.
type Option func(*Options)

// Options holds construction parameters for a Heap.
type Options struct {
	// Capacity bounds the number of entries.
	// 0 means growable: inserts never overflow.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options for a growable heap (Capacity == 0).
func DefaultOptions() Options {
	return Options{
		Capacity: 0,
		err:      nil,
	}
}

// WithCapacity fixes the maximum number of entries.
//
//	n > 0:  Insert/Push/Build fail with ErrOverflow past n entries
//	n == 0: explicit "growable"
//	n < 0:  invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}

// isNaN reports whether p is a floating-point NaN. Always false for integers.
func isNaN[P Priority](p P) bool {
	return p != p
}
