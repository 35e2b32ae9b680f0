package maxheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvclassic/maxheap"
)

// randomEntries returns n entries with deterministic pseudo-random priorities.
func randomEntries(n int) []maxheap.Entry[int, int] {
	r := rand.New(rand.NewSource(42))
	es := make([]maxheap.Entry[int, int], n)
	for i := range es {
		es[i] = maxheap.Entry[int, int]{Payload: i, Priority: r.Intn(1 << 20)}
	}

	return es
}

// BenchmarkBuild measures bottom-up construction over 10k entries.
func BenchmarkBuild(b *testing.B) {
	es := randomEntries(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maxheap.Build(es)
	}
}

// BenchmarkInsertN measures n sequential inserts, the O(n log n) alternative to Build.
func BenchmarkInsertN(b *testing.B) {
	es := randomEntries(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := maxheap.New[int, int]()
		for _, e := range es {
			_ = h.Push(e)
		}
	}
}

// BenchmarkDrain measures extracting every entry of a prebuilt heap.
func BenchmarkDrain(b *testing.B) {
	es := randomEntries(10_000)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h, _ := maxheap.Build(es)
		b.StartTimer()
		_ = h.Drain()
	}
}
