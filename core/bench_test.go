package core_test

import (
	"testing"

	"github.com/katalvlaran/skynet/core"
)

// BenchmarkGraph_RemoveLink measures severing every link of a ring of N nodes.
func BenchmarkGraph_RemoveLink(b *testing.B) {
	const N = 1000

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph(core.WithCapacity(N))
		for v := 0; v < N; v++ {
			_, _ = g.AddLink(v, (v+1)%N)
		}
		b.StartTimer()

		for v := 0; v < N; v++ {
			g.RemoveLink(v, (v+1)%N)
		}
	}
}

// BenchmarkGraph_Clone measures deep-copying a ring of N nodes.
func BenchmarkGraph_Clone(b *testing.B) {
	const N = 1000
	g := core.NewGraph(core.WithCapacity(N))
	for v := 0; v < N; v++ {
		_, _ = g.AddLink(v, (v+1)%N)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
