package frontier_test

import (
	"testing"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/frontier"
)

// BenchmarkGrowFrontier_Random grows over 2k members joined by 8k random
// connections spread across groups of different sizes.
func BenchmarkGrowFrontier_Random(b *testing.B) {
	const n = 2000
	members := make([]builder.LoadedMember, n)
	for i := range members {
		members[i] = builder.LoadedMember{ID: uint64(i + 1)}
	}
	groups := make([]builder.LoadedGroup, 8)
	for gi := range groups {
		ids := make([]uint64, 0, gi+2)
		for k := 0; k < gi+2; k++ {
			ids = append(ids, uint64(gi*10+k+1))
		}
		groups[gi] = builder.LoadedGroup{ID: uint64(gi + 1), MemberIDs: ids}
	}
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.Ingest(members, groups),
		builder.RandomConnections(4*n),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetTraversalState()
		_, _ = frontier.GrowFrontier(g, 1)
	}
}

// BenchmarkGrowFrontier_Clique measures lazy deletion on a single 150-member
// group, where every member is queued from every annexed neighbor.
func BenchmarkGrowFrontier_Clique(b *testing.B) {
	const n = 150
	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = uint64(i + 1)
	}
	g := buildGraph(b, n, ids)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetTraversalState()
		_, _ = frontier.GrowFrontier(g, 1)
	}
}
