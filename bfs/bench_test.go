package bfs_test

import (
	"testing"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
)

// chainGraph links members 1..n pairwise through n-1 two-member groups.
func chainGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	members := make([]builder.LoadedMember, n)
	for i := range members {
		members[i] = builder.LoadedMember{ID: uint64(i + 1)}
	}
	groups := make([]builder.LoadedGroup, n-1)
	for i := range groups {
		groups[i] = builder.LoadedGroup{ID: uint64(i + 1), MemberIDs: []uint64{uint64(i + 1), uint64(i + 2)}}
	}
	g, err := builder.BuildGraph(nil, nil, builder.Ingest(members, groups), builder.ConnectGroups())
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkFindReachableTree_Chain measures BFS plus scratch reset on a
// 10k-member chain.
func BenchmarkFindReachableTree_Chain(b *testing.B) {
	g := chainGraph(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetTraversalState()
		_, _ = bfs.FindReachableTree(g, 1)
	}
}

// BenchmarkFindReachableTree_Random measures BFS over a sparse random graph
// (2k members, 8k random connection attempts).
func BenchmarkFindReachableTree_Random(b *testing.B) {
	const n = 2000
	members := make([]builder.LoadedMember, n)
	for i := range members {
		members[i] = builder.LoadedMember{ID: uint64(i + 1)}
	}
	groups := []builder.LoadedGroup{{ID: 1}, {ID: 2}, {ID: 3}}
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42)},
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
		_, _ = bfs.FindReachableTree(g, 1)
	}
}
