package dfs_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dfs"
)

// buildGraph connects members 1..memberCount through groups given as
// member-ID lists; group IDs are 1, 2, ... in list order.
func buildGraph(t testing.TB, memberCount int, groups ...[]uint64) *core.Graph {
	t.Helper()
	members := make([]builder.LoadedMember, memberCount)
	for i := range members {
		members[i] = builder.LoadedMember{ID: uint64(i + 1)}
	}
	recs := make([]builder.LoadedGroup, len(groups))
	for i, ids := range groups {
		recs[i] = builder.LoadedGroup{ID: uint64(i + 1), MemberIDs: ids}
	}
	g, err := builder.BuildGraph(nil, nil, builder.Ingest(members, recs), builder.ConnectGroups())
	require.NoError(t, err)

	return g
}

// twoComponents: triangle {1,2,3}, 3–4, 4–5, 2–5, 5–6, and a separate pair {7,8}.
func twoComponents(t testing.TB) *core.Graph {
	return buildGraph(t, 8,
		[]uint64{1, 2, 3},
		[]uint64{3, 4},
		[]uint64{4, 5},
		[]uint64{2, 5},
		[]uint64{5, 6},
		[]uint64{7, 8},
	)
}

func TestFindPathBounded_Errors(t *testing.T) {
	_, err := dfs.FindPathBounded(nil, 1, 2, 3)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := twoComponents(t)
	_, err = dfs.FindPathBounded(g, 1, 2, -1)
	assert.ErrorIs(t, err, dfs.ErrNegativeBound)
	_, err = dfs.FindPathBounded(g, 99, 2, 3)
	assert.ErrorIs(t, err, core.ErrMemberNotFound)
	_, err = dfs.FindPathBounded(g, 1, 99, 3)
	assert.ErrorIs(t, err, core.ErrMemberNotFound)
	assert.False(t, g.TraversalDirty())

	_, err = dfs.FindPathBounded(g, 1, 2, 3)
	require.NoError(t, err)
	_, err = dfs.FindPathBounded(g, 1, 2, 3)
	assert.ErrorIs(t, err, core.ErrTraversalDirty)
}

func TestFindPathBounded_RootIsTarget(t *testing.T) {
	g := twoComponents(t)
	res, err := dfs.FindPathBounded(g, 3, 3, 0)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []uint64{3}, res.Path)
	assert.Equal(t, 0, res.Bound)
	assert.Equal(t, 0, res.Hops())
}

func TestFindPathBounded_BoundTooSmall(t *testing.T) {
	g := twoComponents(t)
	res, err := dfs.FindPathBounded(g, 1, 6, 2)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 2, res.Bound)
	assert.Equal(t, -1, res.Hops())

	g.ResetTraversalState()
	res, err = dfs.FindPathBounded(g, 1, 6, 3)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []uint64{1, 2, 5, 6}, res.Path)
}

func TestFindPathBounded_Unreachable(t *testing.T) {
	g := twoComponents(t)

	// diameter of the larger component is 3
	res, err := dfs.FindPathBounded(g, 1, 8, 3)
	require.NoError(t, err)
	assert.False(t, res.Found)

	g.ResetTraversalState()
	res, err = dfs.FindPathBounded(g, 1, 8, dfs.SafeBound(g))
	require.NoError(t, err)
	assert.False(t, res.Found)
	// no simple path from 1 has 6 hops: the bound-6 pass cuts nothing off
	assert.Equal(t, 6, res.Bound)
	assert.Positive(t, res.Expanded)

	// backtracking leaves no marks behind
	for i := 0; i < g.MemberCount(); i++ {
		assert.Equal(t, core.NoParent, g.Parent(i), "member index %d", i)
	}
}

func TestFindPathBounded_StopsWhenExhausted(t *testing.T) {
	// 1–2 connected, 3 isolated
	g := buildGraph(t, 3, []uint64{1, 2})

	var bounds []int
	res, err := dfs.FindPathBounded(g, 1, 3, math.MaxInt, dfs.WithOnDeepen(func(b int) {
		bounds = append(bounds, b)
	}))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Bound)
	assert.Equal(t, []int{0, 1, 2}, bounds)
	assert.Equal(t, 2, res.Expanded)

	// an isolated root is exhausted at bound 0
	g.ResetTraversalState()
	res, err = dfs.FindPathBounded(g, 3, 1, math.MaxInt)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Bound)
	assert.Zero(t, res.Expanded)
}

func TestFindPathBounded_AgreesWithBFS(t *testing.T) {
	g := twoComponents(t)
	tree, err := bfs.FindReachableTree(g, 1)
	require.NoError(t, err)

	for _, target := range []uint64{1, 2, 3, 4, 5, 6} {
		g.ResetTraversalState()
		res, err := dfs.FindPathBounded(g, 1, target, dfs.SafeBound(g))
		require.NoError(t, err)
		require.True(t, res.Found, "target %d", target)
		assert.Equal(t, tree.Depth[target], res.Hops(), "target %d", target)
		assert.Equal(t, res.Hops(), res.Bound)

		// consecutive members on the path are connected
		for k := 1; k < len(res.Path); k++ {
			_, ok, err := g.ConnectionTo(res.Path[k-1], res.Path[k])
			require.NoError(t, err)
			assert.True(t, ok, "%d-%d", res.Path[k-1], res.Path[k])
		}
	}
}

func TestFindPathBounded_LeavesPathInScratch(t *testing.T) {
	g := twoComponents(t)
	res, err := dfs.FindPathBounded(g, 1, 4, dfs.SafeBound(g))
	require.NoError(t, err)
	require.True(t, res.Found)

	r, _ := g.MemberIndex(1)
	i4, _ := g.MemberIndex(4)
	path, ok := g.PathFrom(r, i4)
	require.True(t, ok)
	assert.Equal(t, res.Path, path)
}

func TestFindPathBounded_OnDeepen(t *testing.T) {
	g := twoComponents(t)
	var bounds []int
	res, err := dfs.FindPathBounded(g, 1, 4, 10, dfs.WithOnDeepen(func(b int) {
		bounds = append(bounds, b)
	}))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2}, bounds)
}

func TestFindPathBounded_LongChain(t *testing.T) {
	const n = 600
	groups := make([][]uint64, n-1)
	for i := range groups {
		groups[i] = []uint64{uint64(i + 1), uint64(i + 2)}
	}
	g := buildGraph(t, n, groups...)

	res, err := dfs.FindPathBounded(g, 1, n, dfs.SafeBound(g))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Len(t, res.Path, n)
	assert.Equal(t, uint64(n), res.Path[n-1])
}

func TestFindPathBounded_Cancellation(t *testing.T) {
	g := twoComponents(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.FindPathBounded(g, 1, 8, 5, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSafeBound(t *testing.T) {
	assert.Equal(t, 0, dfs.SafeBound(nil))
	assert.Equal(t, 0, dfs.SafeBound(core.NewGraph()))
	assert.Equal(t, 7, dfs.SafeBound(twoComponents(t)))
}
