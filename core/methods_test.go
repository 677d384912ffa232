// Package core_test verifies member/group registration, association and
// connection tables.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/core"
)

// newTrio returns a graph with members 1,2,3 all associated with group 10.
func newTrio(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddGroup(core.Group{ID: 10, Name: "G"})
	require.NoError(t, err)
	for _, id := range []uint64{1, 2, 3} {
		_, err = g.AddMember(core.Member{ID: id, Name: "m"})
		require.NoError(t, err)
		ok, err := g.Associate(id, 10)
		require.NoError(t, err)
		require.True(t, ok)
	}

	return g
}

func TestAddMember_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddMember(core.Member{ID: 0})
	assert.ErrorIs(t, err, core.ErrZeroID)

	idx, err := g.AddMember(core.Member{ID: 7, Name: "Ann", GroupIDs: []uint64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = g.AddMember(core.Member{ID: 7})
	assert.ErrorIs(t, err, core.ErrDuplicateMember)

	m, err := g.Member(7)
	require.NoError(t, err)
	assert.Equal(t, "Ann", m.Name)
	assert.Equal(t, []uint64{1, 2}, m.GroupIDs)
	assert.Empty(t, m.GroupIndices(), "GroupIDs are not resolved by AddMember")

	_, err = g.Member(8)
	assert.ErrorIs(t, err, core.ErrMemberNotFound)
	assert.False(t, g.HasMember(8))
}

func TestAddGroup_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddGroup(core.Group{ID: 0})
	assert.ErrorIs(t, err, core.ErrZeroID)

	_, err = g.AddGroup(core.Group{ID: 5, Name: "Hikers", OrganizerID: 9, Rating: 4.5})
	require.NoError(t, err)
	_, err = g.AddGroup(core.Group{ID: 5})
	assert.ErrorIs(t, err, core.ErrDuplicateGroup)

	gr, err := g.Group(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), gr.OrganizerID)
	assert.Zero(t, gr.Size())
}

func TestAssociate(t *testing.T) {
	g := newTrio(t)

	// repeat is a no-op
	ok, err := g.Associate(1, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	// dangling group
	_, err = g.Associate(1, 99)
	assert.ErrorIs(t, err, core.ErrGroupNotFound)

	// unknown member
	_, err = g.Associate(99, 10)
	assert.ErrorIs(t, err, core.ErrMemberNotFound)

	gr, _ := g.Group(10)
	assert.Equal(t, []int{0, 1, 2}, gr.MemberIndices())
	m, _ := g.Member(2)
	assert.Equal(t, []int{0}, m.GroupIndices())
}

func TestConnect_SymmetricAndFirstWins(t *testing.T) {
	g := newTrio(t)
	_, err := g.AddGroup(core.Group{ID: 20})
	require.NoError(t, err)

	ok, err := g.Connect(0, 1, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	// second group for the same pair is discarded
	ok, err = g.Connect(1, 0, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ab, found, err := g.ConnectionTo(1, 2)
	require.NoError(t, err)
	require.True(t, found)
	ba, found, err := g.ConnectionTo(2, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 0, ab.Group)
	assert.Equal(t, ab.Group, ba.Group)
	assert.Equal(t, 1, ab.Dst)
	assert.Equal(t, 0, ba.Dst)
	assert.Equal(t, 1, g.ConnectionCount())

	_, err = g.Connect(2, 2, 0)
	assert.ErrorIs(t, err, core.ErrSelfConnection)
}

func TestWeight_IsDynamic(t *testing.T) {
	g := newTrio(t)
	_, _ = g.Connect(0, 1, 0)
	c, _, _ := g.ConnectionTo(1, 2)
	assert.Equal(t, 4.0, g.Weight(c))

	// growing the group changes the weight of an untouched connection
	_, err := g.AddMember(core.Member{ID: 4})
	require.NoError(t, err)
	_, err = g.Associate(4, 10)
	require.NoError(t, err)
	assert.Equal(t, 5.0, g.Weight(c))
}

func TestConnections_SortedByDestination(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddGroup(core.Group{ID: 1})
	for _, id := range []uint64{50, 30, 40, 10} {
		_, _ = g.AddMember(core.Member{ID: id})
	}
	_, _ = g.Connect(0, 1, 0) // 50-30
	_, _ = g.Connect(0, 3, 0) // 50-10
	_, _ = g.Connect(0, 2, 0) // 50-40

	var dst []uint64
	for _, c := range g.Connections(0) {
		dst = append(dst, g.MemberAt(c.Dst).ID)
	}
	assert.Equal(t, []uint64{10, 30, 40}, dst)

	line, err := g.DumpConnections(50)
	require.NoError(t, err)
	assert.Equal(t, "(50)->10(1)->30(1)->40(1)", line)

	_, err = g.DumpConnections(77)
	assert.ErrorIs(t, err, core.ErrMemberNotFound)
}

func TestClearConnectionsAndStats(t *testing.T) {
	g := newTrio(t)
	_, _ = g.Connect(0, 1, 0)
	_, _ = g.Connect(0, 2, 0)

	s := g.Stats()
	assert.Equal(t, core.Stats{Members: 3, Groups: 1, Connections: 2, Isolated: 0}, s)

	g.ClearConnections()
	s = g.Stats()
	assert.Equal(t, 0, s.Connections)
	assert.Equal(t, 3, s.Isolated)
	assert.Equal(t, 0, g.MemberAt(0).ConnectionCount())
	assert.Equal(t, 3, g.GroupAt(0).Size(), "associations survive ClearConnections")
}

func TestFormatPath(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddMember(core.Member{ID: 1, Name: "Ann"})
	_, _ = g.AddMember(core.Member{ID: 2, Name: "Bob"})
	_, _ = g.AddMember(core.Member{ID: 3, Name: "Cid"})

	s, err := g.FormatPath([]uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "Cid <- Bob <- Ann", s)

	_, err = g.FormatPath([]uint64{1, 9})
	assert.ErrorIs(t, err, core.ErrMemberNotFound)
}
