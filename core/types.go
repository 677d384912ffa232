// Package core defines the central Graph, Member, Group and Connection types,
// and the per-member traversal scratch state shared by the search packages.
//
// The Graph is an arena: Members and Groups are stored in slices and addressed
// by stable index; connection tables and group member lists hold indices only.
// Lookup maps translate loaded uint64 identifiers into indices in O(1).
//
// Errors:
//
//	ErrZeroID            - member or group identifier is zero.
//	ErrMemberNotFound    - requested member does not exist.
//	ErrGroupNotFound     - requested group does not exist.
//	ErrDuplicateMember   - a member with the same ID was already added.
//	ErrDuplicateGroup    - a group with the same ID was already added.
//	ErrSelfConnection    - a connection from a member to itself was requested.
//	ErrTraversalDirty    - a search started before the previous one was reset.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrZeroID indicates that a Member or Group carries the reserved zero ID.
	ErrZeroID = errors.New("core: zero identifier")

	// ErrMemberNotFound indicates an operation referenced a non-existent member.
	ErrMemberNotFound = errors.New("core: member not found")

	// ErrGroupNotFound indicates an operation referenced a non-existent group.
	ErrGroupNotFound = errors.New("core: group not found")

	// ErrDuplicateMember indicates a member ID was registered twice.
	ErrDuplicateMember = errors.New("core: duplicate member")

	// ErrDuplicateGroup indicates a group ID was registered twice.
	ErrDuplicateGroup = errors.New("core: duplicate group")

	// ErrSelfConnection indicates an attempt to connect a member to itself.
	ErrSelfConnection = errors.New("core: self-connection not allowed")

	// ErrTraversalDirty indicates that traversal scratch state still holds the
	// results of an earlier search; call ResetTraversalState first.
	ErrTraversalDirty = errors.New("core: traversal state not reset")
)

// NoParent marks a member that has not been incorporated by the running traversal.
const NoParent = -1

// Color is the three-valued visitation state of a member.
type Color uint8

const (
	White Color = iota // White: not visited yet.
	Gray               // Gray: discovered, expansion in progress.
	Black              // Black: fully expanded.
)

// Member is a graph vertex representing a person.
//
// GroupIDs keeps the group identifiers exactly as loaded; Groups holds the
// indices of the groups that were actually found in the Graph.
type Member struct {
	// ID uniquely identifies this Member within its Graph.
	ID uint64

	Name string
	Lat  float64
	Lon  float64

	// GroupIDs lists the groups the member claims, in load order.
	GroupIDs []uint64

	// groups holds resolved group indices (subset of GroupIDs).
	groups []int

	// connections maps destination member ID to the Connection reaching it.
	connections map[uint64]Connection
}

// Group is an entity whose member list induces pairwise connections.
type Group struct {
	// ID uniquely identifies this Group within its Graph.
	ID uint64

	Name        string
	OrganizerID uint64
	Rating      float64

	// members holds member indices in load order.
	members []int
}

// Connection is a directed edge record stored in a Member's connection table.
//
// Weight is not stored; see Graph.Weight.
type Connection struct {
	// Group is the arena index of the group through which the edge was formed.
	Group int

	// Dst is the arena index of the destination member.
	Dst int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates storage for the expected number of members and groups.
func WithCapacity(members, groups int) GraphOption {
	return func(g *Graph) {
		if members > 0 {
			g.members = make([]*Member, 0, members)
			g.memberIndex = make(map[uint64]int, members)
		}
		if groups > 0 {
			g.groups = make([]*Group, 0, groups)
			g.groupIndex = make(map[uint64]int, groups)
		}
	}
}

// Graph is the in-memory social graph.
//
// Graph is not safe for concurrent mutation. muTrav serialises the start and
// reset of traversals so that two searches cannot both claim the scratch state.
type Graph struct {
	muTrav sync.Mutex // guards dirty

	// Arena storage, load order.
	members []*Member
	groups  []*Group

	// ID → arena index.
	memberIndex map[uint64]int
	groupIndex  map[uint64]int

	connectionCount int // undirected pairs

	// Traversal scratch, indexed like members.
	parent []int
	color  []Color
	key    []float64
	dirty  bool
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		memberIndex: make(map[uint64]int),
		groupIndex:  make(map[uint64]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
