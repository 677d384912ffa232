// Package core provides the in-memory social graph: members connected to one
// another through the groups they share.
//
// The Graph G = (V,E) is built in two steps:
//
//   - Ingestion registers Members and Groups (AddMember, AddGroup) and links
//     them (Associate). Group member lists keep association order.
//   - The builder package turns each group's member list into pairwise,
//     symmetric Connections (Connect). Only the first group that connects a
//     pair is recorded.
//
// Storage is an arena:
//
//	members[i]             → *Member           (load order)
//	groups[j]              → *Group            (load order)
//	member.connections[id] → Connection{Group: j, Dst: i}
//
// Weights are never stored. Graph.Weight(c) returns len(group.members)+1 at
// the moment of the call, so smaller shared groups are cheaper edges.
//
// Traversal scratch state:
//
//	Parent(i) / SetParent(i, p)   back-link; doubles as the visited marker
//	Color(i)  / SetColor(i, c)    White / Gray / Black
//	Key(i)    / SetKey(i, k)      depth (bfs, dfs) or running cost (frontier)
//
// The bfs, dfs and frontier packages share this state. Each search claims it
// with BeginTraversal, which returns ErrTraversalDirty until the previous
// search has been cleared with ResetTraversalState. Stale parent links are
// indistinguishable from fresh ones, so there is no silent recovery.
//
// Core Methods:
//
//	AddMember(m Member) (int, error)                 // O(1)
//	AddGroup(gr Group) (int, error)                  // O(1)
//	Associate(memberID, groupID uint64) (bool, error)
//	Connect(a, b, group int) (bool, error)           // O(1), first-group-wins
//	Connections(i int) []Connection                  // O(d·log d), sorted by destination ID
//	Weight(c Connection) float64                     // O(1), dynamic
//	ClearConnections()                               // O(V)
//	DumpConnections(id uint64) (string, error)       // "(id)->dst(group)..."
//	ResetTraversalState()                            // O(V)
//	PathFrom(root, target int) ([]uint64, bool)      // walk parent links
//
// Graph is not safe for concurrent mutation; searches are meant to run one at
// a time, and BeginTraversal rejects an overlapping second search.
package core
