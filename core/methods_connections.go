// File: methods_connections.go
// Role: Connection tables: insertion (first-group-wins), queries, weights, diagnostics.
//
// Determinism:
//   - Connections() returns entries sorted by destination member ID asc.
//   - DumpConnections() follows the same order.
package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Connect inserts a symmetric pair of connections between the members at
// arena indices a and b, tagged with the group at index group.
//
// If a already holds a connection to b the pair is left untouched and
// Connect reports false: the first group that connects a pair wins.
//
// Errors: ErrSelfConnection when a == b.
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b, group int) (bool, error) {
	if a == b {
		return false, fmt.Errorf("%w: %d", ErrSelfConnection, g.members[a].ID)
	}
	ma, mb := g.members[a], g.members[b]
	if _, exists := ma.connections[mb.ID]; exists {
		return false, nil
	}
	ma.connections[mb.ID] = Connection{Group: group, Dst: b}
	if _, exists := mb.connections[ma.ID]; !exists {
		mb.connections[ma.ID] = Connection{Group: group, Dst: a}
	}
	g.connectionCount++

	return true, nil
}

// Connections returns the connection table of the member at arena index i,
// sorted by destination member ID.
// Complexity: O(d·log d).
func (g *Graph) Connections(i int) []Connection {
	m := g.members[i]
	out := make([]Connection, 0, len(m.connections))
	for _, c := range m.connections {
		out = append(out, c)
	}
	sort.Slice(out, func(x, y int) bool {
		return g.members[out[x].Dst].ID < g.members[out[y].Dst].ID
	})

	return out
}

// ConnectionTo returns the connection stored on member srcID towards dstID.
func (g *Graph) ConnectionTo(srcID, dstID uint64) (Connection, bool, error) {
	m, err := g.Member(srcID)
	if err != nil {
		return Connection{}, false, err
	}
	c, ok := m.connections[dstID]

	return c, ok, nil
}

// Weight returns the cost of traversing c: the current size of its group plus one.
// The value is recomputed on every call, so it follows later changes to the group.
func (g *Graph) Weight(c Connection) float64 {
	return float64(len(g.groups[c.Group].members) + 1)
}

// ConnectionCount returns the number of undirected member pairs connected.
func (g *Graph) ConnectionCount() int { return g.connectionCount }

// ClearConnections drops every connection table entry, keeping members,
// groups and associations. Used before rebuilding the graph.
// Complexity: O(V).
func (g *Graph) ClearConnections() {
	for _, m := range g.members {
		m.connections = make(map[uint64]Connection)
	}
	g.connectionCount = 0
}

// Stats summarises the graph size.
type Stats struct {
	Members     int
	Groups      int
	Connections int
	// Isolated counts members with an empty connection table.
	Isolated int
}

// Stats returns member, group and connection counts.
func (g *Graph) Stats() Stats {
	s := Stats{
		Members:     len(g.members),
		Groups:      len(g.groups),
		Connections: g.connectionCount,
	}
	for _, m := range g.members {
		if len(m.connections) == 0 {
			s.Isolated++
		}
	}

	return s
}

// DumpConnections renders one member's connection table as a single line:
//
//	(id)->dst(group)->dst(group)...
//
// Diagnostic only.
func (g *Graph) DumpConnections(id uint64) (string, error) {
	idx, err := g.MemberIndex(id)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(strconv.FormatUint(id, 10))
	sb.WriteByte(')')
	for _, c := range g.Connections(idx) {
		sb.WriteString("->")
		sb.WriteString(strconv.FormatUint(g.members[c.Dst].ID, 10))
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatUint(g.groups[c.Group].ID, 10))
		sb.WriteByte(')')
	}

	return sb.String(), nil
}

// FormatPath renders a root→target path of member IDs as
// "target <- ... <- root" using member names.
func (g *Graph) FormatPath(path []uint64) (string, error) {
	names := make([]string, len(path))
	for i, id := range path {
		m, err := g.Member(id)
		if err != nil {
			return "", err
		}
		names[len(path)-1-i] = m.Name
	}

	return strings.Join(names, " <- "), nil
}
