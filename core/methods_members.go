// File: methods_members.go
// Role: Member and Group lifecycle, lookups and group association.
//
// Determinism:
//   - Members() and Groups() return arena (load) order.
//   - Group member lists keep association order.
package core

import "fmt"

// AddMember registers m in the arena and returns its index.
// GroupIDs are kept as given; resolution happens in Associate.
//
// Errors: ErrZeroID, ErrDuplicateMember.
// Complexity: O(1) amortized.
func (g *Graph) AddMember(m Member) (int, error) {
	if m.ID == 0 {
		return NoParent, ErrZeroID
	}
	if _, exists := g.memberIndex[m.ID]; exists {
		return NoParent, fmt.Errorf("%w: %d", ErrDuplicateMember, m.ID)
	}

	rec := &Member{
		ID:          m.ID,
		Name:        m.Name,
		Lat:         m.Lat,
		Lon:         m.Lon,
		GroupIDs:    append([]uint64(nil), m.GroupIDs...),
		connections: make(map[uint64]Connection),
	}
	idx := len(g.members)
	g.members = append(g.members, rec)
	g.memberIndex[m.ID] = idx

	// grow scratch state alongside the arena
	g.parent = append(g.parent, NoParent)
	g.color = append(g.color, White)
	g.key = append(g.key, 0)

	return idx, nil
}

// AddGroup registers gr in the arena and returns its index.
// The member list always starts empty; populate it with Associate.
//
// Errors: ErrZeroID, ErrDuplicateGroup.
// Complexity: O(1) amortized.
func (g *Graph) AddGroup(gr Group) (int, error) {
	if gr.ID == 0 {
		return NoParent, ErrZeroID
	}
	if _, exists := g.groupIndex[gr.ID]; exists {
		return NoParent, fmt.Errorf("%w: %d", ErrDuplicateGroup, gr.ID)
	}

	idx := len(g.groups)
	g.groups = append(g.groups, &Group{
		ID:          gr.ID,
		Name:        gr.Name,
		OrganizerID: gr.OrganizerID,
		Rating:      gr.Rating,
	})
	g.groupIndex[gr.ID] = idx

	return idx, nil
}

// Associate appends the member to the group's member list and the group to
// the member's resolved groups. Repeating an existing association is a no-op
// and reports false.
//
// Errors: ErrMemberNotFound, ErrGroupNotFound (callers ingesting loaded
// records treat the latter as a dangling id and skip it).
// Complexity: O(|member.groups|).
func (g *Graph) Associate(memberID, groupID uint64) (bool, error) {
	mi, ok := g.memberIndex[memberID]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrMemberNotFound, memberID)
	}
	gi, ok := g.groupIndex[groupID]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrGroupNotFound, groupID)
	}

	m := g.members[mi]
	for _, existing := range m.groups {
		if existing == gi {
			return false, nil
		}
	}
	m.groups = append(m.groups, gi)
	g.groups[gi].members = append(g.groups[gi].members, mi)

	return true, nil
}

// HasMember reports whether a member with the given ID exists.
func (g *Graph) HasMember(id uint64) bool {
	_, ok := g.memberIndex[id]
	return ok
}

// MemberIndex returns the arena index of the member with the given ID.
func (g *Graph) MemberIndex(id uint64) (int, error) {
	idx, ok := g.memberIndex[id]
	if !ok {
		return NoParent, fmt.Errorf("%w: %d", ErrMemberNotFound, id)
	}

	return idx, nil
}

// GroupIndex returns the arena index of the group with the given ID.
func (g *Graph) GroupIndex(id uint64) (int, error) {
	idx, ok := g.groupIndex[id]
	if !ok {
		return NoParent, fmt.Errorf("%w: %d", ErrGroupNotFound, id)
	}

	return idx, nil
}

// Member returns the member with the given ID.
func (g *Graph) Member(id uint64) (*Member, error) {
	idx, err := g.MemberIndex(id)
	if err != nil {
		return nil, err
	}

	return g.members[idx], nil
}

// Group returns the group with the given ID.
func (g *Graph) Group(id uint64) (*Group, error) {
	idx, err := g.GroupIndex(id)
	if err != nil {
		return nil, err
	}

	return g.groups[idx], nil
}

// MemberAt returns the member stored at arena index i.
// It panics on an out-of-range index, like slice indexing.
func (g *Graph) MemberAt(i int) *Member { return g.members[i] }

// GroupAt returns the group stored at arena index i.
func (g *Graph) GroupAt(i int) *Group { return g.groups[i] }

// Members returns all members in load order.
// The slice is a copy; the pointed-to members are live.
func (g *Graph) Members() []*Member {
	out := make([]*Member, len(g.members))
	copy(out, g.members)

	return out
}

// Groups returns all groups in load order.
func (g *Graph) Groups() []*Group {
	out := make([]*Group, len(g.groups))
	copy(out, g.groups)

	return out
}

// MemberCount returns the number of members.
func (g *Graph) MemberCount() int { return len(g.members) }

// GroupCount returns the number of groups.
func (g *Graph) GroupCount() int { return len(g.groups) }

// GroupIndices returns the arena indices of the groups m was resolved into.
func (m *Member) GroupIndices() []int {
	return append([]int(nil), m.groups...)
}

// ConnectionCount returns the number of entries in the member's connection table.
func (m *Member) ConnectionCount() int { return len(m.connections) }

// MemberIndices returns the arena indices of the group's members in load order.
func (gr *Group) MemberIndices() []int {
	return append([]int(nil), gr.members...)
}

// Size returns the current number of members in the group.
func (gr *Group) Size() int { return len(gr.members) }
