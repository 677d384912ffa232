// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_ingest.go - implementation of the Ingest(members, groups) constructor.
//
// Contract:
//   - Every record is validated first; nothing is registered if any record fails.
//   - Groups are registered before members, both in input order.
//   - Association pass 1: for each member (input order), each GroupIDs entry
//     that names a loaded group is associated; unknown ids are dropped
//     (ErrDanglingReference under WithStrictGroups).
//   - Association pass 2: each group's MemberIDs entry naming a loaded member
//     is associated unless pass 1 already did; unknown ids are dropped.
//
// Complexity: O(M + G + Σ|GroupIDs| + Σ|MemberIDs|).

package builder

import (
	"errors"

	"github.com/katalvlaran/socialgraph/core"
)

// Ingest returns a Constructor that registers the loaded records in g.
func Ingest(members []LoadedMember, groups []LoadedGroup) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate all records before touching the graph.
		for i := range groups {
			if err := cfg.validate.Struct(&groups[i]); err != nil {
				return builderErrorf(MethodIngest, ErrInvalidRecord, "group[%d] id=%d: %v", i, groups[i].ID, err)
			}
		}
		for i := range members {
			if err := cfg.validate.Struct(&members[i]); err != nil {
				return builderErrorf(MethodIngest, ErrInvalidRecord, "member[%d] id=%d: %v", i, members[i].ID, err)
			}
		}

		// 2) Register groups, then members.
		for _, rec := range groups {
			if _, err := g.AddGroup(core.Group{
				ID:          rec.ID,
				Name:        rec.Name,
				OrganizerID: rec.OrganizerID,
				Rating:      rec.Rating,
			}); err != nil {
				return builderErrorf(MethodIngest, err, "AddGroup(%d)", rec.ID)
			}
		}
		for _, rec := range members {
			if _, err := g.AddMember(core.Member{
				ID:       rec.ID,
				Name:     rec.Name,
				Lat:      rec.Lat,
				Lon:      rec.Lon,
				GroupIDs: rec.GroupIDs,
			}); err != nil {
				return builderErrorf(MethodIngest, err, "AddMember(%d)", rec.ID)
			}
		}

		// 3) Member-driven association.
		for _, rec := range members {
			for _, gid := range rec.GroupIDs {
				_, err := g.Associate(rec.ID, gid)
				switch {
				case err == nil:
				case errors.Is(err, core.ErrGroupNotFound) && !cfg.strictGroups:
					// dangling group id: dropped
				case errors.Is(err, core.ErrGroupNotFound):
					return builderErrorf(MethodIngest, ErrDanglingReference, "member %d → group %d", rec.ID, gid)
				default:
					return builderErrorf(MethodIngest, err, "Associate(%d,%d)", rec.ID, gid)
				}
			}
		}

		// 4) Group-driven association for ids only the group record carries.
		for _, rec := range groups {
			for _, mid := range rec.MemberIDs {
				_, err := g.Associate(mid, rec.ID)
				if err != nil && !errors.Is(err, core.ErrMemberNotFound) {
					return builderErrorf(MethodIngest, err, "Associate(%d,%d)", mid, rec.ID)
				}
			}
		}

		return nil
	}
}
