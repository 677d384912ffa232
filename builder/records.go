// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// records.go - already-parsed input records handed over by the data loader.

package builder

// LoadedMember is one member record as produced by the external loader.
// ID 0 is reserved; a 0 inside GroupIDs names no group and is dropped.
type LoadedMember struct {
	ID       uint64   `yaml:"id" validate:"required"`
	Name     string   `yaml:"name"`
	Lat      float64  `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon      float64  `yaml:"lon" validate:"gte=-180,lte=180"`
	GroupIDs []uint64 `yaml:"group_ids"`
}

// LoadedGroup is one group record as produced by the external loader.
// MemberIDs is optional; members normally reach their groups through
// LoadedMember.GroupIDs.
type LoadedGroup struct {
	ID          uint64   `yaml:"id" validate:"required"`
	Name        string   `yaml:"name"`
	OrganizerID uint64   `yaml:"organizer_id"`
	Rating      float64  `yaml:"rating" validate:"gte=0,lte=5"`
	MemberIDs   []uint64 `yaml:"member_ids"`
}
