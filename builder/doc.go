// Package builder turns loaded member and group records into a connected
// core.Graph using "functional-options"-style constructors.
//
// The package offers:
//
//   - Records handed over by the external loader:
//     – LoadedMember{ID, Name, Lat, Lon, GroupIDs}
//     – LoadedGroup{ID, Name, OrganizerID, Rating, MemberIDs}
//   - Constructors (type Constructor), composed by BuildGraph or Apply:
//     – Ingest(members, groups):  validate, register, associate members with groups.
//     – ConnectGroups():          pairwise connections for every group, first-group-wins.
//     – ConnectGroup(id):         the same for a single group.
//     – RandomConnections(n):     n seeded random attempts, for stress tests.
//   - Configuration primitives:
//     – WithSeed / WithRand:      RNG for RandomConnections.
//     – WithValidator:            custom go-playground validator instance.
//     – WithStrictGroups:         dangling member→group ids become errors.
//
// Guarantees:
//
//   - Symmetry: every connection a→b is created together with b→a, same group.
//   - At most one connection per ordered pair; later shared groups are discarded.
//   - Dangling group ids in LoadedMember.GroupIDs are dropped silently by default.
//   - Structured errors: constructor name prefix + wrapped sentinel (errors.Is).
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(0)},
//	    builder.Ingest(members, groups),
//	    builder.ConnectGroups(),
//	    builder.RandomConnections(1000),
//	)
//
// Complexity: ConnectGroups is O(Σ C(|group.members|, 2)).
package builder
