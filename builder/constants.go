// Package builder defines shared constants used by the constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodIngest is the canonical name for the Ingest constructor.
	MethodIngest = "Ingest"
	// MethodConnectGroups is the canonical name for the ConnectGroups constructor.
	MethodConnectGroups = "ConnectGroups"
	// MethodConnectGroup is the canonical name for the ConnectGroup constructor.
	MethodConnectGroup = "ConnectGroup"
	// MethodRandomConnections is the canonical name for the RandomConnections constructor.
	MethodRandomConnections = "RandomConnections"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinRandomMembers is the smallest member count for which a random
// connection can ever be drawn (two distinct endpoints).
const MinRandomMembers = 2

// MinRandomGroups is the smallest group count RandomConnections needs to tag an edge.
const MinRandomGroups = 1
