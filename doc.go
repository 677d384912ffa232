// Package socialgraph turns group memberships into a member graph and
// searches it.
//
// 🚀 What is socialgraph?
//
//	Members who attend the same group are connected; the connection remembers
//	the first group that joined the pair and weighs that group's size + 1.
//	Three searches run over the result:
//		• Breadth-first:        fewest-hop tree of a member's whole component
//		• Iterative deepening:  path search under an explicit hop bound
//		• Frontier growth:      Prim-style cheapest tree from a member
//
// ✨ Ground rules
//
//   - Deterministic – connections are scanned in ascending member ID order
//   - Explicit reset – searches leave their tree in the graph's scratch
//     state and refuse to start until ResetTraversalState clears it
//   - No recursion – iterative deepening walks an explicit stack
//
// Packages:
//
//	core/      - Member, Group, Connection arena and traversal scratch state
//	builder/   - record ingest, group wiring, random connections
//	bfs/       - FindReachableTree
//	dfs/       - FindPathBounded, SafeBound
//	frontier/  - GrowFrontier
//	database/  - facade with zap logging and prometheus metrics
//	config/    - YAML + SOCIALGRAPH_* environment configuration
//	dataset/   - YAML member/group records
//	cmd/socialgraph - cobra CLI
//
// Quick ASCII example (groups as edges):
//
//	ann ─100─ bob
//	  \       /
//	   100  100
//	     \ /
//	     cid ─300─ dee
//
//	go run ./cmd/socialgraph --dataset dataset/testdata/meetup.yaml bfs --root 1 --target 4
package socialgraph
