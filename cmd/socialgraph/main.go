// Command socialgraph loads a members/groups dataset, builds the connection
// graph and runs one search over it.
//
//	socialgraph --dataset meetup.yaml bfs --root 1 --target 4
//	socialgraph --dataset meetup.yaml iddfs --root 1 --target 4 --max-bound 3
//	socialgraph --dataset meetup.yaml grow --root 1
//	socialgraph --dataset meetup.yaml dump --member 3
//	socialgraph --dataset meetup.yaml stats
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
