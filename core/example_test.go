package core_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// ExampleGraph demonstrates manual construction and a connection dump.
func ExampleGraph() {
	g := core.NewGraph()

	// 1) Register a group and three members
	_, _ = g.AddGroup(core.Group{ID: 100, Name: "Go Meetup"})
	for _, id := range []uint64{1, 2, 3} {
		_, _ = g.AddMember(core.Member{ID: id, Name: fmt.Sprintf("m%d", id)})
		_, _ = g.Associate(id, 100)
	}

	// 2) Connect 1–2 and 1–3 through the group
	gi, _ := g.GroupIndex(100)
	_, _ = g.Connect(0, 1, gi)
	_, _ = g.Connect(0, 2, gi)

	// 3) Inspect
	line, _ := g.DumpConnections(1)
	fmt.Println(line)
	c, _, _ := g.ConnectionTo(2, 1)
	fmt.Println("weight:", g.Weight(c))

	// Output:
	// (1)->2(100)->3(100)
	// weight: 4
}
