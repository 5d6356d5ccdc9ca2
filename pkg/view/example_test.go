package view_test

import (
	"fmt"

	"github.com/matzehuels/cardgraph/pkg/board"
	"github.com/matzehuels/cardgraph/pkg/view"
)

func ExampleBuild() {
	s := board.NewStore([]board.Card{
		{ID: "A", Name: "Design", Number: "1"},
		{ID: "B", Name: "Build", Number: "2"},
	})
	s.AddDependency("A", "B")

	v := view.Build(board.Prune(s, board.Selection{}), s, nil)
	for _, n := range v.Nodes {
		fmt.Println(n.ID, n.Label)
	}
	for _, e := range v.Edges {
		fmt.Println(e.ID)
	}
	// Output:
	// A 1 Design
	// B 2 Build
	// A-B
}
