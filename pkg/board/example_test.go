package board_test

import (
	"fmt"

	"github.com/matzehuels/cardgraph/pkg/board"
)

func ExampleStore() {
	s := board.NewStore([]board.Card{
		{ID: "A", ListName: "Todo"},
		{ID: "B", ListName: "Doing"},
		{ID: "C", ListName: "Done"},
	})
	s.AddDependency("A", "B")
	s.AddDependency("A", "C")
	s.AddDependency("A", "C") // no-op

	fmt.Println(s.AllDependencies())
	fmt.Println(s.Dependencies("C"))
	// Output:
	// map[A:[B C]]
	// [A]
}

func ExamplePrune() {
	s := board.NewStore([]board.Card{
		{ID: "A", ListName: "Todo"},
		{ID: "B", ListName: "Doing"},
		{ID: "C", ListName: "Done"},
	})
	s.AddDependency("A", "B")
	s.AddDependency("A", "C")

	pruned := board.Prune(s, board.NewSelection("Todo", "Doing"))
	fmt.Println(len(pruned), pruned["A"].Children)
	// Output:
	// 2 [B]
}
