// Package pkg provides the core libraries for Cardgraph card dependency graphs.
//
// # Overview
//
// Cardgraph lets a user record "depends-on" relationships between the cards
// of a kanban board, restrict the picture to a few lists, and draw the result
// as a directed graph. The host board is an external system: a scraper hands
// the engine a JSON document of lists and cards, and the engine never writes
// back to it.
//
// # Architecture
//
// The typical data flow through Cardgraph:
//
//	Board document (scraper)
//	         ↓
//	    [board] package (card store, selection, pruning)
//	         ↓
//	    [view] package (nodes, edges, label heights, DOT/SVG)
//	         ↓
//	    JSON / DOT / SVG output
//
// Alongside the graph, [persist] turns the session state into the stored
// configuration document and back, and [storage] writes that document to a
// key-value backend.
//
// # Quick Start
//
//	b, _ := board.ReadBoardFile("board.json")
//	st, _ := storage.Open(ctx, storage.Config{Backend: storage.BackendFile, Dir: dir})
//
//	sess := session.New(b, session.Options{Storage: st, AutoSave: true})
//	defer sess.Close()
//
//	sess.Load(ctx)
//	sess.AddDependency(ctx, "a", "b")
//	sess.ToggleList(ctx, "Doing")
//
//	v := sess.View(ctx, nil)
//	svg, _ := view.RenderSVG(ctx, view.ToDOT(v, view.DOTOptions{ListColors: sess.ListColors()}))
//
// # Main Packages
//
// [board] - The dependency store. Every edge is recorded in both directions,
// adds and removes are idempotent, unknown card ids are ignored. [board.Prune]
// derives the locally consistent sub-graph for a list selection.
//
// [view] - Converts a pruned graph into render-ready nodes and edges, measures
// label heights, and emits Graphviz DOT or SVG.
//
// [persist] - The configuration document with the keys dependencies,
// selectedLists and listColors, including strict parsing of pasted input.
//
// [storage] - Key-value backends for saved configurations: memory, file,
// Badger, Redis and MongoDB. [storage.Open] builds one from a config.
//
// [session] - One user on one board: the store, selection, colors, the
// two-click pick flow, and autosave.
//
// [debounce] - Coalesces bursts of updates (color pickers, file events).
//
// [observability] - Hooks for save, restore, render, resync and storage
// events.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/board/...              # Specific package
//	go test -run Example                 # Examples only
//
// Redis and MongoDB tests run when CARDGRAPH_TEST_REDIS_ADDR and
// CARDGRAPH_TEST_MONGO_URI are set.
//
// [board]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/board
// [board.Prune]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/board#Prune
// [view]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/view
// [persist]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/persist
// [storage]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/storage
// [storage.Open]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/storage#Open
// [session]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/session
// [debounce]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/debounce
// [observability]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/cardgraph/pkg/errors
package pkg
