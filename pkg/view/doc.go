// Package view turns a pruned dependency graph into a renderer-agnostic set
// of nodes and edges.
//
// # Overview
//
// [Build] is the bridge between [board.Prune] and whatever draws the graph.
// It emits one [Node] per surviving card, in board order, and one [Edge] per
// surviving parent→child pair. Nothing here computes positions: layout is the
// renderer's job.
//
//	pruned := board.Prune(store, sel)
//	v := view.Build(pruned, store, view.DefaultMeasurer())
//	data, _ := view.MarshalView(v)
//
// Node heights come from a [Measurer], the text-measurement collaborator. The
// default [TextMeasurer] estimates wrapped line count from a fixed glyph width
// ratio; callers with a real font engine can supply their own.
//
// # Rendering
//
// [ToDOT] writes a view as Graphviz DOT and [RenderSVG] turns DOT into SVG
// using an embedded Graphviz build, so no external binary is required.
//
// [board.Prune]: github.com/matzehuels/cardgraph/pkg/board.Prune
package view
