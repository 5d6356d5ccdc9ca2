// Package board provides the in-memory dependency graph over kanban cards.
//
// # Overview
//
// A user declares "depends-on" relationships between cards of a host board.
// The host board itself (page scraping, buttons, browser storage) is an
// external system: it hands this package a [Board] document and calls the
// store operations in response to user actions.
//
// The central type is [Store]. It owns the card set and, for every card, two
// edge sets kept in lockstep:
//
//   - children: cards this card points to
//   - dependencies: cards pointing to this card (the reverse index)
//
// For any cards A and B, B is among A's children exactly when A is among B's
// dependencies. Which end is "logically" the blocker is a product decision the
// engine does not make: both sets are preserved regardless.
//
// # Basic Usage
//
//	s := board.NewStore(b.Cards)
//	s.AddDependency("a", "b")
//	s.AddDependency("a", "c")
//	s.AllDependencies() // map[a:[b c]]
//
// Adding or removing edges is idempotent, and ids unknown to the store are
// silently ignored. No cycle detection is performed.
//
// # Filtering and Pruning
//
// A [Selection] of list names restricts which cards take part in a view.
// [Prune] keeps the selected cards and drops every edge whose other endpoint
// was filtered out, so the result is a locally consistent sub-graph:
//
//	pruned := board.Prune(s, board.NewSelection("Doing"))
//
// # Resync
//
// When the scraper sees the host board change it calls [Store.Resync] with the
// new card set. There is no background polling: the store only changes in
// response to explicit calls, which keeps its state transitions deterministic.
//
// # Concurrency
//
// Store instances are owned by a single session and are not safe for
// concurrent use.
package board
