// Package persist snapshots and restores the dependency graph through a
// fixed-shape configuration document.
//
// # Document
//
// The same JSON shape is written to storage and handed to users as a
// copy-paste string:
//
//	{
//	  "dependencies":  {"<card id>": ["<child id>", ...]},
//	  "selectedLists": ["<list name>", ...],
//	  "listColors":    {"<list name>": "<color>"}
//	}
//
// dependencies is sparse: cards without children are omitted.
//
// # Failure Modes
//
// [Snapshot] refuses to produce a document when there is nothing worth saving
// (no edges and no selected list) and returns an EMPTY_STATE error, which
// callers report as "No dependencies found" rather than as a failure.
//
// [Parse] is the only hard failure: invalid JSON or a document of the wrong
// shape is rejected with MALFORMED_CONFIG and the caller's state must stay
// untouched.
//
// [Restore] never fails. Pairs that reference cards absent from the current
// board are skipped and counted, because boards change between saves.
package persist
