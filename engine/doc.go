// SPDX-License-Identifier: MIT
// Package: lvknot/engine
//
// Package engine drives the knot pipeline against a host grid.Surface.
//
// What:
//
//   - ValidateDiagram: trace the loop, drop separators it invalidates and
//     clear stale arc markers.
//   - AddSeparator: check and record one separator.
//   - ResolveAndCommit: auxiliary path, arc, consistency and commit as one
//     pass; nothing is written unless every stage succeeded.
//   - ApplyMove: replace a committed arc by its auxiliary path.
//
// Why:
//
//   - Hosts only implement grid.Surface; the engine keeps the separators
//     and the last resolution between calls and reports every outcome
//     through Notify.
//
// Concurrency:
//
//   - An Engine is not safe for concurrent use. Every call runs to
//     completion synchronously.
//
// Errors:
//
//   - knot.* sentinels pass through unchanged.
//   - ErrAlreadyCommitted, ErrNotCommitted: state machine misuse.
package engine
