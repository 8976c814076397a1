// Package rewrite turns a knot.Resolution into grid mutations.
//
// What:
//
//   - Clear: remove every arc marker.
//   - Commit: mark the resolved arc and redraw the auxiliary path with its
//     resolved facings, keeping only the cells that are not labelled over.
//   - Move: replace the arc by the auxiliary path on the primary layer.
//   - SweepSeparators: remove separator markers that are not kept.
//
// Every function reads r and writes w. Callers pass a grid.Snapshot as r
// and a grid.Batch as w, and apply the batch once it is complete, so reads
// never observe a half-written rewrite.
//
// Errors:
//
//   - ErrNoResolution: nil resolution or a resolution without an arc.
//   - grid.ErrReverse: the auxiliary path doubles back onto the loop at a
//     separator.
package rewrite
