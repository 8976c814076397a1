// Package grid is the query and command surface the knot engine works on: a
// two-layer integer grid of segments.
//
// What:
//
//   - Point, Direction (degrees, clockwise, Y down), Layer, Kind and Segment.
//   - Reader / Writer / Notifier / Surface interfaces a host grid implements.
//   - Derived queries: IsJunction, NeighborsEmpty, DiagonalsEmpty, Components.
//   - Board: a map-backed Surface; Snapshot: an immutable copy of any Reader.
//   - Batch: a Writer recording mutations, replayed under the host's
//     auto-update guard.
//   - DrawLoop / DrawAux / ParseLegs: lay closed primary paths and auxiliary
//     paths from leg descriptions.
//   - Decode / Encode: YAML diagram documents with two-character cell tokens.
//
// Why:
//
//   - The engine only reads snapshots and only writes batches, so a failed
//     pass never leaves a half-rewritten grid behind.
//   - Hosts with their own tile storage implement Surface; tests and the CLI
//     use Board.
//
// Complexity:
//
//   - SegmentAt, Place, Delete: O(1) expected.
//   - Segments, Snapshot: O(S log S) for S segments on a layer.
//   - Components: O(S·4), Memory: O(S).
//
// Errors:
//
//   - ErrReverse: an entry/exit pair doubles back.
//   - ErrOverlap, ErrNotClosed, ErrBadLeg: DrawLoop / DrawAux / ParseLegs input.
//   - ErrBadToken (*TokenError): unknown diagram cell token.
package grid
