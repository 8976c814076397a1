// Package knot validates planar knot diagrams drawn on a grid.Surface and
// resolves the crossings of one arc so it can be rerouted along an
// auxiliary path.
//
// What:
//
//   - Trace / TraceFrom: follow the primary layer and return the closed
//     Loop, classifying every cell as straight, turn or crossing.
//   - CheckSeparator: legality of a separator cutting the loop.
//   - ResolveAuxiliary: follow the secondary-layer path joining the two
//     separators.
//   - BuildArc / ChooseArc: the loop section between the separators that
//     the auxiliary path would replace.
//   - Resolve / ResolveEither: propagate over/under labels from the arc's
//     crossings along the loop, for the Left or Right side of the arc.
//
// Why:
//
//   - The arc may only move if every crossing it touches, directly or
//     through the strands it drags along, keeps a single over/under state.
//
// Key Types:
//
//   - Node, Loop, Path, Arc: the traced structures.
//   - Strand: a half-edge of the loop used by the resolver.
//   - Resolution: the labels of one successful evaluation.
//
// Complexity:
//
//   - Trace:            O(S) for S primary segments.
//   - ResolveAuxiliary: O(A) for A auxiliary segments.
//   - BuildArc:         O(n) for n loop nodes.
//   - Resolve:          O(n·k) for k queued strands.
//
// Errors:
//
//   - ErrStructure, ErrSeparator, ErrAuxiliary, ErrArc, ErrConsistency are
//     the classes; every specific sentinel wraps one of them.
//   - *DiagramError carries the offending cell, *LeftoverError the
//     detached groups, *ArcError and *ConsistencyError both attempts.
//
// The package never writes to the grid; see package rewrite.
package knot
