// SPDX-License-Identifier: MIT

package engine

import "fmt"

// State is the stage an Engine is in.
type State uint8

// Stages run in declaration order. A failed pass returns to StateIdle, or
// to StateTraced/StateSeparatorsComplete when the loop itself is fine.
const (
	// StateIdle: nothing traced, or the last trace failed.
	StateIdle State = iota
	// StateTracing: a trace is running.
	StateTracing
	// StateTraced: the loop is valid and fewer than two separators are recorded.
	StateTraced
	// StateSeparatorsComplete: the loop is valid and both separators are recorded.
	StateSeparatorsComplete
	// StateAuxiliaryResolving: the auxiliary path is being followed.
	StateAuxiliaryResolving
	// StateAuxiliaryResolved: the auxiliary path reached the second separator.
	StateAuxiliaryResolved
	// StateArcBuilding: the candidate arcs are being built.
	StateArcBuilding
	// StateArcReady: an arc was chosen.
	StateArcReady
	// StateConsistencyCheck: crossing labels are being resolved.
	StateConsistencyCheck
	// StateCommitted: the resolution was drawn; only ValidateDiagram or
	// ApplyMove leave this state.
	StateCommitted
)

var stateNames = [...]string{
	StateIdle:               "idle",
	StateTracing:            "tracing",
	StateTraced:             "traced",
	StateSeparatorsComplete: "separators-complete",
	StateAuxiliaryResolving: "auxiliary-resolving",
	StateAuxiliaryResolved:  "auxiliary-resolved",
	StateArcBuilding:        "arc-building",
	StateArcReady:           "arc-ready",
	StateConsistencyCheck:   "consistency-check",
	StateCommitted:          "committed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}
