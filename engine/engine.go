// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvknot/grid"
	"github.com/katalvlaran/lvknot/knot"
	"github.com/katalvlaran/lvknot/rewrite"
)

// LoopResult summarizes a traced loop.
type LoopResult struct {
	Nodes     int
	Crossings int
	Turns     int
	Straights int
}

func summarize(l *knot.Loop) LoopResult {
	return LoopResult{
		Nodes:     l.Len(),
		Crossings: len(l.Crossings),
		Turns:     len(l.Turns),
		Straights: len(l.Straights),
	}
}

// Commit describes what ResolveAndCommit wrote.
type Commit struct {
	Handedness knot.Handedness
	Forward    bool
	Placed     int
	Deleted    int
}

// Engine runs the knot pipeline on one surface. The zero value is not
// usable; call New.
type Engine struct {
	s       grid.Surface
	log     *zap.Logger
	metrics *Metrics

	state State
	seps  []grid.Point
	loop  *knot.Loop
	res   *knot.Resolution
}

// New returns an Engine working on s. Panics on a nil surface.
func New(s grid.Surface, opts ...Option) *Engine {
	if s == nil {
		panic("engine: New(nil)")
	}
	cfg := newConfig(opts...)
	return &Engine{
		s:       s,
		log:     cfg.logger,
		metrics: NewMetrics(cfg.registerer),
	}
}

// Metrics returns the engine's collectors.
func (e *Engine) Metrics() *Metrics { return e.metrics }

// State returns the current stage.
func (e *Engine) State() State { return e.state }

// Separators returns the recorded separators in insertion order.
func (e *Engine) Separators() []grid.Point { return slices.Clone(e.seps) }

// Resolution returns the committed resolution, or nil.
func (e *Engine) Resolution() *knot.Resolution { return e.res }

// ClearSeparators forgets every recorded separator and any resolution.
// Markers on the grid are left to the host.
func (e *Engine) ClearSeparators() {
	e.seps, e.loop, e.res = nil, nil, nil
	e.setState(StateIdle)
}

func (e *Engine) setState(s State) {
	if s == e.state {
		return
	}
	e.log.Debug("state", zap.Stringer("from", e.state), zap.Stringer("to", s))
	e.state = s
}

// settled is the state a traced engine rests in.
func (e *Engine) settled() State {
	if len(e.seps) == knot.MaxSeparators {
		return StateSeparatorsComplete
	}
	return StateTraced
}

// trace snapshots the surface and traces it, recording the outcome.
func (e *Engine) trace() (*grid.Board, *knot.Loop, error) {
	e.setState(StateTracing)
	snap := grid.Snapshot(e.s)
	loop, err := knot.Trace(snap)
	if err != nil {
		e.metrics.Validations.WithLabelValues(resultInvalid).Inc()
		e.setState(StateIdle)
		return snap, nil, err
	}
	e.metrics.Validations.WithLabelValues(resultValid).Inc()
	e.metrics.LoopNodes.Observe(float64(loop.Len()))
	return snap, loop, nil
}

func (e *Engine) reject(msg string, err error) error {
	e.log.Warn(msg, zap.Error(err))
	e.s.Notify(err.Error(), grid.SeverityError)
	return err
}

// ValidateDiagram re-traces the surface. Separators the new loop no longer
// admits are dropped together with their markers, and leftover arc markers
// are removed. Any resolution is discarded.
func (e *Engine) ValidateDiagram() (LoopResult, error) {
	e.loop, e.res = nil, nil
	snap, loop, err := e.trace()
	if err != nil {
		return LoopResult{}, e.reject("diagram rejected", err)
	}

	// 1) keep the separators the new loop still admits
	var kept, dropped []grid.Point
	for _, p := range e.seps {
		if err := knot.CheckSeparator(snap, loop, kept, p); err != nil {
			e.log.Info("separator dropped", zap.Stringer("at", p), zap.Error(err))
			dropped = append(dropped, p)
			continue
		}
		kept = append(kept, p)
	}
	e.seps = kept

	// 2) clean the secondary layer
	var batch grid.Batch
	for _, p := range dropped {
		if s, ok := snap.SegmentAt(p, grid.Secondary); ok && s.Kind == grid.KindSeparator {
			batch.Delete(p, grid.Secondary)
		}
	}
	rewrite.Clear(snap, &batch)
	batch.Apply(e.s)

	lr := summarize(loop)
	e.setState(e.settled())
	e.log.Debug("diagram valid",
		zap.Int("nodes", lr.Nodes), zap.Int("crossings", lr.Crossings), zap.Int("separators", len(kept)))
	e.s.Notify(fmt.Sprintf("diagram is valid: %d crossings, %d turns", lr.Crossings, lr.Turns), grid.SeveritySuccess)
	return lr, nil
}

// AddSeparator checks p against a fresh trace and records it. Placing the
// marker is left to the host. On rejection every separator marker that is
// not a recorded separator is removed from the grid.
func (e *Engine) AddSeparator(p grid.Point) error {
	if e.state == StateCommitted {
		return e.reject("separator rejected", ErrAlreadyCommitted)
	}
	snap, loop, err := e.trace()
	if err != nil {
		return e.reject("diagram rejected", err)
	}
	if err := knot.CheckSeparator(snap, loop, e.seps, p); err != nil {
		var batch grid.Batch
		if n := rewrite.SweepSeparators(snap, &batch, e.seps); n > 0 {
			e.log.Debug("swept separator markers", zap.Int("count", n))
		}
		batch.Apply(e.s)
		e.setState(e.settled())
		return e.reject("separator rejected", err)
	}

	e.seps = append(e.seps, p)
	e.setState(e.settled())
	e.log.Debug("separator added", zap.Stringer("at", p), zap.Int("count", len(e.seps)))
	e.s.Notify(fmt.Sprintf("separator %d of %d placed at %v", len(e.seps), knot.MaxSeparators, p), grid.SeverityInfo)
	return nil
}

// ResolveAndCommit resolves the arc between the two separators and draws
// the result.
//
// Steps:
//  1. Trace; two separators must be recorded and still legal.
//  2. Follow the auxiliary path from the first separator to the second.
//  3. Choose the arc it replaces.
//  4. Resolve the crossings, Left first.
//  5. Commit the markers and the redrawn auxiliary path in one batch.
//
// The whole pass runs under one auto-update guard and writes only after
// every stage succeeded.
func (e *Engine) ResolveAndCommit() (*Commit, error) {
	if e.state == StateCommitted {
		return nil, ErrAlreadyCommitted
	}
	release := e.s.SuppressAutoUpdate()
	defer release()

	fail := func(outcome string, err error) (*Commit, error) {
		e.metrics.Resolutions.WithLabelValues(outcome).Inc()
		return nil, e.reject("resolution failed", err)
	}

	// 1) loop and separators
	snap, loop, err := e.trace()
	if err != nil {
		return fail(outcomeStructure, err)
	}
	e.setState(StateTraced)
	if len(e.seps) != knot.MaxSeparators {
		return fail(outcomeSeparators, knot.ErrSeparatorsIncomplete)
	}
	for i, p := range e.seps {
		if err := knot.CheckSeparator(snap, loop, e.seps[:i], p); err != nil {
			return fail(outcomeSeparators, err)
		}
	}
	seps := [2]grid.Point{e.seps[0], e.seps[1]}
	e.setState(StateSeparatorsComplete)

	// 2) auxiliary path
	e.setState(StateAuxiliaryResolving)
	aux, err := knot.ResolveAuxiliary(snap, seps)
	if err != nil {
		e.setState(e.settled())
		return fail(outcomeAuxiliary, err)
	}
	e.setState(StateAuxiliaryResolved)

	// 3) arc
	e.setState(StateArcBuilding)
	arc, err := knot.ChooseArc(snap, loop, seps, aux)
	if err != nil {
		e.setState(e.settled())
		return fail(outcomeArc, err)
	}
	e.setState(StateArcReady)

	// 4) consistency
	e.setState(StateConsistencyCheck)
	hook := knot.WithAttemptHook(func(h knot.Handedness, r *knot.Resolution, err error) {
		result := resultSucceeded
		fields := []zap.Field{zap.Stringer("handedness", h)}
		if err != nil {
			result = resultFailed
			fields = append(fields, zap.Error(err))
		} else {
			fields = append(fields, zap.Int("escaped", r.Escaped))
		}
		e.metrics.Attempts.WithLabelValues(h.String(), result).Inc()
		e.log.Debug("consistency attempt", fields...)
	})
	res, err := knot.ResolveEither(loop, seps, arc, aux, hook)
	if err != nil {
		e.setState(e.settled())
		return fail(outcomeConsistent, err)
	}

	// 5) commit
	var batch grid.Batch
	if err := rewrite.Commit(snap, &batch, res); err != nil {
		e.setState(e.settled())
		return fail(outcomeRewrite, err)
	}
	batch.Apply(e.s)

	c := &Commit{
		Handedness: res.Handedness,
		Forward:    arc.Forward,
		Placed:     batch.Count(grid.OpPlace),
		Deleted:    batch.Count(grid.OpDelete),
	}
	e.loop, e.res = loop, res
	e.setState(StateCommitted)
	e.metrics.Resolutions.WithLabelValues(res.Handedness.String()).Inc()
	e.log.Info("arc committed",
		zap.Stringer("handedness", c.Handedness), zap.Bool("forward", c.Forward),
		zap.Int("placed", c.Placed), zap.Int("deleted", c.Deleted))
	e.s.Notify(fmt.Sprintf("arc resolved on the %s side", res.Handedness), grid.SeveritySuccess)
	return c, nil
}

// ApplyMove replaces the committed arc by its auxiliary path, forgets the
// separators and validates the result.
func (e *Engine) ApplyMove() (LoopResult, error) {
	if e.state != StateCommitted {
		return LoopResult{}, ErrNotCommitted
	}
	snap := grid.Snapshot(e.s)
	var batch grid.Batch
	if err := rewrite.Move(snap, &batch, e.loop, e.res); err != nil {
		return LoopResult{}, e.reject("move failed", err)
	}
	batch.Apply(e.s)
	e.log.Info("arc moved", zap.Int("mutations", batch.Len()))

	e.seps = nil
	e.setState(StateIdle)
	return e.ValidateDiagram()
}
