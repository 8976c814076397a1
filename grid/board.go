package grid

import "sort"

// Board is an in-memory Surface backed by one map per layer.
//
// AutoUpdate, when set, runs after every Place or Delete while no
// SuppressAutoUpdate guard is held. Hosts use it to re-orient neighbouring
// segments; tests use it to observe unguarded writes.
type Board struct {
	layers     [2]map[Point]Segment
	notes      []Notification
	suppressed int

	AutoUpdate func(b *Board, p Point, l Layer)
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{layers: [2]map[Point]Segment{{}, {}}}
}

// Snapshot copies every segment of r into a new board. The copy does not
// carry notifications or hooks.
// Complexity: O(S log S) for S segments.
func Snapshot(r Reader) *Board {
	b := NewBoard()
	for _, l := range []Layer{Primary, Secondary} {
		for _, s := range r.Segments(l) {
			b.layers[l][s.At] = s.Segment
		}
	}
	return b
}

// Clone returns a deep copy of the board's segments.
func (b *Board) Clone() *Board { return Snapshot(b) }

// SegmentAt implements Reader.
func (b *Board) SegmentAt(p Point, l Layer) (Segment, bool) {
	s, ok := b.layers[l][p]
	return s, ok
}

// Segments implements Reader.
func (b *Board) Segments(l Layer) []Placed {
	out := make([]Placed, 0, len(b.layers[l]))
	for p, s := range b.layers[l] {
		out = append(out, Placed{At: p, Segment: s})
	}
	sortPlaced(out)
	return out
}

// Len returns the number of segments on layer l.
func (b *Board) Len(l Layer) int { return len(b.layers[l]) }

// Place implements Writer.
func (b *Board) Place(p Point, l Layer, s Segment) {
	if s.Kind == KindNone {
		b.Delete(p, l)
		return
	}
	b.layers[l][p] = s
	b.touch(p, l)
}

// Delete implements Writer.
func (b *Board) Delete(p Point, l Layer) {
	delete(b.layers[l], p)
	b.touch(p, l)
}

func (b *Board) touch(p Point, l Layer) {
	if b.AutoUpdate != nil && b.suppressed == 0 {
		b.AutoUpdate(b, p, l)
	}
}

// Notify implements Notifier by recording the message.
func (b *Board) Notify(msg string, sev Severity) {
	b.notes = append(b.notes, Notification{Message: msg, Severity: sev})
}

// Notifications returns the recorded messages, oldest first.
func (b *Board) Notifications() []Notification { return b.notes }

// SuppressAutoUpdate implements Surface.
func (b *Board) SuppressAutoUpdate() func() {
	b.suppressed++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		b.suppressed--
	}
}

// AutoUpdating reports whether no suppression guard is held.
func (b *Board) AutoUpdating() bool { return b.suppressed == 0 }

func sortPlaced(ps []Placed) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].At.Less(ps[j].At) })
}

// OpKind tells whether an Op places or deletes.
type OpKind uint8

const (
	OpPlace OpKind = iota
	OpDelete
)

// Op is one recorded mutation.
type Op struct {
	Kind    OpKind
	At      Point
	Layer   Layer
	Segment Segment
}

// Batch is a Writer that records mutations for later replay. Reads made
// while building a batch go to the snapshot, never to the batch.
type Batch struct {
	ops []Op
}

// Place implements Writer.
func (b *Batch) Place(p Point, l Layer, s Segment) {
	b.ops = append(b.ops, Op{Kind: OpPlace, At: p, Layer: l, Segment: s})
}

// Delete implements Writer.
func (b *Batch) Delete(p Point, l Layer) {
	b.ops = append(b.ops, Op{Kind: OpDelete, At: p, Layer: l})
}

// Ops returns the recorded mutations in order.
func (b *Batch) Ops() []Op { return b.ops }

// Len returns the number of recorded mutations.
func (b *Batch) Len() int { return len(b.ops) }

// Count returns how many recorded mutations are of kind k.
func (b *Batch) Count(k OpKind) int {
	n := 0
	for _, op := range b.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Apply replays the batch onto s while holding its auto-update guard.
func (b *Batch) Apply(s Surface) {
	release := s.SuppressAutoUpdate()
	defer release()
	for _, op := range b.ops {
		switch op.Kind {
		case OpPlace:
			s.Place(op.At, op.Layer, op.Segment)
		case OpDelete:
			s.Delete(op.At, op.Layer)
		}
	}
}
