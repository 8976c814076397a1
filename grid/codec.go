package grid

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a two-layer diagram.
//
//	name: figure-eight
//	origin: {x: 0, y: 0}
//	primary: |
//	  Lv S< Lv
//	  ...
//	secondary: |
//	  .. O. ..
//
// Cells are whitespace-separated two-character tokens: a kind letter and a
// facing mark. ".." is an empty cell. Kind letters: S straight, L left turn,
// R right turn, O separator, A auxiliary straight, T auxiliary turn,
// M arc marker. Facing marks: ^ up, > right, v down, < left; separators may
// use "." or omit the mark.
type Document struct {
	Name      string      `yaml:"name,omitempty"`
	Origin    *OriginSpec `yaml:"origin,omitempty"`
	Primary   string      `yaml:"primary"`
	Secondary string      `yaml:"secondary,omitempty"`
}

// OriginSpec is the cell of the first token of the first row.
type OriginSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

var kindLetters = map[byte]Kind{
	'S': KindStraight,
	'L': KindTurnLeft,
	'R': KindTurnRight,
	'O': KindSeparator,
	'A': KindAuxStraight,
	'T': KindAuxTurn,
	'M': KindArcMarker,
}

var facingMarks = map[byte]Direction{'^': Up, '>': Right, 'v': Down, '<': Left}

// Decode reads a YAML diagram document into a new board. Unknown document
// fields are rejected.
func Decode(r io.Reader) (*Board, *Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("grid: decode diagram: %w", err)
	}
	b, err := doc.Board()
	if err != nil {
		return nil, nil, err
	}
	return b, &doc, nil
}

// Board builds a board from the document rows.
func (d *Document) Board() (*Board, error) {
	b := NewBoard()
	origin := Point{}
	if d.Origin != nil {
		origin = Point{X: d.Origin.X, Y: d.Origin.Y}
	}
	if err := parseRows(b, d.Primary, Primary, origin); err != nil {
		return nil, err
	}
	if err := parseRows(b, d.Secondary, Secondary, origin); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseBoard builds a board from raw primary and secondary row blocks with
// the origin at (0,0).
func ParseBoard(primary, secondary string) (*Board, error) {
	d := Document{Primary: primary, Secondary: secondary}
	return d.Board()
}

func parseRows(b *Board, text string, l Layer, origin Point) error {
	text = strings.Trim(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	for dy, line := range strings.Split(text, "\n") {
		for dx, tok := range strings.Fields(line) {
			at := origin.Add(Point{X: dx, Y: dy})
			seg, ok, err := parseToken(tok)
			if err != nil {
				return &TokenError{Layer: l, At: at, Token: tok}
			}
			if ok {
				b.layers[l][at] = seg
			}
		}
	}
	return nil
}

func parseToken(tok string) (Segment, bool, error) {
	if strings.Trim(tok, ".") == "" {
		return Segment{}, false, nil
	}
	k, ok := kindLetters[tok[0]]
	if !ok || len(tok) > 2 {
		return Segment{}, false, ErrBadToken
	}
	var f Direction
	switch {
	case len(tok) == 2 && tok[1] != '.':
		d, ok := facingMarks[tok[1]]
		if !ok {
			return Segment{}, false, ErrBadToken
		}
		f = d
	case k != KindSeparator:
		return Segment{}, false, ErrBadToken
	}
	seg := Of(k, f)
	if k == KindAuxTurn {
		seg.Variant = 1
	}
	return seg, true, nil
}

func formatToken(s Segment) string {
	var letter byte = '?'
	for c, k := range kindLetters {
		if k == s.Kind {
			letter = c
			break
		}
	}
	if s.Kind == KindSeparator {
		return string(letter) + "."
	}
	mark := byte('^')
	for c, d := range facingMarks {
		if d == s.Facing.Rotate(0) {
			mark = c
			break
		}
	}
	return string([]byte{letter, mark})
}

// Bounds returns the smallest rectangle holding every segment of r on both
// layers as its min and max corners. ok is false for an empty reader.
func Bounds(r Reader) (lo, hi Point, ok bool) {
	for _, l := range []Layer{Primary, Secondary} {
		for _, s := range r.Segments(l) {
			if !ok {
				lo, hi, ok = s.At, s.At, true
				continue
			}
			lo.X, lo.Y = min(lo.X, s.At.X), min(lo.Y, s.At.Y)
			hi.X, hi.Y = max(hi.X, s.At.X), max(hi.Y, s.At.Y)
		}
	}
	return lo, hi, ok
}

// FormatRows renders layer l of r as token rows covering [lo, hi].
func FormatRows(r Reader, l Layer, lo, hi Point) string {
	var sb strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if x > lo.X {
				sb.WriteByte(' ')
			}
			if s, ok := r.SegmentAt(Point{X: x, Y: y}, l); ok {
				sb.WriteString(formatToken(s))
			} else {
				sb.WriteString("..")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Encode writes r as a YAML diagram document.
func Encode(w io.Writer, name string, r Reader) error {
	doc := Document{Name: name}
	if lo, hi, ok := Bounds(r); ok {
		if lo != (Point{}) {
			doc.Origin = &OriginSpec{X: lo.X, Y: lo.Y}
		}
		doc.Primary = FormatRows(r, Primary, lo, hi)
		if len(r.Segments(Secondary)) > 0 {
			doc.Secondary = FormatRows(r, Secondary, lo, hi)
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("grid: encode diagram: %w", err)
	}
	return enc.Close()
}
