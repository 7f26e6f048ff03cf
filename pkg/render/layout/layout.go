package layout

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
)

// Segment is a straight stroke from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Label is a piece of text. Start and end labels are centred on X; the
// footer starts at X. Y is the vertical centre of the text.
type Label struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Layout is the positioned geometry of one diagram page.
type Layout struct {
	Page        PageSize  `json:"page"`
	Margin      float64   `json:"margin"`
	Bands       int       `json:"bands"`
	BandHeight  float64   `json:"band_height"`
	LineSpacing float64   `json:"line_spacing"`
	Lines       []Segment `json:"lines"`
	Rungs       []Segment `json:"rungs"`
	StartLabels []Label   `json:"start_labels"`
	EndLabels   []Label   `json:"end_labels"` // indexed by start column
	Footer      Label     `json:"footer"`
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	page   PageSize
	margin float64
}

// WithPage sets the page size (default A4).
func WithPage(p PageSize) Option { return func(b *builder) { b.page = p } }

// WithMargin sets the page margin in points (default one inch).
func WithMargin(m float64) Option { return func(b *builder) { b.margin = m } }

// Build positions d on a page. m must be the mapping of d as returned by
// [ladder.Simulate]; the end label of start column i is drawn under line m[i].
func Build(d *ladder.Diagram, m ladder.Mapping, opts ...Option) (Layout, error) {
	b := builder{page: A4, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&b)
	}
	if err := d.Validate(); err != nil {
		return Layout{}, err
	}
	if len(m) != d.LineCount || !m.Valid() {
		return Layout{}, errors.New(errors.ErrCodeInvalidDiagram, "mapping %v is not a permutation of %d lines", m, d.LineCount)
	}
	drawW := b.page.Width - 2*b.margin
	drawH := b.page.Height - 2*b.margin
	if b.margin < 0 || drawW <= 0 || drawH <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidParameter, "margin %.1f leaves no drawable area on %s", b.margin, b.page.Name)
	}

	rows := d.DistinctRows()
	rank := make(map[int]int, len(rows))
	for i, r := range rows {
		rank[r] = i
	}

	n := d.LineCount
	bands := BandCount(len(rows))
	bh := drawH / float64(bands)
	spacing := drawW / float64(n-1)
	top, left := b.margin, b.margin
	x := func(col int) float64 { return left + float64(col)*spacing }

	l := Layout{
		Page:        b.page,
		Margin:      b.margin,
		Bands:       bands,
		BandHeight:  bh,
		LineSpacing: spacing,
		Lines:       make([]Segment, n),
		Rungs:       make([]Segment, 0, len(d.Rungs)),
		StartLabels: make([]Label, n),
		EndLabels:   make([]Label, n),
	}

	lineTop, lineBottom := top+bh, top+float64(bands-1)*bh
	for i := range n {
		l.Lines[i] = Segment{X1: x(i), Y1: lineTop, X2: x(i), Y2: lineBottom}
		l.StartLabels[i] = Label{Text: strconv.Itoa(i + 1), X: x(i), Y: top + bh/2}
		l.EndLabels[i] = Label{Text: Letter(i), X: x(m[i]), Y: top + (float64(bands)-0.5)*bh}
	}
	for _, r := range d.SortedRungs() {
		y := top + (float64(rank[r.Row])+1.5)*bh
		l.Rungs = append(l.Rungs, Segment{X1: x(r.Column), Y1: y, X2: x(r.Column + 1), Y2: y})
	}
	l.Footer = Label{
		Text: fmt.Sprintf("Generated with n=%d, rungs=%d", n, len(d.Rungs)),
		X:    left,
		Y:    b.page.Height - b.margin/2,
	}
	return l, nil
}

// BandCount returns the number of vertical bands for a diagram whose rungs
// occupy rows distinct rows: one per rung row plus a label band at the top
// and bottom.
func BandCount(rows int) int {
	return max(rows, 1) + 2
}

// Letter returns the destination label for index i: A..Z, then AA, AB, ...
func Letter(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for i++; i > 0; i = (i - 1) / 26 {
		buf = append([]byte{byte('A' + (i-1)%26)}, buf...)
	}
	return string(buf)
}
