package geometry

import (
	"strconv"
	"strings"
)

// RingSegment is the closed outline of an annular wedge between two angles.
type RingSegment struct {
	Center   Point
	Outer    float64
	Inner    float64
	StartDeg float64
	EndDeg   float64

	// Corners in drawing order: outer start, outer end, inner end, inner start.
	OuterStart Point
	OuterEnd   Point
	InnerEnd   Point
	InnerStart Point

	LargeArc int
}

// NewRingSegment computes the corners of the wedge. The large-arc flag is 0
// for spans up to 180° and 1 above; wheel wedges stay well under a half circle.
func NewRingSegment(center Point, outer, inner, startDeg, endDeg float64) RingSegment {
	large := 0
	if endDeg-startDeg > 180 {
		large = 1
	}
	return RingSegment{
		Center:     center,
		Outer:      outer,
		Inner:      inner,
		StartDeg:   startDeg,
		EndDeg:     endDeg,
		OuterStart: PolarPoint(center, outer, startDeg),
		OuterEnd:   PolarPoint(center, outer, endDeg),
		InnerEnd:   PolarPoint(center, inner, endDeg),
		InnerStart: PolarPoint(center, inner, startDeg),
		LargeArc:   large,
	}
}

// Path renders the outline: outer arc clockwise, line inward, inner arc back
// counter-clockwise, close.
func (s RingSegment) Path() string {
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, s.OuterStart)
	b.WriteString(" A ")
	writeArc(&b, s.Outer, s.LargeArc, 1, s.OuterEnd)
	b.WriteString(" L ")
	writePoint(&b, s.InnerEnd)
	b.WriteString(" A ")
	writeArc(&b, s.Inner, s.LargeArc, 0, s.InnerStart)
	b.WriteString(" Z")
	return b.String()
}

// Vertices returns the outline's corner sequence closed back onto its start.
func (s RingSegment) Vertices() []Point {
	return []Point{s.OuterStart, s.OuterEnd, s.InnerEnd, s.InnerStart, s.OuterStart}
}

// RingSegmentPath is the path string of NewRingSegment(...).
func RingSegmentPath(center Point, outer, inner, startDeg, endDeg float64) string {
	return NewRingSegment(center, outer, inner, startDeg, endDeg).Path()
}

// Polyline renders straight segments through the points: "M p0 L p1 L p2 ...".
func Polyline(points ...Point) string {
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		writePoint(&b, p)
	}
	return b.String()
}

func writeArc(b *strings.Builder, r float64, large, sweep int, to Point) {
	b.WriteString(Num(r))
	b.WriteByte(' ')
	b.WriteString(Num(r))
	b.WriteString(" 0 ")
	b.WriteString(strconv.Itoa(large))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(sweep))
	b.WriteByte(' ')
	writePoint(b, to)
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(Num(p.X))
	b.WriteByte(' ')
	b.WriteString(Num(p.Y))
}

// Num formats v with the shortest representation that round-trips.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
