// Package wheel partitions the ring into equal wedges and maps them to quarters.
package wheel

import (
	"roadmap/domain/geometry"
	"roadmap/domain/quarter"
)

// Config describes how the arc is split.
type Config struct {
	Count     int     // number of segments
	TotalSpan float64 // degrees covered by all segments plus the gaps between them
	Gap       float64 // degrees between neighbouring segments
}

// StartBase centers the arc on the 90° axis.
func (c Config) StartBase() float64 {
	return 90 - c.TotalSpan/2
}

// SegmentSpan is the angular width of one segment.
func (c Config) SegmentSpan() float64 {
	return (c.TotalSpan - c.Gap*float64(c.Count-1)) / float64(c.Count)
}

// Segment is one wedge of the ring, in degrees.
type Segment struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Mid is the angle halfway through the segment.
func (s Segment) Mid() float64 {
	return (s.Start + s.End) / 2
}

// Span is End-Start.
func (s Segment) Span() float64 {
	return s.End - s.Start
}

// Segments lays out cfg.Count segments clockwise from StartBase.
func Segments(cfg Config) []Segment {
	span := cfg.SegmentSpan()
	base := cfg.StartBase()
	out := make([]Segment, cfg.Count)
	for i := range out {
		start := base + float64(i)*(span+cfg.Gap)
		out[i] = Segment{Index: i, Start: start, End: start + span}
	}
	return out
}

// Wheel is a laid-out ring: center, radii, segments and their quarter order.
type Wheel struct {
	Center   geometry.Point
	Outer    float64
	Inner    float64
	Segments []Segment
	Order    Order
}

// New lays out a wheel. The config's Count must match the order's length.
func New(center geometry.Point, outer, inner float64, cfg Config, order Order) Wheel {
	return Wheel{
		Center:   center,
		Outer:    outer,
		Inner:    inner,
		Segments: Segments(cfg),
		Order:    order,
	}
}

// SegmentFor returns the segment showing quarter q.
func (w Wheel) SegmentFor(q quarter.ID) (Segment, bool) {
	i, ok := w.Order.SegmentOf(q)
	if !ok || i >= len(w.Segments) {
		return Segment{}, false
	}
	return w.Segments[i], true
}

// Wedge returns the ring outline of segment s.
func (w Wheel) Wedge(s Segment) geometry.RingSegment {
	return geometry.NewRingSegment(w.Center, w.Outer, w.Inner, s.Start, s.End)
}

// Midway is the radius halfway through the ring's thickness.
func (w Wheel) Midway() float64 {
	return (w.Outer + w.Inner) / 2
}
