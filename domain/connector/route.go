package connector

import (
	"roadmap/domain/geometry"
	"roadmap/domain/wheel"
)

// Elbow is the four-point connector: P0 on the ring, P1 pushed outward,
// P2 after the first axis step, P3 after the second.
type Elbow struct {
	P0, P1, P2, P3 geometry.Point
	First          Axis
}

// Points returns P0..P3.
func (e Elbow) Points() []geometry.Point {
	return []geometry.Point{e.P0, e.P1, e.P2, e.P3}
}

// Path renders the elbow as a polyline.
func (e Elbow) Path() string {
	return geometry.Polyline(e.Points()...)
}

// VerticalRun returns the x of the vertical leg and the y of its midpoint.
func (e Elbow) VerticalRun() (x, midY float64) {
	if e.First == Horizontal {
		return e.P2.X, (e.P2.Y + e.P3.Y) / 2
	}
	return e.P1.X, (e.P1.Y + e.P2.Y) / 2
}

// AnchorPoint returns P0 for seg under spec.
func AnchorPoint(w wheel.Wheel, seg wheel.Segment, spec Spec) geometry.Point {
	r := w.Outer
	switch spec.Radius {
	case RadiusInner:
		r = w.Inner
	case RadiusMidway:
		r = w.Midway()
	}

	var deg float64
	switch spec.Anchor {
	case AnchorAngle:
		deg = spec.Angle
	case AnchorStart:
		deg = seg.Start + spec.AngleBias
	case AnchorEnd:
		deg = seg.End + spec.AngleBias
	default:
		deg = seg.Mid() + spec.AngleBias
	}
	return geometry.PolarPoint(w.Center, r, deg)
}

// Route computes the elbow for seg.
func Route(w wheel.Wheel, seg wheel.Segment, spec Spec) Elbow {
	p0 := AnchorPoint(w, seg, spec)
	p1 := geometry.PushOutward(w.Center, p0, spec.DR)

	var p2, p3 geometry.Point
	if spec.First == Horizontal {
		p2 = geometry.Pt(p1.X+spec.DX, p1.Y)
		p3 = geometry.Pt(p2.X, p2.Y+spec.DY)
	} else {
		p2 = geometry.Pt(p1.X, p1.Y+spec.DY)
		p3 = geometry.Pt(p2.X+spec.DX, p2.Y)
	}
	return Elbow{P0: p0, P1: p1, P2: p2, P3: p3, First: spec.First}
}
