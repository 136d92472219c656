package connector

import (
	"roadmap/domain/geometry"
	"roadmap/domain/quarter"
	"roadmap/domain/wheel"
)

// LabelStyle sizes label boxes.
type LabelStyle struct {
	Width    float64
	Height   float64
	Gap      float64 // distance between the connector and the box
	InnerPad float64 // LabelBelow: how far the box's inner edge overhangs the connector end
}

// Place positions a label box for e and clamps it into canvas.
func Place(e Elbow, center geometry.Point, spec Spec, style LabelStyle, canvas geometry.Canvas) (geometry.Rect, Align) {
	box := geometry.Rect{W: style.Width, H: style.Height}
	var align Align

	switch spec.Label {
	case LabelBelow:
		if spec.Side == SideRight {
			box.X = e.P3.X - (style.Width - style.InnerPad)
			align = AlignRight
		} else {
			box.X = e.P3.X - style.InnerPad
			align = AlignLeft
		}
		box.Y = e.P3.Y + style.Gap
	default:
		x, midY := e.VerticalRun()
		if x < center.X {
			box.X = x - style.Width - style.Gap
			align = AlignRight
		} else {
			box.X = x + style.Gap
			align = AlignLeft
		}
		box.Y = midY - style.Height/2
	}

	return canvas.Clamp(box), align
}

// Connector is a routed line plus its placed label box.
type Connector struct {
	Quarter quarter.ID
	Elbow   Elbow
	Box     geometry.Rect
	Align   Align
}

// Router binds a wheel, per-quarter specs, label sizing and the canvas.
type Router struct {
	Wheel  wheel.Wheel
	Specs  Specs
	Style  LabelStyle
	Canvas geometry.Canvas
}

// Route returns q's connector. It reports false when q has no segment or no
// spec, so callers can skip that quarter instead of failing the whole view.
func (r Router) Route(q quarter.ID) (Connector, bool) {
	seg, ok := r.Wheel.SegmentFor(q)
	if !ok {
		return Connector{}, false
	}
	spec, ok := r.Specs[q]
	if !ok {
		return Connector{}, false
	}

	elbow := Route(r.Wheel, seg, spec)
	box, align := Place(elbow, r.Wheel.Center, spec, r.Style, r.Canvas)
	return Connector{Quarter: q, Elbow: elbow, Box: box, Align: align}, true
}
