package roadmap

import (
	"math"

	"roadmap/domain/connector"
	"roadmap/domain/geometry"
	"roadmap/domain/quarter"
	"roadmap/domain/wheel"
)

const mobileSize = 320

// Mobile shows a smaller wheel and only the active quarter's connector.
type Mobile struct {
	layout
}

// MobileSpecs anchor on the segment edge nearest the wheel's open top, push
// out 20 units and drop 100. Labels of Q1/Q2 hang left-aligned, Q3/Q4
// right-aligned.
func MobileSpecs() connector.Specs {
	below := func(anchor connector.AnchorMode, bias float64, side connector.Side) connector.Spec {
		return connector.Spec{
			Anchor:    anchor,
			AngleBias: bias,
			Radius:    connector.RadiusOuter,
			First:     connector.Vertical,
			DY:        100,
			DR:        20,
			Label:     connector.LabelBelow,
			Side:      side,
		}
	}
	return connector.Specs{
		quarter.Q1: below(connector.AnchorStart, 1, connector.SideLeft),
		quarter.Q2: below(connector.AnchorEnd, -1, connector.SideLeft),
		quarter.Q3: below(connector.AnchorStart, 1, connector.SideRight),
		quarter.Q4: below(connector.AnchorEnd, -2, connector.SideRight),
	}
}

// NewMobile builds the compact variant.
func NewMobile() *Mobile {
	canvas := geometry.Canvas{Size: mobileSize, PadTop: 16, PadRight: 8, PadBottom: 320, PadLeft: 8}
	center := geometry.Pt(mobileSize/2.0, mobileSize/3.2)
	w := wheel.New(center, 140, 94, wheel.Config{Count: 4, TotalSpan: 260, Gap: 6}, wheel.DefaultOrder())

	labels := connector.LabelStyle{
		Width:    math.Min(300, mobileSize*0.84),
		Height:   math.Max(110, mobileSize*0.34),
		Gap:      6,
		InnerPad: 12,
	}

	style := Style{
		ConnectorStroke: 4,
		HeadingSize:     "clamp(14px, 4vw, 18px)",
		TitleSize:       "clamp(14px, 4vw, 18px)",
		BlurbSize:       "clamp(12px, 3.4vw, 15px)",
		TextPad:         labels.InnerPad,
	}

	return &Mobile{layout: newLayout(KindMobile, canvas, w, MobileSpecs(), labels, style, frameAdjust{dy: -2, dh: 100})}
}

// Compose routes only the active quarter.
func (mv *Mobile) Compose(m quarter.Map, active quarter.ID) (Scene, error) {
	return mv.compose(m, active, []quarter.ID{active}, false)
}
