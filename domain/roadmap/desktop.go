package roadmap

import (
	"math"

	"roadmap/domain/connector"
	"roadmap/domain/geometry"
	"roadmap/domain/quarter"
	"roadmap/domain/wheel"
)

// desktopOuter is the outer ring radius; every other desktop size derives from it.
const desktopOuter = 420

// Desktop shows all four connectors and labels at once.
type Desktop struct {
	layout
}

// DesktopSpecs are the desktop connector routes. Q1 and Q4 turn sideways off
// the segment midpoint; Q2 and Q3 push out first, then drop.
func DesktopSpecs() connector.Specs {
	return connector.Specs{
		quarter.Q1: {First: connector.Horizontal, DX: -30, DY: 300},
		quarter.Q2: {First: connector.Vertical, DY: 300, DR: 30},
		quarter.Q3: {First: connector.Vertical, DY: 300, DR: 30},
		quarter.Q4: {First: connector.Horizontal, DX: 30, DY: 300},
	}
}

// NewDesktop builds the wide variant.
func NewDesktop() *Desktop {
	outer := float64(desktopOuter)
	thickness := math.Round(outer * 0.3)
	size := desktopOuter * 2

	canvas := geometry.Canvas{
		Size:      size,
		PadTop:    roundInt(outer * 0.28),
		PadBottom: roundInt(outer * 0.85),
		PadLeft:   roundInt(outer * 1.05),
		PadRight:  roundInt(outer * 1.05),
	}

	center := geometry.Pt(float64(size)/2, float64(size)/4.5+8)
	w := wheel.New(center, outer, outer-thickness,
		wheel.Config{Count: 4, TotalSpan: 260, Gap: 8}, wheel.DefaultOrder())

	labels := connector.LabelStyle{
		Width:  math.Min(360, math.Round(outer*0.82)),
		Height: math.Max(110, math.Round(outer*0.32)),
		Gap:    math.Round(outer * 0.03),
	}

	style := Style{
		WedgeStroke:     math.Max(16, math.Round(outer*0.055)),
		ConnectorStroke: 8,
		HeadingSize:     "20px",
		TitleSize:       "20px",
		BlurbSize:       "17px",
	}

	return &Desktop{layout: newLayout(KindDesktop, canvas, w, DesktopSpecs(), labels, style, frameAdjust{dy: -60, dh: 40})}
}

// Compose routes every quarter in wheel order; non-active ones are dimmed.
func (d *Desktop) Compose(m quarter.Map, active quarter.ID) (Scene, error) {
	order := d.wheel.Order.Quarters()
	return d.compose(m, active, order[:], true)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
