// Package connector routes the elbow lines that join a wheel wedge to its
// label box and places the box inside the canvas.
package connector

import (
	"fmt"

	"roadmap/domain/quarter"
	"roadmap/internal/errors"
)

// Axis is the direction of one connector step.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "v"
	}
	return "h"
}

// AnchorMode selects the angle of the anchor point on the ring.
type AnchorMode int

const (
	AnchorMid   AnchorMode = iota // segment midpoint
	AnchorStart                   // segment start angle
	AnchorEnd                     // segment end angle
	AnchorAngle                   // fixed Spec.Angle
)

// RadiusMode selects the radius of the anchor point.
type RadiusMode int

const (
	RadiusOuter RadiusMode = iota
	RadiusInner
	RadiusMidway // halfway through the ring thickness
)

// LabelMode selects how the label box is positioned against the connector.
type LabelMode int

const (
	// LabelBeside centers the box on the vertical run, on the side away from
	// the wheel center.
	LabelBeside LabelMode = iota
	// LabelBelow hangs the box under the connector's end on Spec.Side.
	LabelBelow
)

// Side is where a LabelBelow box extends from the connector end.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Align is the text alignment inside a label box.
type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// Spec configures one quarter's connector. The anchor mode tags which of the
// angle fields apply: Angle only for AnchorAngle, AngleBias for the others.
type Spec struct {
	Anchor    AnchorMode
	Angle     float64
	AngleBias float64
	Radius    RadiusMode
	First     Axis
	DX        float64 // horizontal step length
	DY        float64 // vertical step length
	DR        float64 // outward push from the ring before the first turn
	Label     LabelMode
	Side      Side
}

// Specs holds one Spec per quarter.
type Specs map[quarter.ID]Spec

// Validate requires a spec for each of Q1..Q4 and nothing else.
func (s Specs) Validate() error {
	for _, id := range quarter.All {
		if _, ok := s[id]; !ok {
			return errors.ValidationError(fmt.Sprintf("connector spec for %s is missing", id))
		}
	}
	for id := range s {
		if !id.Valid() {
			return errors.ValidationError(fmt.Sprintf("connector spec for unknown quarter %d", int(id)))
		}
	}
	return nil
}
