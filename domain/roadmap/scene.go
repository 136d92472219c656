// Package roadmap composes the drawable scene of the roadmap wheel. Two
// variants share the geometry engine: Desktop routes all four connectors,
// Mobile routes only the active quarter's.
package roadmap

import (
	"fmt"
	"strings"

	"roadmap/domain/connector"
	"roadmap/domain/geometry"
	"roadmap/domain/quarter"
	"roadmap/internal/errors"
)

// Kind names a layout variant.
type Kind string

const (
	KindDesktop Kind = "desktop"
	KindMobile  Kind = "mobile"
)

// ParseKind accepts "desktop" and "mobile" in any case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDesktop:
		return KindDesktop, nil
	case KindMobile:
		return KindMobile, nil
	}
	return "", errors.InvalidInput(fmt.Sprintf("invalid variant %q: want desktop or mobile", s))
}

// Palette
const (
	ActiveFill     = "#D1D5DB"
	InactiveFill   = "#E5E7EB"
	ConnectorColor = "#111111"
	BlurbColor     = "#525252"
)

// Wedge is one ring segment.
type Wedge struct {
	Quarter quarter.ID `json:"quarter"`
	Index   int        `json:"index"`
	Path    string     `json:"path"`
	Fill    string     `json:"fill"`
	Active  bool       `json:"active"`
}

// Line is a routed connector.
type Line struct {
	Quarter quarter.ID `json:"quarter"`
	Path    string     `json:"path"`
	Dimmed  bool       `json:"dimmed"`
}

// Label is a text block next to a connector. Box is the clamped layout box;
// Frame is the area the text is actually drawn in, which may overhang Box.
type Label struct {
	Quarter quarter.ID      `json:"quarter"`
	Box     geometry.Rect   `json:"box"`
	Frame   geometry.Rect   `json:"frame"`
	Align   connector.Align `json:"align"`
	Heading string          `json:"heading"`
	Title   string          `json:"title"`
	Blurb   string          `json:"blurb"`
	Dimmed  bool            `json:"dimmed"`
}

// Style carries the per-variant stroke and text sizing.
type Style struct {
	WedgeStroke     float64 `json:"wedgeStroke"`
	ConnectorStroke float64 `json:"connectorStroke"`
	HeadingSize     string  `json:"headingSize"`
	TitleSize       string  `json:"titleSize"`
	BlurbSize       string  `json:"blurbSize"`
	TextPad         float64 `json:"textPad"`
}

// Scene is everything the rendering layer draws, in paint order: wedges,
// then connectors, then labels.
type Scene struct {
	Kind       Kind            `json:"kind"`
	Canvas     geometry.Canvas `json:"-"`
	ViewBox    string          `json:"viewBox"`
	Active     quarter.ID      `json:"active"`
	Style      Style           `json:"style"`
	Wedges     []Wedge         `json:"wedges"`
	Connectors []Line          `json:"connectors"`
	Labels     []Label         `json:"labels"`
}

// ActiveWedge returns the wedge drawn as active.
func (s Scene) ActiveWedge() (Wedge, bool) {
	for _, w := range s.Wedges {
		if w.Active {
			return w, true
		}
	}
	return Wedge{}, false
}
