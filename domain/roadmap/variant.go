package roadmap

import (
	"fmt"

	"roadmap/domain/connector"
	"roadmap/domain/geometry"
	"roadmap/domain/quarter"
	"roadmap/domain/wheel"
	"roadmap/internal/errors"
)

// Variant is one responsive rendering strategy over the shared geometry.
type Variant interface {
	Kind() Kind
	Canvas() geometry.Canvas
	Wheel() wheel.Wheel
	Compose(m quarter.Map, active quarter.ID) (Scene, error)
}

// frameAdjust grows a label box into the area its text is drawn in.
type frameAdjust struct {
	dy, dh float64
}

// layout is the state shared by both variants.
type layout struct {
	kind   Kind
	canvas geometry.Canvas
	wheel  wheel.Wheel
	router connector.Router
	style  Style
	frame  frameAdjust
}

func newLayout(kind Kind, canvas geometry.Canvas, w wheel.Wheel, specs connector.Specs, labels connector.LabelStyle, style Style, frame frameAdjust) layout {
	if err := specs.Validate(); err != nil {
		panic(fmt.Sprintf("%s connector specs: %v", kind, err))
	}
	return layout{
		kind:   kind,
		canvas: canvas,
		wheel:  w,
		router: connector.Router{Wheel: w, Specs: specs, Style: labels, Canvas: canvas},
		style:  style,
		frame:  frame,
	}
}

func (l layout) Kind() Kind              { return l.kind }
func (l layout) Canvas() geometry.Canvas { return l.canvas }
func (l layout) Wheel() wheel.Wheel      { return l.wheel }

// compose builds the scene, routing connectors for the given quarters only.
// dimInactive fades connectors and labels of quarters other than active.
func (l layout) compose(m quarter.Map, active quarter.ID, routed []quarter.ID, dimInactive bool) (Scene, error) {
	if err := m.Validate(); err != nil {
		return Scene{}, errors.Wrap(err, "compose roadmap scene")
	}
	if !active.Valid() {
		return Scene{}, errors.InvalidInput(fmt.Sprintf("invalid active quarter %d", int(active)))
	}

	scene := Scene{
		Kind:    l.kind,
		Canvas:  l.canvas,
		ViewBox: l.canvas.ViewBox(),
		Active:  active,
		Style:   l.style,
	}

	for _, seg := range l.wheel.Segments {
		q, ok := l.wheel.Order.QuarterAt(seg.Index)
		if !ok {
			continue
		}
		fill := InactiveFill
		if q == active {
			fill = ActiveFill
		}
		scene.Wedges = append(scene.Wedges, Wedge{
			Quarter: q,
			Index:   seg.Index,
			Path:    l.wheel.Wedge(seg).Path(),
			Fill:    fill,
			Active:  q == active,
		})
	}

	for _, q := range routed {
		c, ok := l.router.Route(q)
		if !ok {
			continue
		}
		info := m[q]
		dimmed := dimInactive && q != active
		scene.Connectors = append(scene.Connectors, Line{
			Quarter: q,
			Path:    c.Elbow.Path(),
			Dimmed:  dimmed,
		})
		scene.Labels = append(scene.Labels, Label{
			Quarter: q,
			Box:     c.Box,
			Frame:   c.Box.Offset(0, l.frame.dy, 0, l.frame.dh),
			Align:   c.Align,
			Heading: q.String(),
			Title:   info.Title,
			Blurb:   info.Blurb,
			Dimmed:  dimmed,
		})
	}

	return scene, nil
}
