package geometry

import "fmt"

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Offset returns r moved by dx, dy and grown by dw, dh.
func (r Rect) Offset(dx, dy, dw, dh float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W + dw, H: r.H + dh}
}

// Canvas is the virtual drawing space: a Size×Size square plus padding on each
// side. The visible area runs from (-PadLeft, -PadTop) to
// (Size+PadRight, Size+PadBottom).
type Canvas struct {
	Size      int
	PadTop    int
	PadRight  int
	PadBottom int
	PadLeft   int
}

// Width is the full visible width including padding.
func (c Canvas) Width() int { return c.Size + c.PadLeft + c.PadRight }

// Height is the full visible height including padding.
func (c Canvas) Height() int { return c.Size + c.PadTop + c.PadBottom }

// ViewBox returns the SVG viewBox value.
func (c Canvas) ViewBox() string {
	return fmt.Sprintf("%d %d %d %d", -c.PadLeft, -c.PadTop, c.Width(), c.Height())
}

// Bounds returns the visible area as a Rect.
func (c Canvas) Bounds() Rect {
	return Rect{
		X: float64(-c.PadLeft),
		Y: float64(-c.PadTop),
		W: float64(c.Width()),
		H: float64(c.Height()),
	}
}

// Clamp moves r so its top-left lies in [xmin,xmax]×[ymin,ymax], where the
// maxima subtract r's own size from the far edges. Each axis is clamped
// independently; the size is kept.
func (c Canvas) Clamp(r Rect) Rect {
	xmin := float64(-c.PadLeft)
	xmax := float64(c.Size+c.PadRight) - r.W
	ymin := float64(-c.PadTop)
	ymax := float64(c.Size+c.PadBottom) - r.H
	r.X = clamp(r.X, xmin, xmax)
	r.Y = clamp(r.Y, ymin, ymax)
	return r
}

// containsTolerance absorbs the rounding of x+w after a clamp to size-w.
const containsTolerance = 1e-9

// Contains reports whether r lies entirely inside the visible area.
func (c Canvas) Contains(r Rect) bool {
	b := c.Bounds()
	return r.X >= b.X-containsTolerance &&
		r.Y >= b.Y-containsTolerance &&
		r.Right() <= b.Right()+containsTolerance &&
		r.Bottom() <= b.Bottom()+containsTolerance
}

// clamp applies min before max, so a box larger than the canvas is pinned to
// the near edge.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
