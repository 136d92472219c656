// Package geometry holds the pure 2-D primitives the roadmap wheel is drawn
// with: polar conversion, annular wedge outlines, polylines and the virtual
// canvas used to keep label boxes on screen.
//
// Coordinates are SVG user units: x grows right, y grows down, so angles
// increase clockwise on screen and 90° points straight down.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in canvas space.
type Point = r2.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// PolarPoint returns the point at radius r and angle deg (degrees) around center.
func PolarPoint(center Point, r, deg float64) Point {
	rad := Radians(deg)
	return Point{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// PushOutward moves p away from center along the radial direction by d.
// A point sitting on the center has no direction and is returned unchanged.
func PushOutward(center, p Point, d float64) Point {
	radial := r2.Sub(p, center)
	if r2.Norm(radial) == 0 || d == 0 {
		return p
	}
	return r2.Add(p, r2.Scale(d, r2.Unit(radial)))
}
