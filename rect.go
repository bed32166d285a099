package balloon

import "math"

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// rotated returns the bounding size of s after rotating it by angle.
func (s Size) rotated(angle float64) Size {
	sin, cos := sincos(angle)
	sin, cos = math.Abs(sin), math.Abs(cos)
	return Size{
		Width:  math.Abs(s.Width)*cos + math.Abs(s.Height)*sin,
		Height: math.Abs(s.Width)*sin + math.Abs(s.Height)*cos,
	}
}

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// XYWH creates a rectangle from an origin and a size.
// Negative sizes are normalized.
func XYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Rotated returns the bounding box of r rotated by angle radians about its
// own center. For quarter turns this swaps width and height and keeps the
// center fixed.
func (r Rect) Rotated(angle float64) Rect {
	m := RotateAbout(r.Center(), angle)
	a := m.TransformPoint(r.Min)
	b := m.TransformPoint(r.Max)
	c := m.TransformPoint(Pt(r.Min.X, r.Max.Y))
	d := m.TransformPoint(Pt(r.Max.X, r.Min.Y))
	return NewRect(a, b).Union(NewRect(c, d))
}
