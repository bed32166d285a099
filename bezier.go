package balloon

import (
	"math"
	"sort"
)

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// The stem tip is drawn as one before it is raised to a cubic.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Raise elevates the quadratic to the exactly equivalent cubic:
//
//	C1 = P0 + 2/3 (P1 - P0)
//	C2 = P2 + 2/3 (P1 - P2)
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Extrema returns the parameter values in [0, 1] where the curve is
// horizontal or vertical, in increasing order.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	// The derivative is a quadratic in t for each axis.
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, unitQuadraticRoots(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, unitQuadraticRoots(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(Rect{Min: p, Max: p})
	}
	return bbox
}

// unitQuadraticRoots returns the roots of a*t^2 + b*t + c = 0 within
// [0, 1]. A vanishing a falls back to the linear equation.
func unitQuadraticRoots(a, b, c float64) []float64 {
	var roots []float64
	switch {
	case IsAlmostZeroTolerance(a, epsilon*max(math.Abs(b), math.Abs(c))):
		if b != 0 {
			roots = append(roots, -c/b)
		}
	default:
		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}
		// Avoid cancellation between b and the square root.
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		roots = append(roots, q/a)
		if q != 0 {
			roots = append(roots, c/q)
		}
	}

	const eps = 1e-12
	result := roots[:0]
	for _, r := range roots {
		if r >= -eps && r <= 1+eps {
			result = append(result, clamp(r, 0, 1))
		}
	}
	return result
}
