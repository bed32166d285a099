package balloon

import "math"

// ArcPoint is a point on an arc together with its polar angle around the
// arc's center. The angle is bookkeeping that follows the point through
// rotation and mirroring; path emission only uses the point.
type ArcPoint struct {
	Point Point
	Angle float64
}

// arcPointAt returns the point at angle on the circle (center, radius).
func arcPointAt(center Point, radius, angle float64) ArcPoint {
	sin, cos := sincos(angle)
	return ArcPoint{
		Point: Pt(center.X+radius*cos, center.Y+radius*sin),
		Angle: angle,
	}
}

func (p ArcPoint) mirroredIn(rect Rect) ArcPoint {
	return ArcPoint{Point: p.Point.MirroredIn(rect), Angle: normalizeAngle(math.Pi - p.Angle)}
}

func (p ArcPoint) rotatedIn(rect Rect, angle float64) ArcPoint {
	return ArcPoint{Point: p.Point.RotatedIn(rect, angle), Angle: normalizeAngle(p.Angle + angle)}
}

// Arc is a circular arc of a rounded corner.
type Arc struct {
	Center Point
	Radius float64
	Start  ArcPoint
	End    ArcPoint
}

// IsDegenerate reports whether the arc has zero length.
func (a Arc) IsDegenerate() bool {
	return a.Start.Point.IsAlmostEqual(a.End.Point)
}

// Mirrored reflects the arc about the vertical center line of rect.
// Start and end swap so the arc keeps its drawing direction.
func (a Arc) Mirrored(rect Rect) Arc {
	return Arc{
		Center: a.Center.MirroredIn(rect),
		Radius: a.Radius,
		Start:  a.End.mirroredIn(rect),
		End:    a.Start.mirroredIn(rect),
	}
}

// Rotated rotates the arc by angle radians about the center of rect.
func (a Arc) Rotated(rect Rect, angle float64) Arc {
	return Arc{
		Center: a.Center.RotatedIn(rect, angle),
		Radius: a.Radius,
		Start:  a.Start.rotatedIn(rect, angle),
		End:    a.End.rotatedIn(rect, angle),
	}
}

// ArcControlPoints returns the control points of a single cubic Bezier
// approximating the circular arc around center from start to end.
//
// The curve uses the closed-form tangent length k2 = 4/3 (√(2·q1·q2) − q2) /
// (a × b) where a and b are the radius vectors to start and end. It returns
// false when start ≈ end, center ≈ start, or the arc is otherwise too
// degenerate to approximate; callers then emit a zero-length curve at start.
func ArcControlPoints(center, start, end Point) (c1, c2 Point, ok bool) {
	if start.IsAlmostEqual(end) || center.IsAlmostEqual(start) {
		return start, start, false
	}

	a := start.Sub(center)
	b := end.Sub(center)
	q1 := a.Dot(a)
	q2 := q1 + a.Dot(b)
	cross := a.Cross(b)
	if IsAlmostZeroTolerance(cross, epsilon*q1) {
		return start, start, false
	}

	k2 := 4.0 / 3.0 * (math.Sqrt(2*q1*q2) - q2) / cross
	if math.IsInf(k2, 0) || math.IsNaN(k2) {
		return start, start, false
	}

	c1 = Pt(center.X+a.X-k2*a.Y, center.Y+a.Y+k2*a.X)
	c2 = Pt(center.X+b.X+k2*b.Y, center.Y+b.Y-k2*b.X)
	return c1, c2, true
}
