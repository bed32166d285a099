package balloon


// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Perp returns the vector rotated 90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsAlmostEqual reports whether both coordinates are equal within
// DefaultTolerance.
func (p Point) IsAlmostEqual(q Point) bool {
	return IsAlmostEqual(p.X, q.X) && IsAlmostEqual(p.Y, q.Y)
}

// MirroredIn reflects the point about the vertical center line of rect.
func (p Point) MirroredIn(rect Rect) Point {
	return MirrorX(rect.Center().X).TransformPoint(p)
}

// RotatedIn rotates the point by angle radians about the center of rect.
func (p Point) RotatedIn(rect Rect, angle float64) Point {
	return RotateAbout(rect.Center(), angle).TransformPoint(p)
}
