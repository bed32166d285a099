package balloon

// Slope is the dy/dx ratio of a line. Vertical lines have no slope, which
// is represented by an undefined Slope rather than ±Inf or NaN.
type Slope struct {
	value   float64
	defined bool
}

// SlopeOf returns the slope of the line through from and to.
func SlopeOf(from, to Point) Slope {
	dx := to.X - from.X
	if IsAlmostZero(dx) {
		return Slope{}
	}
	return Slope{value: (to.Y - from.Y) / dx, defined: true}
}

// Value returns the slope and true, or 0 and false for a vertical line.
func (s Slope) Value() (float64, bool) {
	return s.value, s.defined
}

// ValueOr returns the slope, or fallback for a vertical line.
func (s Slope) ValueOr(fallback float64) float64 {
	if !s.defined {
		return fallback
	}
	return s.value
}

// Line is an infinite line through P0 and P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates the line through two points.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// HorizontalLine returns the line y = const.
func HorizontalLine(y float64) Line {
	return Line{P0: Pt(0, y), P1: Pt(1, y)}
}

// VerticalLine returns the line x = const.
func VerticalLine(x float64) Line {
	return Line{P0: Pt(x, 0), P1: Pt(x, 1)}
}

// TangentLine returns the tangent to a circle at a point on the circle.
// When the point coincides with the center the line is degenerate and
// intersects nothing.
func TangentLine(pointOnCircle, center Point) Line {
	radial := pointOnCircle.Sub(center)
	return Line{P0: pointOnCircle, P1: pointOnCircle.Add(radial.Perp())}
}

func (l Line) direction() Point {
	return l.P1.Sub(l.P0)
}

// Slope returns the slope of the line.
func (l Line) Slope() Slope {
	return SlopeOf(l.P0, l.P1)
}

// PointForY returns the point on the line with the given y coordinate.
// It returns false for horizontal (and degenerate) lines, where x is not
// determined by y.
func (l Line) PointForY(y float64) (Point, bool) {
	d := l.direction()
	if IsAlmostZero(d.Y) {
		return Point{}, false
	}
	t := (y - l.P0.Y) / d.Y
	return Pt(l.P0.X+d.X*t, y), true
}

// Intersection returns the unique intersection point of two lines.
// It returns false when the lines are parallel, coincident or degenerate.
func (l Line) Intersection(other Line) (Point, bool) {
	d1 := l.direction()
	d2 := other.direction()
	denom := d1.Cross(d2)
	if IsAlmostZero(denom) {
		return Point{}, false
	}
	t := other.P0.Sub(l.P0).Cross(d2) / denom
	return l.P0.Add(d1.Mul(t)), true
}

// LineSegment is the finite part of a line between Start and End.
type LineSegment struct {
	Start, End Point
}

// Line returns the infinite line through the segment.
func (s LineSegment) Line() Line {
	return NewLine(s.Start, s.End)
}

// Slope returns the slope of the segment.
func (s LineSegment) Slope() Slope {
	return SlopeOf(s.Start, s.End)
}

// Midpoint returns the point halfway between Start and End.
func (s LineSegment) Midpoint() Point {
	return s.Start.Lerp(s.End, 0.5)
}
