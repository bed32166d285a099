// path_builder.go

package balloon

// PathBuilder provides a fluent interface for emitting balloon outlines.
// All methods return the builder for chaining. Every drawing method emits a
// single cubic Bezier.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(p Point) *PathBuilder {
	b.path.MoveTo(p.X, p.Y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1, c2, p Point) *PathBuilder {
	b.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	return b
}

// LineTo draws a straight line as a cubic whose control points both sit at
// the middle of the line. Without a current point it moves to p.
func (b *PathBuilder) LineTo(p Point) *PathBuilder {
	if !b.path.HasCurrentPoint() {
		return b.MoveTo(p)
	}
	mid := b.path.CurrentPoint().Lerp(p, 0.5)
	return b.CubicTo(mid, mid, p)
}

// QuadTo draws a quadratic Bezier, elevated to the equivalent cubic.
// Without a current point it moves to p.
func (b *PathBuilder) QuadTo(ctrl, p Point) *PathBuilder {
	if !b.path.HasCurrentPoint() {
		return b.MoveTo(p)
	}
	c := QuadBez{P0: b.path.CurrentPoint(), P1: ctrl, P2: p}.Raise()
	return b.CubicTo(c.P1, c.P2, c.P3)
}

// ArcTo draws the circular arc around center from the current point to end.
// Degenerate arcs collapse to a zero-length curve at the current point.
// Without a current point it moves to end.
func (b *PathBuilder) ArcTo(center, end Point) *PathBuilder {
	if !b.path.HasCurrentPoint() {
		return b.MoveTo(end)
	}
	start := b.path.CurrentPoint()
	c1, c2, ok := ArcControlPoints(center, start, end)
	if !ok {
		return b.CubicTo(start, start, start)
	}
	return b.CubicTo(c1, c2, end)
}

// SmoothCorner draws a smooth stem corner.
func (b *PathBuilder) SmoothCorner(c SmoothCorner) *PathBuilder {
	return b.CubicTo(c.Control1, c.Control2, c.End)
}

// Edge draws one balloon edge: the start corner arc, the start half of the
// stem, the tip and the end half of the stem, stopping where the arc of
// the end corner begins. The end corner itself is drawn by the next edge.
func (b *PathBuilder) Edge(e EdgeGeometry) *PathBuilder {
	return b.ArcTo(e.Start.RoundRectCorner.Center, e.Start.RoundRectCorner.End.Point).
		LineTo(e.Start.StemCorner.Start).
		SmoothCorner(e.Start.StemCorner).
		LineTo(e.Start.StemEdgeEndPoint).
		QuadTo(e.StemTipPoint, e.End.StemEdgeEndPoint).
		LineTo(e.End.StemCorner.Start).
		SmoothCorner(e.End.StemCorner).
		LineTo(e.End.RoundRectCorner.Start.Point)
}

// Shape draws a closed balloon outline, walking the edges bottom, right,
// top, left.
func (b *PathBuilder) Shape(s Shape) *PathBuilder {
	b.MoveTo(s.Bottom.Start.RoundRectCorner.Start.Point)
	for _, e := range Edges {
		b.Edge(s.Edge(e))
	}
	return b.Close()
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}

// Outline returns the closed outline of a balloon whose body is rect. The
// stem protrudes outside rect.
func Outline(rect Rect, cfg Configuration) *Path {
	return BuildPath().Shape(NewShape(rect, cfg)).Build()
}

// OutlineInRect returns the closed outline of a balloon that fits inside
// rect, stem included. The body is ContentRect(rect, cfg).
func OutlineInRect(rect Rect, cfg Configuration) *Path {
	return Outline(ContentRect(rect, cfg), cfg)
}
