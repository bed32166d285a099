package balloon

// Shape holds the four edges of a balloon.
type Shape struct {
	Bottom EdgeGeometry
	Left   EdgeGeometry
	Top    EdgeGeometry
	Right  EdgeGeometry
}

// NewShape computes all four edges of a balloon whose body is rect.
//
// The edge carrying the stem owns its two adjacent corners: a stem close to
// a corner eats into its arc, which the neighbouring edges, computed with a
// flattened stem, cannot know about. Their arcs are replaced with the stem
// edge's arcs.
func NewShape(rect Rect, cfg Configuration) Shape {
	s := Shape{
		Bottom: EdgeFor(EdgeBottom, rect, cfg),
		Left:   EdgeFor(EdgeLeft, rect, cfg),
		Top:    EdgeFor(EdgeTop, rect, cfg),
		Right:  EdgeFor(EdgeRight, rect, cfg),
	}

	switch cfg.Stem.Edge {
	case EdgeBottom:
		s.Left.End.RoundRectCorner = s.Bottom.Start.RoundRectCorner
		s.Right.Start.RoundRectCorner = s.Bottom.End.RoundRectCorner
	case EdgeLeft:
		s.Top.End.RoundRectCorner = s.Left.Start.RoundRectCorner
		s.Bottom.Start.RoundRectCorner = s.Left.End.RoundRectCorner
	case EdgeTop:
		s.Right.End.RoundRectCorner = s.Top.Start.RoundRectCorner
		s.Left.Start.RoundRectCorner = s.Top.End.RoundRectCorner
	case EdgeRight:
		s.Bottom.End.RoundRectCorner = s.Right.Start.RoundRectCorner
		s.Top.Start.RoundRectCorner = s.Right.End.RoundRectCorner
	}
	return s
}

// Edge returns the geometry of e.
func (s Shape) Edge(e Edge) EdgeGeometry {
	switch e {
	case EdgeLeft:
		return s.Left
	case EdgeTop:
		return s.Top
	case EdgeRight:
		return s.Right
	default:
		return s.Bottom
	}
}
