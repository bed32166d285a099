package balloon

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve from the current point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a balloon outline: a move, a sequence of cubic Bezier curves and
// a close. Every segment of the outline, including straight lines, is a
// cubic, so consumers only need these three commands.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 40),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p.Clone()
	}
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Bounds returns the bounding box of all points and control points. Since
// a cubic lies within the hull of its control points, the outline fits
// inside. An empty path has empty bounds.
func (p *Path) Bounds() Rect {
	var (
		bounds Rect
		seen   bool
	)
	add := func(pt Point) {
		if !seen {
			bounds = Rect{Min: pt, Max: pt}
			seen = true
			return
		}
		bounds = bounds.Union(Rect{Min: pt, Max: pt})
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return bounds
}

// TightBounds returns the exact bounding box of the outline, which may be
// smaller than Bounds where control points stick out of their curves.
func (p *Path) TightBounds() Rect {
	var (
		bounds  Rect
		seen    bool
		current Point
	)
	add := func(r Rect) {
		if !seen {
			bounds, seen = r, true
			return
		}
		bounds = bounds.Union(r)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(Rect{Min: e.Point, Max: e.Point})
			current = e.Point
		case CubicTo:
			add(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}.BoundingBox())
			current = e.Point
		}
	}
	return bounds
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
