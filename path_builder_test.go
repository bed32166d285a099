package balloon

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestPathBuilder_LineTo(t *testing.T) {
	path := BuildPath().
		MoveTo(Pt(0, 0)).
		LineTo(Pt(10, 20)).
		Build()

	elems := path.Elements()
	if len(elems) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elems))
	}
	c, ok := elems[1].(CubicTo)
	if !ok {
		t.Fatalf("LineTo emitted %T, want CubicTo", elems[1])
	}
	if c.Control1 != Pt(5, 10) || c.Control2 != Pt(5, 10) || c.Point != Pt(10, 20) {
		t.Errorf("LineTo = %+v, want both controls at the midpoint", c)
	}
}

func TestPathBuilder_WithoutCurrentPoint(t *testing.T) {
	tests := []struct {
		name  string
		build func(*PathBuilder) *PathBuilder
	}{
		{"LineTo", func(b *PathBuilder) *PathBuilder { return b.LineTo(Pt(3, 4)) }},
		{"QuadTo", func(b *PathBuilder) *PathBuilder { return b.QuadTo(Pt(9, 9), Pt(3, 4)) }},
		{"ArcTo", func(b *PathBuilder) *PathBuilder { return b.ArcTo(Pt(0, 0), Pt(3, 4)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems := tt.build(BuildPath()).Build().Elements()
			if len(elems) != 1 {
				t.Fatalf("expected 1 element, got %d", len(elems))
			}
			if m, ok := elems[0].(MoveTo); !ok || m.Point != Pt(3, 4) {
				t.Errorf("first element = %+v, want MoveTo (3, 4)", elems[0])
			}
		})
	}
}

func TestPathBuilder_QuadTo(t *testing.T) {
	path := BuildPath().
		MoveTo(Pt(0, 0)).
		QuadTo(Pt(30, 30), Pt(60, 0)).
		Build()

	c := path.Elements()[1].(CubicTo)
	if !near(c.Control1, Pt(20, 20), 1e-12) || !near(c.Control2, Pt(40, 20), 1e-12) {
		t.Errorf("QuadTo controls = %v, %v; want (20, 20), (40, 20)", c.Control1, c.Control2)
	}

	// The elevated cubic passes through the quadratic's midpoint.
	mid := CubicBez{Pt(0, 0), c.Control1, c.Control2, c.Point}.Eval(0.5)
	if !near(mid, Pt(30, 15), 1e-12) {
		t.Errorf("midpoint = %v, want (30, 15)", mid)
	}
}

func TestPathBuilder_ArcTo(t *testing.T) {
	path := BuildPath().
		MoveTo(Pt(0, 92)).
		ArcTo(Pt(8, 92), Pt(8, 100)).
		ArcTo(Pt(8, 92), Pt(8, 100)). // zero length
		Build()

	elems := path.Elements()
	arc := elems[1].(CubicTo)
	if arc.Point != Pt(8, 100) {
		t.Errorf("arc end = %v", arc.Point)
	}
	degenerate := elems[2].(CubicTo)
	want := CubicTo{Control1: Pt(8, 100), Control2: Pt(8, 100), Point: Pt(8, 100)}
	if degenerate != want {
		t.Errorf("degenerate arc = %+v, want %+v", degenerate, want)
	}
}

func TestOutlineStructure(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		cfg  Configuration
	}{
		{"default", XYWH(0, 0, 100, 100), DefaultConfiguration()},
		{"left stem", XYWH(0, 0, 200, 100), DefaultConfiguration().WithStemEdge(EdgeLeft)},
		{"top stem offset", XYWH(10, 10, 150, 80), DefaultConfiguration().WithStemEdge(EdgeTop).WithStemOffset(40)},
		{"right stem oval", XYWH(0, 0, 300, 60), DefaultConfiguration().WithStemEdge(EdgeRight).WithCornerRadius(Oval())},
		{"square corners", XYWH(0, 0, 100, 100), DefaultConfiguration().WithCornerRadius(NoCornerRadius)},
		{"no stem", XYWH(0, 0, 100, 100), DefaultConfiguration().WithStemSize(Size{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems := Outline(tt.rect, tt.cfg).Elements()

			// One move, eight cubics per edge and a close.
			if len(elems) != 34 {
				t.Fatalf("expected 34 elements, got %d", len(elems))
			}
			move, ok := elems[0].(MoveTo)
			if !ok {
				t.Fatalf("first element is %T, want MoveTo", elems[0])
			}
			for i, e := range elems[1:33] {
				if _, ok := e.(CubicTo); !ok {
					t.Fatalf("element %d is %T, want CubicTo", i+1, e)
				}
			}
			if _, ok := elems[33].(Close); !ok {
				t.Fatalf("last element is %T, want Close", elems[33])
			}

			// The outline returns to its starting point before closing.
			last := elems[32].(CubicTo)
			if !near(last.Point, move.Point, 1e-9) {
				t.Errorf("outline ends at %v, starts at %v", last.Point, move.Point)
			}
		})
	}
}

func TestOutlineClosedForRandomConfigurations(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))

	finite := func(p Point) bool {
		return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
	}

	for i := range 500 {
		rect, cfg := randomConfiguration(r)
		elems := Outline(rect, cfg).Elements()
		if len(elems) != 34 {
			t.Fatalf("case %d: expected 34 elements, got %d", i, len(elems))
		}

		first := elems[0].(MoveTo).Point
		last := elems[32].(CubicTo).Point
		if !near(first, last, 1e-6) {
			t.Errorf("case %d: outline ends at %v, starts at %v (rect %v, cfg %+v)", i, last, first, rect, cfg)
		}

		for j, e := range elems {
			var pts []Point
			switch e := e.(type) {
			case MoveTo:
				pts = []Point{e.Point}
			case CubicTo:
				pts = []Point{e.Control1, e.Control2, e.Point}
			}
			for _, p := range pts {
				if !finite(p) {
					t.Fatalf("case %d: element %d has non-finite point %v (rect %v, cfg %+v)", i, j, p, rect, cfg)
				}
			}
		}

		// Each edge stops where the next one picks up the shared corner.
		s := NewShape(rect, cfg)
		for k, edge := range Edges {
			end := s.Edge(edge).End.RoundRectCorner.Start.Point
			next := s.Edge(Edges[(k+1)%len(Edges)]).Start.RoundRectCorner.Start.Point
			if !near(end, next, 1e-6) {
				t.Errorf("case %d: %v ends at %v, next edge starts at %v", i, edge, end, next)
			}
		}
	}
}

func TestOutlineDefaultPoints(t *testing.T) {
	elems := Outline(XYWH(0, 0, 100, 100), DefaultConfiguration()).Elements()

	if got := elems[0].(MoveTo).Point; got != Pt(0, 92) {
		t.Errorf("start = %v, want (0, 92)", got)
	}

	// The bottom edge one curve at a time, then only the corners of the
	// other edges, whose stems collapse to the middle of the edge.
	want := []Point{
		Pt(8, 100),  // corner arc
		Pt(18, 100), // line to the smoothing
		Pt(35, 110), // smooth corner
		Pt(48, 136), // stem edge
		Pt(52, 136), // tip
		Pt(65, 110), // stem edge
		Pt(82, 100), // smooth corner
		Pt(92, 100), // line to the next corner
		Pt(100, 92), // bottom-right corner arc
		Pt(100, 8),  // right edge, no stem
		Pt(92, 0),   // top-right corner arc
		Pt(8, 0),    // top edge, no stem
		Pt(0, 8),    // top-left corner arc
		Pt(0, 92),   // left edge, no stem
	}
	ends := []Point{
		elems[1].(CubicTo).Point,
		elems[2].(CubicTo).Point,
		elems[3].(CubicTo).Point,
		elems[4].(CubicTo).Point,
		elems[5].(CubicTo).Point,
		elems[6].(CubicTo).Point,
		elems[7].(CubicTo).Point,
		elems[8].(CubicTo).Point,
		elems[9].(CubicTo).Point,
		elems[16].(CubicTo).Point,
		elems[17].(CubicTo).Point,
		elems[24].(CubicTo).Point,
		elems[25].(CubicTo).Point,
		elems[32].(CubicTo).Point,
	}
	for i := range want {
		if !near(ends[i], want[i], 1e-9) {
			t.Errorf("point %d = %v, want %v", i, ends[i], want[i])
		}
	}

	// The tip is a quadratic through the stem tip, elevated to a cubic.
	tip := elems[5].(CubicTo)
	if !near(tip.Control1, Pt(48, 136).Lerp(Pt(50, 140), 2.0/3.0), 1e-9) {
		t.Errorf("tip control1 = %v", tip.Control1)
	}

	// The smooth corner controls sit where the stem edge meets the bottom.
	corner := elems[3].(CubicTo)
	if !near(corner.Control1, Pt(30, 100), 1e-9) || !near(corner.Control2, Pt(30, 100), 1e-9) {
		t.Errorf("smooth corner controls = %v, %v", corner.Control1, corner.Control2)
	}

	// The first arc bulges towards the corner of the rect.
	arc := elems[1].(CubicTo)
	k := 8 * 0.5522847498307936
	if !near(arc.Control1, Pt(0, 92+k), 1e-9) || !near(arc.Control2, Pt(8-k, 100), 1e-9) {
		t.Errorf("arc controls = %v, %v", arc.Control1, arc.Control2)
	}
}

func TestOutlineInRectFits(t *testing.T) {
	rect := XYWH(0, 0, 240, 160)

	for _, edge := range Edges {
		// An unsmoothed tip puts the stem tip on the hull of the curve.
		cfg := DefaultConfiguration().WithStemEdge(edge)
		cfg.Stem.TipSmoothenWidth = 0
		bounds := OutlineInRect(rect, cfg).Bounds()
		const eps = 1e-9
		if bounds.Min.X < rect.Min.X-eps || bounds.Min.Y < rect.Min.Y-eps ||
			bounds.Max.X > rect.Max.X+eps || bounds.Max.Y > rect.Max.Y+eps {
			t.Errorf("%v: bounds %v exceed %v", edge, bounds, rect)
		}
		// The stem reaches the edge of the rect.
		switch edge {
		case EdgeBottom:
			if math.Abs(bounds.Max.Y-rect.Max.Y) > eps {
				t.Errorf("bottom stem ends at %v, want %v", bounds.Max.Y, rect.Max.Y)
			}
		case EdgeTop:
			if math.Abs(bounds.Min.Y-rect.Min.Y) > eps {
				t.Errorf("top stem ends at %v, want %v", bounds.Min.Y, rect.Min.Y)
			}
		case EdgeLeft:
			if math.Abs(bounds.Min.X-rect.Min.X) > eps {
				t.Errorf("left stem ends at %v, want %v", bounds.Min.X, rect.Min.X)
			}
		case EdgeRight:
			if math.Abs(bounds.Max.X-rect.Max.X) > eps {
				t.Errorf("right stem ends at %v, want %v", bounds.Max.X, rect.Max.X)
			}
		}
	}
}

func TestOutlineIsDeterministic(t *testing.T) {
	rect := XYWH(3, 4, 120, 70)
	cfg := DefaultConfiguration().WithStemEdge(EdgeRight).WithStemOffset(-12)

	a := Outline(rect, cfg).Elements()
	b := Outline(rect, cfg).Elements()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("element %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func BenchmarkOutline(b *testing.B) {
	rect := XYWH(0, 0, 240, 120)
	cfg := DefaultConfiguration().WithStemEdge(EdgeLeft).WithStemOffset(20)
	b.ReportAllocs()
	for b.Loop() {
		_ = Outline(rect, cfg)
	}
}
