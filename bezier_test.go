package balloon

import (
	"testing"
)

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{P0: Pt(48, 136), P1: Pt(50, 140), P2: Pt(52, 136)}
	c := q.Raise()

	if c.P0 != q.P0 || c.P3 != q.P2 {
		t.Errorf("endpoints changed: %+v", c)
	}
	for _, tt := range []float64{0, 0.2, 0.5, 0.9, 1} {
		if got, want := c.Eval(tt), q.Eval(tt); !near(got, want, 1e-12) {
			t.Errorf("Eval(%v) = %v, quadratic gives %v", tt, got, want)
		}
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		c    CubicBez
		want Rect
	}{
		{
			name: "straight",
			c:    CubicBez{Pt(0, 0), Pt(5, 0), Pt(5, 0), Pt(10, 0)},
			want: NewRect(Pt(0, 0), Pt(10, 0)),
		},
		{
			name: "hump",
			c:    CubicBez{Pt(0, 0), Pt(0, 40), Pt(40, 40), Pt(40, 0)},
			want: NewRect(Pt(0, 0), Pt(40, 30)),
		},
		{
			name: "overshoot",
			c:    CubicBez{Pt(0, 0), Pt(-30, 0), Pt(30, 0), Pt(0, 0)},
			want: NewRect(Pt(-8.660254037844386, 0), Pt(8.660254037844386, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.BoundingBox()
			if !near(got.Min, tt.want.Min, 1e-9) || !near(got.Max, tt.want.Max, 1e-9) {
				t.Errorf("BoundingBox() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnitQuadraticRoots(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -1, 0.1875, []float64{0.25, 0.75}},
		{"linear", 0, 2, -1, []float64{0.5}},
		{"outside", 1, 0, -4, nil},
		{"complex", 1, 0, 1, nil},
		{"constant", 0, 0, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unitQuadraticRoots(tt.a, tt.b, tt.c)
			if len(got) != len(tt.want) {
				t.Fatalf("roots = %v, want %v", got, tt.want)
			}
			// Root order is not guaranteed.
			for _, w := range tt.want {
				found := false
				for _, g := range got {
					if IsAlmostEqualTolerance(g, w, 1e-9) {
						found = true
					}
				}
				if !found {
					t.Errorf("roots = %v, missing %v", got, w)
				}
			}
		})
	}
}

func TestOutlineTightBounds(t *testing.T) {
	p := Outline(XYWH(0, 0, 100, 100), DefaultConfiguration())
	tight := p.TightBounds()
	hull := p.Bounds()

	// The smoothed tip peaks halfway between its quadratic endpoints.
	if !near(tight.Max, Pt(100, 138), 1e-9) || !near(tight.Min, Pt(0, 0), 1e-9) {
		t.Errorf("TightBounds() = %v", tight)
	}
	if tight.Max.Y > hull.Max.Y || tight.Min.X < hull.Min.X {
		t.Errorf("tight bounds %v exceed the hull %v", tight, hull)
	}
}
