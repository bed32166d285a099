package balloon

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(3, 4), Pt(13, -1)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate quarter", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate half", Rotate(math.Pi), Pt(1, 2), Pt(-1, -2)},
		{"rotate about center", RotateAbout(Pt(50, 50), math.Pi/2), Pt(50, 100), Pt(0, 50)},
		{"mirror", MirrorX(50), Pt(8, 100), Pt(92, 100)},
		{"mirror on axis", MirrorX(50), Pt(50, 7), Pt(50, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !near(got, tt.want, 1e-12) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotateQuarterTurnsAreExact(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 2, math.Pi, 1.5 * math.Pi} {
		m := Rotate(angle)
		for _, v := range []float64{m.A, m.B, m.D, m.E} {
			if v != 0 && v != 1 && v != -1 {
				t.Errorf("Rotate(%v) has inexact entry %v", angle, v)
			}
		}
	}
}

func TestMatrixMultiply(t *testing.T) {
	// Translate then scale: the scale applies first to the point.
	m := Translate(10, 20).Multiply(Scale(2, 2))
	if got := m.TransformPoint(Pt(1, 1)); got != Pt(12, 22) {
		t.Errorf("TransformPoint = %v, want (12, 22)", got)
	}
	if !Identity().Multiply(Identity()).IsIdentity() {
		t.Error("identity * identity should be identity")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("translation should not be identity")
	}
}

func TestMirrorIsInvolution(t *testing.T) {
	m := MirrorX(37.5).Multiply(MirrorX(37.5))
	p := Pt(12.25, -3)
	if got := m.TransformPoint(p); !near(got, p, 1e-12) {
		t.Errorf("mirroring twice = %v, want %v", got, p)
	}
}
