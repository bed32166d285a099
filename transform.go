package balloon

import "math"

// Mirrored returns c with the stem offset reflected about the middle of its
// edge.
func (c Configuration) Mirrored() Configuration {
	c.Stem.Offset = -c.Stem.Offset
	return c
}

// Rotated returns c as seen after rotating the balloon by angle radians.
//
// The stem size and smoothing ratios rotate as vectors. The offset keeps its
// sign for angles in [0, π) and flips otherwise, so that rotating the
// configuration agrees with rotating the geometry it produces. The stem
// edge is not changed.
func (c Configuration) Rotated(angle float64) Configuration {
	c.Stem.Size = c.Stem.Size.rotated(angle)
	if angle < 0 || angle >= math.Pi {
		c.Stem.Offset = -c.Stem.Offset
	}
	c.Stem.CornerSmoothening = c.Stem.CornerSmoothening.rotated(angle)
	return c
}

func (s CornerSmoothening) rotated(angle float64) CornerSmoothening {
	ratios := Sz(s.WidthRatio, s.HeightRatio).rotated(angle)
	return Custom(ratios.Width, ratios.Height)
}

// AdjustedForEdge returns c unchanged when its stem is on edge, and
// otherwise a copy whose stem is flattened away so that edge renders as a
// plain rounded-rectangle edge.
func (c Configuration) AdjustedForEdge(edge Edge) Configuration {
	if c.Stem.Edge == edge {
		return c
	}
	c.Stem.TipSmoothenWidth = 0
	c.Stem.CornerSmoothening = SmootheningDisabled
	c.Stem.Offset = 0
	c.Stem.Size = Size{}
	return c
}
