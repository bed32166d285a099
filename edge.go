package balloon

// EdgeGeometry describes one edge of a balloon. The start segment runs from
// the first corner to the stem, the end segment from the last corner back
// to the stem; both share StemTipPoint. An edge without a stem collapses
// the stem to a point in the middle of the edge.
type EdgeGeometry struct {
	Start        Segment
	StemTipPoint Point
	End          Segment
}

// Rotated rotates the edge by angle radians about the center of rect.
func (e EdgeGeometry) Rotated(rect Rect, angle float64) EdgeGeometry {
	return EdgeGeometry{
		Start:        e.Start.Rotated(rect, angle),
		StemTipPoint: e.StemTipPoint.RotatedIn(rect, angle),
		End:          e.End.Rotated(rect, angle),
	}
}

// EdgeFor computes the geometry of edge for a balloon whose body is rect.
//
// The rect and configuration are rotated so that edge becomes the bottom
// edge, the bottom edge is computed, and the result is rotated back. When
// the stem is on another edge it is flattened first.
func EdgeFor(edge Edge, rect Rect, cfg Configuration) EdgeGeometry {
	angle := edge.Rotation()
	canonicalRect := rect.Rotated(-angle)
	canonicalCfg := cfg.Rotated(-angle).AdjustedForEdge(edge)

	start := canonicalLeftSegment(canonicalRect, canonicalCfg).Rotated(rect, angle)
	end := canonicalRightSegment(canonicalRect, canonicalCfg).Rotated(rect, angle)

	return EdgeGeometry{
		Start:        start,
		StemTipPoint: start.StemTipPoint,
		End:          end,
	}
}
