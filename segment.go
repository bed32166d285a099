package balloon

import "math"

// SmoothCorner is a cubic Bezier that leaves one line and joins another
// tangentially: Control1 lies on the incoming line and Control2 on the
// outgoing line.
type SmoothCorner struct {
	Start    Point
	End      Point
	Control1 Point
	Control2 Point
}

// Mirrored reflects the corner about the vertical center line of rect,
// reversing its direction.
func (c SmoothCorner) Mirrored(rect Rect) SmoothCorner {
	return SmoothCorner{
		Start:    c.End.MirroredIn(rect),
		End:      c.Start.MirroredIn(rect),
		Control1: c.Control2.MirroredIn(rect),
		Control2: c.Control1.MirroredIn(rect),
	}
}

// Rotated rotates the corner by angle radians about the center of rect.
func (c SmoothCorner) Rotated(rect Rect, angle float64) SmoothCorner {
	return SmoothCorner{
		Start:    c.Start.RotatedIn(rect, angle),
		End:      c.End.RotatedIn(rect, angle),
		Control1: c.Control1.RotatedIn(rect, angle),
		Control2: c.Control2.RotatedIn(rect, angle),
	}
}

// Segment is one half of an edge, running from a rounded corner to the tip
// of the stem:
//
//   - the rounded corner arc
//   - a straight line to StemCorner.Start
//   - the smooth stem corner
//   - a straight stem edge to StemEdgeEndPoint
//
// The tip curve between the two halves of an edge is owned by the edge.
type Segment struct {
	RoundRectCorner  Arc
	StemCorner       SmoothCorner
	StemEdgeEndPoint Point
	StemTipPoint     Point
}

// Mirrored reflects the segment about the vertical center line of rect.
func (s Segment) Mirrored(rect Rect) Segment {
	return Segment{
		RoundRectCorner:  s.RoundRectCorner.Mirrored(rect),
		StemCorner:       s.StemCorner.Mirrored(rect),
		StemEdgeEndPoint: s.StemEdgeEndPoint.MirroredIn(rect),
		StemTipPoint:     s.StemTipPoint.MirroredIn(rect),
	}
}

// Rotated rotates the segment by angle radians about the center of rect.
func (s Segment) Rotated(rect Rect, angle float64) Segment {
	return Segment{
		RoundRectCorner:  s.RoundRectCorner.Rotated(rect, angle),
		StemCorner:       s.StemCorner.Rotated(rect, angle),
		StemEdgeEndPoint: s.StemEdgeEndPoint.RotatedIn(rect, angle),
		StemTipPoint:     s.StemTipPoint.RotatedIn(rect, angle),
	}
}

// canonicalLeftSegment computes the left half of the bottom edge of rect,
// from the bottom-left rounded corner up to the stem tip. cfg must already
// be rotated so that its stem sits on the bottom edge.
//
// Every other half edge is derived from this one by mirroring and rotation.
func canonicalLeftSegment(rect Rect, cfg Configuration) Segment {
	left := Pt(rect.Min.X, rect.Max.Y)

	cornerRadius := cfg.CornerRadius.Width(rect)
	stemSize, smoothing := cfg.Stem.Sizes(rect)
	halfStemWidth := stemSize.Width * 0.5

	// Keep the stem and its smoothing inside the rectangle. When both
	// cannot fit the range inverts and the upper bound wins.
	stemMid := clamp(rect.Center().X+cfg.Stem.Offset,
		rect.Min.X+halfStemWidth+smoothing.Width,
		rect.Max.X-halfStemWidth-smoothing.Width)
	stemLeft := stemMid - halfStemWidth
	tipSmoothenWidth := cfg.Stem.tipSmoothenWidth(stemSize.Width)

	stemTipPoint := Pt(stemMid, left.Y+stemSize.Height)
	smoothenedCornerStartX := stemLeft - smoothing.Width

	// The corner arc runs from the left side (angle π) towards the bottom
	// (angle π/2) and stops where the smoothing region begins.
	arcCenter := Pt(left.X+cornerRadius, left.Y-cornerRadius)
	arcStartAngle := math.Pi
	arcNonOverlappedWidth := clamp(smoothenedCornerStartX-left.X, 0, cornerRadius)
	arcEndAngle := arcStartAngle
	if !IsAlmostZero(cornerRadius) {
		ratio := clamp((arcNonOverlappedWidth-cornerRadius)/cornerRadius, -1, 1)
		arcEndAngle = math.Acos(ratio)
	}
	arcStart := ArcPoint{Point: Pt(left.X, left.Y-cornerRadius), Angle: arcStartAngle}
	arcEnd := arcPointAt(arcCenter, cornerRadius, arcEndAngle)

	smoothenedCornerStartPoint := Pt(smoothenedCornerStartX, arcEnd.Point.Y)

	// Where the stem edge would meet the bottom edge without smoothing.
	stemEdgeStartPoint := Pt(stemLeft, left.Y)

	arcTangentLine := TangentLine(arcEnd.Point, arcCenter)
	stemEdgeLine := NewLine(stemEdgeStartPoint, stemTipPoint)
	stemSlope := stemEdgeLine.Slope().ValueOr(0)

	smoothenedCornerEndPoint, ok := stemEdgeLine.PointForY(stemEdgeStartPoint.Y + smoothing.Height)
	if !ok {
		smoothenedCornerEndPoint = stemEdgeStartPoint
	}

	// A cubic leaves line L0 and joins line L1 tangentially when its first
	// control point lies on L0 and its second on L1. Both are taken where
	// the lines cross the bottom edge.
	bottomLine := HorizontalLine(left.Y)
	stemCornerControlPoint, ok := bottomLine.Intersection(stemEdgeLine)
	if !ok {
		stemCornerControlPoint = stemEdgeStartPoint
	}
	arcCornerControlPoint, ok := bottomLine.Intersection(arcTangentLine)
	if !ok {
		arcCornerControlPoint = stemEdgeStartPoint
	}

	stemEdgeEndPoint := Pt(stemTipPoint.X-tipSmoothenWidth*0.5,
		stemTipPoint.Y-tipSmoothenWidth*0.5*stemSlope)

	return Segment{
		RoundRectCorner: Arc{
			Center: arcCenter,
			Radius: cornerRadius,
			Start:  arcStart,
			End:    arcEnd,
		},
		StemCorner: SmoothCorner{
			Start:    smoothenedCornerStartPoint,
			End:      smoothenedCornerEndPoint,
			Control1: arcCornerControlPoint,
			Control2: stemCornerControlPoint,
		},
		StemEdgeEndPoint: stemEdgeEndPoint,
		StemTipPoint:     stemTipPoint,
	}
}

// canonicalRightSegment computes the right half of the bottom edge by
// mirroring the left half of the mirrored configuration.
func canonicalRightSegment(rect Rect, cfg Configuration) Segment {
	return canonicalLeftSegment(rect, cfg.Mirrored()).Mirrored(rect)
}
