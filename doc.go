// Package balloon computes the outline of speech balloons for Go.
//
// # Overview
//
// A balloon is a rounded rectangle with a stem (the pointer of a speech
// bubble) protruding from one of its edges. The stem blends into the
// rounded corners through smooth cubic corners and ends in a rounded tip.
// The package is a pure geometry engine: given a Rect and a Configuration
// it returns a closed Path, built only from MoveTo, CubicTo and Close, that
// any renderer can fill, stroke or use as a clipping mask.
//
// # Quick Start
//
//	import "github.com/gogpu/balloon"
//
//	cfg := balloon.DefaultConfiguration().WithStemEdge(balloon.EdgeLeft)
//
//	// Body is the rect, stem protrudes outside it
//	path := balloon.Outline(balloon.XYWH(0, 0, 200, 120), cfg)
//
//	// Whole balloon, stem included, fits inside the rect
//	path = balloon.OutlineInRect(balloon.XYWH(0, 0, 200, 160), cfg)
//
//	fmt.Println(path.SVGPathData())
//
// # Architecture
//
// All geometry is computed once, for the left half of the bottom edge
// (the canonical orientation). The right half is its mirror image and the
// other edges are rotations of it:
//   - Segment: one half edge, corner arc through stem corner to stem tip
//   - EdgeGeometry: two segments sharing a stem tip (EdgeFor)
//   - Shape: four edges; the stem edge owns its adjacent corners (NewShape)
//   - PathBuilder: emits a Shape as a closed cubic path (Outline)
//
// Every value is immutable and every function is pure, so calls may run
// concurrently without coordination. Out-of-range configurations are
// clamped, never rejected.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, π/2 points down
package balloon

// Version is the current version of the library.
const Version = "0.1.0"
