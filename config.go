package balloon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownEdge is returned when parsing an edge name that is not one of
// top, left, bottom or right.
var ErrUnknownEdge = errors.New("balloon: unknown edge")

// Edge identifies a side of the balloon's rectangle.
type Edge int

const (
	// EdgeBottom is the bottom edge. It is the canonical edge all geometry
	// is computed for.
	EdgeBottom Edge = iota

	// EdgeLeft is the left edge.
	EdgeLeft

	// EdgeTop is the top edge.
	EdgeTop

	// EdgeRight is the right edge.
	EdgeRight
)

// Edges lists every edge in path emission order.
var Edges = [4]Edge{EdgeBottom, EdgeRight, EdgeTop, EdgeLeft}

// Rotation returns the angle that maps the canonical bottom edge onto e.
func (e Edge) Rotation() float64 {
	switch e {
	case EdgeLeft:
		return math.Pi * 0.5
	case EdgeTop:
		return math.Pi
	case EdgeRight:
		return math.Pi * 1.5
	default:
		return 0
	}
}

// String returns the lower-case edge name.
func (e Edge) String() string {
	switch e {
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// ParseEdge parses an edge name case-insensitively.
func ParseEdge(s string) (Edge, error) {
	// A Caser is stateful and must not be shared between goroutines.
	switch cases.Fold().String(strings.TrimSpace(s)) {
	case "bottom":
		return EdgeBottom, nil
	case "left":
		return EdgeLeft, nil
	case "top":
		return EdgeTop, nil
	case "right":
		return EdgeRight, nil
	}
	return EdgeBottom, fmt.Errorf("%w: %q", ErrUnknownEdge, s)
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(text []byte) error {
	parsed, err := ParseEdge(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

type cornerRadiusKind int

const (
	cornerRadiusFixed cornerRadiusKind = iota
	cornerRadiusOval
)

// CornerRadius describes how the rounded corners are sized. It is either
// Oval, a radius of half the rectangle's height, or Fixed(v).
// The zero value is Fixed(0).
type CornerRadius struct {
	kind  cornerRadiusKind
	value float64
}

// Oval returns a corner radius of half the rectangle's height.
func Oval() CornerRadius {
	return CornerRadius{kind: cornerRadiusOval}
}

// Fixed returns a fixed corner radius.
func Fixed(radius float64) CornerRadius {
	return CornerRadius{kind: cornerRadiusFixed, value: radius}
}

// NoCornerRadius is a square-cornered balloon.
var NoCornerRadius = Fixed(0)

// IsOval reports whether r is the oval variant.
func (r CornerRadius) IsOval() bool {
	return r.kind == cornerRadiusOval
}

// Value returns the fixed radius and true, or 0 and false for Oval.
func (r CornerRadius) Value() (float64, bool) {
	switch r.kind {
	case cornerRadiusOval:
		return 0, false
	default:
		return r.value, true
	}
}

// String returns "oval" or the fixed radius.
func (r CornerRadius) String() string {
	if r.IsOval() {
		return "oval"
	}
	return fmt.Sprintf("fixed(%g)", r.value)
}

// CornerSmoothening scales the stem's footprint into the region where the
// rounded corner blends into the stem edge.
type CornerSmoothening struct {
	WidthRatio  float64
	HeightRatio float64
}

// Custom returns a corner smoothening with the given ratios of the stem
// width and height.
func Custom(widthRatio, heightRatio float64) CornerSmoothening {
	return CornerSmoothening{WidthRatio: widthRatio, HeightRatio: heightRatio}
}

var (
	// SmootheningDisabled turns corner smoothing off.
	SmootheningDisabled = Custom(0, 0)

	// SmootheningEnabled is the default corner smoothing.
	SmootheningEnabled = Custom(0.3, 0.25)
)

// StemConfiguration describes the balloon's stem.
type StemConfiguration struct {
	// Edge is the edge the stem protrudes from.
	Edge Edge

	// Offset moves the stem away from the middle of its edge.
	Offset float64

	// Size is the stem's horizontal and vertical extent in screen axes.
	Size Size

	// CornerSmoothening blends the rounded corners into the stem.
	CornerSmoothening CornerSmoothening

	// TipSmoothenWidth flattens the tip of the stem.
	TipSmoothenWidth float64
}

// Configuration describes a balloon. It is an immutable value; all methods
// return modified copies.
type Configuration struct {
	CornerRadius CornerRadius
	Stem         StemConfiguration
}

// DefaultConfiguration returns an 8pt corner radius and a 40×40 smoothed
// stem centered on the bottom edge.
func DefaultConfiguration() Configuration {
	return Configuration{
		CornerRadius: Fixed(8),
		Stem: StemConfiguration{
			Edge:              EdgeBottom,
			Offset:            0,
			Size:              Sz(40, 40),
			CornerSmoothening: SmootheningEnabled,
			TipSmoothenWidth:  4,
		},
	}
}

// WithStemEdge returns a copy of c with the stem on edge.
func (c Configuration) WithStemEdge(edge Edge) Configuration {
	c.Stem.Edge = edge
	return c
}

// WithStemOffset returns a copy of c with the given stem offset.
func (c Configuration) WithStemOffset(offset float64) Configuration {
	c.Stem.Offset = offset
	return c
}

// WithStemSize returns a copy of c with the given stem size.
func (c Configuration) WithStemSize(size Size) Configuration {
	c.Stem.Size = size
	return c
}

// WithCornerRadius returns a copy of c with the given corner radius.
func (c Configuration) WithCornerRadius(radius CornerRadius) Configuration {
	c.CornerRadius = radius
	return c
}
