package balloon

import (
	"errors"
	"image"

	"golang.org/x/image/vector"
)

// ErrEmptyMask is returned when rasterizing into empty bounds.
var ErrEmptyMask = errors.New("balloon: empty mask bounds")

// Rasterize fills the path with the non-zero winding rule into an alpha
// mask covering bounds. Path coordinates are pixel coordinates; the mask's
// Rect is bounds, so mask.AlphaAt(x, y) is the coverage of pixel (x, y).
func (p *Path) Rasterize(bounds image.Rectangle) (*image.Alpha, error) {
	if bounds.Empty() {
		return nil, ErrEmptyMask
	}

	w, h := bounds.Dx(), bounds.Dy()
	z := vector.NewRasterizer(w, h)
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			z.MoveTo(float32(e.Point.X-ox), float32(e.Point.Y-oy))
		case CubicTo:
			z.CubeTo(
				float32(e.Control1.X-ox), float32(e.Control1.Y-oy),
				float32(e.Control2.X-ox), float32(e.Control2.Y-oy),
				float32(e.Point.X-ox), float32(e.Point.Y-oy),
			)
		case Close:
			z.ClosePath()
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// Pix is laid out relative to Rect.Min, so moving the rectangle
	// re-addresses the pixels without copying.
	mask.Rect = bounds

	Logger().Debug("balloon: rasterized mask",
		"bounds", bounds.String(),
		"elements", len(p.elements))
	return mask, nil
}

// Mask rasterizes the outline of a balloon whose body is rect into an
// alpha mask covering bounds, for use as a clipping mask.
func Mask(rect Rect, cfg Configuration, bounds image.Rectangle) (*image.Alpha, error) {
	return Outline(rect, cfg).Rasterize(bounds)
}
