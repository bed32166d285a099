package balloon

// Width returns the effective corner radius for rect: half the height for
// Oval, the fixed value otherwise, never more than half the width or half
// the height and never negative.
func (r CornerRadius) Width(rect Rect) float64 {
	var radius float64
	switch r.kind {
	case cornerRadiusOval:
		radius = rect.Height() * 0.5
	case cornerRadiusFixed:
		radius = r.value
	}
	return max(0, min(rect.Width()*0.5, rect.Height()*0.5, radius))
}

// Size returns the smoothing region for a stem of the given size.
func (s CornerSmoothening) Size(stem Size) Size {
	return Size{
		Width:  stem.Width * s.WidthRatio,
		Height: stem.Height * s.HeightRatio,
	}
}

// Sizes returns the effective stem size and corner smoothening size for
// rect, in the canonical orientation where the stem sits on the bottom edge.
//
// The stem is never wider than rect but may protrude any distance. The
// smoothing region is never wider than the room rect leaves beside the
// stem.
func (s StemConfiguration) Sizes(rect Rect) (stem, smoothing Size) {
	stem = Size{
		Width:  max(0, min(rect.Width(), s.Size.Width)),
		Height: max(0, s.Size.Height),
	}

	wanted := s.CornerSmoothening.Size(stem)
	free := rect.Width() - stem.Width
	smoothing = Size{
		Width:  max(0, min(free, wanted.Width)),
		Height: max(0, wanted.Height),
	}
	return stem, smoothing
}

// tipSmoothenWidth returns the effective tip smoothing width for a stem of
// the given width.
func (s StemConfiguration) tipSmoothenWidth(stemWidth float64) float64 {
	return max(0, min(stemWidth*0.5, s.TipSmoothenWidth))
}

// Insets are distances measured inward from each edge of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Inset returns rect shrunk by the insets. Sizes never go negative.
func (in Insets) Inset(rect Rect) Rect {
	minX := rect.Min.X + in.Left
	minY := rect.Min.Y + in.Top
	maxX := max(minX, rect.Max.X-in.Right)
	maxY := max(minY, rect.Max.Y-in.Bottom)
	return Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}
}

// ContentInsets returns the room the stem takes from rect, as an inset on
// the edge that carries the stem.
func ContentInsets(rect Rect, cfg Configuration) Insets {
	stem, _ := cfg.Stem.Sizes(rect)
	var in Insets
	switch cfg.Stem.Edge {
	case EdgeTop:
		in.Top = stem.Height
	case EdgeBottom:
		in.Bottom = stem.Height
	case EdgeLeft:
		in.Left = stem.Width
	case EdgeRight:
		in.Right = stem.Width
	}
	return in
}

// ContentRect returns rect without the stem's footprint: the body of a
// balloon that fits, stem included, inside rect.
func ContentRect(rect Rect, cfg Configuration) Rect {
	return ContentInsets(rect, cfg).Inset(rect)
}

// EffectiveCornerRadius returns the corner radius that applies to the
// content rect of rect.
func EffectiveCornerRadius(rect Rect, cfg Configuration) float64 {
	return cfg.CornerRadius.Width(ContentRect(rect, cfg))
}
