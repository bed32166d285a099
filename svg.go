package balloon

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// svgPrecision is the number of decimals written for SVG coordinates.
const svgPrecision = 4

// SVGPathData returns the path as SVG path data using absolute M, C and Z
// commands, e.g. "M0 92C0 96.4183 3.5817 100 8 100Z".
func (p *Path) SVGPathData() string {
	var sb strings.Builder
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			sb.WriteByte('M')
			writeSVGPoint(&sb, e.Point)
		case CubicTo:
			sb.WriteByte('C')
			writeSVGPoint(&sb, e.Control1)
			sb.WriteByte(' ')
			writeSVGPoint(&sb, e.Control2)
			sb.WriteByte(' ')
			writeSVGPoint(&sb, e.Point)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writeSVGPoint(sb *strings.Builder, p Point) {
	sb.WriteString(formatSVGNumber(p.X))
	sb.WriteByte(' ')
	sb.WriteString(formatSVGNumber(p.Y))
}

func formatSVGNumber(v float64) string {
	scale := math.Pow10(svgPrecision)
	v = math.Round(v*scale) / scale
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SVGDocument wraps the path in a standalone SVG document whose view box is
// viewBox. fill is any SVG paint value such as "#ffcc00" or "none"; it is
// escaped for use as an attribute value.
func SVGDocument(p *Path, viewBox Rect, fill string) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+
			`<path d="%s" fill="%s"/></svg>`+"\n",
		formatSVGNumber(viewBox.Min.X), formatSVGNumber(viewBox.Min.Y),
		formatSVGNumber(viewBox.Width()), formatSVGNumber(viewBox.Height()),
		formatSVGNumber(viewBox.Width()), formatSVGNumber(viewBox.Height()),
		p.SVGPathData(), html.EscapeString(fill),
	)
}
