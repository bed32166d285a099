package balloon

import (
	"strings"
	"testing"
)

func TestSVGPathData(t *testing.T) {
	path := BuildPath().
		MoveTo(Pt(0, 92)).
		ArcTo(Pt(8, 92), Pt(8, 100)).
		LineTo(Pt(18, 100)).
		Close().
		Build()

	want := "M0 92C0 96.4183 3.5817 100 8 100C13 100 13 100 18 100Z"
	if got := path.SVGPathData(); got != want {
		t.Errorf("SVGPathData() = %q, want %q", got, want)
	}
}

func TestFormatSVGNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.00001, "0"},
		{1.5, "1.5"},
		{-2.25, "-2.25"},
		{96.41827799864635, "96.4183"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		if got := formatSVGNumber(tt.in); got != tt.want {
			t.Errorf("formatSVGNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutlineSVG(t *testing.T) {
	data := Outline(XYWH(0, 0, 100, 100), DefaultConfiguration()).SVGPathData()

	if !strings.HasPrefix(data, "M0 92C0 96.4183 3.5817 100 8 100C") {
		t.Errorf("unexpected start: %.60s", data)
	}
	if !strings.HasSuffix(data, "Z") {
		t.Errorf("path data not closed: %s", data)
	}
	if n := strings.Count(data, "C"); n != 32 {
		t.Errorf("got %d cubic commands, want 32", n)
	}
	if strings.ContainsAny(data, "LQAHV") {
		t.Errorf("path data uses commands other than M, C and Z: %s", data)
	}
}

func TestSVGDocument(t *testing.T) {
	path := Outline(XYWH(4, 4, 100, 60), DefaultConfiguration())
	doc := SVGDocument(path, XYWH(0, 0, 108, 108), "#4682b4")

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="0 0 108 108"`,
		`width="108" height="108"`,
		`fill="#4682b4"`,
		`d="` + path.SVGPathData() + `"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %s:\n%s", want, doc)
		}
	}
}

func TestSVGDocumentEscapesFill(t *testing.T) {
	doc := SVGDocument(NewPath(), XYWH(0, 0, 10, 10), `red" onload="x()`)

	if strings.Contains(doc, `onload="`) {
		t.Errorf("fill escaped the attribute:\n%s", doc)
	}
	if !strings.Contains(doc, `fill="red&#34; onload=&#34;x()"`) {
		t.Errorf("fill not escaped:\n%s", doc)
	}
}
