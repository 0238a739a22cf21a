package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/pen"
)

func TestStrokePath(t *testing.T) {
	s := New(100, 100)
	s.SetStrokeColor(pen.Hex("#ff0000"))
	s.SetLineWidth(3)
	s.MoveTo(10, 10)
	s.LineTo(90, 90)
	s.Stroke()

	out := s.String()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"`,
		`d="M10 10L90 90"`,
		`stroke="#ff0000"`,
		`stroke-width="3"`,
		`fill="none"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFillRuleAttr(t *testing.T) {
	s := New(50, 50)
	s.Rect(0, 0, 50, 50)
	s.Fill(pen.FillRuleEvenOdd)
	if !strings.Contains(s.String(), `fill-rule="evenodd"`) {
		t.Errorf("missing fill-rule attribute:\n%s", s.String())
	}

	s2 := New(50, 50)
	s2.Rect(0, 0, 50, 50)
	s2.Fill(pen.FillRuleNonZero)
	if strings.Contains(s2.String(), "fill-rule") {
		t.Error("non-zero is the SVG default; no attribute expected")
	}
}

func TestBakedTransform(t *testing.T) {
	s := New(100, 100)
	s.Translate(10, 20)
	s.MoveTo(0, 0)
	s.LineTo(5, 5)
	s.Stroke()

	out := s.String()
	if !strings.Contains(out, "M10 20L15 25") {
		t.Errorf("transform not baked into path data:\n%s", out)
	}
	if strings.Contains(out, "<path") && strings.Contains(out, "transform=") {
		t.Error("baked paths must not carry a transform attribute")
	}
}

func TestScaledStrokeWidth(t *testing.T) {
	s := New(100, 100)
	s.Scale(2, 2)
	s.SetLineWidth(3)
	s.MoveTo(0, 0)
	s.LineTo(10, 0)
	s.Stroke()
	if !strings.Contains(s.String(), `stroke-width="6"`) {
		t.Errorf("stroke width must scale with the transform:\n%s", s.String())
	}
}

func TestDashAttrs(t *testing.T) {
	s := New(100, 100)
	s.SetDash(pen.NewDash(5, 3).WithOffset(2))
	s.MoveTo(0, 0)
	s.LineTo(50, 0)
	s.Stroke()

	out := s.String()
	if !strings.Contains(out, `stroke-dasharray="5 3"`) {
		t.Errorf("missing dasharray:\n%s", out)
	}
	if !strings.Contains(out, `stroke-dashoffset="2"`) {
		t.Errorf("missing dashoffset:\n%s", out)
	}

	s.SetDash(nil)
	s.BeginPath()
	s.MoveTo(0, 10)
	s.LineTo(50, 10)
	s.Stroke()
	if strings.Count(s.String(), "stroke-dasharray") != 1 {
		t.Error("clearing the dash must stop emitting dasharray")
	}
}

func TestShadowFilter(t *testing.T) {
	s := New(100, 100)
	s.SetShadow(pen.Shadow{OffsetX: 2, OffsetY: 3, Blur: 4, Color: pen.Hex("#00000080")})
	s.Rect(10, 10, 30, 30)
	s.Fill(pen.FillRuleNonZero)

	out := s.String()
	for _, want := range []string{
		`<feDropShadow dx="2" dy="3" stdDeviation="2"`,
		`filter="url(#shadow1)"`,
		"<defs>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextElement(t *testing.T) {
	s := New(200, 100)
	s.SetFillColor(pen.Hex("#123456"))
	s.FillText("a < b & c", 20, 40, pen.TextStyle{
		Font:     pen.Font{Family: "serif", Size: 24},
		Align:    pen.AlignCenter,
		Baseline: pen.BaselineMiddle,
	})

	out := s.String()
	for _, want := range []string{
		`<text x="20" y="40"`,
		`font-family="serif"`,
		`font-size="24"`,
		`text-anchor="middle"`,
		`dominant-baseline="central"`,
		`fill="#123456"`,
		"a &lt; b &amp; c",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStrokeTextElement(t *testing.T) {
	s := New(200, 100)
	s.StrokeText("outline", 10, 50, pen.TextStyle{})
	out := s.String()
	if !strings.Contains(out, `fill="none"`) || !strings.Contains(out, "stroke=") {
		t.Errorf("stroked text must carry stroke attributes:\n%s", out)
	}
}

func TestClearRectPaintsBackground(t *testing.T) {
	s := New(100, 100, WithBackground(pen.Hex("#eeeeee")))
	s.ClearRect(10, 10, 20, 20)
	out := s.String()
	if strings.Count(out, `fill="#eeeeee"`) != 2 { // background rect + clear
		t.Errorf("expected background-colored clear rect:\n%s", out)
	}
}

func TestDrawImageEmbedsDataURI(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	s := New(50, 50)
	s.DrawImage(img, 5, 5, 0, 0)

	out := s.String()
	if !strings.Contains(out, `href="data:image/png;base64,`) {
		t.Errorf("missing embedded image:\n%s", out)
	}
	if !strings.Contains(out, `width="2" height="2"`) {
		t.Errorf("natural size not used:\n%s", out)
	}
}

func TestPathRetainedAcrossPaints(t *testing.T) {
	// Stroke then fill without BeginPath paints the same path twice.
	s := New(100, 100)
	s.MoveTo(0, 0)
	s.LineTo(10, 10)
	s.Stroke()
	s.Fill(pen.FillRuleNonZero)
	if strings.Count(s.String(), `d="M0 0L10 10"`) != 2 {
		t.Errorf("expected path emitted twice:\n%s", s.String())
	}
}

func TestWellFormedXML(t *testing.T) {
	s := New(120, 80, WithBackground(color.White))
	s.SetShadow(pen.Shadow{OffsetX: 1, OffsetY: 1, Color: color.Black})
	s.MoveTo(10, 10)
	s.QuadTo(60, 0, 110, 10)
	s.Stroke()
	s.SetShadow(pen.Shadow{})
	s.FillText("hello \"quoted\"", 10, 50, pen.TextStyle{})
	s.Ellipse(60, 40, 20, 10)
	s.Fill(pen.FillRuleNonZero)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v", err)
		}
	}
}
