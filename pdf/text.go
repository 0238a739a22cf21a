package pdf

import (
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/gofont"
	"seehuhn.de/go/pdf/graphics"

	"github.com/gogpu/pen"
)

const defaultFontSize = 16

// face is an embeddable font instance together with its vertical metrics
// as em fractions (descent negative).
type face struct {
	inst    font.Instance
	ascent  float64
	descent float64
}

type fontCache map[gofont.Font]face

// goFamily maps a requested family name onto the embedded Go font family.
// Unknown families fall back to Go Regular.
func goFamily(family string) (gofont.Font, []byte) {
	switch strings.ToLower(family) {
	case "", "go", "sans", "sans-serif", "serif", "default":
		return gofont.Regular, goregular.TTF
	case "mono", "monospace", "go mono":
		return gofont.Mono, gomono.TTF
	case "bold", "go bold":
		return gofont.Bold, gobold.TTF
	case "italic", "go italic":
		return gofont.Italic, goitalic.TTF
	default:
		pen.Logger().Warn("pdf: unknown font family, using Go Regular", "family", family)
		return gofont.Regular, goregular.TTF
	}
}

// emMetrics reads ascent and descent from the TTF data, normalized to em
// fractions.
func emMetrics(ttf []byte) (ascent, descent float64, err error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return 0, 0, err
	}
	var buf sfnt.Buffer
	const probe = 1000
	m, err := f.Metrics(&buf, fixed.I(probe), xfont.HintingNone)
	if err != nil {
		return 0, 0, err
	}
	ascent = float64(m.Ascent) / 64 / probe
	descent = -float64(m.Descent) / 64 / probe
	return ascent, descent, nil
}

// face resolves the family name to a cached embeddable font instance.
func (s *Surface) face(family string) (face, error) {
	id, ttf := goFamily(family)
	if f, ok := s.fonts[id]; ok {
		return f, nil
	}
	inst, err := id.NewSimple(nil)
	if err != nil {
		return face{}, err
	}
	asc, desc, err := emMetrics(ttf)
	if err != nil {
		return face{}, err
	}
	f := face{inst: inst, ascent: asc, descent: desc}
	s.fonts[id] = f
	return f, nil
}

// alignOffset shifts the text start so the anchor lands where the
// alignment asks. The embedded Go fonts are left-to-right, so start
// equals left and end equals right.
func alignOffset(a pen.TextAlign, width float64) float64 {
	switch a {
	case pen.AlignCenter:
		return -width / 2
	case pen.AlignRight, pen.AlignEnd:
		return -width
	default:
		return 0
	}
}

// baselineOffset shifts the anchor point onto the alphabetic baseline in
// the page's y-up coordinates.
func baselineOffset(b pen.TextBaseline, f face, size float64) float64 {
	switch b {
	case pen.BaselineTop:
		return -f.ascent * size
	case pen.BaselineHanging:
		return -0.8 * f.ascent * size
	case pen.BaselineMiddle:
		return -(f.ascent + f.descent) / 2 * size
	case pen.BaselineBottom:
		return -f.descent * size
	default:
		return 0
	}
}

// drawText shows one line of text anchored at (x, y), either filled or
// stroked via the text rendering mode.
func (s *Surface) drawText(text string, x, y float64, style pen.TextStyle, stroke bool) {
	f, err := s.face(style.Font.Family)
	if err != nil {
		pen.Logger().Warn("pdf: text skipped", "err", err)
		return
	}
	size := style.Font.Size
	if size <= 0 {
		size = defaultFontSize
	}

	b := s.page
	b.TextBegin()
	b.TextSetFont(f.inst, size)
	if stroke {
		b.TextSetRenderingMode(graphics.TextRenderingModeStroke)
	} else {
		b.TextSetRenderingMode(graphics.TextRenderingModeFill)
	}
	width := b.TextLayout(nil, text).TotalWidth()
	b.TextFirstLine(x+alignOffset(style.Align, width), y+baselineOffset(style.Baseline, f, size))
	b.TextShow(text)
	b.TextEnd()
}

// FillText implements pen.Surface.
func (s *Surface) FillText(text string, x, y float64, style pen.TextStyle) {
	s.drawText(text, x, y, style, false)
}

// StrokeText implements pen.Surface.
func (s *Surface) StrokeText(text string, x, y float64, style pen.TextStyle) {
	s.drawText(text, x, y, style, true)
}
