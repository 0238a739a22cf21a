package raster

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/pen"
)

// defaultFontSize is used when the text style leaves the size at zero.
const defaultFontSize = 16

// face holds one font parsed twice: the sfnt form for outline extraction
// and metrics, the go-text form for HarfBuzz shaping.
type face struct {
	sfnt   *sfnt.Font
	gotext *font.Font
}

func parseFace(data []byte) (*face, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &face{sfnt: sf, gotext: gt.Font}, nil
}

// fontRegistry maps family names to parsed faces. The fallback face
// (Go Regular) is parsed on first use.
type fontRegistry struct {
	faces    map[string]*face
	fallback *face
}

func newFontRegistry() *fontRegistry {
	return &fontRegistry{faces: make(map[string]*face)}
}

func (r *fontRegistry) register(family string, data []byte) error {
	f, err := parseFace(data)
	if err != nil {
		return err
	}
	r.faces[family] = f
	return nil
}

// resolve returns the face for a family, falling back to the default face
// for unknown or empty families.
func (r *fontRegistry) resolve(family string) (*face, error) {
	if family != "" {
		if f, ok := r.faces[family]; ok {
			return f, nil
		}
		pen.Logger().Warn("raster: unknown font family, using default", "family", family)
	}
	if r.fallback == nil {
		f, err := parseFace(goregular.TTF)
		if err != nil {
			return nil, err
		}
		r.fallback = f
	}
	return r.fallback, nil
}

// textShaper wraps a HarfbuzzShaper. Not safe for concurrent use, like the
// surface that owns it.
type textShaper struct {
	hb shaping.HarfbuzzShaper
}

func (ts *textShaper) shape(text string, f *face, size float64, dir di.Direction) shaping.Output {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(f.gotext),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	return ts.hb.Shape(input)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// detectDirection derives the paragraph direction with the Unicode bidi
// algorithm; the first run decides.
func detectDirection(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

// FillText implements pen.Surface.
func (s *Surface) FillText(text string, x, y float64, style pen.TextStyle) {
	cs := s.textContours(text, x, y, style)
	if len(cs) == 0 {
		return
	}
	if s.state.shadow.Enabled() {
		sh := s.state.shadow
		fillNonZero(s.img, offsetContours(cs, sh.OffsetX, sh.OffsetY), sh.Color)
	}
	fillNonZero(s.img, cs, s.state.fillColor)
}

// StrokeText implements pen.Surface. Glyph outlines are stroked with the
// current stroke settings.
func (s *Surface) StrokeText(text string, x, y float64, style pen.TextStyle) {
	cs := s.textContours(text, x, y, style)
	if len(cs) == 0 {
		return
	}
	s.paintStroke(cs, s.state)
}

// textContours shapes a string and converts the positioned glyph outlines
// into device-space contours, resolving alignment and baseline against the
// anchor point.
func (s *Surface) textContours(text string, x, y float64, style pen.TextStyle) []contour {
	if text == "" {
		return nil
	}
	f, err := s.fonts.resolve(style.Font.Family)
	if err != nil {
		pen.Logger().Warn("raster: text skipped, no usable font", "err", err)
		return nil
	}
	size := style.Font.Size
	if size <= 0 {
		size = defaultFontSize
	}

	dir := detectDirection(text)
	out := s.shaper.shape(text, f, size, dir)

	penX := x + alignOffset(style.Align, dir, fixedToFloat(out.Advance))
	penY := y + baselineOffset(f, size, style.Baseline)

	ppem := fixed.Int26_6(size * 64)
	var buf sfnt.Buffer
	var cs []contour
	for _, g := range out.Glyphs {
		segs, err := f.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err == nil {
			ox := penX + fixedToFloat(g.XOffset)
			oy := penY - fixedToFloat(g.YOffset)
			cs = s.appendGlyphContours(cs, segs, ox, oy)
		}
		penX += fixedToFloat(g.XAdvance)
	}
	return cs
}

// appendGlyphContours flattens sfnt glyph segments, translated to the
// glyph origin and passed through the current transform. LoadGlyph output
// is already in pixels with y growing downward.
func (s *Surface) appendGlyphContours(cs []contour, segs sfnt.Segments, ox, oy float64) []contour {
	at := func(p fixed.Point26_6) pen.Point {
		gx := ox + fixedToFloat(p.X)
		gy := oy + fixedToFloat(p.Y)
		dx, dy := s.state.matrix.ApplyXY(gx, gy)
		return pen.Pt(dx, dy)
	}
	var cur pen.Point
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			cs = append(cs, contour{closed: true})
			cur = at(seg.Args[0])
			cs[len(cs)-1].pts = append(cs[len(cs)-1].pts, cur)
		case sfnt.SegmentOpLineTo:
			cur = at(seg.Args[0])
			cs[len(cs)-1].pts = append(cs[len(cs)-1].pts, cur)
		case sfnt.SegmentOpQuadTo:
			c1 := at(seg.Args[0])
			end := at(seg.Args[1])
			steps := curveSteps(cur.Distance(c1) + c1.Distance(end))
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				cs[len(cs)-1].pts = append(cs[len(cs)-1].pts, quadPoint(cur, c1, end, t))
			}
			cur = end
		case sfnt.SegmentOpCubeTo:
			c1 := at(seg.Args[0])
			c2 := at(seg.Args[1])
			end := at(seg.Args[2])
			steps := curveSteps(cur.Distance(c1) + c1.Distance(c2) + c2.Distance(end))
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				cs[len(cs)-1].pts = append(cs[len(cs)-1].pts, cubicPoint(cur, c1, c2, end, t))
			}
			cur = end
		}
	}
	return cs
}

// alignOffset returns the horizontal shift of the text run relative to the
// anchor. Start and end resolve against the detected direction.
func alignOffset(a pen.TextAlign, dir di.Direction, width float64) float64 {
	switch a {
	case pen.AlignCenter:
		return -width / 2
	case pen.AlignLeft:
		return 0
	case pen.AlignRight:
		return -width
	case pen.AlignEnd:
		if dir == di.DirectionRTL {
			return 0
		}
		return -width
	default: // start
		if dir == di.DirectionRTL {
			return -width
		}
		return 0
	}
}

// baselineOffset returns the vertical shift from the anchor to the
// alphabetic baseline for the requested baseline mode.
func baselineOffset(f *face, size float64, b pen.TextBaseline) float64 {
	if b == pen.BaselineAlphabetic {
		return 0
	}
	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, fixed.Int26_6(size*64), xfont.HintingNone)
	if err != nil {
		return 0
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	switch b {
	case pen.BaselineTop:
		return ascent
	case pen.BaselineHanging:
		return ascent * 0.8
	case pen.BaselineMiddle:
		return (ascent - descent) / 2
	case pen.BaselineBottom:
		return -descent
	}
	return 0
}
