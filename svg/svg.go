// Package svg implements a pen.Surface emitting SVG 1.1 documents.
//
// Transforms are baked into the emitted geometry at insertion time, so the
// output contains plain absolute path data with no nested transform
// groups. Curves survive baking unchanged because Bezier control points are
// affine invariant; circular arcs are converted to cubic Beziers first.
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/gogpu/pen"
)

type drawState struct {
	matrix      pen.Matrix
	lineWidth   float64
	lineCap     pen.LineCap
	lineJoin    pen.LineJoin
	dash        *pen.Dash
	strokeColor color.Color
	fillColor   color.Color
	shadow      pen.Shadow
}

func defaultState() drawState {
	return drawState{
		matrix:      pen.Identity(),
		lineWidth:   1,
		strokeColor: color.NRGBA{A: 255},
		fillColor:   color.NRGBA{A: 255},
	}
}

// Surface is a pen.Surface writing SVG elements. It is not safe for
// concurrent use.
type Surface struct {
	width, height float64
	background    color.Color

	state drawState
	stack []drawState

	// d is the path data of the in-progress path; cur tracks the
	// user-space current point for arc constructions.
	d      strings.Builder
	cur    pen.Point
	curSet bool

	defs     strings.Builder
	body     strings.Builder
	shadowID int
}

var _ pen.Surface = (*Surface)(nil)

// Option configures a Surface at construction time.
type Option func(*Surface)

// WithBackground sets a background color, emitted as a full-canvas rect
// and used by ClearRect. Without it the canvas is transparent and
// ClearRect paints white.
func WithBackground(c color.Color) Option {
	return func(s *Surface) {
		s.background = c
	}
}

// New creates an SVG surface with the given user-unit size.
func New(width, height float64, opts ...Option) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		state:  defaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.background != nil {
		fmt.Fprintf(&s.body, "<rect width=\"%s\" height=\"%s\" fill=\"%s\"/>\n",
			num(width), num(height), pen.HexString(s.background))
	}
	return s
}

// num formats a coordinate compactly.
func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

// pt emits a transformed coordinate pair.
func (s *Surface) pt(x, y float64) string {
	dx, dy := s.state.matrix.ApplyXY(x, y)
	return num(dx) + " " + num(dy)
}

// BeginPath implements pen.Surface.
func (s *Surface) BeginPath() {
	s.d.Reset()
	s.curSet = false
}

// MoveTo implements pen.Surface.
func (s *Surface) MoveTo(x, y float64) {
	fmt.Fprintf(&s.d, "M%s", s.pt(x, y))
	s.cur = pen.Pt(x, y)
	s.curSet = true
}

// LineTo implements pen.Surface.
func (s *Surface) LineTo(x, y float64) {
	if !s.curSet {
		s.MoveTo(x, y)
		return
	}
	fmt.Fprintf(&s.d, "L%s", s.pt(x, y))
	s.cur = pen.Pt(x, y)
}

// QuadTo implements pen.Surface.
func (s *Surface) QuadTo(cx, cy, x, y float64) {
	if !s.curSet {
		s.MoveTo(cx, cy)
	}
	fmt.Fprintf(&s.d, "Q%s %s", s.pt(cx, cy), s.pt(x, y))
	s.cur = pen.Pt(x, y)
}

// CubicTo implements pen.Surface.
func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !s.curSet {
		s.MoveTo(c1x, c1y)
	}
	fmt.Fprintf(&s.d, "C%s %s %s", s.pt(c1x, c1y), s.pt(c2x, c2y), s.pt(x, y))
	s.cur = pen.Pt(x, y)
}

// ClosePath implements pen.Surface.
func (s *Surface) ClosePath() {
	s.d.WriteString("Z")
}

// Rect implements pen.Surface.
func (s *Surface) Rect(x, y, w, h float64) {
	fmt.Fprintf(&s.d, "M%sL%sL%sL%sZ",
		s.pt(x, y), s.pt(x+w, y), s.pt(x+w, y+h), s.pt(x, y+h))
	s.cur = pen.Pt(x, y)
	s.curSet = true
}

// kappa is the cubic Bezier circle approximation constant.
const kappa = 0.5522847498307936

// Ellipse implements pen.Surface. Emitted as four cubic Beziers so the
// baked transform stays exact under rotation.
func (s *Surface) Ellipse(x, y, rx, ry float64) {
	ox, oy := rx*kappa, ry*kappa
	fmt.Fprintf(&s.d, "M%s", s.pt(x+rx, y))
	fmt.Fprintf(&s.d, "C%s %s %s", s.pt(x+rx, y+oy), s.pt(x+ox, y+ry), s.pt(x, y+ry))
	fmt.Fprintf(&s.d, "C%s %s %s", s.pt(x-ox, y+ry), s.pt(x-rx, y+oy), s.pt(x-rx, y))
	fmt.Fprintf(&s.d, "C%s %s %s", s.pt(x-rx, y-oy), s.pt(x-ox, y-ry), s.pt(x, y-ry))
	fmt.Fprintf(&s.d, "C%s %s %s", s.pt(x+ox, y-ry), s.pt(x+rx, y-oy), s.pt(x+rx, y))
	s.d.WriteString("Z")
	s.cur = pen.Pt(x+rx, y)
	s.curSet = true
}

// Arc implements pen.Surface. The arc is split into quarter-turn cubic
// Beziers; a line connects it to any open subpath.
func (s *Surface) Arc(x, y, r, a1, a2 float64) {
	start := pen.Pt(x+r*math.Cos(a1), y+r*math.Sin(a1))
	if s.curSet {
		s.LineTo(start.X, start.Y)
	} else {
		s.MoveTo(start.X, start.Y)
	}
	s.arcBeziers(x, y, r, a1, a2)
	s.cur = pen.Pt(x+r*math.Cos(a2), y+r*math.Sin(a2))
}

// arcBeziers emits an arc as cubic Bezier segments of at most a quarter
// turn each.
func (s *Surface) arcBeziers(x, y, r, a1, a2 float64) {
	sweep := a2 - a1
	segs := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segs < 1 {
		segs = 1
	}
	step := sweep / float64(segs)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < segs; i++ {
		b1 := a1 + step*float64(i)
		b2 := b1 + step
		x1, y1 := x+r*math.Cos(b1), y+r*math.Sin(b1)
		x2, y2 := x+r*math.Cos(b2), y+r*math.Sin(b2)
		c1x := x1 - k*r*math.Sin(b1)
		c1y := y1 + k*r*math.Cos(b1)
		c2x := x2 + k*r*math.Sin(b2)
		c2y := y2 - k*r*math.Cos(b2)
		fmt.Fprintf(&s.d, "C%s %s %s", s.pt(c1x, c1y), s.pt(c2x, c2y), s.pt(x2, y2))
	}
}

// ArcTo implements pen.Surface with canvas arcTo tangent semantics.
func (s *Surface) ArcTo(cx, cy, x, y, r float64) {
	if !s.curSet {
		s.MoveTo(cx, cy)
		return
	}
	p0, p1, p2 := s.cur, pen.Pt(cx, cy), pen.Pt(x, y)
	v0, v1 := p0.Sub(p1), p2.Sub(p1)
	l0, l1 := v0.Length(), v1.Length()
	if r <= 0 || l0 == 0 || l1 == 0 {
		s.LineTo(cx, cy)
		return
	}
	v0, v1 = v0.Mul(1/l0), v1.Mul(1/l1)
	cross := v0.X*v1.Y - v0.Y*v1.X
	if math.Abs(cross) < 1e-12 {
		s.LineTo(cx, cy)
		return
	}
	dot := math.Max(-1, math.Min(1, v0.X*v1.X+v0.Y*v1.Y))
	theta := math.Acos(dot)
	tanDist := r / math.Tan(theta/2)
	t0 := p1.Add(v0.Mul(tanDist))
	t1 := p1.Add(v1.Mul(tanDist))
	center := p1.Add(v0.Add(v1).Normalize().Mul(r / math.Sin(theta/2)))

	a0 := math.Atan2(t0.Y-center.Y, t0.X-center.X)
	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	sweep := a1 - a0
	if cross > 0 && sweep < 0 {
		sweep += 2 * math.Pi
	} else if cross < 0 && sweep > 0 {
		sweep -= 2 * math.Pi
	}

	s.LineTo(t0.X, t0.Y)
	s.arcBeziers(center.X, center.Y, r, a0, a0+sweep)
	s.cur = t1
}

// shadowFilter lazily defines a feDropShadow filter for the current shadow
// and returns its reference, or "" when no shadow is active.
func (s *Surface) shadowFilter() string {
	sh := s.state.shadow
	if !sh.Enabled() {
		return ""
	}
	s.shadowID++
	id := fmt.Sprintf("shadow%d", s.shadowID)
	c := sh.Color
	if c == nil {
		c = color.NRGBA{A: 255}
	}
	fmt.Fprintf(&s.defs,
		"<filter id=%q x=\"-50%%\" y=\"-50%%\" width=\"200%%\" height=\"200%%\">"+
			"<feDropShadow dx=\"%s\" dy=\"%s\" stdDeviation=\"%s\" flood-color=\"%s\"/></filter>\n",
		id, num(sh.OffsetX), num(sh.OffsetY), num(sh.Blur/2), pen.HexString(c))
	return fmt.Sprintf(" filter=\"url(#%s)\"", id)
}

// strokeAttrs renders the current stroke style as SVG attributes.
func (s *Surface) strokeAttrs() string {
	var b strings.Builder
	fmt.Fprintf(&b, " stroke=\"%s\" stroke-width=\"%s\"",
		pen.HexString(s.state.strokeColor), num(s.state.lineWidth*s.state.matrix.ScaleFactor()))
	if s.state.lineCap != pen.LineCapButt {
		fmt.Fprintf(&b, " stroke-linecap=%q", s.state.lineCap.String())
	}
	if s.state.lineJoin != pen.LineJoinMiter {
		fmt.Fprintf(&b, " stroke-linejoin=%q", s.state.lineJoin.String())
	}
	if s.state.dash.IsDashed() {
		scale := s.state.matrix.ScaleFactor()
		parts := make([]string, 0, 4)
		for _, l := range s.state.dash.EffectiveArray() {
			parts = append(parts, num(l*scale))
		}
		fmt.Fprintf(&b, " stroke-dasharray=\"%s\"", strings.Join(parts, " "))
		if s.state.dash.Offset != 0 {
			fmt.Fprintf(&b, " stroke-dashoffset=\"%s\"", num(s.state.dash.Offset*scale))
		}
	}
	return b.String()
}

// Stroke implements pen.Surface.
func (s *Surface) Stroke() {
	if s.d.Len() == 0 {
		return
	}
	fmt.Fprintf(&s.body, "<path d=%q fill=\"none\"%s%s/>\n",
		s.d.String(), s.strokeAttrs(), s.shadowFilter())
}

// Fill implements pen.Surface.
func (s *Surface) Fill(rule pen.FillRule) {
	if s.d.Len() == 0 {
		return
	}
	ruleAttr := ""
	if rule == pen.FillRuleEvenOdd {
		ruleAttr = " fill-rule=\"evenodd\""
	}
	fmt.Fprintf(&s.body, "<path d=%q fill=\"%s\"%s%s/>\n",
		s.d.String(), pen.HexString(s.state.fillColor), ruleAttr, s.shadowFilter())
}

// SetLineWidth implements pen.Surface.
func (s *Surface) SetLineWidth(w float64) { s.state.lineWidth = w }

// SetLineCap implements pen.Surface.
func (s *Surface) SetLineCap(c pen.LineCap) { s.state.lineCap = c }

// SetLineJoin implements pen.Surface.
func (s *Surface) SetLineJoin(j pen.LineJoin) { s.state.lineJoin = j }

// SetDash implements pen.Surface.
func (s *Surface) SetDash(d *pen.Dash) { s.state.dash = d.Clone() }

// SetStrokeColor implements pen.Surface.
func (s *Surface) SetStrokeColor(c color.Color) { s.state.strokeColor = c }

// SetFillColor implements pen.Surface.
func (s *Surface) SetFillColor(c color.Color) { s.state.fillColor = c }

// SetShadow implements pen.Surface.
func (s *Surface) SetShadow(sh pen.Shadow) { s.state.shadow = sh }

// Save implements pen.Surface.
func (s *Surface) Save() { s.stack = append(s.stack, s.state) }

// Restore implements pen.Surface.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		pen.Logger().Warn("svg: Restore without matching Save")
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate implements pen.Surface.
func (s *Surface) Translate(x, y float64) {
	s.state.matrix = s.state.matrix.Multiply(pen.Translation(x, y))
}

// Scale implements pen.Surface.
func (s *Surface) Scale(x, y float64) {
	s.state.matrix = s.state.matrix.Multiply(pen.Scaling(x, y))
}

// Rotate implements pen.Surface.
func (s *Surface) Rotate(angle float64) {
	s.state.matrix = s.state.matrix.Multiply(pen.Rotation(angle))
}

// ClearRect implements pen.Surface by painting the background color over
// the region.
func (s *Surface) ClearRect(x, y, w, h float64) {
	bg := s.background
	if bg == nil {
		bg = color.White
	}
	fmt.Fprintf(&s.body, "<path d=\"M%sL%sL%sL%sZ\" fill=\"%s\"/>\n",
		s.pt(x, y), s.pt(x+w, y), s.pt(x+w, y+h), s.pt(x, y+h), pen.HexString(bg))
}

// escape replaces XML-special characters in text content.
func escape(t string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")
	return r.Replace(t)
}

var anchorNames = map[pen.TextAlign]string{
	pen.AlignEnd:    "end",
	pen.AlignRight:  "end",
	pen.AlignCenter: "middle",
}

var baselineNames = map[pen.TextBaseline]string{
	pen.BaselineTop:     "text-before-edge",
	pen.BaselineHanging: "hanging",
	pen.BaselineMiddle:  "central",
	pen.BaselineBottom:  "text-after-edge",
}

// textAttrs renders the shared attributes of text elements. The transform
// is attached as an attribute here since glyphs cannot be baked.
func (s *Surface) textAttrs(x, y float64, style pen.TextStyle) string {
	var b strings.Builder
	fmt.Fprintf(&b, " x=\"%s\" y=\"%s\"", num(x), num(y))
	if style.Font.Family != "" {
		fmt.Fprintf(&b, " font-family=%q", style.Font.Family)
	}
	size := style.Font.Size
	if size <= 0 {
		size = 16
	}
	fmt.Fprintf(&b, " font-size=\"%s\"", num(size))
	if a, ok := anchorNames[style.Align]; ok {
		fmt.Fprintf(&b, " text-anchor=%q", a)
	}
	if bl, ok := baselineNames[style.Baseline]; ok {
		fmt.Fprintf(&b, " dominant-baseline=%q", bl)
	}
	if m := s.state.matrix; !m.IsIdentity() {
		fmt.Fprintf(&b, " transform=\"matrix(%s %s %s %s %s %s)\"",
			num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
	}
	return b.String()
}

// FillText implements pen.Surface.
func (s *Surface) FillText(text string, x, y float64, style pen.TextStyle) {
	fmt.Fprintf(&s.body, "<text%s fill=\"%s\"%s>%s</text>\n",
		s.textAttrs(x, y, style), pen.HexString(s.state.fillColor), s.shadowFilter(), escape(text))
}

// StrokeText implements pen.Surface.
func (s *Surface) StrokeText(text string, x, y float64, style pen.TextStyle) {
	fmt.Fprintf(&s.body, "<text%s fill=\"none\"%s%s>%s</text>\n",
		s.textAttrs(x, y, style), s.strokeAttrs(), s.shadowFilter(), escape(text))
}

// DrawImage implements pen.Surface. The image is embedded as a base64 PNG
// data URI.
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	if w <= 0 {
		w = float64(b.Dx())
	}
	if h <= 0 {
		h = float64(b.Dy())
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		pen.Logger().Warn("svg: image skipped", "err", err)
		return
	}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	transform := ""
	if m := s.state.matrix; !m.IsIdentity() {
		transform = fmt.Sprintf(" transform=\"matrix(%s %s %s %s %s %s)\"",
			num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
	}
	fmt.Fprintf(&s.body,
		"<image x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\"%s href=%q/>\n",
		num(x), num(y), num(w), num(h), transform, uri)
}

// WriteTo writes the complete SVG document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// String renders the complete SVG document.
func (s *Surface) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		num(s.width), num(s.height), num(s.width), num(s.height))
	if s.defs.Len() > 0 {
		b.WriteString("<defs>\n")
		b.WriteString(s.defs.String())
		b.WriteString("</defs>\n")
	}
	b.WriteString(s.body.String())
	b.WriteString("</svg>\n")
	return b.String()
}
