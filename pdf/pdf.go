// Package pdf implements a pen.Surface writing a single-page PDF document
// through the seehuhn.de/go/pdf content builder.
//
// PDF paint operators consume the current path, while a pen.Surface keeps
// its path across paints. Path construction is therefore buffered and
// replayed into the builder on every Stroke or Fill. Transforms, styles
// and graphics-state save/restore map directly onto the corresponding
// content-stream operators, so strokes and dashes scale with the CTM the
// way PDF defines it.
//
// The page keeps PDF's bottom-left origin; callers address the page in
// PDF user space. Shadows and raster images are not supported by this
// backend and are logged and skipped.
package pdf

import (
	"image"
	"image/color"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	pdflib "seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"github.com/gogpu/pen"
)

type pathOp uint8

const (
	opMoveTo pathOp = iota
	opLineTo
	opCurveTo
	opClosePath
	opRect
	opArcMove
	opArcLine
)

// pathCmd is one buffered path construction step in page user space.
type pathCmd struct {
	op   pathOp
	args [6]float64
}

// Surface is a pen.Surface drawing onto a single PDF page. It is not safe
// for concurrent use. Close must be called to finalise the document.
type Surface struct {
	page *document.Page

	width, height float64
	version       pdflib.Version

	path   []pathCmd
	cur    pen.Point
	curSet bool

	depth int // graphics state nesting, guards Restore

	fonts fontCache
}

var _ pen.Surface = (*Surface)(nil)

// Option configures a Surface at construction time.
type Option func(*Surface)

// WithVersion selects the PDF version of the output document. The default
// is PDF 1.7.
func WithVersion(v pdflib.Version) Option {
	return func(s *Surface) {
		s.version = v
	}
}

// New creates a PDF surface writing a single page of the given size (in
// PDF points) to w.
func New(w io.Writer, width, height float64, opts ...Option) (*Surface, error) {
	s := &Surface{
		width:   width,
		height:  height,
		version: pdflib.V1_7,
		fonts:   make(fontCache),
	}
	for _, opt := range opts {
		opt(s)
	}
	page, err := document.WriteSinglePage(w, &pdflib.Rectangle{URx: width, URy: height}, s.version, nil)
	if err != nil {
		return nil, err
	}
	s.page = page
	s.page.SetLineWidth(1)
	return s, nil
}

// Close finalises and writes the document. The surface must not be used
// afterwards.
func (s *Surface) Close() error {
	return s.page.Close()
}

// BeginPath implements pen.Surface.
func (s *Surface) BeginPath() {
	s.path = s.path[:0]
	s.curSet = false
}

// MoveTo implements pen.Surface.
func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path, pathCmd{op: opMoveTo, args: [6]float64{x, y}})
	s.cur = pen.Pt(x, y)
	s.curSet = true
}

// LineTo implements pen.Surface.
func (s *Surface) LineTo(x, y float64) {
	if !s.curSet {
		s.MoveTo(x, y)
		return
	}
	s.path = append(s.path, pathCmd{op: opLineTo, args: [6]float64{x, y}})
	s.cur = pen.Pt(x, y)
}

// QuadTo implements pen.Surface. The content stream only has cubic
// Beziers, so the quadratic is promoted by degree elevation.
func (s *Surface) QuadTo(cx, cy, x, y float64) {
	if !s.curSet {
		s.MoveTo(cx, cy)
	}
	p0 := s.cur
	c1x := p0.X + 2.0/3.0*(cx-p0.X)
	c1y := p0.Y + 2.0/3.0*(cy-p0.Y)
	c2x := x + 2.0/3.0*(cx-x)
	c2y := y + 2.0/3.0*(cy-y)
	s.path = append(s.path, pathCmd{op: opCurveTo, args: [6]float64{c1x, c1y, c2x, c2y, x, y}})
	s.cur = pen.Pt(x, y)
}

// CubicTo implements pen.Surface.
func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !s.curSet {
		s.MoveTo(c1x, c1y)
	}
	s.path = append(s.path, pathCmd{op: opCurveTo, args: [6]float64{c1x, c1y, c2x, c2y, x, y}})
	s.cur = pen.Pt(x, y)
}

// ClosePath implements pen.Surface.
func (s *Surface) ClosePath() {
	s.path = append(s.path, pathCmd{op: opClosePath})
}

// Rect implements pen.Surface.
func (s *Surface) Rect(x, y, w, h float64) {
	s.path = append(s.path, pathCmd{op: opRect, args: [6]float64{x, y, w, h}})
	s.cur = pen.Pt(x, y)
	s.curSet = true
}

// Ellipse implements pen.Surface. Emitted as four cubic Beziers.
func (s *Surface) Ellipse(x, y, rx, ry float64) {
	const k = 0.5522847498307936
	ox, oy := rx*k, ry*k
	s.path = append(s.path,
		pathCmd{op: opMoveTo, args: [6]float64{x + rx, y}},
		pathCmd{op: opCurveTo, args: [6]float64{x + rx, y + oy, x + ox, y + ry, x, y + ry}},
		pathCmd{op: opCurveTo, args: [6]float64{x - ox, y + ry, x - rx, y + oy, x - rx, y}},
		pathCmd{op: opCurveTo, args: [6]float64{x - rx, y - oy, x - ox, y - ry, x, y - ry}},
		pathCmd{op: opCurveTo, args: [6]float64{x + ox, y - ry, x + rx, y - oy, x + rx, y}},
		pathCmd{op: opClosePath})
	s.cur = pen.Pt(x+rx, y)
	s.curSet = true
}

// Arc implements pen.Surface. A line connects the arc to any open
// subpath, matching the other backends.
func (s *Surface) Arc(x, y, r, a1, a2 float64) {
	op := opArcMove
	if s.curSet {
		op = opArcLine
	}
	s.path = append(s.path, pathCmd{op: op, args: [6]float64{x, y, r, a1, a2}})
	s.cur = pen.Pt(x+r*math.Cos(a2), y+r*math.Sin(a2))
	s.curSet = true
}

// ArcTo implements pen.Surface with canvas arcTo tangent semantics.
// Degenerate configurations collapse to a line to the control point.
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

	s.path = append(s.path, pathCmd{op: opArcLine, args: [6]float64{center.X, center.Y, r, a0, a0 + sweep}})
	s.cur = t1
}

// replay emits the buffered path into the content stream.
func (s *Surface) replay() {
	b := s.page
	for _, c := range s.path {
		switch c.op {
		case opMoveTo:
			b.MoveTo(c.args[0], c.args[1])
		case opLineTo:
			b.LineTo(c.args[0], c.args[1])
		case opCurveTo:
			b.CurveTo(c.args[0], c.args[1], c.args[2], c.args[3], c.args[4], c.args[5])
		case opClosePath:
			b.ClosePath()
		case opRect:
			b.Rectangle(c.args[0], c.args[1], c.args[2], c.args[3])
		case opArcMove:
			b.MoveToArc(c.args[0], c.args[1], c.args[2], c.args[3], c.args[4])
		case opArcLine:
			b.LineToArc(c.args[0], c.args[1], c.args[2], c.args[3], c.args[4])
		}
	}
}

// Stroke implements pen.Surface.
func (s *Surface) Stroke() {
	if len(s.path) == 0 {
		return
	}
	s.replay()
	s.page.Stroke()
}

// Fill implements pen.Surface.
func (s *Surface) Fill(rule pen.FillRule) {
	if len(s.path) == 0 {
		return
	}
	s.replay()
	if rule == pen.FillRuleEvenOdd {
		s.page.FillEvenOdd()
	} else {
		s.page.Fill()
	}
}

// SetLineWidth implements pen.Surface.
func (s *Surface) SetLineWidth(w float64) {
	s.page.SetLineWidth(w)
}

// SetLineCap implements pen.Surface.
func (s *Surface) SetLineCap(c pen.LineCap) {
	switch c {
	case pen.LineCapRound:
		s.page.SetLineCap(graphics.LineCapRound)
	case pen.LineCapSquare:
		s.page.SetLineCap(graphics.LineCapSquare)
	default:
		s.page.SetLineCap(graphics.LineCapButt)
	}
}

// SetLineJoin implements pen.Surface.
func (s *Surface) SetLineJoin(j pen.LineJoin) {
	switch j {
	case pen.LineJoinRound:
		s.page.SetLineJoin(graphics.LineJoinRound)
	case pen.LineJoinBevel:
		s.page.SetLineJoin(graphics.LineJoinBevel)
	default:
		s.page.SetLineJoin(graphics.LineJoinMiter)
	}
}

// SetDash implements pen.Surface. A nil dash resets to solid lines.
func (s *Surface) SetDash(d *pen.Dash) {
	if !d.IsDashed() {
		s.page.SetLineDash(nil, 0)
		return
	}
	s.page.SetLineDash(d.EffectiveArray(), d.Offset)
}

// toDeviceRGB converts an image/color value to a DeviceRGB content-stream
// color. Alpha is dropped; PDF stroking and filling colors are opaque.
func toDeviceRGB(c color.Color) pdfcolor.Color {
	if c == nil {
		return pdfcolor.DeviceRGB{0, 0, 0}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return pdfcolor.DeviceRGB{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255}
}

// SetStrokeColor implements pen.Surface.
func (s *Surface) SetStrokeColor(c color.Color) {
	s.page.SetStrokeColor(toDeviceRGB(c))
}

// SetFillColor implements pen.Surface.
func (s *Surface) SetFillColor(c color.Color) {
	s.page.SetFillColor(toDeviceRGB(c))
}

// SetShadow implements pen.Surface. PDF content streams have no shadow
// primitive; an enabled shadow is logged and ignored.
func (s *Surface) SetShadow(sh pen.Shadow) {
	if sh.Enabled() {
		pen.Logger().Warn("pdf: shadows are not supported, ignoring")
	}
}

// Save implements pen.Surface.
func (s *Surface) Save() {
	s.page.PushGraphicsState()
	s.depth++
}

// Restore implements pen.Surface.
func (s *Surface) Restore() {
	if s.depth == 0 {
		pen.Logger().Warn("pdf: Restore without matching Save")
		return
	}
	s.page.PopGraphicsState()
	s.depth--
}

// Translate implements pen.Surface.
func (s *Surface) Translate(x, y float64) {
	s.page.Transform(matrix.Translate(x, y))
}

// Scale implements pen.Surface.
func (s *Surface) Scale(x, y float64) {
	s.page.Transform(matrix.Scale(x, y))
}

// Rotate implements pen.Surface.
func (s *Surface) Rotate(angle float64) {
	s.page.Transform(matrix.Rotate(angle))
}

// ClearRect implements pen.Surface by painting an opaque white rectangle;
// PDF pages have no erase operator.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.page.PushGraphicsState()
	s.page.SetFillColor(pdfcolor.DeviceRGB{1, 1, 1})
	s.page.Rectangle(x, y, w, h)
	s.page.Fill()
	s.page.PopGraphicsState()
}

// DrawImage implements pen.Surface. Embedding raster images is outside
// the scope of this backend; the call is logged and skipped.
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	pen.Logger().Warn("pdf: DrawImage is not supported, skipping")
}
