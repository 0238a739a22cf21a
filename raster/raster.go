// Package raster implements a CPU software surface rendering to an
// image.RGBA.
//
// Geometry is flattened into device-space polylines as it is inserted, with
// the current transform applied per vertex. Fills go through the
// golang.org/x/image/vector rasterizer; even-odd fills and stroking use the
// package's own scanline filler and stroke expander.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/pen"
)

// drawState is the part of the surface state saved by Save and restored by
// Restore.
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

// contour is a flattened subpath in device space.
type contour struct {
	pts    []pen.Point
	closed bool
	// start is the user-space first point, the target of ClosePath.
	start pen.Point
}

// Surface is a pen.Surface rasterizing into an in-memory RGBA image.
// It is not safe for concurrent use.
type Surface struct {
	img        *image.RGBA
	background color.Color

	state drawState
	stack []drawState

	contours []contour
	cur      pen.Point // user-space current point
	curSet   bool

	fonts  *fontRegistry
	shaper textShaper
}

var _ pen.Surface = (*Surface)(nil)

// New creates a raster surface of the given pixel size. The canvas is
// initially filled with the background color (white unless overridden by
// WithBackground).
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: color.White,
		state:      defaultState(),
		fonts:      newFontRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
	return s
}

// Image returns the underlying image. The surface keeps drawing into it.
func (s *Surface) Image() *image.RGBA { return s.img }

// EncodePNG writes the current canvas as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the current canvas to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RegisterFont makes a TTF/OTF font available under the given family name.
func (s *Surface) RegisterFont(family string, data []byte) error {
	return s.fonts.register(family, data)
}

// vertex appends a device-space point to the open contour.
func (s *Surface) vertex(x, y float64) {
	dx, dy := s.state.matrix.ApplyXY(x, y)
	n := len(s.contours) - 1
	s.contours[n].pts = append(s.contours[n].pts, pen.Pt(dx, dy))
}

// open ensures an unterminated contour exists, starting it at the
// user-space point (x, y) if not.
func (s *Surface) open(x, y float64) {
	if n := len(s.contours); n > 0 && !s.contours[n-1].closed && len(s.contours[n-1].pts) > 0 {
		return
	}
	s.contours = append(s.contours, contour{start: pen.Pt(x, y)})
	s.vertex(x, y)
}

// BeginPath implements pen.Surface.
func (s *Surface) BeginPath() {
	s.contours = s.contours[:0]
	s.curSet = false
}

// MoveTo implements pen.Surface.
func (s *Surface) MoveTo(x, y float64) {
	s.contours = append(s.contours, contour{start: pen.Pt(x, y)})
	s.vertex(x, y)
	s.cur = pen.Pt(x, y)
	s.curSet = true
}

// LineTo implements pen.Surface.
func (s *Surface) LineTo(x, y float64) {
	if !s.curSet {
		s.MoveTo(x, y)
		return
	}
	s.open(s.cur.X, s.cur.Y)
	s.vertex(x, y)
	s.cur = pen.Pt(x, y)
}

// QuadTo implements pen.Surface.
func (s *Surface) QuadTo(cx, cy, x, y float64) {
	if !s.curSet {
		s.MoveTo(cx, cy)
	}
	s.open(s.cur.X, s.cur.Y)
	p0, p1, p2 := s.cur, pen.Pt(cx, cy), pen.Pt(x, y)
	steps := curveSteps(p0.Distance(p1) + p1.Distance(p2))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		q := quadPoint(p0, p1, p2, t)
		s.vertex(q.X, q.Y)
	}
	s.cur = p2
}

// CubicTo implements pen.Surface.
func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !s.curSet {
		s.MoveTo(c1x, c1y)
	}
	s.open(s.cur.X, s.cur.Y)
	p0, p1, p2, p3 := s.cur, pen.Pt(c1x, c1y), pen.Pt(c2x, c2y), pen.Pt(x, y)
	steps := curveSteps(p0.Distance(p1) + p1.Distance(p2) + p2.Distance(p3))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		q := cubicPoint(p0, p1, p2, p3, t)
		s.vertex(q.X, q.Y)
	}
	s.cur = p3
}

// ClosePath implements pen.Surface.
func (s *Surface) ClosePath() {
	n := len(s.contours)
	if n == 0 {
		return
	}
	s.contours[n-1].closed = true
	s.cur = s.contours[n-1].start
	s.curSet = true
}

// Rect implements pen.Surface.
func (s *Surface) Rect(x, y, w, h float64) {
	s.contours = append(s.contours, contour{start: pen.Pt(x, y), closed: true})
	s.vertex(x, y)
	s.vertex(x+w, y)
	s.vertex(x+w, y+h)
	s.vertex(x, y+h)
	s.cur = pen.Pt(x, y)
	s.curSet = true
}

// Stroke implements pen.Surface.
func (s *Surface) Stroke() {
	s.paintStroke(s.contours, s.state)
}

// Fill implements pen.Surface.
func (s *Surface) Fill(rule pen.FillRule) {
	s.paintFill(s.contours, rule, s.state)
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
func (s *Surface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore implements pen.Surface.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		pen.Logger().Warn("raster: Restore without matching Save")
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

// ClearRect implements pen.Surface. The region is restored to the
// background color.
func (s *Surface) ClearRect(x, y, w, h float64) {
	var rect []contour
	rect = append(rect, contour{closed: true})
	for _, p := range [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		dx, dy := s.state.matrix.ApplyXY(p[0], p[1])
		rect[0].pts = append(rect[0].pts, pen.Pt(dx, dy))
	}
	fillNonZero(s.img, rect, s.background)
}

// DrawImage implements pen.Surface. Non-positive w or h selects the
// image's natural size. The current transform applies, including rotation.
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
	m := s.state.matrix.
		Multiply(pen.Translation(x, y)).
		Multiply(pen.Scaling(w/float64(b.Dx()), h/float64(b.Dy()))).
		Multiply(pen.Translation(-float64(b.Min.X), -float64(b.Min.Y)))
	draw.BiLinear.Transform(s.img, f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F},
		img, b, draw.Over, nil)
}
