package record

import (
	"image"
	"image/color"

	"github.com/gogpu/pen"
)

// Surface is a pen.Surface that records every operation as a typed
// Command instead of drawing. The zero value is ready to use.
type Surface struct {
	commands []Command
	images   []image.Image
}

var _ pen.Surface = (*Surface)(nil)

// New returns an empty recording surface.
func New() *Surface {
	return &Surface{}
}

// Commands returns the recorded command list. The returned slice is owned
// by the surface; callers must not modify it.
func (s *Surface) Commands() []Command {
	return s.commands
}

// Ops returns just the Op of each recorded command, in order. Useful for
// coarse sequence assertions.
func (s *Surface) Ops() []Op {
	ops := make([]Op, len(s.commands))
	for i, c := range s.commands {
		ops[i] = c.Type()
	}
	return ops
}

// Image resolves an ImageRef recorded by a DrawImage command.
func (s *Surface) Image(ref ImageRef) image.Image {
	if int(ref) >= len(s.images) {
		return nil
	}
	return s.images[ref]
}

// Reset discards all recorded commands and images.
func (s *Surface) Reset() {
	s.commands = s.commands[:0]
	s.images = s.images[:0]
}

// Playback replays every recorded command onto dst in order. The
// recording is left intact, so it can be replayed onto multiple targets.
func (s *Surface) Playback(dst pen.Surface) {
	for _, c := range s.commands {
		switch c := c.(type) {
		case BeginPath:
			dst.BeginPath()
		case MoveTo:
			dst.MoveTo(c.X, c.Y)
		case LineTo:
			dst.LineTo(c.X, c.Y)
		case QuadTo:
			dst.QuadTo(c.CX, c.CY, c.X, c.Y)
		case CubicTo:
			dst.CubicTo(c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y)
		case ArcTo:
			dst.ArcTo(c.CX, c.CY, c.X, c.Y, c.Radius)
		case ClosePath:
			dst.ClosePath()
		case Rect:
			dst.Rect(c.X, c.Y, c.W, c.H)
		case Ellipse:
			dst.Ellipse(c.X, c.Y, c.RX, c.RY)
		case Arc:
			dst.Arc(c.X, c.Y, c.Radius, c.A1, c.A2)
		case Stroke:
			dst.Stroke()
		case Fill:
			dst.Fill(c.Rule)
		case FillText:
			dst.FillText(c.Text, c.X, c.Y, c.Style)
		case StrokeText:
			dst.StrokeText(c.Text, c.X, c.Y, c.Style)
		case SetLineWidth:
			dst.SetLineWidth(c.Width)
		case SetLineCap:
			dst.SetLineCap(c.Cap)
		case SetLineJoin:
			dst.SetLineJoin(c.Join)
		case SetDash:
			if c.Pattern == nil {
				dst.SetDash(nil)
			} else {
				dst.SetDash(pen.NewDash(c.Pattern...).WithOffset(c.Offset))
			}
		case SetStrokeColor:
			dst.SetStrokeColor(c.Color)
		case SetFillColor:
			dst.SetFillColor(c.Color)
		case SetShadow:
			dst.SetShadow(c.Shadow)
		case Save:
			dst.Save()
		case Restore:
			dst.Restore()
		case Translate:
			dst.Translate(c.X, c.Y)
		case Scale:
			dst.Scale(c.X, c.Y)
		case Rotate:
			dst.Rotate(c.Angle)
		case ClearRect:
			dst.ClearRect(c.X, c.Y, c.W, c.H)
		case DrawImage:
			if img := s.Image(c.Image); img != nil {
				dst.DrawImage(img, c.X, c.Y, c.W, c.H)
			}
		}
	}
}

func (s *Surface) record(c Command) {
	s.commands = append(s.commands, c)
}

// BeginPath implements pen.Surface.
func (s *Surface) BeginPath() { s.record(BeginPath{}) }

// MoveTo implements pen.Surface.
func (s *Surface) MoveTo(x, y float64) { s.record(MoveTo{X: x, Y: y}) }

// LineTo implements pen.Surface.
func (s *Surface) LineTo(x, y float64) { s.record(LineTo{X: x, Y: y}) }

// QuadTo implements pen.Surface.
func (s *Surface) QuadTo(cx, cy, x, y float64) {
	s.record(QuadTo{CX: cx, CY: cy, X: x, Y: y})
}

// CubicTo implements pen.Surface.
func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.record(CubicTo{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

// ArcTo implements pen.Surface.
func (s *Surface) ArcTo(cx, cy, x, y, r float64) {
	s.record(ArcTo{CX: cx, CY: cy, X: x, Y: y, Radius: r})
}

// ClosePath implements pen.Surface.
func (s *Surface) ClosePath() { s.record(ClosePath{}) }

// Rect implements pen.Surface.
func (s *Surface) Rect(x, y, w, h float64) { s.record(Rect{X: x, Y: y, W: w, H: h}) }

// Ellipse implements pen.Surface.
func (s *Surface) Ellipse(x, y, rx, ry float64) {
	s.record(Ellipse{X: x, Y: y, RX: rx, RY: ry})
}

// Arc implements pen.Surface.
func (s *Surface) Arc(x, y, r, a1, a2 float64) {
	s.record(Arc{X: x, Y: y, Radius: r, A1: a1, A2: a2})
}

// Stroke implements pen.Surface.
func (s *Surface) Stroke() { s.record(Stroke{}) }

// Fill implements pen.Surface.
func (s *Surface) Fill(rule pen.FillRule) { s.record(Fill{Rule: rule}) }

// FillText implements pen.Surface.
func (s *Surface) FillText(text string, x, y float64, style pen.TextStyle) {
	s.record(FillText{Text: text, X: x, Y: y, Style: style})
}

// StrokeText implements pen.Surface.
func (s *Surface) StrokeText(text string, x, y float64, style pen.TextStyle) {
	s.record(StrokeText{Text: text, X: x, Y: y, Style: style})
}

// SetLineWidth implements pen.Surface.
func (s *Surface) SetLineWidth(w float64) { s.record(SetLineWidth{Width: w}) }

// SetLineCap implements pen.Surface.
func (s *Surface) SetLineCap(c pen.LineCap) { s.record(SetLineCap{Cap: c}) }

// SetLineJoin implements pen.Surface.
func (s *Surface) SetLineJoin(j pen.LineJoin) { s.record(SetLineJoin{Join: j}) }

// SetDash implements pen.Surface.
func (s *Surface) SetDash(d *pen.Dash) {
	if d == nil {
		s.record(SetDash{})
		return
	}
	s.record(SetDash{Pattern: d.EffectiveArray(), Offset: d.Offset})
}

// SetStrokeColor implements pen.Surface.
func (s *Surface) SetStrokeColor(c color.Color) { s.record(SetStrokeColor{Color: c}) }

// SetFillColor implements pen.Surface.
func (s *Surface) SetFillColor(c color.Color) { s.record(SetFillColor{Color: c}) }

// SetShadow implements pen.Surface.
func (s *Surface) SetShadow(sh pen.Shadow) { s.record(SetShadow{Shadow: sh}) }

// Save implements pen.Surface.
func (s *Surface) Save() { s.record(Save{}) }

// Restore implements pen.Surface.
func (s *Surface) Restore() { s.record(Restore{}) }

// Translate implements pen.Surface.
func (s *Surface) Translate(x, y float64) { s.record(Translate{X: x, Y: y}) }

// Scale implements pen.Surface.
func (s *Surface) Scale(x, y float64) { s.record(Scale{X: x, Y: y}) }

// Rotate implements pen.Surface.
func (s *Surface) Rotate(angle float64) { s.record(Rotate{Angle: angle}) }

// ClearRect implements pen.Surface.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.record(ClearRect{X: x, Y: y, W: w, H: h})
}

// DrawImage implements pen.Surface.
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	ref := ImageRef(len(s.images))
	s.images = append(s.images, img)
	s.record(DrawImage{Image: ref, X: x, Y: y, W: w, H: h})
}
