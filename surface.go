package pen

import (
	"image"
	"image/color"
)

// Surface is the imperative drawing target a Pen writes to.
//
// A Surface holds one in-progress path at a time. Path commands extend it,
// Stroke and Fill paint it, and BeginPath discards it. Surfaces perform no
// bookkeeping on behalf of the pen: every method is a direct drawing
// instruction.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// BeginPath discards the current path and starts a new, empty one.
	BeginPath()

	// MoveTo starts a new subpath at the given point.
	MoveTo(x, y float64)

	// LineTo adds a line from the current point.
	LineTo(x, y float64)

	// QuadTo adds a quadratic Bezier curve with one control point.
	QuadTo(cx, cy, x, y float64)

	// CubicTo adds a cubic Bezier curve with two control points.
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)

	// ArcTo adds an arc of the given radius tangent to the two lines
	// current→(cx,cy) and (cx,cy)→(x,y), then a line to the arc start if
	// the current point is not already on it.
	ArcTo(cx, cy, x, y, r float64)

	// ClosePath closes the current subpath back to its starting point.
	ClosePath()

	// Rect adds an axis-aligned rectangle as its own subpath.
	Rect(x, y, w, h float64)

	// Ellipse adds a full ellipse centered at (x, y) as its own subpath.
	Ellipse(x, y, rx, ry float64)

	// Arc adds a circular arc around (x, y) from angle a1 to a2 (radians,
	// measured clockwise from the positive x axis).
	Arc(x, y, r, a1, a2 float64)

	// Stroke paints the outline of the current path.
	Stroke()

	// Fill paints the interior of the current path using the given rule.
	Fill(rule FillRule)

	// FillText paints the interior of a string at (x, y) under the style.
	FillText(s string, x, y float64, style TextStyle)

	// StrokeText paints the outline of a string at (x, y) under the style.
	StrokeText(s string, x, y float64, style TextStyle)

	// SetLineWidth sets the stroke width.
	SetLineWidth(w float64)

	// SetLineCap sets the shape of stroke endpoints.
	SetLineCap(c LineCap)

	// SetLineJoin sets the shape of stroke joins.
	SetLineJoin(j LineJoin)

	// SetDash sets the dash pattern for strokes. Nil means solid lines.
	SetDash(d *Dash)

	// SetStrokeColor sets the color used by Stroke and StrokeText.
	SetStrokeColor(c color.Color)

	// SetFillColor sets the color used by Fill and FillText.
	SetFillColor(c color.Color)

	// SetShadow sets the shadow parameters for subsequent paints.
	// A Shadow with a nil Color disables shadowing.
	SetShadow(sh Shadow)

	// Save pushes the current transform and style state.
	Save()

	// Restore pops the most recently saved transform and style state.
	Restore()

	// Translate moves the coordinate system origin.
	Translate(x, y float64)

	// Scale scales the coordinate system.
	Scale(x, y float64)

	// Rotate rotates the coordinate system by angle radians.
	Rotate(angle float64)

	// ClearRect resets a rectangular region to the surface background.
	ClearRect(x, y, w, h float64)

	// DrawImage draws an image with its top-left corner at (x, y).
	// If w or h is <= 0 the image's natural size is used.
	DrawImage(img image.Image, x, y, w, h float64)
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the string representation of a FillRule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// LineCap specifies the shape of stroke endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the string representation of a LineCap.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin specifies the shape of stroke joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the string representation of a LineJoin.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Shadow describes a drop shadow applied to paint operations.
// A nil Color means no shadow.
type Shadow struct {
	// OffsetX is the horizontal shadow offset.
	OffsetX float64
	// OffsetY is the vertical shadow offset.
	OffsetY float64
	// Blur is the shadow blur radius.
	Blur float64
	// Color is the shadow color. Nil disables the shadow.
	Color color.Color
}

// Enabled reports whether the shadow should be painted.
func (s Shadow) Enabled() bool {
	return s.Color != nil
}
