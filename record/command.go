// Package record provides a pen.Surface that captures drawing operations.
//
// Instead of rasterizing, the recording surface stores every command as a
// typed struct. Recordings can be inspected (the core pen tests assert on
// exact command sequences) or replayed onto any other surface, which makes
// the package double as a deferred command buffer for multi-target
// rendering.
//
// Design follows Cairo's approach of typed command structs for
// inspectability and debuggability, rather than a binary serialization
// format.
package record

import (
	"fmt"
	"image/color"

	"github.com/gogpu/pen"
)

// Op identifies the type of a recorded command.
type Op uint8

const (
	// Path commands
	OpBeginPath Op = iota
	OpMoveTo
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpArcTo
	OpClosePath

	// Shape commands
	OpRect
	OpEllipse
	OpArc

	// Paint commands
	OpStroke
	OpFill
	OpFillText
	OpStrokeText

	// Style commands
	OpSetLineWidth
	OpSetLineCap
	OpSetLineJoin
	OpSetDash
	OpSetStrokeColor
	OpSetFillColor
	OpSetShadow

	// State and transform commands
	OpSave
	OpRestore
	OpTranslate
	OpScale
	OpRotate

	// Misc commands
	OpClearRect
	OpDrawImage
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpBeginPath:      "BeginPath",
	OpMoveTo:         "MoveTo",
	OpLineTo:         "LineTo",
	OpQuadTo:         "QuadTo",
	OpCubicTo:        "CubicTo",
	OpArcTo:          "ArcTo",
	OpClosePath:      "ClosePath",
	OpRect:           "Rect",
	OpEllipse:        "Ellipse",
	OpArc:            "Arc",
	OpStroke:         "Stroke",
	OpFill:           "Fill",
	OpFillText:       "FillText",
	OpStrokeText:     "StrokeText",
	OpSetLineWidth:   "SetLineWidth",
	OpSetLineCap:     "SetLineCap",
	OpSetLineJoin:    "SetLineJoin",
	OpSetDash:        "SetDash",
	OpSetStrokeColor: "SetStrokeColor",
	OpSetFillColor:   "SetFillColor",
	OpSetShadow:      "SetShadow",
	OpSave:           "Save",
	OpRestore:        "Restore",
	OpTranslate:      "Translate",
	OpScale:          "Scale",
	OpRotate:         "Rotate",
	OpClearRect:      "ClearRect",
	OpDrawImage:      "DrawImage",
}

// String returns the string representation of an Op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded command types.
type Command interface {
	// Type returns the Op for this command.
	Type() Op
}

// BeginPath discards the in-progress path.
type BeginPath struct{}

// Type implements Command.
func (BeginPath) Type() Op { return OpBeginPath }

// MoveTo starts a new subpath.
type MoveTo struct {
	X, Y float64
}

// Type implements Command.
func (MoveTo) Type() Op { return OpMoveTo }

// String returns a compact representation used in test failure output.
func (c MoveTo) String() string { return fmt.Sprintf("MoveTo(%g,%g)", c.X, c.Y) }

// LineTo adds a line segment.
type LineTo struct {
	X, Y float64
}

// Type implements Command.
func (LineTo) Type() Op { return OpLineTo }

// String returns a compact representation used in test failure output.
func (c LineTo) String() string { return fmt.Sprintf("LineTo(%g,%g)", c.X, c.Y) }

// QuadTo adds a quadratic Bezier segment.
type QuadTo struct {
	CX, CY float64
	X, Y   float64
}

// Type implements Command.
func (QuadTo) Type() Op { return OpQuadTo }

// CubicTo adds a cubic Bezier segment.
type CubicTo struct {
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

// Type implements Command.
func (CubicTo) Type() Op { return OpCubicTo }

// ArcTo adds an arc-tangent segment.
type ArcTo struct {
	CX, CY float64
	X, Y   float64
	Radius float64
}

// Type implements Command.
func (ArcTo) Type() Op { return OpArcTo }

// ClosePath closes the current subpath.
type ClosePath struct{}

// Type implements Command.
func (ClosePath) Type() Op { return OpClosePath }

// Rect adds a rectangle subpath.
type Rect struct {
	X, Y, W, H float64
}

// Type implements Command.
func (Rect) Type() Op { return OpRect }

// Ellipse adds a full-ellipse subpath.
type Ellipse struct {
	X, Y   float64
	RX, RY float64
}

// Type implements Command.
func (Ellipse) Type() Op { return OpEllipse }

// Arc adds a circular arc.
type Arc struct {
	X, Y   float64
	Radius float64
	A1, A2 float64
}

// Type implements Command.
func (Arc) Type() Op { return OpArc }

// Stroke paints the outline of the current path.
type Stroke struct{}

// Type implements Command.
func (Stroke) Type() Op { return OpStroke }

// Fill paints the interior of the current path.
type Fill struct {
	Rule pen.FillRule
}

// Type implements Command.
func (Fill) Type() Op { return OpFill }

// FillText paints the interior of a string.
type FillText struct {
	Text  string
	X, Y  float64
	Style pen.TextStyle
}

// Type implements Command.
func (FillText) Type() Op { return OpFillText }

// StrokeText paints the outline of a string.
type StrokeText struct {
	Text  string
	X, Y  float64
	Style pen.TextStyle
}

// Type implements Command.
func (StrokeText) Type() Op { return OpStrokeText }

// SetLineWidth sets the stroke width.
type SetLineWidth struct {
	Width float64
}

// Type implements Command.
func (SetLineWidth) Type() Op { return OpSetLineWidth }

// SetLineCap sets the stroke cap style.
type SetLineCap struct {
	Cap pen.LineCap
}

// Type implements Command.
func (SetLineCap) Type() Op { return OpSetLineCap }

// SetLineJoin sets the stroke join style.
type SetLineJoin struct {
	Join pen.LineJoin
}

// Type implements Command.
func (SetLineJoin) Type() Op { return OpSetLineJoin }

// SetDash sets the dash pattern. A nil pattern means solid lines.
type SetDash struct {
	Pattern []float64
	Offset  float64
}

// Type implements Command.
func (SetDash) Type() Op { return OpSetDash }

// SetStrokeColor sets the stroke color.
type SetStrokeColor struct {
	Color color.Color
}

// Type implements Command.
func (SetStrokeColor) Type() Op { return OpSetStrokeColor }

// SetFillColor sets the fill color.
type SetFillColor struct {
	Color color.Color
}

// Type implements Command.
func (SetFillColor) Type() Op { return OpSetFillColor }

// SetShadow sets the shadow parameters.
type SetShadow struct {
	Shadow pen.Shadow
}

// Type implements Command.
func (SetShadow) Type() Op { return OpSetShadow }

// Save pushes the transform and style state.
type Save struct{}

// Type implements Command.
func (Save) Type() Op { return OpSave }

// Restore pops the transform and style state.
type Restore struct{}

// Type implements Command.
func (Restore) Type() Op { return OpRestore }

// Translate moves the coordinate origin.
type Translate struct {
	X, Y float64
}

// Type implements Command.
func (Translate) Type() Op { return OpTranslate }

// Scale scales the coordinate system.
type Scale struct {
	X, Y float64
}

// Type implements Command.
func (Scale) Type() Op { return OpScale }

// Rotate rotates the coordinate system.
type Rotate struct {
	Angle float64
}

// Type implements Command.
func (Rotate) Type() Op { return OpRotate }

// ClearRect clears a rectangular region.
type ClearRect struct {
	X, Y, W, H float64
}

// Type implements Command.
func (ClearRect) Type() Op { return OpClearRect }

// DrawImage draws an image. The image itself is stored by reference.
type DrawImage struct {
	Image      ImageRef
	X, Y, W, H float64
}

// Type implements Command.
func (DrawImage) Type() Op { return OpDrawImage }

// ImageRef is a reference to an image in the recording's image list.
type ImageRef uint32
