package pen

// TextAlign specifies horizontal text alignment relative to the anchor
// point. The zero value is AlignStart.
type TextAlign uint8

const (
	// AlignStart anchors text at its logical start (left for LTR text).
	AlignStart TextAlign = iota
	// AlignEnd anchors text at its logical end.
	AlignEnd
	// AlignLeft anchors text at its left edge.
	AlignLeft
	// AlignRight anchors text at its right edge.
	AlignRight
	// AlignCenter centers text on the anchor point.
	AlignCenter
)

// String returns the string representation of a TextAlign.
func (a TextAlign) String() string {
	switch a {
	case AlignEnd:
		return "end"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "start"
	}
}

// TextBaseline specifies vertical text alignment relative to the anchor
// point. The zero value is BaselineAlphabetic.
type TextBaseline uint8

const (
	// BaselineAlphabetic anchors text at the alphabetic baseline.
	BaselineAlphabetic TextBaseline = iota
	// BaselineTop anchors text at the top of the em box.
	BaselineTop
	// BaselineHanging anchors text at the hanging baseline.
	BaselineHanging
	// BaselineMiddle anchors text at the middle of the em box.
	BaselineMiddle
	// BaselineBottom anchors text at the bottom of the em box.
	BaselineBottom
)

// String returns the string representation of a TextBaseline.
func (b TextBaseline) String() string {
	switch b {
	case BaselineTop:
		return "top"
	case BaselineHanging:
		return "hanging"
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	default:
		return "alphabetic"
	}
}

// Font names a font family at a size. The zero value selects the
// surface's default face at its default size.
type Font struct {
	// Family is the font family name as registered with the surface.
	// Empty means the surface default.
	Family string
	// Size is the font size in user units. Zero means the surface default.
	Size float64
}

// TextStyle is the style snapshot applied to a queued text entry. It is
// captured by value when Text is called and replayed field-by-field at
// paint time; later style changes do not affect already-queued text.
type TextStyle struct {
	Font     Font
	Align    TextAlign
	Baseline TextBaseline
}

// queuedText is a string waiting to be rendered by the next paint
// operation, with its position and style snapshotted at queue time.
type queuedText struct {
	s     string
	pos   Point
	style TextStyle
}

// Text queues a string for rendering at the current position when the
// path is next stroked or filled. The position and the live text style
// are snapshotted now; the queue is discarded when a paint operation's
// lazy reset begins a fresh path. Text consumes the pending position but
// draws no path geometry.
func (p *Pen) Text(s string) *Pen {
	p.checkPathReset()
	p.queued = append(p.queued, queuedText{s: s, pos: p.pos, style: p.textStyle})
	p.committed = true
	return p
}

// TextAnchored updates the live alignment and baseline, then queues the
// string like Text.
func (p *Pen) TextAnchored(s string, align TextAlign, baseline TextBaseline) *Pen {
	p.textStyle.Align = align
	p.textStyle.Baseline = baseline
	return p.Text(s)
}

// SetFont sets the font for subsequently queued text.
func (p *Pen) SetFont(f Font) *Pen {
	p.textStyle.Font = f
	return p
}

// SetTextAlign sets the alignment for subsequently queued text.
func (p *Pen) SetTextAlign(a TextAlign) *Pen {
	p.textStyle.Align = a
	return p
}

// SetTextBaseline sets the baseline for subsequently queued text.
func (p *Pen) SetTextBaseline(b TextBaseline) *Pen {
	p.textStyle.Baseline = b
	return p
}
