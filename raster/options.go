package raster

import (
	"image/color"

	"github.com/gogpu/pen"
)

// Option configures a Surface at construction time.
type Option func(*Surface)

// WithBackground sets the canvas background color. It is painted over the
// whole canvas on creation and used by ClearRect.
func WithBackground(c color.Color) Option {
	return func(s *Surface) {
		s.background = c
	}
}

// WithFont registers a TTF/OTF font under a family name at construction
// time. A font that fails to parse is logged and skipped.
func WithFont(family string, data []byte) Option {
	return func(s *Surface) {
		if err := s.fonts.register(family, data); err != nil {
			pen.Logger().Warn("raster: font rejected", "family", family, "err", err)
		}
	}
}
