// Package pen provides a chainable 2D drawing cursor over pluggable surfaces.
//
// # Overview
//
// A Pen wraps a Surface (an imperative 2D drawing target) and lets callers
// describe geometry as a fluent sequence of points, curves and shapes. The
// pen tracks a logical current position and defers path commands until the
// next operation makes the right command unambiguous: a point becomes a move
// or a line only once a later point, shape or paint call forces it out, and
// a fresh path is begun lazily after each stroke or fill.
//
//	s := raster.New(256, 256)
//	p := pen.New(s)
//	p.XY(20, 20).XY(120, 20).XY(120, 120).Close().
//		SetFillColor(pen.Hex("#4a90d9")).Fill()
//
// # Surfaces
//
// Four Surface implementations ship with the module:
//
//   - record: captures commands as typed structs for inspection and replay
//   - raster: software rendering onto an image.RGBA
//   - svg: emits a standalone SVG document
//   - pdf: writes a single-page PDF via seehuhn.de/go/pdf
//
// Any type implementing Surface can be driven by a Pen; the pen performs no
// validation and forwards every command faithfully after its own position
// bookkeeping (garbage in, garbage drawn).
//
// # Concurrency
//
// A Pen and its Surface are single-threaded: callers must serialize all
// access to a given pen. Package-level configuration (SetLogger) is safe
// for concurrent use.
package pen
