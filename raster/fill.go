package raster

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/pen"
)

// paintFill renders the contours as a filled region, painting the shadow
// pass first when one is active.
func (s *Surface) paintFill(cs []contour, rule pen.FillRule, st drawState) {
	if len(cs) == 0 {
		return
	}
	if st.shadow.Enabled() {
		fillContours(s.img, offsetContours(cs, st.shadow.OffsetX, st.shadow.OffsetY), rule, st.shadow.Color)
	}
	fillContours(s.img, cs, rule, st.fillColor)
}

func fillContours(dst *image.RGBA, cs []contour, rule pen.FillRule, c color.Color) {
	if rule == pen.FillRuleEvenOdd {
		fillEvenOdd(dst, cs, c)
		return
	}
	fillNonZero(dst, cs, c)
}

// offsetContours returns a copy of the contours translated by (dx, dy) in
// device space. Shadows are offset only; blur is not applied.
func offsetContours(cs []contour, dx, dy float64) []contour {
	out := make([]contour, len(cs))
	for i, c := range cs {
		out[i] = contour{closed: c.closed, pts: make([]pen.Point, len(c.pts))}
		for j, p := range c.pts {
			out[i].pts[j] = pen.Pt(p.X+dx, p.Y+dy)
		}
	}
	return out
}

// fillNonZero fills using the x/image/vector rasterizer, which gives
// antialiased non-zero winding coverage.
func fillNonZero(dst *image.RGBA, cs []contour, c color.Color) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	for _, ct := range cs {
		if len(ct.pts) < 2 {
			continue
		}
		r.MoveTo(float32(ct.pts[0].X), float32(ct.pts[0].Y))
		for _, p := range ct.pts[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		// The rasterizer requires closed contours; fills treat open
		// subpaths as implicitly closed anyway.
		r.ClosePath()
	}
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// fillEvenOdd is a scanline polygon filler implementing the even-odd rule,
// which the vector rasterizer does not support. No antialiasing.
func fillEvenOdd(dst *image.RGBA, cs []contour, c color.Color) {
	type edge struct {
		x0, y0, x1, y1 float64
	}
	var edges []edge
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, ct := range cs {
		n := len(ct.pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := ct.pts[i]
			p1 := ct.pts[(i+1)%n] // implicit close
			if p0.Y == p1.Y {
				continue
			}
			edges = append(edges, edge{p0.X, p0.Y, p1.X, p1.Y})
			minY = math.Min(minY, math.Min(p0.Y, p1.Y))
			maxY = math.Max(maxY, math.Max(p0.Y, p1.Y))
		}
	}
	if len(edges) == 0 {
		return
	}

	b := dst.Bounds()
	y0 := int(math.Max(math.Floor(minY), float64(b.Min.Y)))
	y1 := int(math.Min(math.Ceil(maxY), float64(b.Max.Y)))

	var xs []float64
	for y := y0; y < y1; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			lo, hi := e.y0, e.y1
			if lo > hi {
				lo, hi = hi, lo
			}
			if sy < lo || sy >= hi {
				continue
			}
			t := (sy - e.y0) / (e.y1 - e.y0)
			xs = append(xs, e.x0+t*(e.x1-e.x0))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Max(math.Round(xs[i]), float64(b.Min.X)))
			x1 := int(math.Min(math.Round(xs[i+1]), float64(b.Max.X)))
			for x := x0; x < x1; x++ {
				blendOver(dst, x, y, c)
			}
		}
	}
}

// blendOver composites c over the destination pixel.
func blendOver(dst *image.RGBA, x, y int, c color.Color) {
	sr, sg, sb, sa := c.RGBA()
	if sa == 0xffff {
		dst.SetRGBA(x, y, color.RGBA{uint8(sr >> 8), uint8(sg >> 8), uint8(sb >> 8), 255})
		return
	}
	dr, dg, db, da := dst.RGBAAt(x, y).RGBA()
	a := 0xffff - sa
	dst.SetRGBA(x, y, color.RGBA{
		uint8((sr + dr*a/0xffff) >> 8),
		uint8((sg + dg*a/0xffff) >> 8),
		uint8((sb + db*a/0xffff) >> 8),
		uint8((sa + da*a/0xffff) >> 8),
	})
}
