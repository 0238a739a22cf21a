package raster

import (
	"math"

	"github.com/gogpu/pen"
)

// miterLimit is the standard SVG default: joins sharper than this fall
// back to bevel.
const miterLimit = 4.0

// polyline is a run of device-space points to be stroked.
type polyline struct {
	pts    []pen.Point
	closed bool
}

// paintStroke expands the contours into stroke outline polygons and fills
// them with the stroke color, shadow pass first.
func (s *Surface) paintStroke(cs []contour, st drawState) {
	scale := st.matrix.ScaleFactor()
	half := st.lineWidth * scale / 2
	if half <= 0 || len(cs) == 0 {
		return
	}

	var polys []polyline
	for _, c := range cs {
		if len(c.pts) < 2 {
			continue
		}
		polys = append(polys, polyline{pts: c.pts, closed: c.closed})
	}
	if st.dash.IsDashed() {
		polys = dashPolylines(polys, st.dash, scale)
	}

	var outline []contour
	for _, pl := range polys {
		outline = strokePolyline(outline, pl, half, st.lineCap, st.lineJoin)
	}
	if len(outline) == 0 {
		return
	}

	if st.shadow.Enabled() {
		fillNonZero(s.img, offsetContours(outline, st.shadow.OffsetX, st.shadow.OffsetY), st.shadow.Color)
	}
	fillNonZero(s.img, outline, st.strokeColor)
}

// strokePolyline appends the outline polygons for one stroked polyline:
// a quad per segment, a join shape per interior vertex, and caps on open
// ends. Overlap between the pieces is harmless under non-zero filling.
func strokePolyline(out []contour, pl polyline, half float64, lineCap pen.LineCap, join pen.LineJoin) []contour {
	pts := pl.pts
	if pl.closed {
		pts = append(append([]pen.Point(nil), pts...), pts[0])
	}
	n := len(pts)
	if n < 2 {
		return out
	}

	type seg struct {
		p, q   pen.Point
		normal pen.Point
	}
	var segs []seg
	for i := 0; i+1 < n; i++ {
		p, q := pts[i], pts[i+1]
		d := q.Sub(p)
		if d.Length() == 0 {
			continue
		}
		nm := d.Normalize().Perp().Mul(half)
		segs = append(segs, seg{p: p, q: q, normal: nm})
	}
	if len(segs) == 0 {
		// Degenerate: all points coincide. Round and square caps still
		// produce a dot.
		if lineCap != pen.LineCapButt {
			out = append(out, circleContour(pts[0], half))
		}
		return out
	}

	for _, sg := range segs {
		out = append(out, contour{closed: true, pts: []pen.Point{
			sg.p.Add(sg.normal),
			sg.q.Add(sg.normal),
			sg.q.Sub(sg.normal),
			sg.p.Sub(sg.normal),
		}})
	}

	// Joins between consecutive segments, including the seam vertex of a
	// closed polyline.
	limit := len(segs) - 1
	if pl.closed {
		limit = len(segs)
	}
	for i := 0; i < limit; i++ {
		a := segs[i]
		b := segs[(i+1)%len(segs)]
		out = joinShape(out, a.q, a.normal, b.normal, half, join)
	}

	if !pl.closed {
		first, last := segs[0], segs[len(segs)-1]
		out = capShape(out, first.p, first.q.Sub(first.p).Normalize().Mul(-1), half, lineCap)
		out = capShape(out, last.q, last.q.Sub(last.p).Normalize(), half, lineCap)
	}
	return out
}

// joinShape appends the join geometry at vertex v between segments with
// the given edge normals.
func joinShape(out []contour, v, n0, n1 pen.Point, half float64, join pen.LineJoin) []contour {
	if n0 == n1 {
		return out
	}
	switch join {
	case pen.LineJoinRound:
		return append(out, circleContour(v, half))
	case pen.LineJoinBevel:
		return appendBevel(out, v, n0, n1)
	default: // miter
		bisector := n0.Add(n1)
		bl := bisector.Length()
		if bl < 1e-12 {
			return appendBevel(out, v, n0, n1)
		}
		// Miter length relative to half-width; cos(theta/2) = bl/(2*half).
		cosHalf := bl / (2 * half)
		if 1/cosHalf > miterLimit {
			return appendBevel(out, v, n0, n1)
		}
		m := bisector.Mul(half / (cosHalf * bl))
		out = append(out, contour{closed: true, pts: []pen.Point{
			v.Add(n0), v.Add(m), v.Add(n1), v,
		}})
		return append(out, contour{closed: true, pts: []pen.Point{
			v.Sub(n0), v.Sub(m), v.Sub(n1), v,
		}})
	}
}

// appendBevel adds the triangular bevel wedges on both sides of vertex v.
func appendBevel(out []contour, v, n0, n1 pen.Point) []contour {
	out = append(out, contour{closed: true, pts: []pen.Point{v, v.Add(n0), v.Add(n1)}})
	return append(out, contour{closed: true, pts: []pen.Point{v, v.Sub(n0), v.Sub(n1)}})
}

// capShape appends cap geometry at endpoint e; dir points outward along
// the stroke.
func capShape(out []contour, e, dir pen.Point, half float64, lineCap pen.LineCap) []contour {
	switch lineCap {
	case pen.LineCapRound:
		return append(out, circleContour(e, half))
	case pen.LineCapSquare:
		n := dir.Perp().Mul(half)
		ext := dir.Mul(half)
		return append(out, contour{closed: true, pts: []pen.Point{
			e.Add(n),
			e.Add(n).Add(ext),
			e.Sub(n).Add(ext),
			e.Sub(n),
		}})
	default:
		return out
	}
}

// circleContour builds a closed polygonal circle.
func circleContour(c pen.Point, r float64) contour {
	steps := arcSteps(r, 2*math.Pi)
	pts := make([]pen.Point, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = pen.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return contour{closed: true, pts: pts}
}

// dashPolylines slices polylines into their dash "on" runs. Closed
// polylines are unrolled first; pattern lengths and offset are in user
// units and scaled into device space.
func dashPolylines(polys []polyline, d *pen.Dash, scale float64) []polyline {
	pattern := d.EffectiveArray()
	total := 0.0
	for _, l := range pattern {
		total += l * scale
	}
	if total <= 0 {
		return polys
	}

	var out []polyline
	for _, pl := range polys {
		pts := pl.pts
		if pl.closed {
			pts = append(append([]pen.Point(nil), pts...), pts[0])
		}

		phase := math.Mod(d.Offset*scale, total)
		if phase < 0 {
			phase += total
		}
		idx := 0
		remain := pattern[0] * scale
		for phase > 0 {
			if phase < remain {
				remain -= phase
				break
			}
			phase -= remain
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx] * scale
		}
		on := idx%2 == 0

		var run []pen.Point
		if on {
			run = append(run, pts[0])
		}
		for i := 0; i+1 < len(pts); i++ {
			p, q := pts[i], pts[i+1]
			segLen := p.Distance(q)
			covered := 0.0
			for segLen-covered > remain {
				covered += remain
				cut := p.Lerp(q, covered/segLen)
				if on {
					run = append(run, cut)
					out = append(out, polyline{pts: run})
					run = nil
				} else {
					run = []pen.Point{cut}
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				remain = pattern[idx] * scale
			}
			remain -= segLen - covered
			if on {
				run = append(run, q)
			}
		}
		if len(run) >= 2 {
			out = append(out, polyline{pts: run})
		}
	}
	return out
}
