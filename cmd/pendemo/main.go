// Command pendemo draws one scene through a command recording and replays
// it onto the raster, SVG and PDF backends, writing pendemo.png,
// pendemo.svg and pendemo.pdf into the current directory.
package main

import (
	"image"
	"image/color"
	"log"
	"os"

	"github.com/gogpu/pen"
	"github.com/gogpu/pen/pdf"
	"github.com/gogpu/pen/raster"
	"github.com/gogpu/pen/record"
	"github.com/gogpu/pen/svg"
)

const (
	width  = 400
	height = 300
)

// drawScene exercises chained points, deferred curves, shapes, queued
// text, dashes and shadows on a single pen.
func drawScene(p *pen.Pen) {
	// Shadowed card.
	p.SetShadow(pen.Shadow{OffsetX: 4, OffsetY: 4, Blur: 3, Color: pen.Hex("#00000055")}).
		SetFillColor(pen.Hex("#3b82f6")).
		XY(40, 40).Rect(120, 80).Fill().
		ClearShadow()

	// A polyline with curves deferred between the points.
	p.XY(40, 160).
		QuadTo(100, 110).XY(160, 160).
		CurveTo(200, 210, 240, 110).XY(280, 160).
		StrokeWith(3, pen.Hex("#ef4444"))

	// Dashed rule across the canvas.
	p.SetDash(8, 4).
		XY(40, 200).X(360).
		StrokeWith(2, pen.Hex("#6b7280")).
		SetDash()

	// Centered shapes anchored at the pen position.
	p.XY(320, 80).Circle(36).FillWith(pen.Hex("#10b981"), pen.FillRuleNonZero)
	p.XY(320, 80).CenteredSquare(30).StrokeWith(2, pen.Hex("#065f46"))

	// A small generated swatch.
	p.XY(180, 36).ImageSized(swatch(), 48, 48)

	// Queued text, painted together with the underline fill.
	p.SetFont(pen.Font{Size: 22}).
		SetTextAlign(pen.AlignCenter).
		SetFillColor(pen.Hex("#111827")).
		XY(200, 250).Text("pendemo").
		XY(140, 258).Rect(120, 2).Fill()
}

// swatch builds a small diagonal gradient image.
func swatch() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 16),
				G: uint8(y * 16),
				B: 160,
				A: 255,
			})
		}
	}
	return img
}

// flipY adapts a y-up surface (the PDF page) to the y-down scene by
// mirroring coordinates and angles around the horizontal axis.
type flipY struct {
	pen.Surface
	h float64
}

func (f flipY) MoveTo(x, y float64) { f.Surface.MoveTo(x, f.h-y) }
func (f flipY) LineTo(x, y float64) { f.Surface.LineTo(x, f.h-y) }

func (f flipY) QuadTo(cx, cy, x, y float64) {
	f.Surface.QuadTo(cx, f.h-cy, x, f.h-y)
}

func (f flipY) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	f.Surface.CubicTo(c1x, f.h-c1y, c2x, f.h-c2y, x, f.h-y)
}

func (f flipY) ArcTo(cx, cy, x, y, r float64) {
	f.Surface.ArcTo(cx, f.h-cy, x, f.h-y, r)
}

func (f flipY) Rect(x, y, w, h float64) {
	f.Surface.Rect(x, f.h-y-h, w, h)
}

func (f flipY) Ellipse(x, y, rx, ry float64) {
	f.Surface.Ellipse(x, f.h-y, rx, ry)
}

func (f flipY) Arc(x, y, r, a1, a2 float64) {
	f.Surface.Arc(x, f.h-y, r, -a1, -a2)
}

func (f flipY) FillText(s string, x, y float64, style pen.TextStyle) {
	f.Surface.FillText(s, x, f.h-y, style)
}

func (f flipY) StrokeText(s string, x, y float64, style pen.TextStyle) {
	f.Surface.StrokeText(s, x, f.h-y, style)
}

func (f flipY) Translate(x, y float64) { f.Surface.Translate(x, -y) }
func (f flipY) Rotate(angle float64)   { f.Surface.Rotate(-angle) }

func (f flipY) ClearRect(x, y, w, h float64) {
	f.Surface.ClearRect(x, f.h-y-h, w, h)
}

func (f flipY) DrawImage(img image.Image, x, y, w, h float64) {
	f.Surface.DrawImage(img, x, f.h-y-h, w, h)
}

func (f flipY) SetShadow(sh pen.Shadow) {
	sh.OffsetY = -sh.OffsetY
	f.Surface.SetShadow(sh)
}

func main() {
	rec := record.New()
	drawScene(pen.New(rec))

	ras := raster.New(width, height)
	rec.Playback(ras)
	if err := ras.SavePNG("pendemo.png"); err != nil {
		log.Fatalln("write png:", err)
	}

	sv := svg.New(width, height, svg.WithBackground(color.White))
	rec.Playback(sv)
	svgFile, err := os.Create("pendemo.svg")
	if err != nil {
		log.Fatalln("create svg:", err)
	}
	if _, err := sv.WriteTo(svgFile); err != nil {
		log.Fatalln("write svg:", err)
	}
	if err := svgFile.Close(); err != nil {
		log.Fatalln("close svg:", err)
	}

	pdfFile, err := os.Create("pendemo.pdf")
	if err != nil {
		log.Fatalln("create pdf:", err)
	}
	page, err := pdf.New(pdfFile, width, height)
	if err != nil {
		log.Fatalln("open pdf page:", err)
	}
	rec.Playback(flipY{Surface: page, h: height})
	if err := page.Close(); err != nil {
		log.Fatalln("write pdf:", err)
	}
	if err := pdfFile.Close(); err != nil {
		log.Fatalln("close pdf:", err)
	}

	log.Println("wrote pendemo.png, pendemo.svg, pendemo.pdf")
}
