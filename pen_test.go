package pen_test

import (
	"image/color"
	"iter"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/pen"
	"github.com/gogpu/pen/record"
)

// rec creates a pen over a fresh recording surface.
func rec() (*pen.Pen, *record.Surface) {
	s := record.New()
	return pen.New(s), s
}

func TestMoveLineClose(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).XY(100, 0).XY(100, 100).Close().Stroke()

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.LineTo{X: 100, Y: 0},
		record.LineTo{X: 100, Y: 100},
		record.LineTo{X: 0, Y: 0},
		record.ClosePath{},
		record.Stroke{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestCloseAtStart(t *testing.T) {
	// Returning to the start point manually must not produce a duplicate
	// closing line.
	p, s := rec()
	p.XY(0, 0).XY(50, 0).XY(0, 0).Close()

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.LineTo{X: 50, Y: 0},
		record.LineTo{X: 0, Y: 0},
		record.ClosePath{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDoubleClose(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).XY(10, 0).Close().Close()

	want := []record.Op{
		record.OpMoveTo,
		record.OpLineTo,
		record.OpLineTo, // back to start
		record.OpClosePath,
		record.OpClosePath, // second close: no subpath, geometric close only
	}
	if diff := cmp.Diff(want, s.Ops()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitStartsNewSubpath(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).XY(10, 0).Split().XY(20, 0).XY(30, 0).Stroke()

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.LineTo{X: 10, Y: 0},
		record.MoveTo{X: 20, Y: 0},
		record.LineTo{X: 30, Y: 0},
		record.Stroke{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitResetsCloseTarget(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).XY(10, 0).Split().XY(20, 20).XY(30, 20).Close()

	// Close must connect back to (20,20), the start of the second subpath.
	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.LineTo{X: 10, Y: 0},
		record.MoveTo{X: 20, Y: 20},
		record.LineTo{X: 30, Y: 20},
		record.LineTo{X: 20, Y: 20},
		record.ClosePath{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestLazyPathResetAfterStroke(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).XY(10, 10).Stroke()
	n := len(s.Commands())
	p.XY(5, 5).XY(15, 15).Stroke()

	// The first call after Stroke must begin a fresh path and emit its
	// point as a move, never a line continuing the spent path.
	want := []record.Command{
		record.BeginPath{},
		record.MoveTo{X: 5, Y: 5},
		record.LineTo{X: 15, Y: 15},
		record.Stroke{},
	}
	if diff := cmp.Diff(want, s.Commands()[n:]); diff != "" {
		t.Errorf("commands after stroke mismatch (-want +got):\n%s", diff)
	}
}

func TestNoResetWithoutMutation(t *testing.T) {
	// Paint operations mark the path spent but do not reset it themselves:
	// stroking then filling paints the same path twice.
	p, s := rec()
	p.XY(0, 0).XY(10, 0).XY(10, 10).Stroke().Fill()

	want := []record.Op{
		record.OpMoveTo,
		record.OpLineTo,
		record.OpLineTo,
		record.OpStroke,
		record.OpFill,
	}
	if diff := cmp.Diff(want, s.Ops()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDeferredQuad(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).QuadTo(50, 0).XY(100, 100).Stroke()

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.QuadTo{CX: 50, CY: 0, X: 100, Y: 100},
		record.Stroke{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDeferredCubic(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).CurveTo(10, 20, 30, 40).XY(50, 60)

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.CubicTo{C1X: 10, C1Y: 20, C2X: 30, C2Y: 40, X: 50, Y: 60},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDeferredArcTo(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).ArcTo(100, 0, 30).XY(100, 100)

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.ArcTo{CX: 100, CY: 0, X: 100, Y: 100, Radius: 30},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestCurveConsumedOnce(t *testing.T) {
	// Only the first point after a deferred curve becomes its destination;
	// later points are ordinary lines. The trailing Split flushes the last
	// point, which would otherwise stay pending.
	p, s := rec()
	p.XY(0, 0).QuadTo(50, 0).XY(100, 0).XY(100, 100).Split()

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.QuadTo{CX: 50, CY: 0, X: 100, Y: 0},
		record.LineTo{X: 100, Y: 100},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestUnconsumedCurveDropped(t *testing.T) {
	// A curve with no destination point before paint is never emitted, and
	// must not leak into the fresh path after the reset.
	p, s := rec()
	p.XY(0, 0).XY(10, 0).QuadTo(50, 50).Stroke()
	p.XY(0, 0).XY(5, 5)

	want := []record.Op{
		record.OpMoveTo,
		record.OpLineTo,
		record.OpStroke,
		record.OpBeginPath,
		record.OpMoveTo, // not a QuadTo: the stale curve was dropped
	}
	if diff := cmp.Diff(want, s.Ops()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitDropsPendingCurve(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).XY(10, 0).QuadTo(50, 50).Split().XY(20, 20).XY(30, 30).Split()

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.LineTo{X: 10, Y: 0},
		record.MoveTo{X: 20, Y: 20},
		record.LineTo{X: 30, Y: 30},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestRelativeMoves(t *testing.T) {
	p, s := rec()
	p.XY(10, 20).RelXY(5, 5).RelX(10).RelY(-10).X(100).Y(200).Split()

	want := []record.Command{
		record.MoveTo{X: 10, Y: 20},
		record.LineTo{X: 15, Y: 25},
		record.LineTo{X: 25, Y: 25},
		record.LineTo{X: 25, Y: 15},
		record.LineTo{X: 100, Y: 15},
		record.LineTo{X: 100, Y: 200},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if got := p.Position(); got != pen.Pt(100, 200) {
		t.Errorf("Position() = %v, want (100,200)", got)
	}
}

func TestPoints(t *testing.T) {
	seq := func(yield func(float64, float64) bool) {
		for i := 0; i < 4; i++ {
			if !yield(float64(i*10), float64(i*i)) {
				return
			}
		}
	}
	p, s := rec()
	p.Points(iter.Seq2[float64, float64](seq)).Stroke()

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.LineTo{X: 10, Y: 1},
		record.LineTo{X: 20, Y: 4},
		record.LineTo{X: 30, Y: 9},
		record.Stroke{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestShapesAnchoredAtPosition(t *testing.T) {
	p, s := rec()
	p.XY(100, 50).Rect(20, 10).Ellipse(5, 3).Arc(7, 0, math.Pi)

	want := []record.Command{
		record.Rect{X: 100, Y: 50, W: 20, H: 10},
		record.Ellipse{X: 100, Y: 50, RX: 5, RY: 3},
		record.Arc{X: 100, Y: 50, Radius: 7, A1: 0, A2: math.Pi},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestCenteredShapes(t *testing.T) {
	p, s := rec()
	p.XY(50, 50).CenteredRect(20, 10).CenteredSquare(8)

	want := []record.Command{
		record.Rect{X: 40, Y: 45, W: 20, H: 10},
		record.Rect{X: 46, Y: 46, W: 8, H: 8},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeConsumesPendingPoint(t *testing.T) {
	// A shape is not a line-drawing step: the recorded position anchors it
	// but is never emitted as a move or line.
	p, s := rec()
	p.XY(30, 30).Square(10).Stroke()

	want := []record.Command{
		record.Rect{X: 30, Y: 30, W: 10, H: 10},
		record.Stroke{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeDropsPendingCurve(t *testing.T) {
	// A deferred curve never survives a shape call: the shape is not a
	// point-adding step, so the curve loses its destination and the next
	// point starts fresh instead of consuming the stale curve.
	p, s := rec()
	p.XY(0, 0).QuadTo(50, 50).Rect(10, 10).XY(100, 100).Split()

	want := []record.Command{
		record.Rect{X: 0, Y: 0, W: 10, H: 10},
		record.MoveTo{X: 100, Y: 100},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestCircle(t *testing.T) {
	p, s := rec()
	p.XY(50, 50).Circle(10)

	want := []record.Command{
		record.MoveTo{X: 60, Y: 50},
		record.Arc{X: 50, Y: 50, Radius: 10, A1: 0, A2: 2 * math.Pi},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestCircleClearsSubpathStart(t *testing.T) {
	// A later Close must not connect back into the circle's forced move.
	p, s := rec()
	p.XY(50, 50).Circle(10)
	n := len(s.Commands())
	p.XY(0, 0).XY(10, 0).Close()

	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.LineTo{X: 10, Y: 0},
		record.LineTo{X: 0, Y: 0},
		record.ClosePath{},
	}
	if diff := cmp.Diff(want, s.Commands()[n:]); diff != "" {
		t.Errorf("commands after circle mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinBridgesShapes(t *testing.T) {
	// Join re-records the current position as pending, so the next point
	// always emits a connecting line, even at unchanged coordinates. The
	// re-pended point itself flushes as a zero-length line.
	p, s := rec()
	p.XY(10, 10).Join().XY(20, 20).Split()

	want := []record.Command{
		record.MoveTo{X: 10, Y: 10},
		record.LineTo{X: 10, Y: 10},
		record.LineTo{X: 20, Y: 20},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinThenCircle(t *testing.T) {
	// A circle after Join drops the re-pended point: the circle is its own
	// subpath and the join contributes nothing.
	p, s := rec()
	p.XY(10, 10).Join().Circle(5)

	want := []record.Command{
		record.MoveTo{X: 10, Y: 10},
		record.MoveTo{X: 15, Y: 10},
		record.Arc{X: 10, Y: 10, Radius: 5, A1: 0, A2: 2 * math.Pi},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestTextQueuedUntilPaint(t *testing.T) {
	p, s := rec()
	// Text consumes the pending (10,20) without emitting path geometry;
	// only (30,40) flushes as a move before paint.
	p.XY(10, 20).Text("hello").XY(30, 40).XY(50, 60)
	if got := len(s.Commands()); got != 1 {
		t.Fatalf("text must not be emitted before paint; got %d commands", got)
	}
	p.Fill()

	want := []record.Command{
		record.MoveTo{X: 30, Y: 40},
		record.LineTo{X: 50, Y: 60},
		record.FillText{Text: "hello", X: 10, Y: 20},
		record.Fill{Rule: pen.FillRuleNonZero},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestTextStyleSnapshot(t *testing.T) {
	// Style changes after queueing must not affect already-queued text.
	p, s := rec()
	p.SetFont(pen.Font{Family: "mono", Size: 12}).
		XY(10, 10).Text("first").
		SetFont(pen.Font{Family: "serif", Size: 20}).
		SetTextAlign(pen.AlignCenter).
		XY(20, 20).Text("second").
		Stroke()

	want := []record.Command{
		record.StrokeText{Text: "first", X: 10, Y: 10,
			Style: pen.TextStyle{Font: pen.Font{Family: "mono", Size: 12}}},
		record.StrokeText{Text: "second", X: 20, Y: 20,
			Style: pen.TextStyle{Font: pen.Font{Family: "serif", Size: 20}, Align: pen.AlignCenter}},
		record.Stroke{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestTextAnchored(t *testing.T) {
	p, s := rec()
	p.XY(5, 5).TextAnchored("x", pen.AlignRight, pen.BaselineTop).Fill()

	want := []record.Command{
		record.FillText{Text: "x", X: 5, Y: 5,
			Style: pen.TextStyle{Align: pen.AlignRight, Baseline: pen.BaselineTop}},
		record.Fill{Rule: pen.FillRuleNonZero},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestQueuedTextDiscardedOnReset(t *testing.T) {
	p, s := rec()
	p.XY(0, 0).XY(10, 10).Stroke()
	p.XY(5, 5).Text("late") // queued on the fresh path
	p.Stroke()

	var texts []string
	for _, c := range s.Commands() {
		if st, ok := c.(record.StrokeText); ok {
			texts = append(texts, st.Text)
		}
	}
	if diff := cmp.Diff([]string{"late"}, texts); diff != "" {
		t.Errorf("stroked text mismatch (-want +got):\n%s", diff)
	}

	// Once the reset runs, the queue is cleared: the second stroke must
	// not repaint text from the previous path.
	s.Reset()
	p2 := pen.New(s)
	p2.XY(0, 0).Text("once").XY(1, 1).Stroke()
	p2.XY(2, 2).XY(3, 3).Stroke()
	count := 0
	for _, c := range s.Commands() {
		if _, ok := c.(record.StrokeText); ok {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected queued text painted exactly once, got %d", count)
	}
}

func TestStrokeWithFillWith(t *testing.T) {
	p, s := rec()
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	p.XY(0, 0).XY(10, 0).StrokeWith(3, red)
	p.XY(0, 0).XY(10, 10).XY(0, 10).FillWith(blue, pen.FillRuleEvenOdd)

	// The style setters run before Stroke flushes the last pending point,
	// so they land ahead of the final line segment.
	want := []record.Command{
		record.MoveTo{X: 0, Y: 0},
		record.SetLineWidth{Width: 3},
		record.SetStrokeColor{Color: red},
		record.LineTo{X: 10, Y: 0},
		record.Stroke{},
		record.BeginPath{},
		record.MoveTo{X: 0, Y: 0},
		record.LineTo{X: 10, Y: 10},
		record.SetFillColor{Color: blue},
		record.LineTo{X: 0, Y: 10},
		record.Fill{Rule: pen.FillRuleEvenOdd},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDashForwarding(t *testing.T) {
	p, s := rec()
	p.SetDash(5, 3).SetDashOffset(2).SetDash()

	want := []record.Command{
		record.SetDash{Pattern: []float64{5, 3}},
		record.SetDash{Pattern: []float64{5, 3}, Offset: 2},
		record.SetDash{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestClearRectAnchored(t *testing.T) {
	p, s := rec()
	p.XY(10, 20).ClearRect(30, 40)

	want := []record.Command{
		record.ClearRect{X: 10, Y: 20, W: 30, H: 40},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformForwarding(t *testing.T) {
	p, s := rec()
	p.Save().Translate(10, 20).Scale(2, 3).Rotate(0.5).Restore()

	want := []record.Command{
		record.Save{},
		record.Translate{X: 10, Y: 20},
		record.Scale{X: 2, Y: 3},
		record.Rotate{Angle: 0.5},
		record.Restore{},
	}
	if diff := cmp.Diff(want, s.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}
