package pen

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func nearEq(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() must report IsIdentity")
	}
	x, y := m.ApplyXY(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("identity moved (3,4) to (%g,%g)", x, y)
	}
}

func TestMatrixTranslation(t *testing.T) {
	m := Translation(10, -5)
	got := m.Apply(Pt(1, 2))
	if got != Pt(11, -3) {
		t.Errorf("Apply = %v, want (11,-3)", got)
	}
}

func TestMatrixScaling(t *testing.T) {
	m := Scaling(2, 3)
	got := m.Apply(Pt(4, 5))
	if got != Pt(8, 15) {
		t.Errorf("Apply = %v, want (8,15)", got)
	}
}

func TestMatrixRotation(t *testing.T) {
	m := Rotation(math.Pi / 2)
	got := m.Apply(Pt(1, 0))
	if !nearEq(got.X, 0) || !nearEq(got.Y, 1) {
		t.Errorf("quarter turn of (1,0) = %v, want (0,1)", got)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate-then-scale differs from scale-then-translate; the receiver
	// is applied last.
	scaleThenTranslate := Translation(10, 0).Multiply(Scaling(2, 2))
	got := scaleThenTranslate.Apply(Pt(1, 1))
	if got != Pt(12, 2) {
		t.Errorf("T*S applied to (1,1) = %v, want (12,2)", got)
	}

	translateThenScale := Scaling(2, 2).Multiply(Translation(10, 0))
	got = translateThenScale.Apply(Pt(1, 1))
	if got != Pt(22, 2) {
		t.Errorf("S*T applied to (1,1) = %v, want (22,2)", got)
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	if got := Scaling(2, 2).ScaleFactor(); !nearEq(got, 2) {
		t.Errorf("ScaleFactor = %g, want 2", got)
	}
	// Rotation preserves lengths.
	if got := Rotation(1.2).ScaleFactor(); !nearEq(got, 1) {
		t.Errorf("rotation ScaleFactor = %g, want 1", got)
	}
}
