package pen

import (
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		want    []float64 // nil means solid
	}{
		{"empty", nil, nil},
		{"all zero", []float64{0, 0}, nil},
		{"simple", []float64{5, 3}, []float64{5, 3}},
		{"negative normalized", []float64{-5, 3}, []float64{5, 3}},
		{"single", []float64{4}, []float64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if tt.want == nil {
				if d != nil {
					t.Fatalf("expected nil dash, got %v", d.Array)
				}
				return
			}
			if d == nil {
				t.Fatal("expected non-nil dash")
			}
			if len(d.Array) != len(tt.want) {
				t.Fatalf("array length = %d, want %d", len(d.Array), len(tt.want))
			}
			for i := range tt.want {
				if d.Array[i] != tt.want[i] {
					t.Errorf("Array[%d] = %g, want %g", i, d.Array[i], tt.want[i])
				}
			}
		})
	}
}

func TestDashEffectiveArray(t *testing.T) {
	d := NewDash(5)
	got := d.EffectiveArray()
	if len(got) != 2 || got[0] != 5 || got[1] != 5 {
		t.Errorf("EffectiveArray() = %v, want [5 5]", got)
	}

	even := NewDash(10, 2)
	got = even.EffectiveArray()
	if len(got) != 2 || got[0] != 10 || got[1] != 2 {
		t.Errorf("EffectiveArray() = %v, want [10 2]", got)
	}

	var nilDash *Dash
	if nilDash.EffectiveArray() != nil {
		t.Error("nil dash must have nil effective array")
	}
}

func TestDashPatternLength(t *testing.T) {
	tests := []struct {
		name string
		d    *Dash
		want float64
	}{
		{"nil", nil, 0},
		{"even", NewDash(5, 3), 8},
		{"odd doubled", NewDash(5), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.PatternLength(); got != tt.want {
				t.Errorf("PatternLength() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestDashWithOffset(t *testing.T) {
	d := NewDash(5, 3)
	d2 := d.WithOffset(4)
	if d2.Offset != 4 {
		t.Errorf("Offset = %g, want 4", d2.Offset)
	}
	if d.Offset != 0 {
		t.Error("WithOffset must not mutate the receiver")
	}
	var nilDash *Dash
	if nilDash.WithOffset(1) != nil {
		t.Error("nil dash stays nil")
	}
}

func TestDashIsDashed(t *testing.T) {
	if (*Dash)(nil).IsDashed() {
		t.Error("nil dash is solid")
	}
	if !NewDash(5, 3).IsDashed() {
		t.Error("expected dashed")
	}
}

func TestDashClone(t *testing.T) {
	d := NewDash(5, 3).WithOffset(1)
	c := d.Clone()
	c.Array[0] = 99
	if d.Array[0] != 5 {
		t.Error("Clone must deep-copy the array")
	}
	if c.Offset != 1 {
		t.Errorf("Clone offset = %g, want 1", c.Offset)
	}
}
