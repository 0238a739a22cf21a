package pen

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"00ff00", color.NRGBA{G: 255, A: 255}},
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#f008", color.NRGBA{R: 255, A: 136}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{"", color.NRGBA{A: 255}},
		{"not-a-color", color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexString(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{color.NRGBA{R: 255, A: 255}, "#ff0000"},
		{color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, "#11223344"},
		{color.Black, "#000000"},
		{color.White, "#ffffff"},
	}
	for _, tt := range tests {
		if got := HexString(tt.in); got != tt.want {
			t.Errorf("HexString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := Hex("#12ab56")
	if got := HexString(c); got != "#12ab56" {
		t.Errorf("round trip = %q, want #12ab56", got)
	}
}
