package core

import (
	"math"
	"testing"
)

func TestColor_Arithmetic(t *testing.T) {
	a := NewColor(0.2, 0.4, 0.6)
	b := NewColor(0.1, 0.1, 0.2)

	if got := a.Add(b); colorDistance(got, NewColor(0.3, 0.5, 0.8)) > 1e-6 {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Scale(0.5); colorDistance(got, NewColor(0.1, 0.2, 0.3)) > 1e-6 {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Mul(b); colorDistance(got, NewColor(0.02, 0.04, 0.12)) > 1e-6 {
		t.Errorf("Mul: got %v", got)
	}
}

func TestColor_Lerp(t *testing.T) {
	tests := []struct {
		name     string
		t        float32
		expected Color
	}{
		{"start", 0, White},
		{"end", 1, NewColor(0.5, 0.7, 1.0)},
		{"midpoint", 0.5, NewColor(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := White.Lerp(NewColor(0.5, 0.7, 1.0), tt.t)
			if colorDistance(got, tt.expected) > 1e-6 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_Gamma2(t *testing.T) {
	c := NewColor(0.25, 0.64, 1.0).Gamma2()
	expected := NewColor(0.5, 0.8, 1.0)
	if colorDistance(c, expected) > 1e-6 {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestColor_RGB8(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		r, g, b uint8
	}{
		{"black", Black, 0, 0, 0},
		{"white clamps below 256", White, 255, 255, 255},
		{"mid gray truncates", NewColor(0.5, 0.5, 0.5), 128, 128, 128},
		{"negative clamps to zero", NewColor(-0.5, 0, 0.25), 0, 0, 64},
		{"overbright clamps", NewColor(2.0, 1.5, 1.0), 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.color.RGB8()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func colorDistance(a, b Color) float64 {
	return math.Max(math.Abs(float64(a.R-b.R)),
		math.Max(math.Abs(float64(a.G-b.G)), math.Abs(float64(a.B-b.B))))
}
