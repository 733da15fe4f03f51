package core

import "math"

// Color is a linear-light RGB triple with channels in [0,1].
// Colors stay in float32 through the whole pipeline and are only
// quantized to bytes at the very end by RGB8.
type Color struct {
	R, G, B float32
}

// NewColor creates a new color from linear channel values
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

var (
	// Black is the color of absorbed rays and exhausted recursion.
	Black = Color{0, 0, 0}
	// White is the sky gradient's horizon color.
	White = Color{1, 1, 1}
)

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the component-wise product of two colors.
// This is how attenuation composes along a scattered path.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp linearly interpolates between c and other: (1-t)*c + t*other
func (c Color) Lerp(other Color, t float32) Color {
	return c.Scale(1 - t).Add(other.Scale(t))
}

// Gamma2 applies gamma-2 correction by taking the square root of each channel
func (c Color) Gamma2() Color {
	return Color{
		R: float32(math.Sqrt(float64(c.R))),
		G: float32(math.Sqrt(float64(c.G))),
		B: float32(math.Sqrt(float64(c.B))),
	}
}

// RGB8 quantizes the color to 8-bit channels: clamp each channel to
// [0, 0.999], multiply by 256 and truncate.
func (c Color) RGB8() (r, g, b uint8) {
	return quantize(c.R), quantize(c.G), quantize(c.B)
}

func quantize(ch float32) uint8 {
	if ch < 0 {
		ch = 0
	}
	if ch > 0.999 {
		ch = 0.999
	}
	return uint8(ch * 256)
}
