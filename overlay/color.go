package overlay

import "image/color"

// RGBA represents a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// premul returns the color as premultiplied bytes, the form the surface
// stores and the blend functions consume.
func (c RGBA) premul() (r, g, b, a byte) {
	return uint8(clamp255(c.R * c.A * 255)),
		uint8(clamp255(c.G * c.A * 255)),
		uint8(clamp255(c.B * c.A * 255)),
		uint8(clamp255(c.A * 255))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clampRange clamps a value to [lo, hi].
func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Palette used by the three modes. Warm hues for the heatmap ramp, a dark
// slate for the fog fill, and marker colors for the path annotations.
var (
	Transparent = RGBA{}

	heatCore  = RGB(1.00, 0.27, 0.13) // saturated red-orange
	heatMid   = RGB(1.00, 0.58, 0.00) // orange
	heatOuter = RGB(1.00, 0.84, 0.00) // amber

	fogColor = RGB(0.07, 0.09, 0.13)

	pathLine     = RGB(1.00, 0.27, 0.13)
	markerFill   = RGB(1, 1, 1)
	markerBorder = RGB(1.00, 0.27, 0.13)
	markerText   = RGB(0.12, 0.16, 0.22)
	markerShadow = RGBA{R: 0, G: 0, B: 0, A: 0.35}
)
