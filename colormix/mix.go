package colormix

import "math"

// MidpointRatio is the ratio the mixer view blends at.
const MidpointRatio = 0.5

// Mix blends a and b by linear interpolation. ratio is clamped to [0,1]:
// 0 yields a, 1 yields b. A NaN ratio is treated as 0.
func Mix(a, b Color, ratio float64) Color {
	t := clamp01(ratio)
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

// Midpoint is Mix at MidpointRatio.
func Midpoint(a, b Color) Color {
	return Mix(a, b, MidpointRatio)
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
