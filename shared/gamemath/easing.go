package gamemath

import "math"

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smootherstep is Perlin's quintic step on t in [0, 1].
func Smootherstep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}

// Sinerp eases out with a quarter sine wave on t in [0, 1].
func Sinerp(t float64) float64 {
	return math.Sin(Clamp(t, 0, 1) * math.Pi * 0.5)
}

// SmootherstepEase adapts Smootherstep to gween's ease signature.
func SmootherstepEase(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	return b + c*float32(Smootherstep(float64(t/d)))
}

// SinerpEase adapts Sinerp to gween's ease signature.
func SinerpEase(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	return b + c*float32(Sinerp(float64(t/d)))
}
