package gamemath

import "github.com/solarlune/resolv"

// SlopeSurfaceY returns the height of a ramp's surface at world x, with y up.
// An up-right ramp rises from its left edge to its right edge; an up-left ramp
// mirrors that. Objects carrying neither tag are flat at their top.
func SlopeSurfaceY(ramp *resolv.Object, x float64, upRightTag, upLeftTag string) float64 {
	t := Clamp(x-ramp.X, 0, ramp.W) / ramp.W

	if ramp.HasTags(upRightTag) {
		return ramp.Y + ramp.H*t
	}
	if ramp.HasTags(upLeftTag) {
		return ramp.Y + ramp.H*(1-t)
	}
	return ramp.Y + ramp.H
}

// DownhillSign returns the x direction that leads down a ramp, or 0 when flat.
func DownhillSign(ramp *resolv.Object, upRightTag, upLeftTag string) float64 {
	if ramp.HasTags(upRightTag) {
		return -1
	}
	if ramp.HasTags(upLeftTag) {
		return 1
	}
	return 0
}
