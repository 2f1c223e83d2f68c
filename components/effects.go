package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Magnitude float64 // max offset in pixels, already scaled by the setting
	Duration  float64 // seconds
	Elapsed   float64 // seconds
}

// Active reports whether the shake still has time left.
func (s ScreenShakeData) Active() bool {
	return s.Elapsed < s.Duration
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// TintData is the colour an actor is drawn with.
type TintData struct {
	Color color.RGBA
}

var Tint = donburi.NewComponentType[TintData]()
