package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2 // band centre
	HalfWidth  float64
	HalfHeight float64
	// BiggestY is just above the highest band top reached so far.
	BiggestY float64

	Transition *gween.Tween // nil when idle
	FromY      float64
	ToY        float64

	Offset math.Vec2 // shake offset applied at draw time
}

// Top returns the upper edge of the vertical band.
func (c CameraData) Top() float64 {
	return c.Position.Y + c.HalfHeight
}

// Bottom returns the lower edge of the vertical band.
func (c CameraData) Bottom() float64 {
	return c.Position.Y - c.HalfHeight
}

// InBand reports whether y lies inside the vertical band.
func (c CameraData) InBand(y float64) bool {
	return y >= c.Bottom() && y <= c.Top()
}

var Camera = donburi.NewComponentType[CameraData]()
