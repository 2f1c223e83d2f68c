package factory

import (
	"math"

	"github.com/automoto/hopdrop/archetypes"
	"github.com/automoto/hopdrop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the band camera positioned on the band that contains
// focusY. Bands are stacked from y=0 in steps of the view height.
func CreateCamera(ecs *ecs.ECS, centerX, focusY, viewW, viewH float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	half := viewH / 2
	band := math.Floor(math.Max(focusY, 0) / viewH)
	centerY := band*viewH + half

	components.Camera.SetValue(camera, components.CameraData{
		Position:   dmath.NewVec2(centerX, centerY),
		HalfWidth:  viewW / 2,
		HalfHeight: half,
		BiggestY:   centerY + half + 1,
	})
	return camera
}
