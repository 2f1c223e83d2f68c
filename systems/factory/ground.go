package factory

import (
	"github.com/automoto/hopdrop/archetypes"
	"github.com/automoto/hopdrop/components"
	"github.com/automoto/hopdrop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a solid block. A non-empty slopeType turns it into a
// ramp whose surface is computed from the slope tag.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64, slopeType string, extraTags ...string) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	objTags := append([]string{tags.ResolvGround}, extraTags...)
	if slopeType != "" {
		objTags = append(objTags, slopeType)
	}
	obj := resolv.NewObject(x, y, w, h, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ground // Link for O(1) lookup

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ground
}

// CreateSlide creates a frictionless block or ramp.
func CreateSlide(ecs *ecs.ECS, x, y, w, h float64, slopeType string) *donburi.Entry {
	return CreateGround(ecs, x, y, w, h, slopeType, tags.ResolvSlide)
}

// CreateHazard creates a zone that kills the player on contact. It is not solid.
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hazard

	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return hazard
}

// CreateFinishLine creates a solid block that ends the level when touched.
func CreateFinishLine(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finish := archetypes.FinishLine.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvGround, tags.ResolvFinish)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = finish

	components.Object.SetValue(finish, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return finish
}
