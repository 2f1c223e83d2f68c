package systems

import (
	"math"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/gamemath"
	"github.com/automoto/hopdrop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePhysics steps every body once by the fixed delta.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Fixed

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		// Dying actors freeze in place for their fade.
		if e.HasComponent(components.Actor) && components.Actor.Get(e).Dying {
			return
		}
		StepBody(components.Body.Get(e), components.Object.Get(e), dt)
	})
}

// StepBody integrates one body: gravity, material response on the ground,
// then a horizontal and a vertical move resolved against its solids.
func StepBody(body *components.BodyData, obj *components.ObjectData, dt float64) {
	body.Velocity.Y += cfg.Physics.Gravity * body.GravityScale * dt
	if body.Velocity.Y < -cfg.Physics.MaxFallSpeed {
		body.Velocity.Y = -cfg.Physics.MaxFallSpeed
	}

	if ground := body.OnGround; ground != nil {
		switch body.Material {
		case components.MaterialNormal:
			body.Velocity.X = gamemath.ApplyFriction(body.Velocity.X, cfg.Physics.GroundFriction*dt)
		case components.MaterialSlide:
			downhill := gamemath.DownhillSign(ground, tags.Slope45UpRight, tags.Slope45UpLeft)
			body.Velocity.X += downhill * cfg.Physics.SlideAccel * dt
		}
	}

	resolveHorizontal(body, obj.Object, body.Velocity.X*dt)
	resolveVertical(body, obj.Object, body.Velocity.Y*dt)
	obj.Update()
}

// ApplyForce adds a force for one fixed step: dv = F * dt / m.
func ApplyForce(body *components.BodyData, force dmath.Vec2) {
	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}
	dt := cfg.Timing.FixedDelta
	body.LastForce = force
	body.Velocity.X += force.X * dt / mass
	body.Velocity.Y += force.Y * dt / mass
}

// ImpactSpeed returns the larger axis speed recorded at the last blocked move.
func ImpactSpeed(body *components.BodyData) float64 {
	return math.Max(math.Abs(body.Impact.X), math.Abs(body.Impact.Y))
}
