package systems

import (
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/probe"
	"github.com/automoto/hopdrop/shared/surface"
	"github.com/automoto/hopdrop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEnemyVelocity drives patrolling enemies on the fixed tick.
func UpdateEnemyVelocity(ecs *ecs.ECS) {
	fixed := clockOf(ecs.World).Fixed

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !isActive(e) || components.Actor.Get(e).Dying {
			return
		}
		enemy := components.Enemy.Get(e)
		body := components.Body.Get(e)
		if enemy.Culled {
			body.Velocity = dmath.Vec2{}
			return
		}
		body.Velocity = dmath.NewVec2(enemy.Direction*enemy.Speed*fixed*cfg.Unit, 0)
	})
}

// UpdateEnemies runs the enemy motor once per frame: culling, ledge and wall
// turns, stomps from above and kills in the patrol direction.
func UpdateEnemies(ecs *ecs.ECS) {
	var camera *components.CameraData
	if ce, ok := components.Camera.First(ecs.World); ok {
		camera = components.Camera.Get(ce)
	}
	space := spaceOf(ecs.World)

	for _, e := range collect(ecs.World, tags.Enemy) {
		if !isActive(e) {
			continue
		}
		actor := components.Actor.Get(e)
		if actor.Dying {
			continue
		}
		enemy := components.Enemy.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e)

		enemy.Culled = camera != nil && !camera.InBand(obj.Center().Y)
		if enemy.Culled {
			body.Velocity = dmath.Vec2{}
			continue
		}

		ledge := probe.Probe(space, obj.Object, probe.Down, cfg.Enemy.CheckRayLength, cfg.Enemy.RayInset, tags.ResolvGround)
		switch {
		case ledge.HitA && !ledge.HitB:
			enemy.Direction = cfg.DirectionLeft
		case ledge.HitB && !ledge.HitA:
			enemy.Direction = cfg.DirectionRight
		}
		if body.BlockedX != 0 && body.BlockedX == enemy.Direction {
			enemy.Direction = -enemy.Direction
		}
		body.BlockedX = 0
		actor.Facing = enemy.Direction

		up := surface.Classify(probe.Probe(space, obj.Object, probe.Up, cfg.Enemy.CheckRayLength, cfg.Enemy.RayInset, tags.ResolvPlayer))
		if up.Is(tags.TagPlayer) {
			Stomp(ecs, entryOf(up.Object), e)
			continue
		}

		dir := probe.Right
		if enemy.Direction < 0 {
			dir = probe.Left
		}
		side := surface.Classify(probe.Probe(space, obj.Object, dir, cfg.Enemy.CheckRayLength, cfg.Enemy.RayInset, tags.ResolvPlayer))
		if side.Is(tags.TagPlayer) {
			StartDeath(ecs, entryOf(side.Object))
		}
	}
}
