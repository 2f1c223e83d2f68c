package factory

import (
	"github.com/automoto/hopdrop/archetypes"
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy places a patrolling enemy with its feet centred on (x, y).
// Enemies are kinematic: no gravity, velocity set by their motor.
func CreateEnemy(ecs *ecs.ECS, x, y, direction float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight
	obj := resolv.NewObject(x-w/2, y, w, h, tags.ResolvEnemy, tags.TagEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	if direction == 0 {
		direction = cfg.DirectionRight
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: direction,
		Speed:     cfg.Enemy.Speed,
	})
	components.Actor.SetValue(enemy, components.ActorData{
		Facing:   direction,
		Grounded: true,
	})
	components.Body.SetValue(enemy, components.BodyData{
		Mass:         1,
		GravityScale: 0,
		Material:     components.MaterialNormal,
		Solids:       []string{tags.ResolvGround},
	})
	components.Tint.SetValue(enemy, components.TintData{Color: cfg.Enemy.Color})

	addToSpace(ecs, obj)
	return enemy
}
