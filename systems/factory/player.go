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

// CreatePlayer places a player with its feet centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer, tags.TagPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	components.Player.SetValue(player, components.PlayerData{})
	components.Actor.SetValue(player, components.ActorData{
		Facing:   cfg.DirectionRight,
		Airborne: true,
	})
	components.Body.SetValue(player, components.BodyData{
		Mass:         cfg.Player.Mass,
		GravityScale: 1,
		Material:     components.MaterialNormal,
		Solids:       []string{tags.ResolvGround, tags.ResolvEnemy},
	})
	components.Tint.SetValue(player, components.TintData{Color: cfg.Player.Color})

	addToSpace(ecs, obj)
	return player
}
