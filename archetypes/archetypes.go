package archetypes

import (
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Actor,
		components.Object,
		components.Body,
		components.Input,
		components.Tint,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Actor,
		components.Object,
		components.Body,
		components.Tint,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Clock,
		components.SceneRequest,
		components.LevelComplete,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		tags.Persistent,
		components.Settings,
	)
	RunStats = newArchetype(
		tags.Persistent,
		components.RunStats,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
