package factory

import (
	"math"

	"github.com/automoto/hopdrop/archetypes"
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level singleton carrying the clock, the scene
// request and the level complete overlay state.
func CreateLevel(ecs *ecs.ECS, index int, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.SetValue(level, components.LevelData{
		Index:  index,
		Name:   lvl.Name,
		Width:  lvl.Width,
		Height: lvl.Height,
	})
	components.Clock.SetValue(level, components.ClockData{
		Frame: 1.0 / float64(cfg.Timing.TPS),
		Fixed: cfg.Timing.FixedDelta,
	})
	components.SceneRequest.SetValue(level, components.SceneRequestData{})
	components.LevelComplete.SetValue(level, components.LevelCompleteData{})

	return level
}

// BuildLevel populates a fresh world from level data and returns the player.
func BuildLevel(ecs *ecs.ECS, index int, lvl *leveldata.Level) *donburi.Entry {
	CreateLevel(ecs, index, lvl)

	// Headroom above the map so high jumps keep colliding.
	cell := cfg.Physics.SpaceCellSize
	CreateSpace(ecs, int(math.Ceil(lvl.Width))+cell, int(math.Ceil(lvl.Height))+4*cell, cell, cell)

	for _, r := range lvl.Ground {
		CreateGround(ecs, r.X, r.Y, r.W, r.H, r.SlopeType)
	}
	for _, r := range lvl.Slides {
		CreateSlide(ecs, r.X, r.Y, r.W, r.H, r.SlopeType)
	}
	for _, r := range lvl.Hazards {
		CreateHazard(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range lvl.Finishes {
		CreateFinishLine(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, s := range lvl.Enemies {
		CreateEnemy(ecs, s.X, s.Y, s.Direction)
	}

	player := CreatePlayer(ecs, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	CreateCamera(ecs, lvl.Width/2, lvl.PlayerSpawn.Y, float64(cfg.C.Width), float64(cfg.C.Height))

	return player
}
