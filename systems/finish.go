package systems

import (
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartFinish begins the finish sequence for a player. Repeated calls, or a
// call for a dying player, do nothing.
func StartFinish(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !isActive(e) || !e.HasComponent(components.Player) {
		return false
	}
	player := components.Player.Get(e)
	if player.Finishing || components.Actor.Get(e).Dying {
		return false
	}

	player.Finishing = true
	e.AddComponent(components.Finish)

	levelIndex := 0
	if lvl, ok := components.Level.First(ecs.World); ok {
		levelIndex = components.Level.Get(lvl).Index
	}
	if lc, ok := components.LevelComplete.First(ecs.World); ok {
		components.LevelComplete.SetValue(lc, components.LevelCompleteData{
			IsComplete: true,
			Score:      player.Score,
		})
	}
	if stats := runStatsOf(ecs.World); stats != nil {
		stats.Finishes++
	}

	LevelFinishedEvent.Publish(ecs.World, LevelFinished{
		Player: e,
		Score:  player.Score,
		Level:  levelIndex,
	})
	return true
}

// UpdateFinish waits out the finish delay, then requests the first scene.
// Unlike a death the request is activated at once.
func UpdateFinish(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Frame

	components.Finish.Each(ecs.World, func(e *donburi.Entry) {
		finish := components.Finish.Get(e)
		if finish.Requested {
			return
		}
		finish.Elapsed += dt
		if finish.Elapsed < cfg.Finish.Delay {
			return
		}
		finish.Requested = true
		if req := sceneRequestOf(ecs.World); req != nil {
			*req = components.SceneRequestData{
				Index:    cfg.Finish.SceneIndex,
				Pending:  true,
				Activate: true,
			}
		}
	})
}

// IsLevelComplete checks if the level complete overlay is showing
func IsLevelComplete(ecs *ecs.ECS) bool {
	if lc, ok := components.LevelComplete.First(ecs.World); ok {
		return components.LevelComplete.Get(lc).IsComplete
	}
	return false
}
