package systems

import (
	"testing"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/leveldata"
	"github.com/automoto/hopdrop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHazardKillsPlayer(t *testing.T) {
	lvl := flatLevel()
	lvl.Hazards = []leveldata.Rect{{X: 80, Y: 16, W: 40, H: 8}}
	tw := newTestWorld(t, lvl)

	tw.tick()

	assert.True(t, tw.actor(tw.player).Dying)
	assert.True(t, tw.player.HasComponent(components.Death))
	assert.Len(t, tw.events.players, 1)
}

func TestDeathStagesInOrder(t *testing.T) {
	tw := newTestWorld(t, flatLevel())
	require.True(t, StartDeath(tw.ecs, tw.player))
	assert.False(t, StartDeath(tw.ecs, tw.player), "dying is terminal")

	death := components.Death.Get(tw.player)
	var stages []components.DeathStage
	for i := 0; i < 120 && death.Stage != components.DeathDone; i++ {
		if n := len(stages); n == 0 || stages[n-1] != death.Stage {
			stages = append(stages, death.Stage)
		}
		tw.tick()
	}

	assert.Equal(t, []components.DeathStage{
		components.DeathFadeRed,
		components.DeathFadeWhite,
		components.DeathFadeClear,
		components.DeathHold,
	}, stages)
	assert.Equal(t, components.DeathDone, death.Stage)
	assert.Equal(t, cfg.Death.Clear, components.Tint.Get(tw.player).Color)
	assert.True(t, tw.sceneRequest().Activate)
}

func TestFlashIntensityShortensFades(t *testing.T) {
	tw := newTestWorld(t, flatLevel())
	settings, _ := components.Settings.First(tw.ecs.World)
	components.Settings.Get(settings).FlashEffects = 2

	require.True(t, StartDeath(tw.ecs, tw.player))
	death := components.Death.Get(tw.player)

	fades := tw.runUntil(60, func() bool { return death.Stage == components.DeathHold })
	require.Positive(t, fades)

	full := (cfg.Death.RedTime + cfg.Death.WhiteTime + cfg.Death.ClearTime) / cfg.Timing.FixedDelta
	assert.Less(t, float64(fades), full)
}

func TestEnemyDeathDeactivatesWithoutReload(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []leveldata.Spawn{{X: 250, Y: 16, Direction: 1}}
	tw := newTestWorld(t, lvl)
	enemy := tw.enemies()[0]

	require.True(t, StartDeath(tw.ecs, enemy))
	tw.run(20)

	assert.True(t, enemy.HasComponent(tags.Inactive))
	assert.False(t, tw.sceneRequest().Pending)
	assert.Equal(t, 0, runStatsOf(tw.ecs.World).Deaths)
}

func TestFinishSequence(t *testing.T) {
	lvl := flatLevel()
	lvl.Ground = nil
	lvl.Finishes = []leveldata.Rect{{X: 0, Y: 0, W: 320, H: 16}}
	tw := newTestWorld(t, lvl)

	tw.run(2)
	require.True(t, components.Player.Get(tw.player).Finishing)
	assert.True(t, IsLevelComplete(tw.ecs))
	assert.Len(t, tw.events.finish, 1)
	assert.False(t, StartDeath(tw.ecs, tw.player), "a finishing player cannot die")

	activated := tw.runUntil(400, func() bool { return tw.sceneRequest().Activate })
	require.Positive(t, activated)
	assert.InDelta(t, cfg.Finish.Delay, float64(activated)*cfg.Timing.FixedDelta, 3*cfg.Timing.FixedDelta)

	req := tw.sceneRequest()
	assert.Equal(t, components.SceneRequestData{Index: cfg.Finish.SceneIndex, Pending: true, Activate: true}, req)
	assert.Len(t, tw.events.finish, 1)
	assert.Equal(t, 1, runStatsOf(tw.ecs.World).Finishes)
}

func TestDeathIgnoresInactive(t *testing.T) {
	tw := newTestWorld(t, flatLevel())
	Deactivate(tw.ecs.World, tw.player)

	assert.False(t, StartDeath(tw.ecs, tw.player))
	assert.False(t, StartFinish(tw.ecs, tw.player))
}
