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

func TestStompAwardsOnce(t *testing.T) {
	lvl := flatLevel()
	lvl.PlayerSpawn.Y = 40
	lvl.Enemies = []leveldata.Spawn{{X: 100, Y: 16, Direction: 1}}
	tw := newTestWorld(t, lvl)
	enemy := tw.enemies()[0]

	tw.run(60)

	assert.Equal(t, cfg.Player.StompScore, components.Player.Get(tw.player).Score)
	assert.Len(t, tw.events.scores, 1)
	assert.Equal(t, "stomp", tw.events.scores[0].Reason)
	assert.Len(t, tw.events.enemies, 1)

	assert.True(t, enemy.HasComponent(tags.Inactive), "enemy is gone after its fade")
	assert.False(t, tw.actor(tw.player).Dying)
	assert.True(t, tw.actor(tw.player).Grounded)
}

func TestStompIsIdempotent(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []leveldata.Spawn{{X: 200, Y: 16, Direction: 1}}
	tw := newTestWorld(t, lvl)
	enemy := tw.enemies()[0]

	assert.True(t, Stomp(tw.ecs, tw.player, enemy))
	assert.False(t, Stomp(tw.ecs, tw.player, enemy))
	ProcessEvents(tw.ecs)

	assert.Equal(t, cfg.Player.StompScore, components.Player.Get(tw.player).Score)
	assert.Len(t, tw.events.enemies, 1)
}

func TestEnemySideKillsPlayer(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []leveldata.Spawn{{X: 160, Y: 16, Direction: -1}}
	tw := newTestWorld(t, lvl)

	killed := tw.runUntil(200, func() bool { return tw.actor(tw.player).Dying })
	require.Positive(t, killed)

	require.Len(t, tw.events.players, 1)
	req := tw.sceneRequest()
	assert.True(t, req.Pending)
	assert.False(t, req.Activate, "reload waits for the death sequence")
	assert.Equal(t, cfg.Finish.SceneIndex, req.Index)
	assert.Equal(t, 1, runStatsOf(tw.ecs.World).Deaths)

	activated := tw.runUntil(200, func() bool { return tw.sceneRequest().Activate })
	require.Positive(t, activated)

	seconds := float64(activated) * cfg.Timing.FixedDelta
	minimum := cfg.Death.RedTime + cfg.Death.WhiteTime + cfg.Death.ClearTime + cfg.Death.HoldTime
	assert.GreaterOrEqual(t, seconds, minimum-2*cfg.Timing.FixedDelta)
	assert.Less(t, seconds, minimum+0.2)
	assert.True(t, tw.player.HasComponent(tags.Inactive))
	assert.Len(t, tw.events.players, 1)
}

func TestEnemyTurnsAtLedge(t *testing.T) {
	lvl := flatLevel()
	lvl.Ground = []leveldata.Rect{
		{X: 0, Y: 0, W: 120, H: 16},
		{X: 200, Y: 0, W: 120, H: 16},
	}
	lvl.PlayerSpawn = leveldata.Spawn{X: 260, Y: 16, Direction: 1}
	lvl.Enemies = []leveldata.Spawn{{X: 100, Y: 16, Direction: 1}}
	tw := newTestWorld(t, lvl)
	enemy := tw.enemies()[0]
	obj := components.Object.Get(enemy)

	maxRight := 0.0
	for i := 0; i < 80; i++ {
		tw.tick()
		if r := obj.X + obj.W; r > maxRight {
			maxRight = r
		}
	}

	assert.Equal(t, cfg.DirectionLeft, components.Enemy.Get(enemy).Direction)
	assert.LessOrEqual(t, maxRight, 121.0)
	assert.InDelta(t, 16.0, obj.Y, 1e-9, "enemy never leaves the ground")
}

func TestEnemyTurnsAtWall(t *testing.T) {
	lvl := flatLevel()
	lvl.Ground = append(lvl.Ground, leveldata.Rect{X: 200, Y: 16, W: 16, H: 64})
	lvl.PlayerSpawn = leveldata.Spawn{X: 40, Y: 16, Direction: 1}
	lvl.Enemies = []leveldata.Spawn{{X: 150, Y: 16, Direction: 1}}
	tw := newTestWorld(t, lvl)
	enemy := tw.enemies()[0]
	obj := components.Object.Get(enemy)

	turned := tw.runUntil(200, func() bool {
		return components.Enemy.Get(enemy).Direction == cfg.DirectionLeft
	})
	require.Positive(t, turned)
	assert.LessOrEqual(t, obj.X+obj.W, 200.0+contactEpsilon)
	assert.Equal(t, cfg.DirectionLeft, tw.actor(enemy).Facing)
}

func TestEnemyCulledOutsideBand(t *testing.T) {
	lvl := flatLevel()
	lvl.Ground = append(lvl.Ground, leveldata.Rect{X: 0, Y: 384, W: 320, H: 16})
	lvl.Enemies = []leveldata.Spawn{{X: 100, Y: 400, Direction: 1}}
	tw := newTestWorld(t, lvl)
	enemy := tw.enemies()[0]
	startX := components.Object.Get(enemy).X

	tw.run(10)

	assert.True(t, components.Enemy.Get(enemy).Culled)
	assert.Zero(t, components.Body.Get(enemy).Velocity.X)
	// Only the first fixed step, before the first cull, moves it.
	assert.InDelta(t, startX, components.Object.Get(enemy).X, 1)
}
