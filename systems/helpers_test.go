package systems

import (
	"testing"

	"github.com/automoto/hopdrop/archetypes"
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/leveldata"
	"github.com/automoto/hopdrop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// eventLog is a Sink that keeps everything it is sent.
type eventLog struct {
	scores  []ScoreIncrement
	shakes  []CameraShake
	players []PlayerDied
	enemies []EnemyDied
	finish  []LevelFinished
}

func (l *eventLog) ScoreIncremented(e ScoreIncrement) { l.scores = append(l.scores, e) }
func (l *eventLog) CameraShook(e CameraShake)         { l.shakes = append(l.shakes, e) }
func (l *eventLog) PlayerDied(e PlayerDied)           { l.players = append(l.players, e) }
func (l *eventLog) EnemyDied(e EnemyDied)             { l.enemies = append(l.enemies, e) }
func (l *eventLog) LevelFinished(e LevelFinished)     { l.finish = append(l.finish, e) }

type testWorld struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	events *eventLog
}

// flatLevel is a 320 wide floor, 16 high, with the player on it.
func flatLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "flat",
		Width:       320,
		Height:      480,
		TileSize:    16,
		Ground:      []leveldata.Rect{{X: 0, Y: 0, W: 320, H: 16}},
		PlayerSpawn: leveldata.Spawn{X: 100, Y: 16, Direction: 1},
	}
}

// newTestWorld builds lvl with one fixed step per frame.
func newTestWorld(t *testing.T, lvl *leveldata.Level) *testWorld {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := ecs.NewECS(donburi.NewWorld())
	archetypes.RunStats.Spawn(w)
	settings := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(settings, components.SettingsData{ScreenShake: 1, FlashEffects: 1})

	player := factory.BuildLevel(w, 0, lvl)

	clockEntry, _ := components.Clock.First(w.World)
	clock := components.Clock.Get(clockEntry)
	clock.Frame = cfg.Timing.FixedDelta

	events := &eventLog{}
	SubscribeSink(w.World, events)

	return &testWorld{ecs: w, player: player, events: events}
}

// tick runs one fixed step followed by the frame systems.
func (tw *testWorld) tick() {
	UpdatePlayerInput(tw.ecs)
	UpdateEnemyVelocity(tw.ecs)
	UpdatePhysics(tw.ecs)
	UpdateCameraBands(tw.ecs)

	UpdateEnemies(tw.ecs)
	UpdatePlayers(tw.ecs)
	UpdateDeaths(tw.ecs)
	UpdateFinish(tw.ecs)
	UpdateCamera(tw.ecs)
	UpdateObjects(tw.ecs)
	ProcessEvents(tw.ecs)
}

func (tw *testWorld) run(n int) {
	for i := 0; i < n; i++ {
		tw.tick()
	}
}

// runUntil ticks until done reports true, up to limit ticks, and returns the
// number of ticks taken or -1.
func (tw *testWorld) runUntil(limit int, done func() bool) int {
	for i := 1; i <= limit; i++ {
		tw.tick()
		if done() {
			return i
		}
	}
	return -1
}

func (tw *testWorld) input(left, right, jump bool) {
	in := components.Input.Get(tw.player)
	in.Left, in.Right, in.Jump = left, right, jump
}

func (tw *testWorld) actor(e *donburi.Entry) *components.ActorData {
	return components.Actor.Get(e)
}

func (tw *testWorld) enemies() []*donburi.Entry {
	var out []*donburi.Entry
	components.Enemy.Each(tw.ecs.World, func(e *donburi.Entry) { out = append(out, e) })
	return out
}

func (tw *testWorld) sceneRequest() components.SceneRequestData {
	return *sceneRequestOf(tw.ecs.World)
}
