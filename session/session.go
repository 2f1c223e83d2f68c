// Package session drives a hopdrop world: it owns the tick scheduler, builds
// worlds from level data and performs scene reloads.
package session

import (
	"errors"
	"fmt"

	"github.com/automoto/hopdrop/archetypes"
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/settings"
	"github.com/automoto/hopdrop/shared/leveldata"
	"github.com/automoto/hopdrop/storage"
	"github.com/automoto/hopdrop/systems"
	"github.com/automoto/hopdrop/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoLevels = errors.New("session: no levels")

// ScoreRecorder stores the outcome of a run. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(level string, score int, outcome storage.Outcome) (int64, error)
}

// Input is the player's held keys for the next frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

type Options struct {
	Levels []*leveldata.Level
	// StartLevel is the index of the first world to build.
	StartLevel int

	// Optional collaborators.
	Settings settings.Store
	Recorder ScoreRecorder
	Sink     systems.Sink
	Logger   *log.Logger
	// OnWorld is called for every new world before its first step, for
	// example to register renderers.
	OnWorld func(*ecs.ECS)
}

// Session runs fixed steps of config.Timing.FixedDelta and one frame tick
// per Step call. It is not safe for concurrent use.
type Session struct {
	opts   Options
	logger *log.Logger

	ecs    *ecs.ECS
	fixed  []ecs.System
	player *donburi.Entry
	index  int

	input       Input
	accumulator float64
	reloads     int
}

// New builds the world of opts.StartLevel.
func New(opts Options) (*Session, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{opts: opts, logger: logger}
	if err := s.Load(opts.StartLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the current world with a fresh one for the level at index.
// Entities tagged Persistent carry over with their run stats and settings.
func (s *Session) Load(index int) error {
	if index < 0 || index >= len(s.opts.Levels) {
		return fmt.Errorf("session: level index %d out of range [0,%d)", index, len(s.opts.Levels))
	}
	lvl := s.opts.Levels[index]

	world := ecs.NewECS(donburi.NewWorld())
	s.addSystems(world)

	if s.ecs != nil {
		n := carryPersistent(s.ecs, world)
		s.logger.Debug("carried persistent entities", "count", n)
	}

	runStats, ok := components.RunStats.First(world.World)
	if !ok {
		runStats = archetypes.RunStats.Spawn(world)
	}
	stats := components.RunStats.Get(runStats)
	stats.Attempts++
	attempt := stats.Attempts

	// Settings carry over but are re-read so a changed store takes effect.
	settingsEntry, ok := components.Settings.First(world.World)
	if !ok {
		settingsEntry = archetypes.Settings.Spawn(world)
	}
	components.Settings.SetValue(settingsEntry, settings.Load(s.opts.Settings).Component())

	s.ecs = world
	s.index = index
	s.accumulator = 0
	s.player = factory.BuildLevel(world, index, lvl)

	systems.SubscribeSink(world.World, &recorder{session: s})
	if s.opts.Sink != nil {
		systems.SubscribeSink(world.World, s.opts.Sink)
	}
	if s.opts.OnWorld != nil {
		s.opts.OnWorld(world)
	}

	s.logger.Info("level loaded", "index", index, "name", lvl.Name, "attempt", attempt)
	return nil
}

// addSystems registers the frame systems on w and rebuilds the fixed list.
func (s *Session) addSystems(w *ecs.ECS) {
	s.fixed = []ecs.System{
		systems.UpdatePlayerInput,
		systems.UpdateEnemyVelocity,
		systems.UpdatePhysics,
		systems.UpdateCameraBands,
	}

	w.AddSystem(systems.UpdateEnemies)
	w.AddSystem(systems.UpdatePlayers)
	w.AddSystem(systems.UpdateDeaths)
	w.AddSystem(systems.UpdateFinish)
	w.AddSystem(systems.UpdateCamera)
	w.AddSystem(systems.UpdateObjects)
	w.AddSystem(systems.ProcessEvents)
}

// SetInput sets the keys seen by the player from the next Step on.
func (s *Session) SetInput(in Input) {
	s.input = in
}

// Step advances the world by one frame of frameDelta seconds: zero or more
// fixed steps, then the frame systems. A scene reload whose activation gate
// opened during the frame is performed at the end.
func (s *Session) Step(frameDelta float64) error {
	if frameDelta < 0 {
		frameDelta = 0
	}
	s.applyInput()

	clock := s.clock()
	clock.Frame = frameDelta
	clock.Fixed = cfg.Timing.FixedDelta

	s.accumulator += frameDelta
	steps := 0
	for s.accumulator >= cfg.Timing.FixedDelta && steps < cfg.Timing.MaxSteps {
		for _, sys := range s.fixed {
			sys(s.ecs)
		}
		s.accumulator -= cfg.Timing.FixedDelta
		steps++
	}
	if steps == cfg.Timing.MaxSteps && s.accumulator >= cfg.Timing.FixedDelta {
		// Too far behind; drop the backlog rather than spiral.
		s.logger.Debug("dropping fixed steps", "backlog", s.accumulator)
		s.accumulator = 0
	}

	clock.Elapsed += frameDelta
	s.ecs.Update()

	if req := s.sceneRequest(); req != nil && req.Pending && req.Activate {
		s.reloads++
		s.logger.Info("scene reload", "index", req.Index)
		return s.Load(req.Index)
	}
	return nil
}

func (s *Session) applyInput() {
	if s.player == nil || !s.player.Valid() {
		return
	}
	in := components.Input.Get(s.player)
	in.Left = s.input.Left
	in.Right = s.input.Right
	in.Jump = s.input.Jump
}

func (s *Session) clock() *components.ClockData {
	e, _ := components.Clock.First(s.ecs.World)
	return components.Clock.Get(e)
}

func (s *Session) sceneRequest() *components.SceneRequestData {
	if e, ok := components.SceneRequest.First(s.ecs.World); ok {
		return components.SceneRequest.Get(e)
	}
	return nil
}

// RefreshSettings re-reads the settings store into the running world.
func (s *Session) RefreshSettings() {
	if e, ok := components.Settings.First(s.ecs.World); ok {
		components.Settings.SetValue(e, settings.Load(s.opts.Settings).Component())
	}
}

// ECS returns the current world. It changes on every reload.
func (s *Session) ECS() *ecs.ECS { return s.ecs }

// Player returns the current world's player entry.
func (s *Session) Player() *donburi.Entry { return s.player }

// LevelIndex returns the index of the level being played.
func (s *Session) LevelIndex() int { return s.index }

// Level returns the level being played.
func (s *Session) Level() *leveldata.Level { return s.opts.Levels[s.index] }

// Reloads counts scene reloads performed by Step.
func (s *Session) Reloads() int { return s.reloads }

// Score returns the current player's score.
func (s *Session) Score() int {
	if s.player == nil || !s.player.Valid() {
		return 0
	}
	return components.Player.Get(s.player).Score
}

// Stats returns the run statistics carried across reloads.
func (s *Session) Stats() components.RunStatsData {
	if e, ok := components.RunStats.First(s.ecs.World); ok {
		return *components.RunStats.Get(e)
	}
	return components.RunStatsData{}
}
