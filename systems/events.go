package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ScoreIncrement is published whenever points are awarded.
type ScoreIncrement struct {
	Player *donburi.Entry
	Amount int
	Total  int
	Reason string
}

// CameraShake is published for every accepted shake request, already scaled
// by the screen shake setting.
type CameraShake struct {
	Duration  float64
	Magnitude float64
}

type PlayerDied struct {
	Player *donburi.Entry
	Score  int
}

type EnemyDied struct {
	Enemy *donburi.Entry
}

type LevelFinished struct {
	Player *donburi.Entry
	Score  int
	Level  int
}

var (
	ScoreIncrementEvent = events.NewEventType[ScoreIncrement]()
	CameraShakeEvent    = events.NewEventType[CameraShake]()
	PlayerDiedEvent     = events.NewEventType[PlayerDied]()
	EnemyDiedEvent      = events.NewEventType[EnemyDied]()
	LevelFinishedEvent  = events.NewEventType[LevelFinished]()
)

// Sink receives gameplay events once per frame, in publish order per type.
type Sink interface {
	ScoreIncremented(ScoreIncrement)
	CameraShook(CameraShake)
	PlayerDied(PlayerDied)
	EnemyDied(EnemyDied)
	LevelFinished(LevelFinished)
}

// SubscribeSink forwards every event type of w to sink.
func SubscribeSink(w donburi.World, sink Sink) {
	ScoreIncrementEvent.Subscribe(w, func(_ donburi.World, e ScoreIncrement) { sink.ScoreIncremented(e) })
	CameraShakeEvent.Subscribe(w, func(_ donburi.World, e CameraShake) { sink.CameraShook(e) })
	PlayerDiedEvent.Subscribe(w, func(_ donburi.World, e PlayerDied) { sink.PlayerDied(e) })
	EnemyDiedEvent.Subscribe(w, func(_ donburi.World, e EnemyDied) { sink.EnemyDied(e) })
	LevelFinishedEvent.Subscribe(w, func(_ donburi.World, e LevelFinished) { sink.LevelFinished(e) })
}

// ProcessEvents dispatches queued events to their subscribers.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
