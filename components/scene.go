package components

import "github.com/yohamta/donburi"

// SceneRequestData is a pending scene load. The load happens only once
// Activate is set; until then the current world keeps running.
type SceneRequestData struct {
	Index    int
	Pending  bool
	Activate bool
}

var SceneRequest = donburi.NewComponentType[SceneRequestData]()

// ClockData holds the deltas of the tick being processed.
type ClockData struct {
	Frame   float64 // seconds since the previous frame tick
	Fixed   float64 // fixed step length
	Elapsed float64 // total simulated seconds in this world
}

var Clock = donburi.NewComponentType[ClockData]()

// RunStatsData survives scene reloads.
type RunStatsData struct {
	Attempts  int
	Deaths    int
	Finishes  int
	BestScore int
}

var RunStats = donburi.NewComponentType[RunStatsData]()
