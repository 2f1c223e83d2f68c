package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	MoveInput float64 // smoothed horizontal input in [-1, 1]
	HeldTime  float64 // seconds the jump control has been held
	Finishing bool
	Score     int

	// One shake per contact: set while touching, cleared when contact ends.
	CeilingContact bool
	WallContact    bool
}

var Player = donburi.NewComponentType[PlayerData]()
