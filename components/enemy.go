package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Direction float64 // -1 or +1
	Speed     float64
	// Culled enemies are outside the camera band and skip their motor.
	Culled bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
