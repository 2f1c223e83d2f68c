package components

import "github.com/yohamta/donburi"

// FinishData is attached to a player that reached the finish.
type FinishData struct {
	Elapsed   float64
	Requested bool // reload already requested
}

var Finish = donburi.NewComponentType[FinishData]()
