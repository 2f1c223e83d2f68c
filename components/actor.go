package components

import "github.com/yohamta/donburi"

// ActorData is the shared state of anything with a motor.
type ActorData struct {
	Facing   float64
	Grounded bool
	Airborne bool
	// Dying is terminal: once set the motor and its collision handling stop.
	Dying bool
}

// SetGrounded keeps grounded and airborne mutually exclusive.
func (a *ActorData) SetGrounded(grounded bool) {
	a.Grounded = grounded
	a.Airborne = !grounded
}

var Actor = donburi.NewComponentType[ActorData]()
