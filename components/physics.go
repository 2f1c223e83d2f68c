package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Material selects how a body responds to contacts.
type Material int

const (
	MaterialNormal Material = iota // ground friction, no restitution
	MaterialBounce                 // restitution on every contact
	MaterialSlide                  // frictionless, accelerates down ramps
)

func (m Material) String() string {
	switch m {
	case MaterialBounce:
		return "bounce"
	case MaterialSlide:
		return "slide"
	default:
		return "normal"
	}
}

// BodyData is the velocity-controlled rigid body stepped on the fixed tick.
type BodyData struct {
	Velocity     math.Vec2
	LastForce    math.Vec2 // most recent force applied through ApplyForce
	Mass         float64
	GravityScale float64
	Material     Material
	Solids       []string // resolv tags this body cannot pass through

	OnGround *resolv.Object
	// Impact holds the speed along each axis at the most recent blocked move.
	Impact   math.Vec2
	BlockedX float64 // -1/+1 when the last horizontal move was blocked, else 0
}

var Body = donburi.NewComponentType[BodyData]()
