package systems

import (
	"math"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/gamemath"
	"github.com/automoto/hopdrop/tags"
	"github.com/solarlune/resolv"
)

// contactEpsilon absorbs float drift when comparing touching edges.
const contactEpsilon = 0.01

func isSlope(o *resolv.Object) bool {
	return o.HasTags(tags.Slope45UpRight, tags.Slope45UpLeft)
}

// bounce applies the body's material to a blocked velocity component. Slow
// contacts come to rest so a bouncy body can settle.
func bounce(body *components.BodyData, v float64) float64 {
	if body.Material == components.MaterialBounce && math.Abs(v) > cfg.Physics.MinBounceSpeed {
		return -v * cfg.Physics.Bounciness
	}
	return 0
}

// resolveHorizontal moves the object by dx, stopping at the first
// solid face in the way.
func resolveHorizontal(body *components.BodyData, object *resolv.Object, dx float64) {
	body.BlockedX = 0
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, body.Solids...)
	if check == nil {
		object.X += dx
		return
	}

	allowed := dx
	blocked := false
	for _, solid := range check.Objects {
		if !blocksHorizontally(object, solid, dx) {
			continue
		}
		if dx > 0 {
			if gap := solid.X - (object.X + object.W); gap >= -contactEpsilon && gap < allowed {
				allowed = math.Max(gap, 0)
				blocked = true
			}
		} else {
			if gap := (solid.X + solid.W) - object.X; gap <= contactEpsilon && gap > allowed {
				allowed = math.Min(gap, 0)
				blocked = true
			}
		}
	}

	object.X += allowed
	if blocked {
		body.Impact.X = body.Velocity.X
		body.BlockedX = gamemath.Sign(dx)
		body.Velocity.X = bounce(body, body.Velocity.X)
	}
}

// blocksHorizontally reports whether solid is a wall for a move of dx. A ramp
// is only a wall on its tall side; its slope is climbed by the vertical pass.
func blocksHorizontally(object, solid *resolv.Object, dx float64) bool {
	if object.Y >= solid.Y+solid.H-contactEpsilon || object.Y+object.H <= solid.Y+contactEpsilon {
		return false
	}
	if !isSlope(solid) {
		return true
	}
	if object.Y >= solid.Y+solid.H-1 {
		return false
	}
	if solid.HasTags(tags.Slope45UpRight) {
		return dx < 0
	}
	return dx > 0
}

// resolveVertical moves the object by dy. Falling onto a block or into a
// ramp lands the body; rising into a block stops it at the ceiling.
func resolveVertical(body *components.BodyData, object *resolv.Object, dy float64) {
	body.OnGround = nil

	checkDistance := dy
	if dy <= 0 {
		checkDistance--
	}

	check := object.Check(0, checkDistance, body.Solids...)
	if check == nil {
		object.Y += dy
		return
	}

	if dy > 0 {
		resolveCeiling(body, object, check.Objects, dy)
		return
	}
	resolveFloor(body, object, check.Objects, dy)
}

func resolveCeiling(body *components.BodyData, object *resolv.Object, solids []*resolv.Object, dy float64) {
	allowed := dy
	blocked := false
	for _, solid := range solids {
		if isSlope(solid) || !overlapsX(object, solid) {
			continue
		}
		if gap := solid.Y - (object.Y + object.H); gap >= -contactEpsilon && gap < allowed {
			allowed = math.Max(gap, 0)
			blocked = true
		}
	}

	object.Y += allowed
	if blocked {
		body.Impact.Y = body.Velocity.Y
		body.Velocity.Y = bounce(body, body.Velocity.Y)
	}
}

func resolveFloor(body *components.BodyData, object *resolv.Object, solids []*resolv.Object, dy float64) {
	floor := math.Inf(-1)
	var ground *resolv.Object
	centerX := object.X + object.W/2

	for _, solid := range solids {
		var top float64
		if isSlope(solid) {
			if centerX < solid.X || centerX > solid.X+solid.W || object.Y < solid.Y-contactEpsilon {
				continue
			}
			top = gamemath.SlopeSurfaceY(solid, centerX, tags.Slope45UpRight, tags.Slope45UpLeft)
		} else {
			if !overlapsX(object, solid) {
				continue
			}
			top = solid.Y + solid.H
			if top > object.Y+contactEpsilon {
				continue
			}
		}
		if top > floor {
			floor = top
			ground = solid
		}
	}

	if ground == nil || object.Y+dy > floor {
		object.Y += dy
		return
	}

	object.Y = floor
	body.OnGround = ground
	body.Impact.Y = body.Velocity.Y
	body.Velocity.Y = bounce(body, body.Velocity.Y)
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W-contactEpsilon && a.X+a.W > b.X+contactEpsilon
}
