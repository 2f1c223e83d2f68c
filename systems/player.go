package systems

import (
	"math"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/gamemath"
	"github.com/automoto/hopdrop/shared/probe"
	"github.com/automoto/hopdrop/shared/surface"
	"github.com/automoto/hopdrop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayerInput smooths the horizontal input on the fixed tick. Left
// wins when both directions are held.
func UpdatePlayerInput(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !isActive(e) || components.Actor.Get(e).Dying {
			return
		}
		input := components.Input.Get(e)
		player := components.Player.Get(e)

		switch {
		case input.Left:
			player.MoveInput = gamemath.MoveTowards(player.MoveInput, cfg.DirectionLeft, cfg.Player.MoveStep)
		case input.Right:
			player.MoveInput = gamemath.MoveTowards(player.MoveInput, cfg.DirectionRight, cfg.Player.MoveStep)
		default:
			player.MoveInput = gamemath.MoveTowards(player.MoveInput, 0, cfg.Player.ReturnStep)
		}
	})
}

// UpdatePlayers runs the player motor once per frame.
func UpdatePlayers(ecs *ecs.ECS) {
	for _, e := range collect(ecs.World, tags.Player) {
		if !isActive(e) {
			continue
		}
		updatePlayer(ecs, e)
		input := components.Input.Get(e)
		input.PrevJump = input.Jump
	}
}

func updatePlayer(ecs *ecs.ECS, e *donburi.Entry) {
	actor := components.Actor.Get(e)
	player := components.Player.Get(e)
	if actor.Dying || player.Finishing {
		return
	}

	body := components.Body.Get(e)
	obj := components.Object.Get(e).Object
	input := components.Input.Get(e)
	space := spaceOf(ecs.World)
	dt := clockOf(ecs.World).Frame

	var contacts []surface.Contact

	if body.Velocity.Y <= 0 {
		down := probePlayerDown(space, obj)
		contacts = append(contacts, down)
		handleDownContact(ecs, e, actor, body, down)
	}

	if !actor.Grounded {
		if body.Velocity.Y > 0 {
			up := probePlayer(space, obj, probe.Up)
			contacts = append(contacts, up)
			speed := math.Max(math.Abs(body.Velocity.Y), math.Abs(body.Impact.Y))
			handleBounceContact(ecs, body, up, &player.CeilingContact, speed, cfg.Player.CeilingShakeSpeed)
		} else {
			player.CeilingContact = false
		}

		if body.Velocity.X != 0 {
			dir := probe.Right
			if body.Velocity.X < 0 {
				dir = probe.Left
			}
			side := probePlayer(space, obj, dir)
			contacts = append(contacts, side)
			speed := math.Max(math.Abs(body.Velocity.X), math.Abs(body.Impact.X))
			handleBounceContact(ecs, body, side, &player.WallContact, speed, cfg.Player.WallShakeSpeed)
		} else {
			player.WallContact = false
		}
	}

	for _, c := range contacts {
		if c.Is(tags.ResolvFinish) {
			StartFinish(ecs, e)
			return
		}
	}

	if input.JumpReleased() && actor.Grounded {
		Jump(e)
	}
	if input.Jump {
		player.HeldTime += dt
	} else {
		player.HeldTime = 0
	}

	if player.MoveInput != 0 {
		actor.Facing = gamemath.Sign(player.MoveInput)
	}

	body.Impact = dmath.Vec2{}

	if touchingHazard(obj) {
		StartDeath(ecs, e)
	}
}

// Jump launches a grounded player. The strength comes from how long jump was
// held and the direction from the smoothed input.
func Jump(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	player := components.Player.Get(e)
	body := components.Body.Get(e)

	scale := gamemath.JumpScale(player.HeldTime, cfg.Player.AdjustedJumpTime, cfg.Player.MaxJumpTime)
	body.Velocity = dmath.Vec2{}
	ApplyForce(body, JumpForce(player.MoveInput, scale))
	body.OnGround = nil
	actor.SetGrounded(false)
}

// JumpForce is the force of a jump with the given input and held-time scale.
func JumpForce(moveInput, scale float64) dmath.Vec2 {
	return dmath.NewVec2(
		moveInput*cfg.Player.AirSpeed*cfg.Player.ImpulseScale,
		scale*cfg.Player.JumpMultiplier*cfg.Player.ImpulseScale,
	)
}

// probePlayerDown checks enemies first so a stomp wins over the ground below.
func probePlayerDown(space *resolv.Space, obj *resolv.Object) surface.Contact {
	c := surface.Classify(probe.Probe(space, obj, probe.Down, cfg.Player.CheckRayLength, cfg.Player.RayInset, tags.ResolvEnemy))
	if c.Hit {
		return c
	}
	return probePlayer(space, obj, probe.Down)
}

func probePlayer(space *resolv.Space, obj *resolv.Object, dir probe.Direction) surface.Contact {
	return surface.Classify(probe.Probe(space, obj, dir, cfg.Player.CheckRayLength, cfg.Player.RayInset, tags.ResolvGround))
}

func handleDownContact(ecs *ecs.ECS, e *donburi.Entry, actor *components.ActorData, body *components.BodyData, c surface.Contact) {
	wasGrounded := actor.Grounded

	switch {
	case !c.Hit:
		actor.SetGrounded(false)
		return
	case c.Slideable:
		body.Material = components.MaterialSlide
		actor.SetGrounded(false)
		return
	}

	body.Material = components.MaterialNormal
	if !c.Solid(cfg.Player.MinRayLength) {
		actor.SetGrounded(false)
		return
	}
	if c.Is(tags.TagEnemy) && Stomp(ecs, e, entryOf(c.Object)) {
		return
	}

	actor.SetGrounded(true)
	if !wasGrounded {
		speed := math.Max(math.Abs(body.Velocity.Y), math.Abs(body.Impact.Y))
		if speed > cfg.Player.LandingShakeSpeed {
			TriggerScreenShake(ecs, cfg.ScreenShake.Duration, cfg.ScreenShake.Magnitude)
		}
	}
}

// handleBounceContact applies an airborne ceiling or wall contact. latch holds
// while the contact lasts so one contact shakes at most once.
func handleBounceContact(ecs *ecs.ECS, body *components.BodyData, c surface.Contact, latch *bool, speed, threshold float64) {
	if !c.Hit {
		*latch = false
		return
	}
	if c.Slideable {
		body.Material = components.MaterialSlide
		return
	}

	body.Material = components.MaterialBounce
	if !c.Solid(cfg.Player.MinRayLength) {
		*latch = false
		return
	}
	if !*latch && speed > threshold {
		TriggerScreenShake(ecs, cfg.ScreenShake.Duration, cfg.ScreenShake.Magnitude)
	}
	*latch = true
}

func touchingHazard(obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return false
	}
	for _, h := range check.Objects {
		if obj.X < h.X+h.W && obj.X+obj.W > h.X && obj.Y < h.Y+h.H && obj.Y+obj.H > h.Y {
			return true
		}
	}
	return false
}
