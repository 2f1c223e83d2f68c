package systems

import (
	"image/color"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/gamemath"
	"github.com/automoto/hopdrop/tags"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// StartDeath begins the death sequence of an actor. It is a no-op for an
// actor that is already dying, inactive, or a player who is finishing.
//
// A dying player requests a reload of the first scene right away, but the
// reload is only activated once the fade and hold have played out.
func StartDeath(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !isActive(e) || !e.HasComponent(components.Actor) {
		return false
	}
	actor := components.Actor.Get(e)
	if actor.Dying {
		return false
	}
	isPlayer := e.HasComponent(tags.Player)
	if isPlayer && components.Player.Get(e).Finishing {
		return false
	}

	actor.Dying = true
	if e.HasComponent(components.Body) {
		components.Body.Get(e).Velocity = dmath.Vec2{}
	}

	intensity := settingsOf(ecs.World).FlashEffects
	if intensity <= 0 {
		intensity = cfg.Settings.DefaultIntensity
	}

	from := cfg.Player.Color
	if e.HasComponent(components.Tint) {
		from = components.Tint.Get(e).Color
	}

	e.AddComponent(components.Death)
	components.Death.Set(e, &components.DeathData{
		Stage:     components.DeathFadeRed,
		Intensity: intensity,
		From:      from,
		To:        cfg.Death.Red,
		Tween:     newFade(cfg.Death.RedTime / intensity),
	})

	if isPlayer {
		if req := sceneRequestOf(ecs.World); req != nil {
			req.Index = cfg.Finish.SceneIndex
			req.Pending = true
			req.Activate = false
		}
		if stats := runStatsOf(ecs.World); stats != nil {
			stats.Deaths++
		}
		PlayerDiedEvent.Publish(ecs.World, PlayerDied{
			Player: e,
			Score:  components.Player.Get(e).Score,
		})
	} else {
		EnemyDiedEvent.Publish(ecs.World, EnemyDied{Enemy: e})
	}
	return true
}

// UpdateDeaths advances every running death sequence by the frame delta.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Frame

	for _, e := range collect(ecs.World, components.Death) {
		if !isActive(e) {
			continue
		}
		death := components.Death.Get(e)

		switch death.Stage {
		case components.DeathFadeRed, components.DeathFadeWhite, components.DeathFadeClear:
			progress, done := death.Tween.Update(float32(dt))
			if e.HasComponent(components.Tint) {
				components.Tint.Get(e).Color = lerpColor(death.From, death.To, float64(progress))
			}
			if done {
				nextDeathStage(ecs.World, e, death)
			}
		case components.DeathHold:
			death.Elapsed += dt
			if death.Elapsed >= cfg.Death.HoldTime {
				death.Stage = components.DeathDone
				Deactivate(ecs.World, e)
				if req := sceneRequestOf(ecs.World); req != nil && req.Pending {
					req.Activate = true
				}
			}
		}
	}
}

func nextDeathStage(w donburi.World, e *donburi.Entry, death *components.DeathData) {
	death.From = death.To

	switch death.Stage {
	case components.DeathFadeRed:
		death.Stage = components.DeathFadeWhite
		death.To = cfg.Death.White
		death.Tween = newFade(cfg.Death.WhiteTime / death.Intensity)
	case components.DeathFadeWhite:
		death.Stage = components.DeathFadeClear
		death.To = cfg.Death.Clear
		death.Tween = newFade(cfg.Death.ClearTime / death.Intensity)
	case components.DeathFadeClear:
		death.Tween = nil
		if e.HasComponent(tags.Player) {
			death.Stage = components.DeathHold
			return
		}
		death.Stage = components.DeathDone
		Deactivate(w, e)
	}
}

func newFade(duration float64) *gween.Tween {
	return gween.New(0, 1, float32(duration), gamemath.SmootherstepEase)
}

func lerpColor(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(gamemath.Clamp(gamemath.Lerp(float64(a), float64(b), t), 0, 255))
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
