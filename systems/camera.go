package systems

import (
	"math"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/shared/gamemath"
	"github.com/automoto/hopdrop/tags"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCameraBands moves the camera one band up or down on the fixed tick
// when the player leaves the current band. Reaching a band higher than any
// before awards the climb bonus.
func UpdateCameraBands(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Transition != nil {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !isActive(playerEntry) {
		return
	}
	y := components.Object.Get(playerEntry).Center().Y

	switch {
	case y > camera.Top():
		startBandTransition(camera, 1)
		if top := camera.ToY + camera.HalfHeight; top > camera.BiggestY {
			camera.BiggestY = top + 1
			AddScore(ecs, playerEntry, cfg.Camera.ClimbScore, "climb")
		}
	case y < camera.Bottom():
		startBandTransition(camera, -1)
	}
}

func startBandTransition(camera *components.CameraData, dir float64) {
	camera.FromY = camera.Position.Y
	camera.ToY = camera.Position.Y + dir*2*camera.HalfHeight
	camera.Transition = gween.New(0, 1, float32(cfg.Camera.TransitionTime), gamemath.SinerpEase)
}

// UpdateCamera advances band transitions and screen shake by the frame delta.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	dt := clockOf(ecs.World).Frame

	if camera.Transition != nil {
		progress, done := camera.Transition.Update(float32(dt))
		camera.Position.Y = gamemath.Lerp(camera.FromY, camera.ToY, float64(progress))
		if done {
			camera.Position.Y = camera.ToY
			camera.Transition = nil
		}
	}

	updateScreenShake(cameraEntry, camera, dt)
}

// updateScreenShake sets a decaying oscillating offset and removes the shake
// once its time is up.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		camera.Offset = dmath.Vec2{}
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	progress := 0.0
	if shake.Duration > 0 {
		progress = math.Max(0, (shake.Duration-shake.Elapsed)/shake.Duration)
	}
	intensity := shake.Magnitude * progress
	phase := shake.Elapsed * cfg.ScreenShake.Frequency * 2 * math.Pi

	camera.Offset = dmath.NewVec2(math.Sin(phase*1.1)*intensity, math.Cos(phase*1.3)*intensity)

	if !shake.Active() {
		camera.Offset = dmath.Vec2{}
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake scaled by the screen shake setting.
// Every request is published; a running shake is only replaced by a stronger
// one.
func TriggerScreenShake(ecs *ecs.ECS, duration, magnitude float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	magnitude *= settingsOf(ecs.World).ScreenShake

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if !shake.Active() || magnitude > shake.Magnitude {
			*shake = components.ScreenShakeData{Magnitude: magnitude, Duration: duration}
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Magnitude: magnitude,
			Duration:  duration,
		})
	}

	CameraShakeEvent.Publish(ecs.World, CameraShake{Duration: duration, Magnitude: magnitude})
}
