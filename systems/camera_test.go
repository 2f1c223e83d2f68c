package systems

import (
	"testing"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func cameraOf(tw *testWorld) *components.CameraData {
	e, _ := components.Camera.First(tw.ecs.World)
	return components.Camera.Get(e)
}

func (tw *testWorld) movePlayer(y float64) {
	obj := components.Object.Get(tw.player)
	obj.Y = y
	obj.Update()
}

func (tw *testWorld) finishTransition() {
	for i := 0; i < 100 && cameraOf(tw).Transition != nil; i++ {
		UpdateCamera(tw.ecs)
	}
}

func TestCameraStartsOnSpawnBand(t *testing.T) {
	tw := newTestWorld(t, flatLevel())
	camera := cameraOf(tw)

	assert.Equal(t, 120.0, camera.Position.Y)
	assert.Equal(t, 160.0, camera.Position.X)
	assert.True(t, camera.InBand(components.Object.Get(tw.player).Center().Y))
}

func TestCameraClimbBonusOncePerBand(t *testing.T) {
	tw := newTestWorld(t, flatLevel())
	camera := cameraOf(tw)
	score := func() int { return components.Player.Get(tw.player).Score }

	tw.movePlayer(300)
	UpdateCameraBands(tw.ecs)
	require.NotNil(t, camera.Transition)
	assert.Equal(t, cfg.Camera.ClimbScore, score())

	// No new band while the transition runs.
	UpdateCameraBands(tw.ecs)
	assert.Equal(t, cfg.Camera.ClimbScore, score())

	tw.finishTransition()
	assert.Equal(t, 360.0, camera.Position.Y)

	tw.movePlayer(100)
	UpdateCameraBands(tw.ecs)
	tw.finishTransition()
	assert.Equal(t, 120.0, camera.Position.Y)

	tw.movePlayer(300)
	UpdateCameraBands(tw.ecs)
	tw.finishTransition()
	assert.Equal(t, cfg.Camera.ClimbScore, score(), "revisited band pays nothing")

	tw.movePlayer(540)
	UpdateCameraBands(tw.ecs)
	tw.finishTransition()
	assert.Equal(t, 2*cfg.Camera.ClimbScore, score())

	ProcessEvents(tw.ecs)
	assert.Len(t, tw.events.scores, 2)
}

func TestScreenShakeScalingAndReplacement(t *testing.T) {
	tw := newTestWorld(t, flatLevel())
	settings, _ := components.Settings.First(tw.ecs.World)
	components.Settings.Get(settings).ScreenShake = 0.5
	cameraEntry, _ := components.Camera.First(tw.ecs.World)

	TriggerScreenShake(tw.ecs, 0.25, 4)
	require.True(t, cameraEntry.HasComponent(components.ScreenShake))
	assert.Equal(t, 2.0, components.ScreenShake.Get(cameraEntry).Magnitude)

	TriggerScreenShake(tw.ecs, 0.25, 2)
	assert.Equal(t, 2.0, components.ScreenShake.Get(cameraEntry).Magnitude, "weaker shake is ignored")

	TriggerScreenShake(tw.ecs, 0.5, 10)
	shake := components.ScreenShake.Get(cameraEntry)
	assert.Equal(t, 5.0, shake.Magnitude)
	assert.Equal(t, 0.5, shake.Duration)

	ProcessEvents(tw.ecs)
	assert.Len(t, tw.events.shakes, 3, "every request is published")

	UpdateCamera(tw.ecs)
	assert.NotEqual(t, dmath.Vec2{}, cameraOf(tw).Offset)

	for i := 0; i < 40; i++ {
		UpdateCamera(tw.ecs)
	}
	assert.False(t, cameraEntry.HasComponent(components.ScreenShake))
	assert.Equal(t, dmath.Vec2{}, cameraOf(tw).Offset)
}
