package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathStage is a step of the death sequence.
type DeathStage int

const (
	DeathFadeRed DeathStage = iota
	DeathFadeWhite
	DeathFadeClear
	DeathHold // player only: wait before activating the reload
	DeathDone
)

// DeathData marks an entity that has started its death sequence.
type DeathData struct {
	Stage     DeathStage
	Intensity float64 // flash effects setting captured at start
	From, To  color.RGBA
	Tween     *gween.Tween // 0..1 progress of the current fade
	Elapsed   float64      // seconds spent in DeathHold
}

var Death = donburi.NewComponentType[DeathData]()
