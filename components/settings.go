package components

import "github.com/yohamta/donburi"

// SettingsData is a snapshot of the effect intensity settings.
type SettingsData struct {
	ScreenShake  float64
	FlashEffects float64
}

var Settings = donburi.NewComponentType[SettingsData]()
