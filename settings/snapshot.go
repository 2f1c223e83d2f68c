package settings

import (
	"math"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
)

// Snapshot is the settings state read at world build. ScreenShake is never
// negative and FlashEffects, a divisor of fade times, is always positive.
type Snapshot struct {
	ScreenShake  float64
	FlashEffects float64

	// Key names as understood by ebiten.Key.UnmarshalText; empty means the
	// default binding.
	Keys map[string]string
}

// Load reads a snapshot. Unset intensities fall back to the default
// intensity. A stored ScreenShake of 0 turns shaking off.
func Load(store Store) Snapshot {
	snap := Snapshot{
		ScreenShake:  cfg.Settings.DefaultIntensity,
		FlashEffects: cfg.Settings.DefaultIntensity,
		Keys:         make(map[string]string),
	}
	if store == nil {
		return snap
	}

	snap.ScreenShake = math.Max(0, store.GetFloat(cfg.SettingScreenShake, cfg.Settings.DefaultIntensity))
	snap.FlashEffects = intensity(store, cfg.SettingFlashEffects)

	for _, b := range cfg.Input.Bindings {
		if name := store.GetString(b.SettingKey, ""); name != "" {
			snap.Keys[b.SettingKey] = name
		}
	}
	return snap
}

func intensity(store Store, key string) float64 {
	v := store.GetFloat(key, 0)
	if v <= 0 {
		return cfg.Settings.DefaultIntensity
	}
	return v
}

// Component converts the snapshot into the world's settings component.
func (s Snapshot) Component() components.SettingsData {
	return components.SettingsData{
		ScreenShake:  s.ScreenShake,
		FlashEffects: s.FlashEffects,
	}
}
