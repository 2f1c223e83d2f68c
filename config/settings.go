package config

// Persisted setting keys.
const (
	SettingScreenShake  = "ScreenShake"
	SettingFlashEffects = "FlashEffects"
	SettingJumpKey      = "JumpKey"
	SettingLeftKey      = "LeftKey"
	SettingRightKey     = "RightKey"
)

// SettingsConfig contains settings store configuration
type SettingsConfig struct {
	AppName string
	ItemKey string
	// Intensity used when a stored value is missing or not positive.
	DefaultIntensity float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:          "hopdrop",
		ItemKey:          "settings",
		DefaultIntensity: 1.0,
	}
}
