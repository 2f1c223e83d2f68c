package scenes

import (
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/settings"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings resolves each action's key from the settings snapshot. Names
// that ebiten does not know fall back to the default key.
func KeyBindings(snap settings.Snapshot) map[cfg.ActionID]ebiten.Key {
	keys := make(map[cfg.ActionID]ebiten.Key, len(cfg.Input.Bindings))
	for action, b := range cfg.Input.Bindings {
		if k, ok := parseKey(snap.Keys[b.SettingKey]); ok {
			keys[action] = k
			continue
		}
		if k, ok := parseKey(b.Default); ok {
			keys[action] = k
		}
	}
	return keys
}

func parseKey(name string) (ebiten.Key, bool) {
	if name == "" {
		return 0, false
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return k, true
}
