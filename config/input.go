package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key binding for an action. SettingKey names
// the persisted setting that may override the default key. Keys are ebiten key
// names so the simulation packages stay free of the window toolkit.
type InputBinding struct {
	SettingKey string
	Default    string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {SettingKey: SettingLeftKey, Default: "ArrowLeft"},
			ActionMoveRight: {SettingKey: SettingRightKey, Default: "ArrowRight"},
			ActionJump:      {SettingKey: SettingJumpKey, Default: "Space"},
		},
	}
}
