package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a tuning override file. Keys that are absent keep
// their current values.
type File struct {
	Game        Config            `yaml:"game"`
	Timing      TimingConfig      `yaml:"timing"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	ScreenShake ScreenShakeConfig `yaml:"screen_shake"`
	Camera      CameraConfig      `yaml:"camera"`
	Death       DeathConfig       `yaml:"death"`
	Finish      FinishConfig      `yaml:"finish"`
}

// Load overlays YAML overrides onto the global configuration and returns the
// path it read, or "" when the built-in defaults were kept.
// Search order: customPath -> ~/.hopdrop/config.yaml -> ./configs/hopdrop.yaml -> defaults
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "hopdrop.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// Apply overlays a YAML document onto the global configuration. On error the
// globals are left unchanged.
func Apply(data []byte) error {
	f := File{
		Game:        *C,
		Timing:      Timing,
		Physics:     Physics,
		Player:      Player,
		Enemy:       Enemy,
		ScreenShake: ScreenShake,
		Camera:      Camera,
		Death:       Death,
		Finish:      Finish,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.Timing.FixedDelta <= 0 {
		return fmt.Errorf("timing.fixed_delta must be positive, got %v", f.Timing.FixedDelta)
	}

	game := f.Game
	C = &game
	Timing = f.Timing
	Physics = f.Physics
	Player = f.Player
	Enemy = f.Enemy
	ScreenShake = f.ScreenShake
	Camera = f.Camera
	Death = f.Death
	Finish = f.Finish
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopdrop", filename)
}
