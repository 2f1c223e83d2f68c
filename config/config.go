package config

import "image/color"

// Unit is the size in pixels of one world unit (one tile). Tuning values below
// are authored in units and scaled in init.
const Unit = 16.0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Jump
	AirSpeed         float64 `yaml:"air_speed"`
	JumpMultiplier   float64 `yaml:"jump_multiplier"`
	ImpulseScale     float64 `yaml:"impulse_scale"`      // force = value * ImpulseScale
	AdjustedJumpTime float64 `yaml:"adjusted_jump_time"` // seconds; shorter holds are raised to this
	MaxJumpTime      float64 `yaml:"max_jump_time"`      // seconds
	Mass             float64 `yaml:"mass"`

	// Input smoothing per fixed tick
	MoveStep   float64 `yaml:"move_step"`
	ReturnStep float64 `yaml:"return_step"`

	// Probes (pixels)
	CheckRayLength float64 `yaml:"check_ray_length"`
	MinRayLength   float64 `yaml:"min_ray_length"`
	RayInset       float64 `yaml:"ray_inset"`

	// Shake thresholds (pixels per second)
	LandingShakeSpeed float64 `yaml:"landing_shake_speed"`
	CeilingShakeSpeed float64 `yaml:"ceiling_shake_speed"`
	WallShakeSpeed    float64 `yaml:"wall_shake_speed"`

	StompScore int `yaml:"stomp_score"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	Color color.RGBA `yaml:"-"`
}

// EnemyConfig contains configuration for the patrolling enemy
type EnemyConfig struct {
	Speed          float64 `yaml:"speed"` // scaled by the fixed step as authored
	CheckRayLength float64 `yaml:"check_ray_length"`
	RayInset       float64 `yaml:"ray_inset"`

	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	Color color.RGBA `yaml:"-"`
}

// PhysicsConfig contains the rigid body collaborator's tuning
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"` // pixels/s^2, negative is down
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	GroundFriction float64 `yaml:"ground_friction"` // pixels/s^2 on Normal material
	Bounciness     float64 `yaml:"bounciness"`      // restitution on Bounce material
	MinBounceSpeed float64 `yaml:"min_bounce_speed"`
	SlideAccel     float64 `yaml:"slide_accel"` // downhill pixels/s^2 on Slide material ramps
	SpaceCellSize  int     `yaml:"space_cell_size"`
}

// TimingConfig contains tick rates
type TimingConfig struct {
	FixedDelta float64 `yaml:"fixed_delta"`
	TPS        int     `yaml:"tps"`
	MaxSteps   int     `yaml:"max_steps"` // fixed steps per frame before time is dropped
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	Duration  float64 `yaml:"duration"`  // seconds
	Magnitude float64 `yaml:"magnitude"` // pixels
	Frequency float64 `yaml:"frequency"` // oscillations per second
}

// CameraConfig contains the vertical band camera configuration
type CameraConfig struct {
	TransitionTime float64 `yaml:"transition_time"`
	ClimbScore     int     `yaml:"climb_score"`
}

// DeathConfig contains the death fade stages
type DeathConfig struct {
	RedTime   float64    `yaml:"red_time"`
	WhiteTime float64    `yaml:"white_time"`
	ClearTime float64    `yaml:"clear_time"`
	HoldTime  float64    `yaml:"hold_time"`
	Red       color.RGBA `yaml:"-"`
	White     color.RGBA `yaml:"-"`
	Clear     color.RGBA `yaml:"-"`
}

// FinishConfig contains the finish sequence configuration
type FinishConfig struct {
	Delay      float64    `yaml:"delay"`
	Message    string     `yaml:"message"`
	TextColor  color.RGBA `yaml:"-"`
	SceneIndex int        `yaml:"scene_index"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Timing TimingConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var Death DeathConfig
var Finish FinishConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Transparent = color.RGBA{}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Ground      = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	Slide       = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	Hazard      = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	FinishZone  = color.RGBA{R: 60, G: 220, B: 90, A: 255}
	Background  = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	PlayerBody  = color.RGBA{R: 240, G: 200, B: 80, A: 255}
	EnemyBody   = color.RGBA{R: 200, G: 80, B: 200, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every global config to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  320,
		Height: 240,
		Scale:  3,
	}

	Timing = TimingConfig{
		FixedDelta: 1.0 / 50.0,
		TPS:        60,
		MaxSteps:   5,
	}

	Physics = PhysicsConfig{
		Gravity:        -30 * Unit,
		MaxFallSpeed:   20 * Unit,
		GroundFriction: 30 * Unit,
		Bounciness:     0.4,
		MinBounceSpeed: 1 * Unit,
		SlideAccel:     12 * Unit,
		SpaceCellSize:  int(Unit),
	}

	Player = PlayerConfig{
		AirSpeed:         2,
		JumpMultiplier:   10,
		ImpulseScale:     100,
		AdjustedJumpTime: 0.25,
		MaxJumpTime:      1.25,
		// Forces are authored in units; a mass of 1/Unit turns them into pixels.
		Mass: 1.0 / Unit,

		MoveStep:   0.05,
		ReturnStep: 0.1,

		CheckRayLength: 0.5 * Unit,
		MinRayLength:   0.3 * Unit,
		RayInset:       0,

		LandingShakeSpeed: 7 * Unit,
		CeilingShakeSpeed: 5 * Unit,
		WallShakeSpeed:    1 * Unit,

		StompScore: 10,

		CollisionWidth:  12,
		CollisionHeight: 16,
		Color:           PlayerBody,
	}

	Enemy = EnemyConfig{
		Speed:           100,
		CheckRayLength:  0.3 * Unit,
		RayInset:        0,
		CollisionWidth:  14,
		CollisionHeight: 12,
		Color:           EnemyBody,
	}

	ScreenShake = ScreenShakeConfig{
		Duration:  0.25,
		Magnitude: 0.045 * Unit,
		Frequency: 30,
	}

	Camera = CameraConfig{
		TransitionTime: 0.75,
		ClimbScore:     100,
	}

	Death = DeathConfig{
		RedTime:   0.1,
		WhiteTime: 0.1,
		ClearTime: 0.05,
		HoldTime:  1.0,
		Red:       Red,
		White:     White,
		Clear:     Transparent,
	}

	Finish = FinishConfig{
		Delay:      5.0,
		Message:    "LEVEL COMPLETE",
		TextColor:  Yellow,
		SceneIndex: 0,
	}
}
