package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Ground     = donburi.NewTag().SetName("Ground")
	Hazard     = donburi.NewTag().SetName("Hazard")
	FinishLine = donburi.NewTag().SetName("FinishLine")
	// Persistent entities are carried into the next world on scene reload.
	Persistent = donburi.NewTag().SetName("Persistent")
	// Inactive entities are skipped by every system and absent from the space.
	Inactive = donburi.NewTag().SetName("Inactive")
)

// Resolv tags. Layer tags select what a probe or body can see; semantic tags
// identify what was hit.
const (
	// Layers
	ResolvGround = "ground"
	ResolvEnemy  = "enemy"
	ResolvPlayer = "player"

	// Semantic tags
	ResolvSlide  = "Slide"
	ResolvFinish = "Finish"
	ResolvHazard = "Hazard"
	TagEnemy     = "Enemy"
	TagPlayer    = "Player"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
