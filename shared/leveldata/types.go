// Package leveldata provides TMX level parsing.
// It has no dependencies on ebitengine, donburi or resolv. Pure data only.
// Coordinates are converted to y-up pixels with the origin at the map's
// bottom-left corner.
package leveldata

// Level holds everything a world is built from.
type Level struct {
	Name     string
	Width    float64
	Height   float64
	TileSize float64

	Ground   []Rect // solid blocks and ramps
	Slides   []Rect // solid, frictionless
	Hazards  []Rect // touching one kills
	Finishes []Rect // solid, reaching one ends the level

	PlayerSpawn Spawn
	Enemies     []Spawn
}

// Rect is an axis-aligned area; min corner plus size.
type Rect struct {
	X, Y, W, H float64
	SlopeType  string // "", "45_up_right", "45_up_left"
}

// Spawn is a bottom-centre point where an actor is placed.
type Spawn struct {
	X, Y      float64
	Direction float64 // -1 or +1
}
