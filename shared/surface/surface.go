// Package surface turns a pair of corner probes into a single contact.
package surface

import (
	"github.com/automoto/hopdrop/components"
	"github.com/automoto/hopdrop/shared/probe"
	"github.com/automoto/hopdrop/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Contact is the classified result of probing one direction.
type Contact struct {
	Dir       probe.Direction
	Hit       bool
	Object    *resolv.Object
	Tag       string
	Distance  float64
	Point     dmath.Vec2
	Slideable bool
	Mode      components.Material
}

// Solid reports a hit closer than minDist.
func (c Contact) Solid(minDist float64) bool {
	return c.Hit && c.Distance < minDist
}

// Is reports whether the contact's collider carries the semantic tag.
func (c Contact) Is(tag string) bool {
	return c.Hit && c.Tag == tag
}

// Classify combines both corner rays of a pair. With one hit that hit is used
// as is. With two hits the collider and distance come from corner A while
// slideability is decided by whichever contact point is higher; corner B
// decides a tie.
func Classify(p probe.Pair) Contact {
	c := Contact{Dir: p.Dir}

	var chosen probe.Hit
	slideable := false
	switch {
	case p.HitA && p.HitB:
		chosen = p.A
		higher := p.B
		if p.A.Point.Y > p.B.Point.Y {
			higher = p.A
		}
		slideable = higher.Tag == tags.ResolvSlide
	case p.HitA:
		chosen = p.A
		slideable = chosen.Tag == tags.ResolvSlide
	case p.HitB:
		chosen = p.B
		slideable = chosen.Tag == tags.ResolvSlide
	default:
		c.Mode = modeFor(p.Dir, false)
		return c
	}

	c.Hit = true
	c.Object = chosen.Object
	c.Tag = chosen.Tag
	c.Distance = chosen.Distance
	c.Point = chosen.Point
	c.Slideable = slideable
	c.Mode = modeFor(p.Dir, slideable)
	return c
}

func modeFor(dir probe.Direction, slideable bool) components.Material {
	if slideable {
		return components.MaterialSlide
	}
	if dir == probe.Down {
		return components.MaterialNormal
	}
	return components.MaterialBounce
}
