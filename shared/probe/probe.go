// Package probe casts short axis-aligned rays against a resolv space.
package probe

import (
	"math"

	"github.com/automoto/hopdrop/shared/gamemath"
	"github.com/automoto/hopdrop/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Direction is one of the four cardinal cast directions, y up.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "down"
	}
}

// Vector returns the unit step of the direction.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case Up:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, -1
	}
}

// semanticTags are checked in order; the first one the collider carries names the hit.
var semanticTags = []string{
	tags.ResolvSlide,
	tags.ResolvFinish,
	tags.TagEnemy,
	tags.TagPlayer,
	tags.ResolvHazard,
}

// Hit describes the nearest collider along a ray.
type Hit struct {
	Object   *resolv.Object
	Distance float64
	Point    dmath.Vec2
	Tag      string
}

// TagOf returns the semantic tag of a collider, or "" when it has none.
func TagOf(obj *resolv.Object) string {
	for _, t := range semanticTags {
		if obj.HasTags(t) {
			return t
		}
	}
	return ""
}

// Cast returns the nearest collider carrying any of layers within maxDist of
// origin along dir. self is never reported.
func Cast(space *resolv.Space, self *resolv.Object, origin dmath.Vec2, dir Direction, maxDist float64, layers ...string) (Hit, bool) {
	if space == nil || maxDist <= 0 {
		return Hit{}, false
	}

	dx, dy := dir.Vector()
	endX, endY := origin.X+dx*maxDist, origin.Y+dy*maxDist

	// Broad phase: a temporary object covering the ray, padded by a pixel so
	// cells on the boundaries are included.
	minX, maxX := math.Min(origin.X, endX)-1, math.Max(origin.X, endX)+1
	minY, maxY := math.Min(origin.Y, endY)-1, math.Max(origin.Y, endY)+1
	ray := resolv.NewObject(minX, minY, maxX-minX, maxY-minY)
	space.Add(ray)
	check := ray.Check(0, 0, layers...)
	space.Remove(ray)
	if check == nil {
		return Hit{}, false
	}

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, o := range check.Objects {
		if o == self {
			continue
		}
		dist, ok := distanceTo(o, origin, dir, maxDist)
		if !ok || dist >= best.Distance {
			continue
		}
		best = Hit{
			Object:   o,
			Distance: dist,
			Point:    dmath.NewVec2(origin.X+dx*dist, origin.Y+dy*dist),
			Tag:      TagOf(o),
		}
		found = true
	}
	if !found {
		return Hit{}, false
	}
	return best, true
}

func distanceTo(o *resolv.Object, origin dmath.Vec2, dir Direction, maxDist float64) (float64, bool) {
	if o.HasTags(tags.Slope45UpRight, tags.Slope45UpLeft) {
		return rampDistance(o, origin, dir, maxDist)
	}
	dx, dy := dir.Vector()
	return segmentAABBHit(origin.X, origin.Y, dx*maxDist, dy*maxDist, o.X, o.Y, o.X+o.W, o.Y+o.H, maxDist)
}

// segmentAABBHit is a slab test of the segment origin+t*(dx,dy), t in [0,1].
// On the axis the segment does not move along, touching an edge is a miss so a
// ray running along a wall face does not hit it.
func segmentAABBHit(x0, y0, dx, dy, minX, minY, maxX, maxY, length float64) (float64, bool) {
	tmin := 0.0
	tmax := 1.0

	if dx != 0 {
		invD := 1.0 / dx
		t1 := (minX - x0) * invD
		t2 := (maxX - x0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if x0 <= minX || x0 >= maxX {
		return 0, false
	}

	if dy != 0 {
		invD := 1.0 / dy
		t1 := (minY - y0) * invD
		t2 := (maxY - y0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if y0 <= minY || y0 >= maxY {
		return 0, false
	}

	if tmax >= tmin {
		return tmin * length, true
	}
	return 0, false
}

// rampDistance intersects an axis-aligned ray with a right-triangle ramp.
func rampDistance(ramp *resolv.Object, origin dmath.Vec2, dir Direction, maxDist float64) (float64, bool) {
	switch dir {
	case Down, Up:
		if origin.X <= ramp.X || origin.X >= ramp.X+ramp.W {
			return 0, false
		}
		surface := gamemath.SlopeSurfaceY(ramp, origin.X, tags.Slope45UpRight, tags.Slope45UpLeft)
		if dir == Down {
			if origin.Y < ramp.Y {
				return 0, false
			}
			return within(origin.Y-surface, maxDist)
		}
		if origin.Y > surface {
			return 0, false
		}
		return within(ramp.Y-origin.Y, maxDist)
	default:
		if origin.Y <= ramp.Y || origin.Y >= ramp.Y+ramp.H {
			return 0, false
		}
		// Solid span of the triangle at the ray's height.
		frac := (origin.Y - ramp.Y) / ramp.H
		lo, hi := ramp.X, ramp.X+ramp.W
		if ramp.HasTags(tags.Slope45UpRight) {
			lo = ramp.X + ramp.W*frac
		} else {
			hi = ramp.X + ramp.W*(1-frac)
		}
		if dir == Right {
			if origin.X > hi {
				return 0, false
			}
			return within(lo-origin.X, maxDist)
		}
		if origin.X < lo {
			return 0, false
		}
		return within(origin.X-hi, maxDist)
	}
}

// within clamps a signed gap to a distance, treating overlap as contact.
func within(gap, maxDist float64) (float64, bool) {
	if gap > maxDist {
		return 0, false
	}
	return math.Max(0, gap), true
}
