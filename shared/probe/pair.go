package probe

import (
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Pair holds the results of the two corner rays cast in one direction.
type Pair struct {
	Dir        Direction
	A, B       Hit
	HitA, HitB bool
}

// Any reports whether either ray hit.
func (p Pair) Any() bool {
	return p.HitA || p.HitB
}

// Nearest returns the closer of the two hits, or the only one.
func (p Pair) Nearest() (Hit, bool) {
	switch {
	case p.HitA && p.HitB:
		if p.B.Distance < p.A.Distance {
			return p.B, true
		}
		return p.A, true
	case p.HitA:
		return p.A, true
	case p.HitB:
		return p.B, true
	}
	return Hit{}, false
}

// Origins returns the two ray origins for a box, inset from its corners.
func Origins(box *resolv.Object, dir Direction, inset float64) (a, b dmath.Vec2) {
	x, y, w, h := box.X, box.Y, box.W, box.H
	switch dir {
	case Up:
		return dmath.NewVec2(x+inset, y+h), dmath.NewVec2(x+w-inset, y+h)
	case Left:
		return dmath.NewVec2(x+inset, y+inset), dmath.NewVec2(x+inset, y+h-inset)
	case Right:
		return dmath.NewVec2(x+w-inset, y+inset), dmath.NewVec2(x+w-inset, y+h-inset)
	default:
		return dmath.NewVec2(x+inset, y), dmath.NewVec2(x+w-inset, y)
	}
}

// Probe casts both corner rays of box in dir.
func Probe(space *resolv.Space, box *resolv.Object, dir Direction, maxDist, inset float64, layers ...string) Pair {
	a, b := Origins(box, dir, inset)
	p := Pair{Dir: dir}
	p.A, p.HitA = Cast(space, box, a, dir, maxDist, layers...)
	p.B, p.HitB = Cast(space, box, b, dir, maxDist, layers...)
	return p
}
