package surface

import (
	"testing"

	"github.com/automoto/hopdrop/components"
	"github.com/automoto/hopdrop/shared/probe"
	"github.com/automoto/hopdrop/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func hit(obj *resolv.Object, dist, y float64) probe.Hit {
	return probe.Hit{Object: obj, Distance: dist, Point: dmath.NewVec2(0, y), Tag: probe.TagOf(obj)}
}

func TestClassify(t *testing.T) {
	ground := resolv.NewObject(0, 0, 16, 16, tags.ResolvGround)
	ice := resolv.NewObject(16, 0, 16, 16, tags.ResolvGround, tags.ResolvSlide)

	tests := []struct {
		name          string
		pair          probe.Pair
		wantHit       bool
		wantObject    *resolv.Object
		wantDistance  float64
		wantSlideable bool
		wantMode      components.Material
	}{
		{
			name:     "both miss down",
			pair:     probe.Pair{Dir: probe.Down},
			wantMode: components.MaterialNormal,
		},
		{
			name:         "single hit is used unchanged",
			pair:         probe.Pair{Dir: probe.Down, B: hit(ground, 2, 16), HitB: true},
			wantHit:      true,
			wantObject:   ground,
			wantDistance: 2,
			wantMode:     components.MaterialNormal,
		},
		{
			name:          "single slide hit",
			pair:          probe.Pair{Dir: probe.Down, A: hit(ice, 1, 16), HitA: true},
			wantHit:       true,
			wantObject:    ice,
			wantDistance:  1,
			wantSlideable: true,
			wantMode:      components.MaterialSlide,
		},
		{
			name: "two hits take collider from A and slideability from the higher point",
			pair: probe.Pair{
				Dir:  probe.Down,
				A:    hit(ground, 3, 14),
				B:    hit(ice, 1, 16),
				HitA: true,
				HitB: true,
			},
			wantHit:       true,
			wantObject:    ground,
			wantDistance:  3,
			wantSlideable: true,
			wantMode:      components.MaterialSlide,
		},
		{
			name: "higher normal point wins over lower slide point",
			pair: probe.Pair{
				Dir:  probe.Down,
				A:    hit(ice, 0, 10),
				B:    hit(ground, 0, 16),
				HitA: true,
				HitB: true,
			},
			wantHit:    true,
			wantObject: ice,
			wantMode:   components.MaterialNormal,
		},
		{
			name: "equal heights let corner B decide slideability",
			pair: probe.Pair{
				Dir:  probe.Down,
				A:    hit(ground, 0, 16),
				B:    hit(ice, 0, 16),
				HitA: true,
				HitB: true,
			},
			wantHit:       true,
			wantObject:    ground,
			wantSlideable: true,
			wantMode:      components.MaterialSlide,
		},
		{
			name: "equal heights with normal corner B",
			pair: probe.Pair{
				Dir:  probe.Down,
				A:    hit(ice, 0, 16),
				B:    hit(ground, 0, 16),
				HitA: true,
				HitB: true,
			},
			wantHit:    true,
			wantObject: ice,
			wantMode:   components.MaterialNormal,
		},
		{
			name:         "wall contact bounces",
			pair:         probe.Pair{Dir: probe.Left, A: hit(ground, 0.5, 5), HitA: true},
			wantHit:      true,
			wantObject:   ground,
			wantDistance: 0.5,
			wantMode:     components.MaterialBounce,
		},
		{
			name:       "ceiling contact bounces",
			pair:       probe.Pair{Dir: probe.Up, A: hit(ground, 0, 5), HitA: true},
			wantHit:    true,
			wantObject: ground,
			wantMode:   components.MaterialBounce,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.pair)
			assert.Equal(t, tt.wantHit, c.Hit)
			assert.Equal(t, tt.wantObject, c.Object)
			assert.Equal(t, tt.wantDistance, c.Distance)
			assert.Equal(t, tt.wantSlideable, c.Slideable)
			assert.Equal(t, tt.wantMode, c.Mode)
		})
	}
}

func TestSolid(t *testing.T) {
	assert.False(t, Contact{}.Solid(4.8))
	assert.True(t, Contact{Hit: true, Distance: 4}.Solid(4.8))
	assert.False(t, Contact{Hit: true, Distance: 4.8}.Solid(4.8))
}
