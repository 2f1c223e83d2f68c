package systems

import (
	"image/color"
	"sync"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// solidSource is the texture triangles are filled from, created on first use.
func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	})
	return whiteSubImage
}

// view maps y-up world coordinates to the screen through the camera.
type view struct {
	left, top float64
}

func viewOf(w donburi.World) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return view{
		left: camera.Position.X - camera.HalfWidth - camera.Offset.X,
		top:  camera.Top() + camera.Offset.Y,
	}, true
}

// rect returns the screen rectangle of a world box.
func (v view) rect(o *resolv.Object) (x, y, w, h float32) {
	return float32(o.X - v.left), float32(v.top - (o.Y + o.H)), float32(o.W), float32(o.H)
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x - v.left), float32(v.top - y)
}

// DrawLevel renders ground, slides, hazards and finish blocks as flat shapes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs.World)
	if !ok {
		return
	}

	draw := func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		o := components.Object.Get(e).Object
		drawCollider(screen, v, o, colliderColor(o))
	}
	tags.Ground.Each(ecs.World, draw)
	tags.Hazard.Each(ecs.World, draw)
	tags.FinishLine.Each(ecs.World, draw)
}

func colliderColor(o *resolv.Object) color.RGBA {
	switch {
	case o.HasTags(tags.ResolvFinish):
		return cfg.FinishZone
	case o.HasTags(tags.ResolvSlide):
		return cfg.Slide
	case o.HasTags(tags.ResolvHazard):
		return cfg.Hazard
	}
	return cfg.Ground
}

func drawCollider(screen *ebiten.Image, v view, o *resolv.Object, clr color.RGBA) {
	if !isSlope(o) {
		x, y, w, h := v.rect(o)
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
		return
	}

	// Ramps are right triangles with the tall side on the high end.
	var path vector.Path
	x0, y0 := v.point(o.X, o.Y)
	x1, y1 := v.point(o.X+o.W, o.Y)
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	if o.HasTags(tags.Slope45UpRight) {
		path.LineTo(v.point(o.X+o.W, o.Y+o.H))
	} else {
		path.LineTo(v.point(o.X, o.Y+o.H))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, solidSource(), &ebiten.DrawTrianglesOptions{})
}

// DrawActors renders the player and enemies in their tint colour.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs.World)
	if !ok {
		return
	}

	components.Tint.Each(ecs.World, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		clr := components.Tint.Get(e).Color
		if clr.A == 0 {
			return
		}
		x, y, w, h := v.rect(components.Object.Get(e).Object)
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)

		// Eye on the facing side.
		facing := components.Actor.Get(e).Facing
		eyeX := x + w*0.7
		if facing < 0 {
			eyeX = x + w*0.3 - 2
		}
		vector.DrawFilledRect(screen, eyeX, y+3, 2, 2, cfg.Background, false)
	})
}
