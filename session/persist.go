package session

import (
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// carried lists the components a Persistent entity takes into the next world.
var carried = []carrier{
	carry(components.RunStats),
	carry(components.Settings),
}

type carrier interface {
	componentType() donburi.IComponentType
	copyValue(from, to *donburi.Entry)
}

type typedCarrier[T any] struct {
	ct *donburi.ComponentType[T]
}

func carry[T any](ct *donburi.ComponentType[T]) carrier {
	return typedCarrier[T]{ct: ct}
}

func (c typedCarrier[T]) componentType() donburi.IComponentType { return c.ct }

func (c typedCarrier[T]) copyValue(from, to *donburi.Entry) {
	c.ct.SetValue(to, *c.ct.Get(from))
}

// carryPersistent recreates every Persistent entity of from in to, with the
// carried components it has, and returns how many it moved.
func carryPersistent(from, to *ecs.ECS) int {
	n := 0
	tags.Persistent.Each(from.World, func(old *donburi.Entry) {
		cs := []donburi.IComponentType{tags.Persistent}
		var present []carrier
		for _, c := range carried {
			if old.HasComponent(c.componentType()) {
				cs = append(cs, c.componentType())
				present = append(present, c)
			}
		}

		e := to.World.Entry(to.Create(cfg.Default, cs...))
		for _, c := range present {
			c.copyValue(old, e)
		}
		n++
	})
	return n
}
