package systems

import (
	"github.com/automoto/hopdrop/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of every active collider.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if !isActive(e) {
			continue
		}
		obj := components.Object.Get(e)
		obj.Update()
	}
}
