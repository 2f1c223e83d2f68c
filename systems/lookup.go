package systems

import (
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// collect snapshots the entries of a component so systems can add or remove
// components while walking them.
func collect[T any](w donburi.World, ct *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	ct.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// isActive reports whether an entry still takes part in the simulation.
func isActive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && !e.HasComponent(tags.Inactive)
}

// entryOf returns the entity that owns a resolv object.
func entryOf(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	e, _ := obj.Data.(*donburi.Entry)
	return e
}

func clockOf(w donburi.World) components.ClockData {
	if e, ok := components.Clock.First(w); ok {
		return *components.Clock.Get(e)
	}
	return components.ClockData{
		Frame: 1.0 / float64(cfg.Timing.TPS),
		Fixed: cfg.Timing.FixedDelta,
	}
}

func spaceOf(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e).Space
	}
	return nil
}

// settingsOf returns the settings snapshot, with full intensity when the world
// has none.
func settingsOf(w donburi.World) components.SettingsData {
	if e, ok := components.Settings.First(w); ok {
		return *components.Settings.Get(e)
	}
	return components.SettingsData{
		ScreenShake:  cfg.Settings.DefaultIntensity,
		FlashEffects: cfg.Settings.DefaultIntensity,
	}
}

func sceneRequestOf(w donburi.World) *components.SceneRequestData {
	if e, ok := components.SceneRequest.First(w); ok {
		return components.SceneRequest.Get(e)
	}
	return nil
}

func runStatsOf(w donburi.World) *components.RunStatsData {
	if e, ok := components.RunStats.First(w); ok {
		return components.RunStats.Get(e)
	}
	return nil
}

// Deactivate takes an entity out of play without destroying it: it is tagged
// Inactive and its collider leaves the space.
func Deactivate(w donburi.World, e *donburi.Entry) {
	if !isActive(e) {
		return
	}
	if e.HasComponent(components.Object) {
		if space := spaceOf(w); space != nil {
			space.Remove(components.Object.Get(e).Object)
		}
	}
	e.AddComponent(tags.Inactive)
}
