package systems

import (
	"github.com/automoto/dorian/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSelection returns the singleton MenuSelection component, creating if needed
func GetOrCreateSelection(e *ecs.ECS) *components.MenuSelectionData {
	entry, ok := components.MenuSelection.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.MenuSelection))
		// Zero-value selection is index 0
	}
	return components.MenuSelection.Get(entry)
}

// UpdateMenuFade advances the fade-in tween of every visible menu
func UpdateMenuFade(e *ecs.ECS) {
	dt := GetOrCreateClock(e).Delta

	components.MenuRoot.Each(e.World, func(entry *donburi.Entry) {
		root := components.MenuRoot.Get(entry)
		if root.Fade == nil {
			return
		}
		alpha, done := root.Fade.Update(float32(dt))
		root.Alpha = float64(alpha)
		if done {
			root.Alpha = 1
			root.Fade = nil
		}
	})
}
