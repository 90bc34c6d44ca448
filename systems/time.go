package systems

import (
	"github.com/automoto/dorian/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// GetOrCreateGameTime returns the singleton GameTime component, creating if needed
func GetOrCreateGameTime(e *ecs.ECS) *components.GameTimeData {
	entry, ok := components.GameTime.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameTime))
	}
	return components.GameTime.Get(entry)
}

// NewUpdateClock creates the host clock system advancing a fixed step per frame
func NewUpdateClock(step float64) ecs.System {
	return func(e *ecs.ECS) {
		clock := GetOrCreateClock(e)
		clock.Delta = step
		clock.Elapsed += step
	}
}

// UpdateGameTime accumulates in-game time. Gate it on InGame and Running.
func UpdateGameTime(e *ecs.ECS) {
	GetOrCreateGameTime(e).Seconds += GetOrCreateClock(e).Delta
}
