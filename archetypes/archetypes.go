package archetypes

import (
	"github.com/automoto/dorian/components"
	"github.com/automoto/dorian/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Velocity,
		components.Material,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	MenuRoot = newArchetype(
		components.MenuRoot,
		transform.Transform,
	)
	MenuButton = newArchetype(
		components.Button,
		components.Interaction,
		components.Object,
		transform.Transform,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return ecs.World.Entry(ecs.World.Create(all...))
}

var Label = newArchetype(
	components.Label,
	transform.Transform,
)
