package factory

import (
	"github.com/automoto/dorian/archetypes"
	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Size: cfg.Player.Size,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: math.NewVec2(x, y),
		Z:        0,
	})
	components.Velocity.SetValue(player, components.VelocityData{})
	components.Material.SetValue(player, components.MaterialData{
		BaseColor: cfg.Player.BaseColor,
	})

	return player
}
