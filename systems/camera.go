package systems

import (
	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupCamera spawns the scene camera once at startup
func SetupCamera(e *ecs.ECS) {
	if _, ok := components.Camera.First(e.World); ok {
		return
	}
	factory.CreateCamera(e)
}

// UpdateCameraProjection keeps cameras in step with the window and tuning
// config, which may be reloaded at runtime.
func UpdateCameraProjection(e *ecs.ECS) {
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		camera := components.Camera.Get(entry)
		camera.AspectRatio = cfg.C.AspectRatio()
		camera.Z = cfg.Camera.Z
		camera.FOV = cfg.Camera.FOV
		camera.Near = cfg.Camera.Near
		camera.Far = cfg.Camera.Far
	})
}
