package factory

import (
	"github.com/automoto/dorian/archetypes"
	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		X:           cfg.Camera.X,
		Y:           cfg.Camera.Y,
		Z:           cfg.Camera.Z,
		ForwardX:    cfg.Camera.ForwardX,
		ForwardY:    cfg.Camera.ForwardY,
		ForwardZ:    cfg.Camera.ForwardZ,
		Projection:  components.ProjectionPerspective,
		FOV:         cfg.Camera.FOV,
		AspectRatio: cfg.C.AspectRatio(),
		Near:        cfg.Camera.Near,
		Far:         cfg.Camera.Far,
		Active:      true,
	})
	return camera
}
