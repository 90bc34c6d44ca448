package systems

import (
	"math"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/diagnostics"
	"github.com/automoto/dorian/systems/factory"
	"github.com/automoto/dorian/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SetupPlayer spawns the player at the origin unless one already exists.
// Runs on entering InGame.
func SetupPlayer(e *ecs.ECS) {
	if _, ok := tags.Player.First(e.World); ok {
		return
	}
	factory.CreatePlayer(e, 0, 0)
}

// UpdatePlayerMovement moves the player along the most recently pressed
// direction key, then keeps it inside the camera's view.
func UpdatePlayerMovement(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	transform := components.Transform.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	input := GetOrCreateInput(e)
	dt := GetOrCreateClock(e).Delta

	direction := movementDirection(input)

	// Normalize only a non-zero direction
	if length := math.Hypot(direction.X, direction.Y); length > 0 {
		direction = direction.MulScalar(1 / length)
	}

	velocity := direction.MulScalar(cfg.Player.Speed)
	components.Velocity.SetValue(playerEntry, components.VelocityData{X: velocity.X, Y: velocity.Y})
	transform.Position = transform.Position.Add(velocity.MulScalar(dt))

	if camera, ok := activePerspectiveCamera(e); ok {
		ClampPlayerToCamera(transform, player, camera)
	}
}

// movementDirection maps the most recently pressed direction key to a unit
// axis. Only one axis moves per frame.
func movementDirection(input *components.InputData) dmath.Vec2 {
	var direction dmath.Vec2

	moving := cfg.Input.Accepts(cfg.MoveActions...)
	key, ok := input.LatestPressed(moving)
	if !ok {
		for _, k := range input.JustPressed {
			if !moving(k) {
				diagnostics.Debugf("player: unhandled keyboard input: %v", k)
			}
		}
		return direction
	}

	action, _ := cfg.Input.Match(key, cfg.MoveActions...)
	switch action {
	case cfg.ActionMoveUp:
		direction.Y += 1
	case cfg.ActionMoveDown:
		direction.Y -= 1
	case cfg.ActionMoveLeft:
		direction.X -= 1
	case cfg.ActionMoveRight:
		direction.X += 1
	}
	return direction
}

// VisibleHalfExtents returns the half width and height of the view of a
// perspective camera at the given distance.
func VisibleHalfExtents(camera *components.CameraData, distance float64) (halfWidth, halfHeight float64) {
	halfHeight = distance * math.Tan(camera.FOV/2)
	halfWidth = halfHeight * camera.AspectRatio
	return halfWidth, halfHeight
}

// ClampPlayerToCamera keeps the whole player cube inside the camera view at
// the player's depth plane.
func ClampPlayerToCamera(transform *components.TransformData, player *components.PlayerData, camera *components.CameraData) {
	if camera.Projection != components.ProjectionPerspective || camera.ForwardZ == 0 {
		return
	}

	// Perpendicular distance from the camera to the player plane
	distance := (camera.Z - transform.Z) / math.Abs(camera.ForwardZ)
	halfWidth, halfHeight := VisibleHalfExtents(camera, distance)
	margin := player.Size / 2

	transform.Position.X = clamp(transform.Position.X, -halfWidth+margin, halfWidth-margin)
	transform.Position.Y = clamp(transform.Position.Y, -halfHeight+margin, halfHeight-margin)
}

func clamp(v, lo, hi float64) float64 {
	// A view narrower than the player pins it to the center
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// activePerspectiveCamera returns the first active perspective camera
func activePerspectiveCamera(e *ecs.ECS) (*components.CameraData, bool) {
	var found *components.CameraData
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		camera := components.Camera.Get(entry)
		if found == nil && camera.Active && camera.Projection == components.ProjectionPerspective {
			found = camera
		}
	})
	return found, found != nil
}

// SyncPlayerConfig applies the tuned player size to the live player.
func SyncPlayerConfig(e *ecs.ECS) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		components.Player.Get(entry).Size = cfg.Player.Size
	})
}

// PlayerIntensity is the periodic animation value (sin(t)+1)/2 in [0, 1]
func PlayerIntensity(seconds float64) float64 {
	return (math.Sin(seconds) + 1) / 2
}

// UpdatePlayerAnimation cycles the player colour with game time.
// Purely cosmetic.
func UpdatePlayerAnimation(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	material := components.Material.Get(playerEntry)

	intensity := PlayerIntensity(GetOrCreateGameTime(e).Seconds)
	material.BaseColor = cfg.RGB(
		0.25+intensity*0.25,
		0.75-intensity*0.25,
		0.25+intensity*0.5,
	)
}
