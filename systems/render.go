package systems

import (
	"image/color"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/fonts"
	"github.com/automoto/dorian/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"golang.org/x/image/font"
)

// DrawMenus renders every spawned menu: backdrop, buttons, then labels.
func DrawMenus(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	face := fonts.Button.Get()

	components.MenuRoot.Each(e.World, func(root *donburi.Entry) {
		data := components.MenuRoot.Get(root)
		if data.Backdrop.A != 0 {
			vector.FillRect(screen, 0, 0, width, height, fade(data.Backdrop, data.Alpha), false)
		}

		buttons, _ := transform.GetChildren(root)
		for _, button := range buttons {
			if !button.Valid() || !button.HasComponent(components.Button) {
				continue
			}
			obj := components.Object.Get(button)
			if obj.Object == nil {
				continue
			}
			vector.FillRect(
				screen,
				float32(obj.X), float32(obj.Y),
				float32(obj.W), float32(obj.H),
				fade(components.Button.Get(button).Background, data.Alpha),
				false,
			)

			labels, _ := transform.GetChildren(button)
			for _, label := range labels {
				if !label.Valid() || !label.HasComponent(components.Label) {
					continue
				}
				drawLabel(screen, face, components.Label.Get(label).Text, obj.X+obj.W/2, obj.Y+obj.H/2, data.Alpha)
			}
		}
	})
}

// drawLabel centers text on (cx, cy)
func drawLabel(screen *ebiten.Image, face font.Face, s string, cx, cy, alpha float64) {
	bounds, _ := font.BoundString(face, s)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := int(cx) - textWidth/2
	y := int(cy) + textHeight/2

	text.Draw(screen, s, face, x, y, fade(cfg.Menu.TextColor, alpha))
}

// DrawPlayer renders the player cube projected through the active camera.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camera, ok := activePerspectiveCamera(e)
	if !ok {
		return
	}
	body := components.Transform.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	material := components.Material.Get(playerEntry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	distance, ok := clipDistance(camera, body.Z)
	if !ok {
		return
	}
	_, halfHeight := VisibleHalfExtents(camera, distance)
	pixelsPerUnit := (height / 2) / halfHeight

	size := player.Size * pixelsPerUnit
	x := width/2 + (body.Position.X-camera.X)*pixelsPerUnit - size/2
	y := height/2 - (body.Position.Y-camera.Y)*pixelsPerUnit - size/2

	vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), material.BaseColor, true)
}

// clipDistance returns the depth of plane z in front of the camera and
// whether it lies within the near and far planes
func clipDistance(camera *components.CameraData, z float64) (float64, bool) {
	distance := camera.Z - z
	return distance, distance > 0 && distance >= camera.Near && distance <= camera.Far
}

// fade scales a colour's alpha, keeping it premultiplied
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
