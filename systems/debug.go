package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/fonts"
	"github.com/automoto/dorian/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit-box and prints the frame state.
// Only drawn with verbose diagnostics.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Verbose {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCursor) {
				c = color.RGBA{255, 0, 255, 255}
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	text.Draw(screen, debugStatus(ecs), fonts.Regular.Get(), 8, 16, cfg.White)
}

func debugStatus(ecs *ecs.ECS) string {
	status := fmt.Sprintf("TPS %0.1f\n", ebiten.ActualTPS())

	if entry, ok := components.AppState.First(ecs.World); ok {
		status += fmt.Sprintf("app: %v\n", components.AppState.Get(entry).Current)
	}
	if entry, ok := components.PauseState.First(ecs.World); ok {
		status += fmt.Sprintf("pause: %v\n", components.PauseState.Get(entry).Current)
	}
	if entry, ok := components.MenuSelection.First(ecs.World); ok {
		status += fmt.Sprintf("selection: %d\n", components.MenuSelection.Get(entry).Index())
	}
	if entry, ok := tags.Player.First(ecs.World); ok {
		pos := components.Transform.Get(entry).Position
		status += fmt.Sprintf("player: %.2f, %.2f\n", pos.X, pos.Y)
	}
	if entry, ok := components.GameTime.First(ecs.World); ok {
		status += fmt.Sprintf("time: %.2fs\n", components.GameTime.Get(entry).Seconds)
	}
	return status
}
