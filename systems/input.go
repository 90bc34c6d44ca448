package systems

import (
	"sort"

	"github.com/automoto/dorian/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable key buffers to avoid allocations
var pressedKeys, justPressedKeys []ebiten.Key

// UpdateInput polls raw input and updates the Input component.
// Must run before any system reading input.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	pressedKeys = inpututil.AppendPressedKeys(pressedKeys[:0])
	justPressedKeys = inpututil.AppendJustPressedKeys(justPressedKeys[:0])
	sortByRecency(pressedKeys)
	sortByRecency(justPressedKeys)

	input.Pressed = append(input.Pressed[:0], pressedKeys...)
	input.JustPressed = append(input.JustPressed[:0], justPressedKeys...)

	x, y := ebiten.CursorPosition()
	input.CursorX, input.CursorY = float64(x), float64(y)
	input.MouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.MouseJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// sortByRecency orders keys most recently pressed first
func sortByRecency(keys []ebiten.Key) {
	sort.SliceStable(keys, func(i, j int) bool {
		return inpututil.KeyPressDuration(keys[i]) < inpututil.KeyPressDuration(keys[j])
	})
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (nothing pressed)
	}
	return components.Input.Get(entry)
}
