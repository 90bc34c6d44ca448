package components

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputData is the input snapshot for the current frame.
// Key lists are ordered most recently pressed first.
type InputData struct {
	Pressed     []ebiten.Key // keys held down
	JustPressed []ebiten.Key // keys that went down this frame

	CursorX, CursorY float64
	MouseDown        bool
	MouseJustPressed bool // left button went down this frame
}

var Input = donburi.NewComponentType[InputData]()

// LatestPressed returns the most recently pressed held key passing accept
func (in *InputData) LatestPressed(accept func(ebiten.Key) bool) (ebiten.Key, bool) {
	return latest(in.Pressed, accept)
}

// LatestJustPressed returns the most recent key passing accept that went
// down this frame
func (in *InputData) LatestJustPressed(accept func(ebiten.Key) bool) (ebiten.Key, bool) {
	return latest(in.JustPressed, accept)
}

func latest(keys []ebiten.Key, accept func(ebiten.Key) bool) (ebiten.Key, bool) {
	for _, k := range keys {
		if accept(k) {
			return k, true
		}
	}
	return 0, false
}

// IsJustPressed reports whether key went down this frame
func (in *InputData) IsJustPressed(key ebiten.Key) bool {
	return slices.Contains(in.JustPressed, key)
}
