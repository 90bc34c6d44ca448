package menus

import (
	"image/color"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
)

// Start is the title menu: Start enters the game, Quit exits.
type Start struct{}

func (Start) Name() string {
	return "start"
}

func (Start) Buttons() []components.StartButton {
	return components.StartButtons()
}

func (Start) Activate(b components.StartButton) Effect[components.AppMode] {
	switch b {
	case components.StartButtonStart:
		return Transition(components.AppModeInGame)
	default:
		return Exit[components.AppMode]()
	}
}

func (Start) Backdrop() color.RGBA {
	return cfg.Menu.BackgroundColor
}
