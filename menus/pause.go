package menus

import (
	"image/color"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
)

// Pause is the in-game pause menu: Resume unpauses, Quit exits.
type Pause struct{}

func (Pause) Name() string {
	return "pause"
}

func (Pause) Buttons() []components.PauseButton {
	return components.PauseButtons()
}

func (Pause) Activate(b components.PauseButton) Effect[components.PauseMode] {
	switch b {
	case components.PauseButtonResume:
		return Transition(components.PauseRunning)
	default:
		return Exit[components.PauseMode]()
	}
}

func (Pause) Backdrop() color.RGBA {
	return cfg.Menu.OverlayColor
}
