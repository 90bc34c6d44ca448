package systems

import (
	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/states"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePauseToggle creates the system flipping Running and Paused on the
// pause key. Gate it on InGame.
func NewUpdatePauseToggle(pause *states.Machine[components.PauseMode]) ecs.System {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)

		toggle := false
		for _, key := range cfg.Input.Bindings[cfg.ActionPause].Keys {
			if input.IsJustPressed(key) {
				toggle = true
				break
			}
		}
		if !toggle {
			return
		}

		switch pause.Current(e) {
		case components.PauseRunning:
			pause.Set(e, components.PausePaused)
		case components.PausePaused:
			pause.Set(e, components.PauseRunning)
		}
	}
}
