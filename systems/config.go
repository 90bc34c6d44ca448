package systems

import (
	"log"

	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/diagnostics"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateConfigWatcher creates the system applying overrides files edited
// while the game runs. A nil watcher yields a no-op system.
func NewUpdateConfigWatcher(w *cfg.Watcher) ecs.System {
	return func(e *ecs.ECS) {
		if w == nil {
			return
		}
		reloadConfig(w.Poll)
	}
}

// reloadConfig applies one poll of the overrides file. The window size is
// fixed at startup along with the UI space and button layout, so a reloaded
// size is reverted.
func reloadConfig(poll func() (bool, error)) bool {
	width, height := cfg.C.Width, cfg.C.Height

	changed, err := poll()
	if err != nil {
		diagnostics.Warnf("could not reload config: %v", err)
		return false
	}
	if !changed {
		return false
	}

	if cfg.C.Width != width || cfg.C.Height != height {
		diagnostics.Warnf("window size %dx%d applies on restart", cfg.C.Width, cfg.C.Height)
		cfg.C.Width, cfg.C.Height = width, height
	}
	log.Println("config reloaded")
	return true
}
