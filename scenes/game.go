package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/menus"
	"github.com/automoto/dorian/states"
	"github.com/automoto/dorian/systems"
	"github.com/automoto/dorian/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene hosts the whole game: both state machines, both menus and the
// player, all in one world.
type GameScene struct {
	ecs       *ecs.ECS
	watcher   *cfg.Watcher
	pollInput ecs.System
	once      sync.Once

	app   *states.Machine[components.AppMode]
	pause *states.Machine[components.PauseMode]

	exitReason string
	done       bool
}

// NewGameScene creates the game scene. watcher may be nil.
func NewGameScene(watcher *cfg.Watcher) *GameScene {
	return &GameScene{watcher: watcher, pollInput: systems.UpdateInput}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

// Done reports whether an exit was requested and the reason given
func (gs *GameScene) Done() (bool, string) {
	return gs.done, gs.exitReason
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	initial := components.AppModeMenu
	if cfg.Debug.SkipMenu {
		initial = components.AppModeInGame
	}
	gs.app = states.New("app", components.AppState, initial)
	gs.pause = states.New("pause", components.PauseState, components.PauseRunning)

	start := menus.NewController[components.StartButton, components.AppMode](
		menus.Start{}, components.StartMenuButton, gs.app)
	pause := menus.NewController[components.PauseButton, components.PauseMode](
		menus.Pause{}, components.PauseMenuButton, gs.pause)

	gs.app.
		OnEnter(components.AppModeMenu, start.Setup).
		OnExit(components.AppModeMenu, start.Cleanup).
		OnEnter(components.AppModeInGame, systems.SetupPlayer)
	gs.pause.
		OnEnter(components.PausePaused, pause.Setup).
		OnExit(components.PausePaused, pause.Cleanup)

	inMenu := gs.app.In(components.AppModeMenu)
	inGame := gs.app.In(components.AppModeInGame)
	paused := states.All(inGame, gs.pause.In(components.PausePaused))
	running := states.All(inGame, gs.pause.In(components.PauseRunning))

	// World setup
	factory.CreateSpace(gs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	systems.SetupCamera(gs.ecs)

	components.AppExit.Subscribe(gs.ecs.World, func(w donburi.World, ev components.AppExitEvent) {
		gs.done = true
		gs.exitReason = ev.Reason
	})

	// Frame input and host config
	gs.ecs.AddSystem(systems.NewUpdateClock(1 / float64(cfg.C.TPS)))
	gs.ecs.AddSystem(gs.pollInput)
	gs.ecs.AddSystem(systems.NewUpdateConfigWatcher(gs.watcher))

	// Frame boundary: pending transitions and their hooks
	gs.ecs.AddSystem(gs.app.Apply)
	gs.ecs.AddSystem(gs.pause.Apply)

	gs.ecs.AddSystem(systems.UpdateInteraction)

	// Start menu
	gs.ecs.AddSystem(states.RunIf(start.UpdateKeyboard, inMenu))
	gs.ecs.AddSystem(states.RunIf(start.UpdatePointer, inMenu))
	gs.ecs.AddSystem(states.RunIf(start.UpdateVisuals, inMenu))

	// Pause menu
	gs.ecs.AddSystem(states.RunIf(pause.UpdateKeyboard, paused))
	gs.ecs.AddSystem(states.RunIf(pause.UpdatePointer, paused))
	gs.ecs.AddSystem(states.RunIf(pause.UpdateVisuals, paused))

	gs.ecs.AddSystem(states.RunIf(systems.NewUpdatePauseToggle(gs.pause), inGame))

	// Gameplay
	gs.ecs.AddSystem(states.RunIf(systems.UpdatePlayerMovement, running))
	gs.ecs.AddSystem(states.RunIf(systems.UpdatePlayerAnimation, running))
	gs.ecs.AddSystem(states.RunIf(systems.UpdateGameTime, running))

	gs.ecs.AddSystem(systems.UpdateMenuFade)
	gs.ecs.AddSystem(systems.UpdateCameraProjection)
	gs.ecs.AddSystem(systems.SyncPlayerConfig)
	gs.ecs.AddSystem(systems.ProcessEvents)

	// Renderers (menus draw over the game)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	gs.ecs.AddRenderer(cfg.Overlay, systems.DrawMenus)
	gs.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
}
