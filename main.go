package main

import (
	"flag"
	"log"

	"github.com/automoto/dorian/config"
	"github.com/automoto/dorian/fonts"
	"github.com/automoto/dorian/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() (bool, string)
}

type Game struct {
	scene Scene
}

func NewGame(watcher *config.Watcher) *Game {
	if err := fonts.LoadDefaults(config.Menu.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		scene: scenes.NewGameScene(watcher),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if done, reason := g.scene.Done(); done {
		log.Printf("exiting: %s", reason)
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configFile := flag.String("config", "", "YAML file overriding the built-in tuning; reloaded on change")
	skipMenu := flag.Bool("skip-menu", false, "start directly in game")
	verbose := flag.Bool("verbose", false, "log debug diagnostics")
	flag.Parse()

	var watcher *config.Watcher
	if *configFile != "" {
		if err := config.LoadOverrides(*configFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		w, err := config.NewWatcher(*configFile)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *configFile, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *verbose {
		config.Debug.Verbose = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
