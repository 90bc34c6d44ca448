package systems

import (
	"errors"
	"testing"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestReloadConfig(t *testing.T) {
	cases := []struct {
		name        string
		yaml        string
		pollErr     error
		wantChanged bool
		check       func(t *testing.T)
	}{
		{
			name:        "player speed applies",
			yaml:        "player:\n  speed: 9\n",
			wantChanged: true,
			check: func(t *testing.T) {
				if cfg.Player.Speed != 9 {
					t.Errorf("speed = %v, want 9", cfg.Player.Speed)
				}
			},
		},
		{
			name:        "window size reverted",
			yaml:        "window:\n  width: 640\n  height: 480\nplayer:\n  size: 2\n",
			wantChanged: true,
			check: func(t *testing.T) {
				if cfg.C.Width != 1280 || cfg.C.Height != 720 {
					t.Errorf("window = %dx%d, want 1280x720", cfg.C.Width, cfg.C.Height)
				}
				if cfg.Player.Size != 2 {
					t.Errorf("size = %v, want 2", cfg.Player.Size)
				}
			},
		},
		{
			name:    "poll error keeps config",
			pollErr: errors.New("boom"),
			check: func(t *testing.T) {
				if cfg.Player.Speed != 5 {
					t.Errorf("speed = %v, want default", cfg.Player.Speed)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg.Reset()
			t.Cleanup(cfg.Reset)

			poll := func() (bool, error) {
				if tc.pollErr != nil {
					return false, tc.pollErr
				}
				return true, cfg.ApplyOverrides([]byte(tc.yaml))
			}
			if got := reloadConfig(poll); got != tc.wantChanged {
				t.Fatalf("reloadConfig = %v, want %v", got, tc.wantChanged)
			}
			tc.check(t)
		})
	}
}

func TestSyncPlayerConfig(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	SetupPlayer(e)
	cfg.Player.Size = 3

	SyncPlayerConfig(e)

	entry, _ := components.Player.First(e.World)
	if got := components.Player.Get(entry).Size; got != 3 {
		t.Errorf("size = %v, want 3", got)
	}
}
