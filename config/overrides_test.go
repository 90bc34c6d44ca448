package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestApplyOverrides(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "player_speed_only",
			yaml: "player:\n  speed: 8.5\n",
			check: func(t *testing.T) {
				if Player.Speed != 8.5 {
					t.Fatalf("expected speed 8.5, got %g", Player.Speed)
				}
				if Player.Size != 1.0 {
					t.Fatalf("size should keep default, got %g", Player.Size)
				}
			},
		},
		{
			name: "window_and_debug",
			yaml: "window:\n  width: 800\n  height: 600\ndebug:\n  verbose: true\n",
			check: func(t *testing.T) {
				if C.Width != 800 || C.Height != 600 {
					t.Fatalf("expected 800x600, got %dx%d", C.Width, C.Height)
				}
				if !Debug.Verbose {
					t.Fatalf("expected verbose debug")
				}
			},
		},
		{
			name:    "negative_size_rejected",
			yaml:    "player:\n  size: -1\n",
			wantErr: true,
			check: func(t *testing.T) {
				if Player.Size != 1.0 {
					t.Fatalf("rejected overrides must not apply, size=%g", Player.Size)
				}
			},
		},
		{
			name:    "malformed",
			yaml:    "player: [",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			err := ApplyOverrides([]byte(c.yaml))
			if (err != nil) != c.wantErr {
				t.Fatalf("ApplyOverrides error = %v, wantErr %v", err, c.wantErr)
			}
			if c.check != nil {
				c.check(t)
			}
		})
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	if err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "dorian.yaml")
	if err := os.WriteFile(path, []byte("menu:\n  button_width: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if Menu.ButtonWidth != 300 {
		t.Fatalf("expected button width 300, got %g", Menu.ButtonWidth)
	}
}

func TestAspectRatio(t *testing.T) {
	c := &Config{Width: 1280, Height: 720}
	if got := c.AspectRatio(); got < 1.777 || got > 1.778 {
		t.Fatalf("expected 16:9 aspect, got %g", got)
	}
	if got := (&Config{}).AspectRatio(); got != 1 {
		t.Fatalf("zero height should give 1, got %g", got)
	}
}

func TestInputBound(t *testing.T) {
	Reset()
	for _, k := range Input.Bindings[ActionMenuSelect].Keys {
		if !Input.Bound(ActionMenuSelect, k) {
			t.Fatalf("key %v should be bound to select", k)
		}
	}
	if Input.Bound(ActionNone, Input.Bindings[ActionPause].Keys[0]) {
		t.Fatalf("ActionNone has no bindings")
	}
}

func TestInputMatch(t *testing.T) {
	Reset()

	cases := []struct {
		name    string
		key     ebiten.Key
		actions []ActionID
		want    ActionID
		ok      bool
	}{
		{"move right", ebiten.KeyD, MoveActions, ActionMoveRight, true},
		{"menu select", ebiten.KeyNumpadEnter, MenuActions, ActionMenuSelect, true},
		{"enter is not movement", ebiten.KeyEnter, MoveActions, ActionNone, false},
		{"shift is nothing", ebiten.KeyShiftLeft, MenuActions, ActionNone, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Input.Match(tc.key, tc.actions...)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("Match = (%v, %v), want (%v, %v)", got, ok, tc.want, tc.ok)
			}
			if Input.Accepts(tc.actions...)(tc.key) != tc.ok {
				t.Fatalf("Accepts disagrees with Match")
			}
		})
	}
}
