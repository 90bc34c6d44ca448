package systems

import (
	"math"
	"testing"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const epsilon = 1e-9

func newPlayerWorld(t *testing.T, withCamera bool) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	if withCamera {
		SetupCamera(e)
	}
	SetupPlayer(e)
	player, ok := components.Player.First(e.World)
	if !ok {
		t.Fatal("player not spawned")
	}
	GetOrCreateClock(e).Delta = 0.1
	return e, player
}

func TestSetupPlayerIsIdempotent(t *testing.T) {
	e, _ := newPlayerWorld(t, true)
	SetupPlayer(e)

	n := 0
	components.Player.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Fatalf("expected one player, got %d", n)
	}
}

func TestPlayerMovement(t *testing.T) {
	step := cfg.Player.Speed * 0.1

	tests := []struct {
		name    string
		pressed []ebiten.Key
		wantX   float64
		wantY   float64
	}{
		{"no input", nil, 0, 0},
		{"right", []ebiten.Key{ebiten.KeyArrowRight}, step, 0},
		{"left", []ebiten.Key{ebiten.KeyA}, -step, 0},
		{"up", []ebiten.Key{ebiten.KeyW}, 0, step},
		{"down", []ebiten.Key{ebiten.KeyArrowDown}, 0, -step},
		{"latest key only", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, -step, 0},
		{"unbound key", []ebiten.Key{ebiten.KeyQ}, 0, 0},
		{"unbound key over direction", []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyArrowRight}, step, 0},
		{"menu key over direction", []ebiten.Key{ebiten.KeyEnter, ebiten.KeyS}, 0, -step},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newPlayerWorld(t, true)
			GetOrCreateInput(e).Pressed = tt.pressed

			UpdatePlayerMovement(e)

			pos := components.Transform.Get(player).Position
			if math.Abs(pos.X-tt.wantX) > epsilon || math.Abs(pos.Y-tt.wantY) > epsilon {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
			speed := math.Hypot(components.Velocity.Get(player).X, components.Velocity.Get(player).Y)
			if len(tt.pressed) > 0 && tt.wantX+tt.wantY != 0 && math.Abs(speed-cfg.Player.Speed) > epsilon {
				t.Errorf("speed = %v, want %v", speed, cfg.Player.Speed)
			}
		})
	}
}

func TestPlayerClampedToView(t *testing.T) {
	e, player := newPlayerWorld(t, true)
	camera, _ := activePerspectiveCamera(e)
	halfWidth, halfHeight := VisibleHalfExtents(camera, cfg.Camera.Z)
	margin := cfg.Player.Size / 2

	transform := components.Transform.Get(player)
	transform.Position.X = 100
	transform.Position.Y = -100

	UpdatePlayerMovement(e)

	if math.Abs(transform.Position.X-(halfWidth-margin)) > epsilon {
		t.Errorf("x = %v, want %v", transform.Position.X, halfWidth-margin)
	}
	if math.Abs(transform.Position.Y-(-halfHeight+margin)) > epsilon {
		t.Errorf("y = %v, want %v", transform.Position.Y, -halfHeight+margin)
	}

	// Holding a key against the edge keeps the player there
	GetOrCreateInput(e).Pressed = []ebiten.Key{ebiten.KeyArrowRight}
	for range 10 {
		UpdatePlayerMovement(e)
	}
	if transform.Position.X > halfWidth-margin+epsilon {
		t.Errorf("player left the view: x = %v", transform.Position.X)
	}
}

func TestPlayerNotClampedWithoutCamera(t *testing.T) {
	e, player := newPlayerWorld(t, false)
	transform := components.Transform.Get(player)
	transform.Position.X = 100

	UpdatePlayerMovement(e)

	if transform.Position.X != 100 {
		t.Errorf("x = %v, want 100", transform.Position.X)
	}
}

func TestClampPinsNarrowView(t *testing.T) {
	if got := clamp(3, 1, -1); got != 0 {
		t.Errorf("clamp = %v, want 0", got)
	}
	if got := clamp(3, -1, 1); got != 1 {
		t.Errorf("clamp = %v, want 1", got)
	}
}

func TestPlayerIntensity(t *testing.T) {
	tests := []struct {
		seconds float64
		want    float64
	}{
		{0, 0.5},
		{math.Pi / 2, 1},
		{math.Pi, 0.5},
		{3 * math.Pi / 2, 0},
	}
	for _, tt := range tests {
		if got := PlayerIntensity(tt.seconds); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("PlayerIntensity(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestPlayerAnimationFollowsGameTime(t *testing.T) {
	e, player := newPlayerWorld(t, true)

	GetOrCreateGameTime(e).Seconds = 0
	UpdatePlayerAnimation(e)
	at0 := components.Material.Get(player).BaseColor

	GetOrCreateGameTime(e).Seconds = math.Pi / 2
	UpdatePlayerAnimation(e)
	atPeak := components.Material.Get(player).BaseColor

	if at0 == atPeak {
		t.Errorf("colour did not change: %v", at0)
	}
	if want := cfg.RGB(0.5, 0.5, 0.75); atPeak != want {
		t.Errorf("peak colour = %v, want %v", atPeak, want)
	}
}

func TestGameTimeAccumulates(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	NewUpdateClock(0.25)(e)
	UpdateGameTime(e)
	UpdateGameTime(e)

	if got := GetOrCreateGameTime(e).Seconds; got != 0.5 {
		t.Errorf("game time = %v, want 0.5", got)
	}
	if got := GetOrCreateClock(e).Elapsed; got != 0.25 {
		t.Errorf("elapsed = %v, want 0.25", got)
	}
}

func TestCameraFollowsConfig(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e)

	prev := cfg.Camera.Z
	t.Cleanup(func() { cfg.Camera.Z = prev })
	cfg.Camera.Z = 20

	UpdateCameraProjection(e)

	entry, _ := components.Camera.First(e.World)
	if got := components.Camera.Get(entry).Z; got != 20 {
		t.Errorf("camera z = %v, want 20", got)
	}
}

func TestClipDistance(t *testing.T) {
	camera := &components.CameraData{Z: 10, Near: 0.1, Far: 20}

	tests := []struct {
		z    float64
		want bool
	}{
		{0, true},
		{9.95, false}, // closer than near
		{10, false},   // on the camera
		{12, false},   // behind
		{-15, false},  // past far
		{-10, true},
	}
	for _, tt := range tests {
		if _, ok := clipDistance(camera, tt.z); ok != tt.want {
			t.Errorf("clipDistance(z=%v) visible = %v, want %v", tt.z, ok, tt.want)
		}
	}
}
