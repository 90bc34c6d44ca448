package factory

import (
	"testing"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

func spaceObjects(t *testing.T, e *ecs.ECS) int {
	t.Helper()
	entry, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("no space")
	}
	return len(components.Space.Get(entry).Objects())
}

func TestCreateMenuButtonLinksTree(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	root := CreateMenuRoot(e, "a", cfg.Menu.BackgroundColor)
	button := CreateMenuButton(e, root, 0, 1, "Only", components.StartMenuButton)

	children, ok := transform.GetChildren(root)
	if !ok || len(children) != 1 || children[0].Entity() != button.Entity() {
		t.Fatalf("root children = %v", children)
	}
	labels, ok := transform.GetChildren(button)
	if !ok || len(labels) != 1 || !labels[0].HasComponent(components.Label) {
		t.Fatalf("button children = %v", labels)
	}
	if got := components.Label.Get(labels[0]).Text; got != "Only" {
		t.Errorf("label = %q", got)
	}
	if n := spaceObjects(t, e); n != 1 {
		t.Errorf("expected 1 hit-box in space, got %d", n)
	}
}

func TestDespawnRecursive(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	root := CreateMenuRoot(e, "a", cfg.Menu.BackgroundColor)
	first := CreateMenuButton(e, root, 0, 2, "First", components.StartMenuButton)
	second := CreateMenuButton(e, root, 1, 2, "Second", components.StartMenuButton)

	other := CreateMenuRoot(e, "b", cfg.Menu.OverlayColor)
	survivor := CreateMenuButton(e, other, 0, 1, "Other", components.PauseMenuButton)

	got := Descendants(root)
	// root, two buttons and their labels
	if len(got) != 5 {
		t.Fatalf("expected 5 descendants, got %d", len(got))
	}
	if got[0].Entity() != root.Entity() {
		t.Errorf("root must come first")
	}

	rootEntity, firstEntity, secondEntity := root.Entity(), first.Entity(), second.Entity()
	if n := DespawnRecursive(e.World, root); n != 5 {
		t.Errorf("removed %d entities, want 5", n)
	}
	for _, entity := range []donburi.Entity{rootEntity, firstEntity, secondEntity} {
		if e.World.Valid(entity) {
			t.Errorf("entity %v still alive", entity)
		}
	}
	if !e.World.Valid(other.Entity()) || !e.World.Valid(survivor.Entity()) {
		t.Error("unrelated menu was removed")
	}
	if n := spaceObjects(t, e); n != 1 {
		t.Errorf("expected only the surviving hit-box, got %d", n)
	}

	if n := DespawnRecursive(e.World, root); n != 0 {
		t.Errorf("second despawn removed %d entities", n)
	}
}

func TestButtonRectLayout(t *testing.T) {
	_, y0, w, h := ButtonRect(0, 2)
	x1, y1, _, _ := ButtonRect(1, 2)

	if y1-y0 != h+2*cfg.Menu.ButtonMargin {
		t.Errorf("slot spacing = %v", y1-y0)
	}
	if x1+w/2 != float64(cfg.C.Width)/2 {
		t.Errorf("buttons not centered horizontally")
	}
	mid := (y0 + y1 + h) / 2
	if mid != float64(cfg.C.Height)/2 {
		t.Errorf("column not centered vertically: %v", mid)
	}
}
