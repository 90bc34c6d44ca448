package factory

import (
	"image/color"

	"github.com/automoto/dorian/archetypes"
	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// CreateMenuRoot spawns the container of a menu. It fades in over
// cfg.Menu.FadeSeconds.
func CreateMenuRoot(ecs *ecs.ECS, name string, backdrop color.RGBA) *donburi.Entry {
	root := archetypes.MenuRoot.Spawn(ecs)

	data := components.MenuRootData{Name: name, Backdrop: backdrop, Alpha: 1}
	if cfg.Menu.FadeSeconds > 0 {
		data.Alpha = 0
		data.Fade = gween.New(0, 1, float32(cfg.Menu.FadeSeconds), ease.OutQuad)
	}
	components.MenuRoot.SetValue(root, data)

	return root
}

// CreateMenuButton spawns the button at slot index of count under root, with
// its label child and hit-box. kind is the menu-specific button component,
// left for the caller to fill.
func CreateMenuButton(ecs *ecs.ECS, root *donburi.Entry, index, count int, label string, kind donburi.IComponentType) *donburi.Entry {
	button := archetypes.MenuButton.Spawn(ecs, kind)

	x, y, w, h := ButtonRect(index, count)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvButton)
	obj.Data = button
	components.Object.SetValue(button, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Button.SetValue(button, components.ButtonData{
		Index:      index,
		Label:      label,
		Background: cfg.Menu.ButtonColor,
	})
	components.Interaction.SetValue(button, components.InteractionData{})
	transform.AppendChild(root, button, false)

	text := archetypes.Label.Spawn(ecs)
	components.Label.SetValue(text, components.LabelData{
		Text:     label,
		FontSize: cfg.Menu.FontSize,
	})
	transform.AppendChild(button, text, false)

	return button
}

// ButtonRect lays buttons out as a column centered on the screen
func ButtonRect(index, count int) (x, y, w, h float64) {
	w = cfg.Menu.ButtonWidth
	h = cfg.Menu.ButtonHeight
	slot := h + 2*cfg.Menu.ButtonMargin
	top := (float64(cfg.C.Height) - float64(count)*slot) / 2

	x = (float64(cfg.C.Width) - w) / 2
	y = top + float64(index)*slot + cfg.Menu.ButtonMargin
	return x, y, w, h
}
