package menus

import (
	"image/color"

	"github.com/automoto/dorian/components"
	cfg "github.com/automoto/dorian/config"
	"github.com/automoto/dorian/diagnostics"
	"github.com/automoto/dorian/states"
	"github.com/automoto/dorian/systems"
	"github.com/automoto/dorian/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Controller runs one Menu: it owns the menu's entity tree while the menu
// is shown and turns input into selection changes and effects.
type Controller[B components.MenuButton, S comparable] struct {
	menu   Menu[B, S]
	button *donburi.ComponentType[B]
	state  *states.Machine[S]
}

// NewController binds menu to the component tagging its buttons and the
// state machine its transitions target.
func NewController[B components.MenuButton, S comparable](menu Menu[B, S], button *donburi.ComponentType[B], state *states.Machine[S]) *Controller[B, S] {
	return &Controller[B, S]{
		menu:   menu,
		button: button,
		state:  state,
	}
}

// Setup resets the selection and spawns the root and one button per catalog
// entry in ordinal order.
func (c *Controller[B, S]) Setup(e *ecs.ECS) {
	systems.GetOrCreateSelection(e).SetIndex(0)

	var backdrop color.RGBA
	if b, ok := c.menu.(Backdropper); ok {
		backdrop = b.Backdrop()
	}
	root := factory.CreateMenuRoot(e, c.menu.Name(), backdrop)
	buttons := c.menu.Buttons()
	for _, b := range buttons {
		entry := factory.CreateMenuButton(e, root, b.Index(), len(buttons), b.String(), c.button)
		c.button.SetValue(entry, b)
	}
}

// Cleanup despawns every root of this menu together with its children.
func (c *Controller[B, S]) Cleanup(e *ecs.ECS) {
	var roots []*donburi.Entry
	components.MenuRoot.Each(e.World, func(entry *donburi.Entry) {
		if components.MenuRoot.Get(entry).Name == c.menu.Name() {
			roots = append(roots, entry)
		}
	})
	for _, root := range roots {
		factory.DespawnRecursive(e.World, root)
	}
}

// UpdateKeyboard applies the most recently pressed menu key of this frame.
// Only one action fires per frame.
func (c *Controller[B, S]) UpdateKeyboard(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)
	key, ok := input.LatestJustPressed(cfg.Input.Accepts(cfg.MenuActions...))
	if !ok {
		for _, k := range input.JustPressed {
			diagnostics.Debugf("%s menu: unhandled keyboard input: %v", c.menu.Name(), k)
		}
		return
	}

	selection := systems.GetOrCreateSelection(e)
	last := len(c.menu.Buttons()) - 1

	action, _ := cfg.Input.Match(key, cfg.MenuActions...)
	switch action {
	case cfg.ActionMenuUp:
		selection.SetIndex(max(selection.Index()-1, 0))
	case cfg.ActionMenuDown:
		selection.SetIndex(max(min(selection.Index()+1, last), 0))
	case cfg.ActionMenuSelect:
		c.ActivateSelected(e)
	}
}

// UpdatePointer handles buttons whose pointer state changed this frame.
// Hovering moves the selection; pressing activates that button directly.
func (c *Controller[B, S]) UpdatePointer(e *ecs.ECS) {
	selection := systems.GetOrCreateSelection(e)

	var pressed []B
	c.button.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Interaction) {
			return
		}
		interaction := components.Interaction.Get(entry)
		if !interaction.Changed {
			return
		}

		b := *c.button.Get(entry)
		switch interaction.State {
		case components.InteractionHovered:
			selection.SetIndex(b.Index())
		case components.InteractionPressed:
			pressed = append(pressed, b)
		case components.InteractionNone:
		}
	})

	for _, b := range pressed {
		c.Activate(e, b)
	}
}

// UpdateVisuals paints every button selected or normal from the current
// selection index.
func (c *Controller[B, S]) UpdateVisuals(e *ecs.ECS) {
	selection := systems.GetOrCreateSelection(e)

	c.button.Each(e.World, func(entry *donburi.Entry) {
		b := *c.button.Get(entry)
		data := components.Button.Get(entry)
		if b.Index() == selection.Index() {
			data.Background = cfg.Menu.ButtonSelectedColor
		} else {
			data.Background = cfg.Menu.ButtonColor
		}
	})
}

// ActivateSelected activates the button under the selection index. An index
// with no button is reported by the conversion and otherwise ignored.
func (c *Controller[B, S]) ActivateSelected(e *ecs.ECS) {
	b, err := components.ButtonFromIndex(c.menu.Buttons(), systems.GetOrCreateSelection(e).Index())
	if err != nil {
		return
	}
	c.Activate(e, b)
}

// Activate applies the effect of b: a transition request or an exit request.
func (c *Controller[B, S]) Activate(e *ecs.ECS, b B) {
	effect := c.menu.Activate(b)
	if effect.IsExit() {
		systems.RequestExit(e, c.menu.Name()+": "+b.String())
		return
	}
	next, _ := effect.Next()
	c.state.Set(e, next)
}
