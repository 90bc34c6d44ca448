package config

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// Bound reports whether key is bound to the action.
func (c InputConfig) Bound(id ActionID, key ebiten.Key) bool {
	binding, ok := c.Bindings[id]
	if !ok {
		return false
	}
	return slices.Contains(binding.Keys, key)
}

// Match returns the first of actions that key is bound to.
func (c InputConfig) Match(key ebiten.Key, actions ...ActionID) (ActionID, bool) {
	for _, id := range actions {
		if c.Bound(id, key) {
			return id, true
		}
	}
	return ActionNone, false
}

// Accepts returns a key filter passing keys bound to any of actions.
func (c InputConfig) Accepts(actions ...ActionID) func(ebiten.Key) bool {
	return func(key ebiten.Key) bool {
		_, ok := c.Match(key, actions...)
		return ok
	}
}

// Action groups read by a single-key policy
var (
	MenuActions = []ActionID{ActionMenuUp, ActionMenuDown, ActionMenuSelect}
	MoveActions = []ActionID{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight}
)

func resetInput() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
