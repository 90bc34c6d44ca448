// Package menus is the generic in-game menu framework. A Menu supplies its
// button catalog and what each button does; Controller spawns it, drives
// keyboard and pointer navigation, and applies the chosen effect.
package menus

import (
	"image/color"

	"github.com/automoto/dorian/components"
)

// Menu is a concrete menu over button kind B that drives a state machine over S.
type Menu[B components.MenuButton, S comparable] interface {
	// Name identifies the menu's entity tree
	Name() string
	// Buttons returns the catalog in ordinal order
	Buttons() []B
	// Activate maps a button to its effect
	Activate(b B) Effect[S]
}

// Backdropper is implemented by menus drawn over a full-screen fill.
type Backdropper interface {
	Backdrop() color.RGBA
}

// Effect is the outcome of activating a button: a state transition or an
// application exit request.
type Effect[S comparable] struct {
	exit bool
	next S
}

// Transition requests the menu's state machine move to next.
func Transition[S comparable](next S) Effect[S] {
	return Effect[S]{next: next}
}

// Exit requests application exit.
func Exit[S comparable]() Effect[S] {
	return Effect[S]{exit: true}
}

// IsExit reports whether the effect is an exit request.
func (e Effect[S]) IsExit() bool {
	return e.exit
}

// Next returns the requested state and whether the effect is a transition.
func (e Effect[S]) Next() (S, bool) {
	return e.next, !e.exit
}
