package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuSelectionData holds the highlighted button index of the visible menu.
// Callers clamp; validation happens when the index is turned into a button.
type MenuSelectionData struct {
	index int
}

// Index returns the current selection index
func (s *MenuSelectionData) Index() int {
	return s.index
}

// SetIndex stores i as the current selection index
func (s *MenuSelectionData) SetIndex(i int) {
	s.index = i
}

var MenuSelection = donburi.NewComponentType[MenuSelectionData]()

// MenuRootData marks the container entity of a spawned menu
type MenuRootData struct {
	Name     string       // menu the root belongs to, used for cleanup
	Backdrop color.RGBA   // full-screen fill behind the buttons, zero for none
	Alpha    float64      // current fade-in opacity
	Fade     *gween.Tween // fade-in tween, nil once finished
}

var MenuRoot = donburi.NewComponentType[MenuRootData]()

// ButtonData describes an interactive menu node
type ButtonData struct {
	Index      int
	Label      string
	Background color.RGBA
}

var Button = donburi.NewComponentType[ButtonData]()

// InteractionState is the pointer state of an interactive node
type InteractionState int

const (
	InteractionNone InteractionState = iota
	InteractionHovered
	InteractionPressed
)

func (i InteractionState) String() string {
	switch i {
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	}
	return "None"
}

// InteractionData stores the pointer state and whether it changed this frame
type InteractionData struct {
	State   InteractionState
	Changed bool
}

var Interaction = donburi.NewComponentType[InteractionData]()

// LabelData is the text node of a button
type LabelData struct {
	Text     string
	FontSize float64
}

var Label = donburi.NewComponentType[LabelData]()
