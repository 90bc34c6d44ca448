package components

import (
	"fmt"

	"github.com/automoto/dorian/diagnostics"
	"github.com/yohamta/donburi"
)

// MenuButton is a closed, ordered set of selectable items of one menu.
// Index is the stable ordinal, String the display label.
type MenuButton interface {
	comparable
	Index() int
	String() string
}

// StartButton represents the start menu items
type StartButton int

const (
	StartButtonStart StartButton = iota
	StartButtonQuit
)

func (b StartButton) Index() int {
	return int(b)
}

func (b StartButton) String() string {
	switch b {
	case StartButtonStart:
		return "Start"
	case StartButtonQuit:
		return "Quit"
	}
	return fmt.Sprintf("StartButton(%d)", int(b))
}

// StartButtons returns the start menu catalog in ordinal order
func StartButtons() []StartButton {
	return []StartButton{StartButtonStart, StartButtonQuit}
}

// PauseButton represents the pause menu items
type PauseButton int

const (
	PauseButtonResume PauseButton = iota
	PauseButtonQuit
)

func (b PauseButton) Index() int {
	return int(b)
}

func (b PauseButton) String() string {
	switch b {
	case PauseButtonResume:
		return "Resume"
	case PauseButtonQuit:
		return "Quit"
	}
	return fmt.Sprintf("PauseButton(%d)", int(b))
}

// PauseButtons returns the pause menu catalog in ordinal order
func PauseButtons() []PauseButton {
	return []PauseButton{PauseButtonResume, PauseButtonQuit}
}

// ButtonFromIndex maps a selection index onto the catalog. An index with no
// button yields an Error-level record, which is emitted as it is built.
func ButtonFromIndex[B MenuButton](catalog []B, index int) (B, error) {
	for _, b := range catalog {
		if b.Index() == index {
			return b, nil
		}
	}
	var zero B
	return zero, diagnostics.Errorf(nil, "Invalid menu selection: index %d outside %d buttons", index, len(catalog))
}

var StartMenuButton = donburi.NewComponentType[StartButton]()
var PauseMenuButton = donburi.NewComponentType[PauseButton]()
