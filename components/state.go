package components

import (
	"github.com/yohamta/donburi"
)

// AppMode is the top-level application mode
type AppMode int

const (
	AppModeMenu AppMode = iota
	AppModeInGame
)

func (m AppMode) String() string {
	if m == AppModeInGame {
		return "InGame"
	}
	return "Menu"
}

// PauseMode is the in-game sub-state, meaningful only while InGame
type PauseMode int

const (
	PauseRunning PauseMode = iota
	PausePaused
)

func (m PauseMode) String() string {
	if m == PausePaused {
		return "Paused"
	}
	return "Running"
}

// StateData stores the current value of a state machine and a queued
// transition request. Requests take effect at the next frame boundary.
type StateData[S comparable] struct {
	Current S
	Next    S
	Pending bool
	Entered bool // OnEnter of the initial state has run
}

// Set queues a transition to next. The last request in a frame wins.
func (s *StateData[S]) Set(next S) {
	s.Next = next
	s.Pending = true
}

var AppState = donburi.NewComponentType[StateData[AppMode]]()
var PauseState = donburi.NewComponentType[StateData[PauseMode]]()
