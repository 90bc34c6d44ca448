package components

import "github.com/yohamta/donburi/features/events"

// AppExitEvent asks the host to shut down after the current frame
type AppExitEvent struct {
	Reason string
}

var AppExit = events.NewEventType[AppExitEvent]()
