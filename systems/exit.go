package systems

import (
	"log"

	"github.com/automoto/dorian/components"
	"github.com/yohamta/donburi/ecs"
)

// RequestExit publishes a one-shot exit request for the host to consume
func RequestExit(e *ecs.ECS, reason string) {
	log.Printf("exit requested (%s)", reason)
	components.AppExit.Publish(e.World, components.AppExitEvent{Reason: reason})
}

// ProcessEvents delivers queued events to their subscribers
func ProcessEvents(e *ecs.ECS) {
	components.AppExit.ProcessEvents(e.World)
}
