package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for pointer hit-testing
const (
	ResolvButton = "button"
	ResolvCursor = "cursor"
)
