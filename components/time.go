package components

import "github.com/yohamta/donburi"

// ClockData is the host frame time in seconds
type ClockData struct {
	Delta   float64 // elapsed since the previous frame
	Elapsed float64 // elapsed since start
}

var Clock = donburi.NewComponentType[ClockData]()

// GameTimeData accumulates seconds spent in game while not paused
type GameTimeData struct {
	Seconds float64
}

var GameTime = donburi.NewComponentType[GameTimeData]()
