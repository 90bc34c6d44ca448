package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Size float64 // cube edge length, used for the on-screen margin
}

var Player = donburi.NewComponentType[PlayerData]()

// TransformData is a world-space position. Position is the movement plane,
// Z the depth of that plane.
type TransformData struct {
	Position math.Vec2
	Z        float64
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData is the movement velocity applied in the last frame
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()

// MaterialData is the animated surface colour of a mesh
type MaterialData struct {
	BaseColor color.RGBA
}

var Material = donburi.NewComponentType[MaterialData]()
