package components

import (
	"github.com/yohamta/donburi"
)

// Projection is the camera projection kind
type Projection int

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

type CameraData struct {
	X, Y, Z                      float64 // world position
	ForwardX, ForwardY, ForwardZ float64 // unit view direction
	Projection                   Projection
	FOV                          float64 // vertical field of view in radians
	AspectRatio                  float64
	Near, Far                    float64 // clip distances
	Active                       bool
}

var Camera = donburi.NewComponentType[CameraData]()
