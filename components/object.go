package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the hit-box of an interactive node in the UI space
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv space holding every UI hit-box
var Space = donburi.NewComponentType[resolv.Space]()
