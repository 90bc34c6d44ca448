package factory

import (
	"github.com/automoto/dorian/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/transform"
)

// Descendants returns root and every entry below it, parents before children.
func Descendants(root *donburi.Entry) []*donburi.Entry {
	if !root.Valid() {
		return nil
	}
	out := []*donburi.Entry{root}
	for i := 0; i < len(out); i++ {
		children, ok := transform.GetChildren(out[i])
		if !ok {
			continue
		}
		for _, child := range children {
			if child.Valid() {
				out = append(out, child)
			}
		}
	}
	return out
}

// DespawnRecursive removes root and all of its descendants and returns how
// many entities went. Hit-boxes are taken out of the UI space first.
func DespawnRecursive(w donburi.World, root *donburi.Entry) int {
	doomed := Descendants(root)
	if len(doomed) == 0 {
		return 0
	}

	spaceEntry, hasSpace := components.Space.First(w)
	for _, entry := range doomed {
		if !hasSpace || !entry.HasComponent(components.Object) {
			continue
		}
		if obj := components.Object.Get(entry); obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}

	transform.RemoveRecursive(root)
	return len(doomed)
}
