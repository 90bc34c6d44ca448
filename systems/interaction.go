package systems

import (
	"github.com/automoto/dorian/components"
	"github.com/automoto/dorian/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteraction derives the pointer state of every interactive node from
// the cursor and marks the nodes whose state changed this frame.
// Must run after UpdateInput and before menu pointer handling.
func UpdateInteraction(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	hovered := ButtonsAt(e.World, input.CursorX, input.CursorY)

	components.Interaction.Each(e.World, func(entry *donburi.Entry) {
		interaction := components.Interaction.Get(entry)

		// A press must start on the node; dragging onto it only hovers
		next := components.InteractionNone
		if _, ok := hovered[entry.Entity()]; ok {
			next = components.InteractionHovered
			held := input.MouseDown && interaction.State == components.InteractionPressed
			if input.MouseJustPressed || held {
				next = components.InteractionPressed
			}
		}

		interaction.Changed = interaction.State != next
		interaction.State = next
	})
}

// ButtonsAt returns the interactive nodes whose hit-box contains the point
func ButtonsAt(w donburi.World, x, y float64) map[donburi.Entity]struct{} {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)
	if x < 0 || y < 0 || x >= float64(space.Width()*space.CellWidth) || y >= float64(space.Height()*space.CellHeight) {
		return nil
	}

	// Broad phase through the space cells, then an exact bounds test
	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvCursor)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvButton)
	if check == nil {
		return nil
	}

	hits := make(map[donburi.Entity]struct{})
	for _, obj := range check.ObjectsByTags(tags.ResolvButton) {
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			hits[entry.Entity()] = struct{}{}
		}
	}
	return hits
}
