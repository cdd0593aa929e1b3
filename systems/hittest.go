package systems

import (
	"github.com/automoto/snapscroll/components"
	"github.com/automoto/snapscroll/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitTest rebuilds the collision space from the currently
// visible item cells and refreshes the hovered index from the cursor.
func UpdateHitTest(e *ecs.ECS) {
	scEntry, ok := components.Scroller.First(e.World)
	if !ok {
		return
	}
	sc := components.Scroller.Get(scEntry)

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	rebuildSpace(space, sc)

	gallery, ok := components.Gallery.First(e.World)
	if !ok {
		return
	}
	gal := components.Gallery.Get(gallery)

	cx, cy := ebiten.CursorPosition()
	gal.Hovered = itemAt(space, float64(cx), float64(cy))
}

// SelectItemAt resolves a tap or click position to an item index and
// records the selection.
func SelectItemAt(e *ecs.ECS, x, y float64) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	gallery, ok := components.Gallery.First(e.World)
	if !ok {
		return
	}
	gal := components.Gallery.Get(gallery)

	if i := itemAt(space, x, y); i >= 0 {
		gal.Selected = i
	}
}

// rebuildSpace drops every item object and re-adds one per visible
// cell, carrying the item index in the object's Data.
func rebuildSpace(space *resolv.Space, sc *components.ScrollerData) {
	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvItem) {
			space.Remove(obj)
		}
	}
	for _, r := range visibleItems(sc) {
		obj := resolv.NewObject(r.x, r.y, r.w, r.h)
		obj.AddTags(tags.ResolvItem)
		obj.Data = r.index
		space.Add(obj)
	}
}

// itemAt probes the space with a 1x1 object and returns the index of
// the item cell containing the point, or -1.
func itemAt(space *resolv.Space, x, y float64) int {
	probe := resolv.NewObject(x, y, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvItem)
	if check == nil {
		return -1
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvItem) {
		// The broadphase works on cells; confirm the point is inside
		// the item rect itself.
		if x >= obj.X && x < obj.X+obj.W &&
			y >= obj.Y && y < obj.Y+obj.H {
			if i, ok := obj.Data.(int); ok {
				return i
			}
		}
	}
	return -1
}
