package factory

import (
	"github.com/automoto/snapscroll/archetypes"
	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/automoto/snapscroll/layout"
	"github.com/automoto/snapscroll/snap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScroller spawns the scrollable viewport for the chosen layout
func CreateScroller(ecs *ecs.ECS, mode components.LayoutMode, axis snap.Axis) *donburi.Entry {
	entry := archetypes.Scroller.Spawn(ecs)

	viewport := float64(cfg.C.Height)
	if axis == snap.Horizontal {
		viewport = float64(cfg.C.Width)
	}

	components.Scroller.Set(entry, &components.ScrollerData{
		Axis:     axis,
		Mode:     mode,
		Viewport: viewport,
		Linear: layout.Linear{
			Extent: cfg.Gallery.ItemExtent,
			Count:  cfg.Gallery.ItemCount,
		},
		Grid: layout.Grid{
			Extent:  cfg.Gallery.ItemExtent,
			Count:   cfg.Gallery.ItemCount,
			Columns: cfg.Gallery.Columns,
		},
		Physics: snap.NewPhysics(cfg.Scroll.Density, cfg.Scroll.Friction),
	})
	return entry
}

// CreateGallery spawns the item selection state
func CreateGallery(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Gallery.Spawn(ecs)
	components.Gallery.Set(entry, &components.GalleryData{
		Selected: -1,
		Hovered:  -1,
	})
	return entry
}

// CreateSpace spawns the hit-testing collision space
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
