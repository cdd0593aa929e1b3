package systems

import (
	"fmt"

	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/automoto/snapscroll/fonts"
	"github.com/automoto/snapscroll/snap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGallery renders the scrollable item cells, the viewport edge
// marker, and the scrollbar.
func DrawGallery(e *ecs.ECS, screen *ebiten.Image) {
	scEntry, ok := components.Scroller.First(e.World)
	if !ok {
		return
	}
	sc := components.Scroller.Get(scEntry)

	hovered, selected := -1, -1
	if galEntry, ok := components.Gallery.First(e.World); ok {
		gal := components.Gallery.Get(galEntry)
		hovered, selected = gal.Hovered, gal.Selected
	}

	labelFont := fonts.Label.Get()
	for _, r := range visibleItems(sc) {
		fill := cfg.Gallery.ItemColors[r.index%len(cfg.Gallery.ItemColors)]
		if r.index == hovered {
			fill = cfg.Gallery.HoverColor
		}
		vector.FillRect(screen,
			float32(r.x), float32(r.y), float32(r.w), float32(r.h),
			fill, false)
		if r.index == selected {
			vector.StrokeRect(screen,
				float32(r.x), float32(r.y), float32(r.w), float32(r.h),
				2, cfg.Gallery.SelectedColor, false)
		}

		label := fmt.Sprintf("%d", r.index)
		text.Draw(screen, label, labelFont,
			int(r.x)+8, int(r.y)+18, cfg.Gallery.LabelColor)
	}

	drawEdgeMarker(screen, sc)
	drawScrollbar(screen, sc)
}

// drawEdgeMarker draws a faint line along the viewport's leading edge,
// where snapped item boundaries come to rest.
func drawEdgeMarker(screen *ebiten.Image, sc *components.ScrollerData) {
	if sc.Axis == snap.Horizontal {
		vector.FillRect(screen,
			0, 0, 1, float32(cfg.C.Height),
			cfg.Gallery.EdgeColor, false)
		return
	}
	vector.FillRect(screen,
		0, 0, float32(cfg.C.Width), 1,
		cfg.Gallery.EdgeColor, false)
}

func drawScrollbar(screen *ebiten.Image, sc *components.ScrollerData) {
	content := sc.Resolver().ContentExtent()
	if content <= sc.Viewport {
		return
	}

	thumbLen := sc.Viewport * sc.Viewport / content
	thumbPos := sc.Offset / content * sc.Viewport
	w := cfg.Gallery.ScrollbarWidth

	if sc.Axis == snap.Horizontal {
		vector.FillRect(screen,
			float32(thumbPos), float32(float64(cfg.C.Height)-w),
			float32(thumbLen), float32(w),
			cfg.Gallery.ScrollbarColor, false)
		return
	}
	vector.FillRect(screen,
		float32(float64(cfg.C.Width)-w), float32(thumbPos),
		float32(w), float32(thumbLen),
		cfg.Gallery.ScrollbarColor, false)
}

// DrawHUD renders the scroll state readout in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	scEntry, ok := components.Scroller.First(e.World)
	if !ok {
		return
	}
	sc := components.Scroller.Get(scEntry)
	settings := getOrCreateSettings(e)

	smallFont := fonts.Small.Get()
	margin := int(cfg.HUD.Margin)
	line := 0
	drawLine := func(s string) {
		line++
		text.Draw(screen, s, smallFont, margin, margin+line*14, cfg.HUD.TextColor)
	}

	drawLine(SnappingLabel(settings) + "  (F1)")
	drawLine(FrictionLabel(settings))
	drawLine(LayoutModeLabel(sc) + "  " + OrientationLabel(sc))
	if f := sc.LastFling; f.RawVelocity != 0 {
		drawLine(fmt.Sprintf("Fling: %d -> %d px/s", f.RawVelocity, f.CorrectedVelocity))
	}
	text.Draw(screen, "Tab: settings   Esc: menu", smallFont,
		margin, cfg.C.Height-margin, cfg.HUD.DimColor)
}
