package systems

import (
	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/automoto/snapscroll/snap"
)

// itemRect is a visible item's on-screen cell.
type itemRect struct {
	index      int
	x, y, w, h float64
}

// visibleItems returns the rects of every item at least partially
// inside the viewport, inset for rendering and hit-testing.
func visibleItems(sc *components.ScrollerData) []itemRect {
	if sc.Mode == components.LayoutGrid {
		return visibleGridItems(sc)
	}
	return visibleLinearItems(sc)
}

func visibleLinearItems(sc *components.ScrollerData) []itemRect {
	l := sc.Linear
	if l.Count <= 0 || l.Extent <= 0 {
		return nil
	}
	inset := cfg.Gallery.ItemInset

	first := l.FirstVisibleIndex(sc.Offset)
	if first < 0 {
		first = 0
	}
	last := l.FirstVisibleIndex(sc.Offset + sc.Viewport)
	if last >= l.Count {
		last = l.Count - 1
	}

	var rects []itemRect
	for i := first; i <= last; i++ {
		lead := float64(i)*l.Extent - sc.Offset
		// An item whose leading edge sits exactly on the far edge has
		// no visible pixels.
		if lead >= sc.Viewport {
			break
		}
		if sc.Axis == snap.Vertical {
			rects = append(rects, itemRect{
				index: i,
				x:     inset,
				y:     lead + inset,
				w:     float64(cfg.C.Width) - 2*inset,
				h:     l.Extent - 2*inset,
			})
		} else {
			rects = append(rects, itemRect{
				index: i,
				x:     lead + inset,
				y:     inset,
				w:     l.Extent - 2*inset,
				h:     float64(cfg.C.Height) - 2*inset,
			})
		}
	}
	return rects
}

func visibleGridItems(sc *components.ScrollerData) []itemRect {
	g := sc.Grid
	if g.Rows() <= 0 || g.Extent <= 0 {
		return nil
	}
	inset := cfg.Gallery.ItemInset
	cellW := float64(cfg.C.Width) / float64(g.Columns)

	firstRow := g.FirstVisibleRow(sc.Offset)
	if firstRow < 0 {
		firstRow = 0
	}
	lastRow := g.FirstVisibleRow(sc.Offset + sc.Viewport)
	if lastRow >= g.Rows() {
		lastRow = g.Rows() - 1
	}

	var rects []itemRect
	for r := firstRow; r <= lastRow; r++ {
		lead := float64(r)*g.Extent - sc.Offset
		if lead >= sc.Viewport {
			break
		}
		for c := 0; c < g.Columns; c++ {
			i := r*g.Columns + c
			if i >= g.Count {
				break
			}
			rects = append(rects, itemRect{
				index: i,
				x:     float64(c)*cellW + inset,
				y:     lead + inset,
				w:     cellW - 2*inset,
				h:     g.Extent - 2*inset,
			})
		}
	}
	return rects
}
