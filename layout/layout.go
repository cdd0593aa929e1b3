// Package layout provides the item layouts the demo gallery scrolls
// through. Each layout resolves the leading item's geometry for the
// snap core and reports the total content extent for offset clamping.
package layout

import (
	"math"

	"github.com/automoto/snapscroll/snap"
)

// Resolver is the host-side capability the snap core needs: given the
// current scroll offset, report the leading item's geometry on the
// scroll axis.
type Resolver interface {
	FirstVisibleAt(offset float64) (snap.ItemGeometry, bool)
	ContentExtent() float64
}

// ClampOffset keeps a scroll offset inside the scrollable range of a
// layout for the given viewport extent.
func ClampOffset(l Resolver, offset, viewport float64) float64 {
	max := l.ContentExtent() - viewport
	if max < 0 {
		max = 0
	}
	return math.Max(0, math.Min(max, offset))
}
