package layout

import (
	"math"

	"github.com/automoto/snapscroll/snap"
)

// Linear is a single row or column of uniform-extent items.
type Linear struct {
	Extent float64 // item size along the scroll axis
	Count  int
}

// FirstVisibleAt resolves the leading item at the given scroll offset.
// The reported edge offset is <= 0: how far the item's leading edge
// sits past the viewport boundary.
func (l Linear) FirstVisibleAt(offset float64) (snap.ItemGeometry, bool) {
	if l.Count <= 0 || l.Extent <= 0 {
		return snap.ItemGeometry{}, false
	}
	return snap.ItemGeometry{
		Offset: -math.Mod(offset, l.Extent),
		Extent: l.Extent,
	}, true
}

// ContentExtent returns the total scrollable size of the list.
func (l Linear) ContentExtent() float64 {
	return float64(l.Count) * l.Extent
}

// FirstVisibleIndex returns the index of the leading item.
func (l Linear) FirstVisibleIndex(offset float64) int {
	if l.Extent <= 0 {
		return 0
	}
	return int(math.Floor(offset / l.Extent))
}
