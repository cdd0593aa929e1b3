package layout

import (
	"math"

	"github.com/automoto/snapscroll/snap"
)

// Grid lays items out in fixed-span rows (or columns, for horizontal
// scrolling). All rows share a uniform extent along the scroll axis,
// so the leading-row resolution is identical to the linear case over
// row extents.
type Grid struct {
	Extent  float64 // row size along the scroll axis
	Count   int     // total item count
	Columns int     // items per row, > 0
}

// Rows returns the number of rows the items occupy.
func (g Grid) Rows() int {
	if g.Columns <= 0 {
		return 0
	}
	return (g.Count + g.Columns - 1) / g.Columns
}

// FirstVisibleAt resolves the leading row at the given scroll offset.
func (g Grid) FirstVisibleAt(offset float64) (snap.ItemGeometry, bool) {
	if g.Rows() <= 0 || g.Extent <= 0 {
		return snap.ItemGeometry{}, false
	}
	return snap.ItemGeometry{
		Offset: -math.Mod(offset, g.Extent),
		Extent: g.Extent,
	}, true
}

// ContentExtent returns the total scrollable size of the grid.
func (g Grid) ContentExtent() float64 {
	return float64(g.Rows()) * g.Extent
}

// FirstVisibleRow returns the index of the leading row.
func (g Grid) FirstVisibleRow(offset float64) int {
	if g.Extent <= 0 {
		return 0
	}
	return int(math.Floor(offset / g.Extent))
}
