package snap

import "math"

// Axis selects which velocity component and which item dimension are
// relevant for a correction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ItemGeometry describes the leading item on the active axis as
// reported by the host layout. Offset is the signed distance of the
// item's leading edge from the viewport's leading edge (<= 0 once the
// item is scrolled partially past the boundary). Extent is the item's
// size along the axis and is always positive for laid-out items.
type ItemGeometry struct {
	Offset float64
	Extent float64
}

// AdjustDistance rounds a projected fling distance down to a whole
// number of item extents and adds the residual needed to land the
// leading item's edge exactly on the viewport boundary. direction is
// the sign of the fling (+1 forward, -1 backward). Because all items
// share a uniform extent, the result is exact, not approximate.
func AdjustDistance(distance float64, direction int, geom ItemGeometry) int {
	rows := math.Floor(distance / geom.Extent)

	var residual float64
	if direction > 0 {
		residual = geom.Extent + geom.Offset
	} else {
		residual = -geom.Offset
	}

	return int(rows*geom.Extent + residual)
}
