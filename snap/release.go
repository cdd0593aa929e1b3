package snap

import "math"

// ReleaseSnapDelta picks the nearer viewport edge for an item left at
// an arbitrary offset after a drag ends without a fling. If the item
// has been pulled less than half its extent past the boundary the
// delta scrolls it back to the near edge, otherwise forward to the far
// edge. Nearest-edge heuristic, not physics.
func ReleaseSnapDelta(geom ItemGeometry) float64 {
	if geom.Extent/2 > math.Abs(geom.Offset) {
		return geom.Offset
	}
	return geom.Extent + geom.Offset
}
