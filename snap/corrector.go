package snap

// Layout resolves the leading item's geometry on a given axis. The
// host supplies one implementation per layout kind; the core never
// inspects the layout beyond this capability.
type Layout interface {
	// FirstVisible reports the geometry of the first visible item on
	// the axis, or ok=false when no item can be resolved (empty list,
	// unmeasured items).
	FirstVisible(axis Axis) (geom ItemGeometry, ok bool)
}

// Corrector rewrites fling velocities so scrolling always ends with an
// item edge on the viewport boundary, and decides edge snaps for drags
// released without a fling. All methods are synchronous and pure aside
// from reading the Layout.
type Corrector struct {
	Physics Physics
	Layout  Layout
	Enabled bool
}

// CorrectFling converts a raw fling velocity pair to a corrected pair.
// Only one axis is evaluated per call: vertical takes precedence when
// both components are non-zero (diagonal flings are not generalized;
// known limitation). With snapping disabled the inputs pass through
// unchanged. The corrected component always keeps the sign of the raw
// one.
func (c *Corrector) CorrectFling(velocityX, velocityY int) (int, int) {
	if !c.Enabled {
		return velocityX, velocityY
	}
	if velocityY != 0 {
		velocityY = c.correct(velocityY, Vertical)
	} else if velocityX != 0 {
		velocityX = c.correct(velocityX, Horizontal)
	}
	return velocityX, velocityY
}

func (c *Corrector) correct(velocity int, axis Axis) int {
	direction := 1
	if velocity < 0 {
		direction = -1
	}

	total := c.Physics.FlingDistance(velocity)

	geom, ok := c.Layout.FirstVisible(axis)
	if !ok {
		return velocity
	}

	adjusted := AdjustDistance(total, direction, geom)
	if adjusted == 0 {
		// Already aligned (or nothing to travel): keep the original
		// velocity rather than issuing a degenerate fling.
		return velocity
	}

	return c.Physics.VelocityForDistance(float64(adjusted)) * direction
}

// ReleaseSnap evaluates the idle-release snap decision for the axis.
// It returns the smooth-scroll delta to request from the host and
// ok=false when snapping is disabled or no leading item can be
// resolved, in which case no scroll should be issued.
func (c *Corrector) ReleaseSnap(axis Axis) (float64, bool) {
	if !c.Enabled {
		return 0, false
	}
	geom, ok := c.Layout.FirstVisible(axis)
	if !ok {
		return 0, false
	}
	return ReleaseSnapDelta(geom), true
}
