package snap

import (
	"math"
	"testing"
)

// stubLayout serves a fixed geometry, optionally only for one axis.
type stubLayout struct {
	geom ItemGeometry
	ok   bool
	axis Axis
	any  bool // serve all axes

	calls []Axis
}

func (s *stubLayout) FirstVisible(axis Axis) (ItemGeometry, bool) {
	s.calls = append(s.calls, axis)
	if !s.any && axis != s.axis {
		return ItemGeometry{}, false
	}
	return s.geom, s.ok
}

func newCorrector(l Layout) *Corrector {
	return &Corrector{
		Physics: testPhysics(),
		Layout:  l,
		Enabled: true,
	}
}

func TestCorrectFlingDisabledPassesThrough(t *testing.T) {
	c := newCorrector(&stubLayout{geom: ItemGeometry{Offset: -30, Extent: 100}, ok: true, any: true})
	c.Enabled = false

	for _, v := range [][2]int{{0, 4000}, {-2500, 0}, {1200, -1200}} {
		gx, gy := c.CorrectFling(v[0], v[1])
		if gx != v[0] || gy != v[1] {
			t.Errorf("CorrectFling(%d, %d) with snapping disabled = (%d, %d), want inputs unchanged",
				v[0], v[1], gx, gy)
		}
	}
}

func TestCorrectFlingUnresolvedLayoutLeavesVelocity(t *testing.T) {
	c := newCorrector(&stubLayout{ok: false, any: true})

	gx, gy := c.CorrectFling(0, 4000)
	if gx != 0 || gy != 4000 {
		t.Errorf("CorrectFling(0, 4000) with unresolved layout = (%d, %d), want (0, 4000)", gx, gy)
	}
}

func TestCorrectFlingAlignedItemZeroAdjustmentLeavesVelocity(t *testing.T) {
	// Backward fling shorter than one item extent from an aligned
	// item: rows=0 and residual=0, so the adjustment is 0 and the raw
	// velocity must survive.
	layout := &stubLayout{geom: ItemGeometry{Offset: 0, Extent: 1e9}, ok: true, any: true}
	c := newCorrector(layout)

	gx, gy := c.CorrectFling(0, -500)
	if gx != 0 || gy != -500 {
		t.Errorf("CorrectFling(0, -500) with zero adjustment = (%d, %d), want (0, -500)", gx, gy)
	}
}

func TestCorrectFlingVerticalPrecedence(t *testing.T) {
	layout := &stubLayout{geom: ItemGeometry{Offset: -30, Extent: 100}, ok: true, any: true}
	c := newCorrector(layout)

	gx, gy := c.CorrectFling(3000, 3000)
	if gx != 3000 {
		t.Errorf("horizontal component = %d, want untouched 3000 when vertical is non-zero", gx)
	}
	if gy == 3000 {
		t.Error("vertical component unchanged, want corrected")
	}
	for _, axis := range layout.calls {
		if axis != Vertical {
			t.Errorf("layout queried on %v, want vertical only", axis)
		}
	}
}

func TestCorrectFlingHorizontalWhenVerticalZero(t *testing.T) {
	layout := &stubLayout{geom: ItemGeometry{Offset: -30, Extent: 100}, ok: true, any: true}
	c := newCorrector(layout)

	gx, gy := c.CorrectFling(3000, 0)
	if gy != 0 {
		t.Errorf("vertical component = %d, want 0", gy)
	}
	if gx == 3000 || gx <= 0 {
		t.Errorf("horizontal component = %d, want corrected positive velocity", gx)
	}
}

func TestCorrectFlingPreservesSign(t *testing.T) {
	layout := &stubLayout{geom: ItemGeometry{Offset: -30, Extent: 100}, ok: true, any: true}
	c := newCorrector(layout)

	_, up := c.CorrectFling(0, -4000)
	if up >= 0 {
		t.Errorf("corrected velocity for raw -4000 = %d, want negative", up)
	}
	_, down := c.CorrectFling(0, 4000)
	if down <= 0 {
		t.Errorf("corrected velocity for raw 4000 = %d, want positive", down)
	}
}

// End-to-end: feeding the corrected velocity back through the same
// deceleration model must travel the snapped distance, which lands an
// item edge on the viewport boundary.
func TestCorrectedVelocityLandsOnItemBoundary(t *testing.T) {
	geom := ItemGeometry{Offset: -37, Extent: 120}
	layout := &stubLayout{geom: geom, ok: true, any: true}
	c := newCorrector(layout)

	for _, raw := range []int{600, 2000, 5000, -2000} {
		_, corrected := c.CorrectFling(0, raw)

		direction := 1.0
		if raw < 0 {
			direction = -1.0
		}
		adjusted := AdjustDistance(c.Physics.FlingDistance(raw), int(direction), geom)
		traveled := c.Physics.FlingDistance(corrected)

		if traveled < float64(adjusted) {
			t.Errorf("raw %d: simulator travels %v, undershoots snapped distance %d", raw, traveled, adjusted)
		}
		if traveled > float64(adjusted)*1.05+5 {
			t.Errorf("raw %d: simulator travels %v, far past snapped distance %d", raw, traveled, adjusted)
		}

		// The snapped distance itself aligns the leading edge: residual
		// plus current offset is a whole number of extents.
		var residual float64
		if direction > 0 {
			residual = geom.Extent + geom.Offset
		} else {
			residual = -geom.Offset
		}
		aligned := math.Mod(float64(adjusted)-residual, geom.Extent)
		if aligned != 0 {
			t.Errorf("raw %d: adjusted distance %d not on item grid (mod = %v)", raw, adjusted, aligned)
		}
	}
}

func TestReleaseSnap(t *testing.T) {
	tests := []struct {
		name      string
		layout    *stubLayout
		enabled   bool
		axis      Axis
		wantDelta float64
		wantOK    bool
	}{
		{
			name:      "snap back to near edge",
			layout:    &stubLayout{geom: ItemGeometry{Offset: -20, Extent: 100}, ok: true, axis: Vertical},
			enabled:   true,
			axis:      Vertical,
			wantDelta: -20,
			wantOK:    true,
		},
		{
			name:      "snap forward to far edge",
			layout:    &stubLayout{geom: ItemGeometry{Offset: -70, Extent: 100}, ok: true, axis: Vertical},
			enabled:   true,
			axis:      Vertical,
			wantDelta: 30,
			wantOK:    true,
		},
		{
			name:    "unresolved layout issues no scroll",
			layout:  &stubLayout{ok: false, axis: Vertical},
			enabled: true,
			axis:    Vertical,
			wantOK:  false,
		},
		{
			name:    "disabled issues no scroll",
			layout:  &stubLayout{geom: ItemGeometry{Offset: -70, Extent: 100}, ok: true, axis: Vertical},
			enabled: false,
			axis:    Vertical,
			wantOK:  false,
		},
		{
			name:      "horizontal axis resolves independently",
			layout:    &stubLayout{geom: ItemGeometry{Offset: -80, Extent: 96}, ok: true, axis: Horizontal},
			enabled:   true,
			axis:      Horizontal,
			wantDelta: 16,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCorrector(tt.layout)
			c.Enabled = tt.enabled

			delta, ok := c.ReleaseSnap(tt.axis)
			if ok != tt.wantOK {
				t.Fatalf("ReleaseSnap(%v) ok = %v, want %v", tt.axis, ok, tt.wantOK)
			}
			if ok && delta != tt.wantDelta {
				t.Errorf("ReleaseSnap(%v) = %v, want %v", tt.axis, delta, tt.wantDelta)
			}
		})
	}
}
