package components

import (
	"github.com/automoto/snapscroll/layout"
	"github.com/automoto/snapscroll/snap"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LayoutMode selects how the gallery arranges items.
type LayoutMode int

const (
	LayoutLinear LayoutMode = iota
	LayoutGrid
)

// FlingInfo records the last correction for the HUD.
type FlingInfo struct {
	RawVelocity       int
	CorrectedVelocity int
}

// ScrollerData is the scrollable viewport state. Offset grows as the
// content scrolls forward; the active animation (fling or edge snap)
// is a tween the scroller system advances each tick.
type ScrollerData struct {
	Axis     snap.Axis
	Mode     LayoutMode
	Offset   float64
	Viewport float64 // viewport extent along the scroll axis

	Linear layout.Linear
	Grid   layout.Grid

	// Physics is derived once from density and friction at scene
	// construction and rebuilt when the friction setting changes.
	Physics snap.Physics

	Anim      *gween.Tween
	LastFling FlingInfo
}

var Scroller = donburi.NewComponentType[ScrollerData]()

// Resolver returns the active layout for the current mode.
func (s *ScrollerData) Resolver() layout.Resolver {
	if s.Mode == LayoutGrid {
		return s.Grid
	}
	return s.Linear
}

// FirstVisible implements snap.Layout over the scroller's current
// state. Only the scroller's own axis resolves; the demo never scrolls
// both axes at once.
func (s *ScrollerData) FirstVisible(axis snap.Axis) (snap.ItemGeometry, bool) {
	if axis != s.Axis {
		return snap.ItemGeometry{}, false
	}
	return s.Resolver().FirstVisibleAt(s.Offset)
}
