package systems

import (
	"math"

	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/automoto/snapscroll/snap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID
var justTouchedIDs []ebiten.TouchID

// UpdatePointer polls mouse and touch state and drives the scroller:
// wheel scrolls directly, drags move the content, and releases are
// classified as fling, idle release (edge snap), or tap.
func UpdatePointer(e *ecs.ECS) {
	scEntry, ok := components.Scroller.First(e.World)
	if !ok {
		return
	}
	sc := components.Scroller.Get(scEntry)
	pt := components.Pointer.Get(scEntry)
	settings := getOrCreateSettings(e)

	// The settings overlay owns the pointer while open.
	if settings.IsOpen {
		if pt.Pressed {
			pt.End()
		}
		return
	}

	updateWheel(sc)

	if !pt.Pressed {
		beginPress(sc, pt)
		return
	}

	alive, x, y := pointerAlive(pt)
	if alive {
		pos := axisOf(sc.Axis, x, y)
		if !pt.Dragging && math.Abs(pos-pt.PressPos) > cfg.Scroll.TouchSlop {
			pt.Dragging = true
		}
		if pt.Dragging {
			// Content follows the finger: dragging backward scrolls
			// the offset forward.
			ScrollBy(sc, pt.Last-pos)
		}
		pt.Track(pos)
		pt.LastX, pt.LastY = x, y
		return
	}

	finishPress(e, sc, pt, settings)
}

// beginPress starts gesture tracking on a new touch or mouse press.
// Grabbing mid-animation stops the fling where it is.
func beginPress(sc *components.ScrollerData, pt *components.PointerData) {
	justTouchedIDs = inpututil.AppendJustPressedTouchIDs(justTouchedIDs[:0])
	if len(justTouchedIDs) > 0 {
		id := justTouchedIDs[0]
		tx, ty := ebiten.TouchPosition(id)
		startTracking(sc, pt, components.PointerTouch, id, float64(tx), float64(ty))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		startTracking(sc, pt, components.PointerMouse, 0, float64(cx), float64(cy))
	}
}

func startTracking(sc *components.ScrollerData, pt *components.PointerData, src components.PointerSource, id ebiten.TouchID, x, y float64) {
	pt.Source = src
	pt.TouchID = id
	pt.Begin(axisOf(sc.Axis, x, y), cfg.Scroll.VelocityWindow)
	pt.LastX, pt.LastY = x, y
	StopAnim(sc)
}

// finishPress classifies the ended gesture and hands it to the
// scroller or the gallery.
func finishPress(e *ecs.ECS, sc *components.ScrollerData, pt *components.PointerData, settings *components.SettingsData) {
	pointerVelocity := pt.Velocity(cfg.C.TPS)
	dragged := pt.Dragging
	x, y := pt.LastX, pt.LastY
	pt.End()

	if !dragged {
		SelectItemAt(e, x, y)
		return
	}

	// Content velocity is the inverse of the pointer velocity.
	flingVelocity := -pointerVelocity
	if math.Abs(flingVelocity) >= cfg.Scroll.MinFlingVelocity {
		if flingVelocity > cfg.Scroll.MaxFlingVelocity {
			flingVelocity = cfg.Scroll.MaxFlingVelocity
		}
		if flingVelocity < -cfg.Scroll.MaxFlingVelocity {
			flingVelocity = -cfg.Scroll.MaxFlingVelocity
		}
		Fling(sc, settings, int(flingVelocity))
		return
	}

	// Drag released with no fling and the scroller already idle:
	// snap the leading item to the nearer edge.
	if sc.Anim == nil {
		ReleaseSnap(sc, settings)
	}
}

// pointerAlive reports whether the tracked press is still held and its
// current position. A vanished touch or released button ends it.
func pointerAlive(pt *components.PointerData) (alive bool, x, y float64) {
	if pt.Source == components.PointerTouch {
		touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
		for _, id := range touchIDs {
			if id == pt.TouchID {
				tx, ty := ebiten.TouchPosition(id)
				return true, float64(tx), float64(ty)
			}
		}
		return false, 0, 0
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		return true, float64(cx), float64(cy)
	}
	return false, 0, 0
}

func updateWheel(sc *components.ScrollerData) {
	wx, wy := ebiten.Wheel()
	var notches float64
	if sc.Axis == snap.Vertical {
		notches = wy
	} else {
		notches = wx
		if notches == 0 {
			notches = wy // plain wheels scroll the horizontal list too
		}
	}
	if notches != 0 {
		StopAnim(sc)
		ScrollBy(sc, -notches*cfg.Scroll.WheelStep)
	}
}

func axisOf(axis snap.Axis, x, y float64) float64 {
	if axis == snap.Vertical {
		return y
	}
	return x
}
