package systems

import (
	"log"
	"math"

	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/automoto/snapscroll/layout"
	"github.com/automoto/snapscroll/snap"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroller advances the active scroll animation. The tween is
// the demo's stand-in for the platform fling simulator: it consumes
// the corrected velocity's distance and duration, so a snapped fling
// comes to rest with an item edge on the viewport boundary.
func UpdateScroller(e *ecs.ECS) {
	entry, ok := components.Scroller.First(e.World)
	if !ok {
		return
	}
	sc := components.Scroller.Get(entry)

	if sc.Anim == nil {
		return
	}

	pos, done := sc.Anim.Update(float32(1.0 / cfg.C.TPS))
	sc.Offset = layout.ClampOffset(sc.Resolver(), float64(pos), sc.Viewport)
	if done {
		sc.Anim = nil
		// Land on a whole pixel, as an integer-scrolling host would.
		sc.Offset = layout.ClampOffset(sc.Resolver(), math.Round(sc.Offset), sc.Viewport)
	}
}

// ScrollBy moves the viewport immediately (drag and wheel input).
func ScrollBy(sc *components.ScrollerData, delta float64) {
	sc.Offset = layout.ClampOffset(sc.Resolver(), sc.Offset+delta, sc.Viewport)
}

// StopAnim cancels the active animation, keeping the current offset.
// Pressing down mid-fling grabs the content.
func StopAnim(sc *components.ScrollerData) {
	sc.Anim = nil
}

// corrector builds the snap pipeline over the scroller's live state.
func corrector(sc *components.ScrollerData, settings *components.SettingsData) *snap.Corrector {
	return &snap.Corrector{
		Physics: sc.Physics,
		Layout:  sc,
		Enabled: settings.SnappingEnabled,
	}
}

// Fling runs the velocity correction pipeline and starts the fling
// animation. velocity is the content velocity in px/s along the
// scroller's axis; positive scrolls forward.
func Fling(sc *components.ScrollerData, settings *components.SettingsData, velocity int) {
	if velocity == 0 {
		return
	}

	c := corrector(sc, settings)

	var corrected int
	if sc.Axis == snap.Vertical {
		_, corrected = c.CorrectFling(0, velocity)
	} else {
		corrected, _ = c.CorrectFling(velocity, 0)
	}

	sc.LastFling = components.FlingInfo{RawVelocity: velocity, CorrectedVelocity: corrected}
	if settings.LogFlings {
		log.Printf("fling %s: %d -> %d", sc.Axis, velocity, corrected)
	}

	direction := 1.0
	if corrected < 0 {
		direction = -1.0
	}
	distance := sc.Physics.FlingDistance(corrected)
	duration := sc.Physics.FlingDuration(corrected)

	target := layout.ClampOffset(sc.Resolver(), sc.Offset+direction*distance, sc.Viewport)
	sc.Anim = gween.New(float32(sc.Offset), float32(target), float32(duration.Seconds()), ease.OutCubic)
}

// ReleaseSnap evaluates the idle-release decision and, when an edge
// snap is due, starts the short smooth scroll toward it.
func ReleaseSnap(sc *components.ScrollerData, settings *components.SettingsData) {
	delta, ok := corrector(sc, settings).ReleaseSnap(sc.Axis)
	if !ok || delta == 0 {
		return
	}

	target := layout.ClampOffset(sc.Resolver(), sc.Offset+delta, sc.Viewport)
	sc.Anim = gween.New(float32(sc.Offset), float32(target), float32(cfg.Scroll.SnapDuration), ease.OutQuad)
}

// RebuildPhysics rederives the fling coefficients after a friction
// setting change.
func RebuildPhysics(sc *components.ScrollerData, settings *components.SettingsData) {
	friction := cfg.SettingsMenu.FrictionSteps[settings.FrictionIndex]
	sc.Physics = snap.NewPhysics(cfg.Scroll.Density, friction)
}
