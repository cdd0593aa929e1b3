package systems

import (
	"fmt"

	"github.com/automoto/snapscroll/archetypes"
	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/automoto/snapscroll/snap"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	entry := archetypes.Settings.Spawn(e)
	components.Settings.Set(entry, &components.SettingsData{
		SnappingEnabled: true,
		FrictionIndex:   cfg.SettingsMenu.DefaultFrictionIndex,
	})
	return components.Settings.Get(entry)
}

// GetSettings exposes the singleton settings component to scene code.
func GetSettings(e *ecs.ECS) *components.SettingsData {
	return getOrCreateSettings(e)
}

// IsSettingsOpen reports whether the settings overlay is up.
func IsSettingsOpen(e *ecs.ECS) bool {
	return getOrCreateSettings(e).IsOpen
}

// CloseSettings dismisses the settings overlay.
func CloseSettings(e *ecs.ECS) {
	getOrCreateSettings(e).IsOpen = false
}

// ToggleSnapping flips the snap correction gate.
func ToggleSnapping(e *ecs.ECS) {
	settings := getOrCreateSettings(e)
	settings.SnappingEnabled = !settings.SnappingEnabled
	SaveSettings(e)
}

// CycleFriction steps through the preset friction values and rebuilds
// the scroller physics with the new coefficient.
func CycleFriction(e *ecs.ECS) {
	settings := getOrCreateSettings(e)
	settings.FrictionIndex = (settings.FrictionIndex + 1) % len(cfg.SettingsMenu.FrictionSteps)
	if entry, ok := components.Scroller.First(e.World); ok {
		RebuildPhysics(components.Scroller.Get(entry), settings)
	}
	SaveSettings(e)
}

// ToggleLogFlings flips per-fling logging.
func ToggleLogFlings(e *ecs.ECS) {
	settings := getOrCreateSettings(e)
	settings.LogFlings = !settings.LogFlings
	SaveSettings(e)
}

// CycleOrientation swaps the list axis. Grid mode stays vertical, so
// the toggle only applies to linear layouts.
func CycleOrientation(e *ecs.ECS) {
	entry, ok := components.Scroller.First(e.World)
	if !ok {
		return
	}
	sc := components.Scroller.Get(entry)
	if sc.Mode == components.LayoutGrid {
		return
	}
	if sc.Axis == snap.Vertical {
		setLayout(sc, components.LayoutLinear, snap.Horizontal)
	} else {
		setLayout(sc, components.LayoutLinear, snap.Vertical)
	}
}

// CycleLayoutMode switches between the linear list and the grid.
func CycleLayoutMode(e *ecs.ECS) {
	entry, ok := components.Scroller.First(e.World)
	if !ok {
		return
	}
	sc := components.Scroller.Get(entry)
	if sc.Mode == components.LayoutLinear {
		setLayout(sc, components.LayoutGrid, snap.Vertical)
	} else {
		setLayout(sc, components.LayoutLinear, snap.Vertical)
	}
}

// CycleColumns steps the grid column count through the presets.
func CycleColumns(e *ecs.ECS) {
	entry, ok := components.Scroller.First(e.World)
	if !ok {
		return
	}
	sc := components.Scroller.Get(entry)
	opts := cfg.SettingsMenu.ColumnOptions
	next := opts[0]
	for i, c := range opts {
		if c == sc.Grid.Columns {
			next = opts[(i+1)%len(opts)]
			break
		}
	}
	sc.Grid.Columns = next
	if sc.Mode == components.LayoutGrid {
		resetScroll(sc)
	}
}

// setLayout applies a new layout mode and axis, recomputing the
// viewport extent and resetting the scroll position.
func setLayout(sc *components.ScrollerData, mode components.LayoutMode, axis snap.Axis) {
	sc.Mode = mode
	sc.Axis = axis
	if axis == snap.Horizontal {
		sc.Viewport = float64(cfg.C.Width)
	} else {
		sc.Viewport = float64(cfg.C.Height)
	}
	resetScroll(sc)
}

func resetScroll(sc *components.ScrollerData) {
	StopAnim(sc)
	sc.Offset = 0
	sc.LastFling = components.FlingInfo{}
}

// SnappingLabel and friends feed the settings overlay and the HUD.

func SnappingLabel(settings *components.SettingsData) string {
	if settings.SnappingEnabled {
		return "Snapping: On"
	}
	return "Snapping: Off"
}

func FrictionLabel(settings *components.SettingsData) string {
	return fmt.Sprintf("Friction: %.3f", cfg.SettingsMenu.FrictionSteps[settings.FrictionIndex])
}

func OrientationLabel(sc *components.ScrollerData) string {
	if sc.Mode == components.LayoutGrid {
		return "Orientation: vertical"
	}
	return "Orientation: " + sc.Axis.String()
}

func LayoutModeLabel(sc *components.ScrollerData) string {
	if sc.Mode == components.LayoutGrid {
		return "Layout: Grid"
	}
	return "Layout: List"
}

func ColumnsLabel(sc *components.ScrollerData) string {
	return fmt.Sprintf("Columns: %d", sc.Grid.Columns)
}

func LogFlingsLabel(settings *components.SettingsData) string {
	if settings.LogFlings {
		return "Log Flings: On"
	}
	return "Log Flings: Off"
}
