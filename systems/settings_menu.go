package systems

import (
	cfg "github.com/automoto/snapscroll/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettingsMenu handles the keyboard shortcuts for the settings
// overlay: Tab opens and closes it, F1 toggles snapping directly.
func UpdateSettingsMenu(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := getOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleSettings).JustPressed {
		settings.IsOpen = !settings.IsOpen
	}
	if GetAction(input, cfg.ActionToggleSnapping).JustPressed {
		ToggleSnapping(e)
	}
	if settings.IsOpen && GetAction(input, cfg.ActionMenuBack).JustPressed {
		settings.IsOpen = false
	}
}
