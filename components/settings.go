package components

import "github.com/yohamta/donburi"

// SettingsData stores the settings overlay state and the tunables it
// controls.
type SettingsData struct {
	IsOpen bool

	SnappingEnabled bool
	FrictionIndex   int // index into config.SettingsMenu.FrictionSteps
	LogFlings       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
