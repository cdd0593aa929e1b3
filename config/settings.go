package config

// SettingsMenuConfig contains settings overlay configuration
type SettingsMenuConfig struct {
	FrictionSteps        []float64
	DefaultFrictionIndex int
	ColumnOptions        []int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		FrictionSteps:        []float64{0.008, 0.015, 0.03, 0.06},
		DefaultFrictionIndex: 1,
		ColumnOptions:        []int{2, 3, 4, 5},
	}
}
