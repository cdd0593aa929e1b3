package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SnappingEnabled bool `json:"snappingEnabled"`
	FrictionIndex   int  `json:"frictionIndex"`
	LogFlings       bool `json:"logFlings"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "snapscroll",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result means no saved
// settings exist and the defaults apply.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &saved, nil
}

// SaveSettings writes the current settings component to disk.
func SaveSettings(e *ecs.ECS) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	settings := getOrCreateSettings(e)
	saved := &SavedSettings{
		SnappingEnabled: settings.SnappingEnabled,
		FrictionIndex:   settings.FrictionIndex,
		LogFlings:       settings.LogFlings,
	}

	data, err := json.Marshal(saved)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettings applies loaded settings to the live components.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	settings := getOrCreateSettings(e)
	settings.SnappingEnabled = saved.SnappingEnabled
	if saved.FrictionIndex >= 0 && saved.FrictionIndex < len(cfg.SettingsMenu.FrictionSteps) {
		settings.FrictionIndex = saved.FrictionIndex
	}
	settings.LogFlings = saved.LogFlings

	if entry, ok := components.Scroller.First(e.World); ok {
		RebuildPhysics(components.Scroller.Get(entry), settings)
	}
}
