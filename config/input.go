package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical demo action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionToggleSettings
	ActionToggleSnapping
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig contains input configuration
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp:         {Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
			ActionMenuDown:       {Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
			ActionMenuSelect:     {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionMenuBack:       {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionToggleSettings: {Keys: []ebiten.Key{ebiten.KeyTab}},
			ActionToggleSnapping: {Keys: []ebiten.Key{ebiten.KeyF1}},
		},
	}
}
