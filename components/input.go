package components

import (
	cfg "github.com/automoto/snapscroll/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the full state of an action for this frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds the polled keyboard action state, double-buffered so
// edge transitions can be derived.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
