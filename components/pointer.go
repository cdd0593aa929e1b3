package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PointerSource identifies where the active press came from.
type PointerSource int

const (
	PointerMouse PointerSource = iota
	PointerTouch
)

// PointerData tracks the active press/drag gesture on the scroll axis.
// Position history is kept per tick so release velocity can be derived
// without wall-clock time (VelocityTracker role).
type PointerData struct {
	Pressed  bool
	Dragging bool // press moved past the touch slop
	Source   PointerSource
	TouchID  ebiten.TouchID

	PressPos float64 // axis position at press
	Last     float64 // axis position last tick
	LastX    float64 // full position last tick, kept for tap hit-testing
	LastY    float64

	samples []float64 // axis positions, newest last, bounded by window
	window  int
}

var Pointer = donburi.NewComponentType[PointerData]()

// Begin starts tracking a new press at the given axis position.
// window is the number of tick intervals release velocity is derived
// over.
func (p *PointerData) Begin(pos float64, window int) {
	p.Pressed = true
	p.Dragging = false
	p.PressPos = pos
	p.Last = pos
	p.window = window
	p.samples = p.samples[:0]
	p.samples = append(p.samples, pos)
}

// Track records this tick's axis position. The window counts tick
// intervals, so up to window+1 samples are kept.
func (p *PointerData) Track(pos float64) {
	p.Last = pos
	p.samples = append(p.samples, pos)
	if len(p.samples) > p.window+1 {
		p.samples = p.samples[len(p.samples)-p.window-1:]
	}
}

// Velocity returns the pointer's axis velocity in px/s over the sample
// window, given the tick rate the samples were recorded at.
func (p *PointerData) Velocity(tps float64) float64 {
	n := len(p.samples)
	if n < 2 {
		return 0
	}
	ticks := float64(n - 1)
	return (p.samples[n-1] - p.samples[0]) * tps / ticks
}

// End stops tracking the press.
func (p *PointerData) End() {
	p.Pressed = false
	p.Dragging = false
	p.samples = p.samples[:0]
}
