package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all demo entities and renderers use.
const Default = ecs.LayerDefault

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    float64 // fixed tick rate the simulation assumes
}

// GalleryConfig contains the demo item list configuration
type GalleryConfig struct {
	ItemCount  int
	ItemExtent float64 // uniform item size along the scroll axis
	ItemInset  float64 // visual margin inside each item cell
	Columns    int     // default grid span

	ItemColors    []color.RGBA
	SelectedColor color.RGBA
	HoverColor    color.RGBA
	LabelColor    color.RGBA
	EdgeColor     color.RGBA // viewport boundary marker

	ScrollbarWidth float64
	ScrollbarColor color.RGBA
}

// ScrollConfig contains fling and gesture tuning
type ScrollConfig struct {
	// Physics
	Density  float64 // display density, 1.0 = 160 ppi baseline
	Friction float64 // scroll friction coefficient

	// Gesture classification
	MinFlingVelocity float64 // px/s below which a release is not a fling
	MaxFlingVelocity float64 // px/s clamp for wild gestures
	TouchSlop        float64 // px of movement before a press becomes a drag
	VelocityWindow   int     // tick intervals of pointer history used for velocity

	// Host animation driver
	SnapDuration float64 // seconds for idle-release edge snaps
	WheelStep    float64 // px per wheel notch
}

// HUDConfig contains overlay text configuration
type HUDConfig struct {
	TextColor color.RGBA
	DimColor  color.RGBA
	Margin    float64
}

// MenuConfig contains main menu configuration
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// Global configuration instances
var C *Config
var Gallery GalleryConfig
var Scroll ScrollConfig
var HUD HUDConfig
var Menu MenuConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60.0,
	}

	Gallery = GalleryConfig{
		ItemCount:  40,
		ItemExtent: 96,
		ItemInset:  6,
		Columns:    4,

		ItemColors: []color.RGBA{
			{R: 52, G: 84, B: 132, A: 255},
			{R: 60, G: 110, B: 96, A: 255},
			{R: 128, G: 84, B: 60, A: 255},
			{R: 96, G: 64, B: 120, A: 255},
		},
		SelectedColor: Orange,
		HoverColor:    color.RGBA{R: 90, G: 130, B: 180, A: 255},
		LabelColor:    White,
		EdgeColor:     color.RGBA{R: 255, G: 255, B: 255, A: 60},

		ScrollbarWidth: 4,
		ScrollbarColor: color.RGBA{R: 200, G: 200, B: 200, A: 140},
	}

	Scroll = ScrollConfig{
		Density:  1.0,
		Friction: 0.015,

		MinFlingVelocity: 50,
		MaxFlingVelocity: 8000,
		TouchSlop:        4,
		VelocityWindow:   6, // ~100ms at 60 TPS

		SnapDuration: 0.18,
		WheelStep:    48,
	}

	HUD = HUDConfig{
		TextColor: White,
		DimColor:  color.RGBA{R: 170, G: 170, B: 170, A: 255},
		Margin:    8,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            70,
		MenuStartY:        140,
		MenuItemHeight:    30,
		MenuOptions:       []string{"Vertical List", "Horizontal List", "Grid", "Exit"},
	}
}
