package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/automoto/snapscroll/snap"
	"github.com/automoto/snapscroll/systems"
	"github.com/automoto/snapscroll/systems/factory"
	"github.com/automoto/snapscroll/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GalleryScene runs the scrollable item gallery for one layout option
type GalleryScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	option       components.MainMenuOption
	once         sync.Once
}

// NewGalleryScene creates a gallery scene for the chosen menu option
func NewGalleryScene(sc SceneChanger, option components.MainMenuOption) *GalleryScene {
	return &GalleryScene{sceneChanger: sc, option: option}
}

func (gs *GalleryScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.IsSettingsOpen(gs.ecs) {
		gs.settingsUI.Update()
		return
	}

	// Esc returns to the menu when the overlay is closed.
	input := systems.GetInput(gs.ecs)
	if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}
}

func (gs *GalleryScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	if systems.IsSettingsOpen(gs.ecs) {
		gs.settingsUI.UI.Draw(screen)
	}
}

func (gs *GalleryScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	mode, axis := layoutFor(gs.option)
	scroller := factory.CreateScroller(gs.ecs, mode, axis)
	factory.CreateGallery(gs.ecs)
	factory.CreateSpace(gs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateSettingsMenu)
	gs.ecs.AddSystem(systems.UpdatePointer)
	gs.ecs.AddSystem(systems.UpdateScroller)
	gs.ecs.AddSystem(systems.UpdateHitTest)

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGallery)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	gs.settingsUI = ui.NewSettingsUI(gs.ecs, func() {
		systems.CloseSettings(gs.ecs)
	})

	if saved, _ := systems.LoadSettings(); saved != nil {
		systems.ApplySavedSettings(gs.ecs, saved)
	} else {
		// Defaults still need the physics derived for the scroller.
		systems.RebuildPhysics(components.Scroller.Get(scroller), systems.GetSettings(gs.ecs))
	}
}

func layoutFor(option components.MainMenuOption) (components.LayoutMode, snap.Axis) {
	switch option {
	case components.MainMenuHorizontalList:
		return components.LayoutLinear, snap.Horizontal
	case components.MainMenuGrid:
		return components.LayoutGrid, snap.Vertical
	default:
		return components.LayoutLinear, snap.Vertical
	}
}
