package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/snapscroll/components"
	"github.com/automoto/snapscroll/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI holds the ebitenui settings overlay. It reads and
// mutates the live settings and scroller components directly.
type SettingsUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Callbacks
	OnClose func()

	// Widget references for updates
	snappingButton    *widget.Button
	frictionButton    *widget.Button
	orientationButton *widget.Button
	layoutButton      *widget.Button
	columnsButton     *widget.Button
	logFlingsButton   *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI creates the settings overlay bound to the given ECS
func NewSettingsUI(e *ecs.ECS, onClose func()) *SettingsUI {
	sui := &SettingsUI{
		ecs:     e,
		OnClose: onClose,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Smaller fonts to fit 640x360 screen
	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *SettingsUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	sui.snappingButton = sui.settingButton("", func() {
		systems.ToggleSnapping(sui.ecs)
	})
	contentContainer.AddChild(sui.snappingButton)

	sui.frictionButton = sui.settingButton("", func() {
		systems.CycleFriction(sui.ecs)
	})
	contentContainer.AddChild(sui.frictionButton)

	sui.orientationButton = sui.settingButton("", func() {
		systems.CycleOrientation(sui.ecs)
	})
	contentContainer.AddChild(sui.orientationButton)

	sui.layoutButton = sui.settingButton("", func() {
		systems.CycleLayoutMode(sui.ecs)
	})
	contentContainer.AddChild(sui.layoutButton)

	sui.columnsButton = sui.settingButton("", func() {
		systems.CycleColumns(sui.ecs)
	})
	contentContainer.AddChild(sui.columnsButton)

	sui.logFlingsButton = sui.settingButton("", func() {
		systems.ToggleLogFlings(sui.ecs)
	})
	contentContainer.AddChild(sui.logFlingsButton)

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Close", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnClose != nil {
				sui.OnClose()
			}
		}),
	)
	contentContainer.AddChild(closeButton)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (sui *SettingsUI) settingButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 24),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the button labels from the live components
func (sui *SettingsUI) UpdateUI() {
	settingsEntry, ok := components.Settings.First(sui.ecs.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(settingsEntry)

	setLabel := func(b *widget.Button, label string) {
		if b == nil {
			return
		}
		if textWidget := b.Text(); textWidget != nil {
			textWidget.Label = label
		}
	}

	setLabel(sui.snappingButton, systems.SnappingLabel(settings))
	setLabel(sui.frictionButton, systems.FrictionLabel(settings))
	setLabel(sui.logFlingsButton, systems.LogFlingsLabel(settings))

	scEntry, ok := components.Scroller.First(sui.ecs.World)
	if !ok {
		// Menu scene has no scroller; layout buttons stay disabled.
		for _, b := range []*widget.Button{sui.orientationButton, sui.layoutButton, sui.columnsButton} {
			if b != nil {
				b.GetWidget().Disabled = true
			}
		}
		return
	}
	sc := components.Scroller.Get(scEntry)

	setLabel(sui.orientationButton, systems.OrientationLabel(sc))
	setLabel(sui.layoutButton, systems.LayoutModeLabel(sc))
	setLabel(sui.columnsButton, systems.ColumnsLabel(sc))

	isGrid := sc.Mode == components.LayoutGrid
	sui.orientationButton.GetWidget().Disabled = isGrid
	sui.columnsButton.GetWidget().Disabled = !isGrid
}

// Update calls the UI's Update method and refreshes labels, so
// changes made outside the overlay (the F1 shortcut) show up too.
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	sui.UpdateUI()
}
