package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/herocarousel/carousel"
	"golang.org/x/image/font/basicfont"
)

const dotSize = 12

// hud holds the ebitenui overlay: the dot strip along the bottom edge and a
// pause badge in the top-right corner. It implements carousel.Indicators.
type hud struct {
	ui    *ebitenui.UI
	dots  *widget.Container
	badge *widget.Text

	buttons []*widget.Button
	group   *widget.RadioGroup
	dotImg  *widget.ButtonImage
}

func newHUD() *hud {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	h := &hud{
		dotImg: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}),
			Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xa0}),
			Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		},
	}

	h.dots = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 28, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	h.badge = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	badgePanel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	badgePanel.AddChild(h.badge)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(h.dots)
	root.AddChild(badgePanel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Render rebuilds the dot strip with one toggle button per slide.
func (h *hud) Render(count, active int, onSelect func(int)) {
	h.dots.RemoveChildren()
	h.buttons = h.buttons[:0]

	elements := make([]widget.RadioGroupElement, 0, count)
	for i := 0; i < count; i++ {
		idx := i
		btn := widget.NewButton(
			widget.ButtonOpts.Image(h.dotImg),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(dotSize, dotSize)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onSelect != nil {
					onSelect(idx)
				}
			}),
		)
		h.buttons = append(h.buttons, btn)
		elements = append(elements, btn)
		h.dots.AddChild(btn)
	}

	h.group = widget.NewRadioGroup(widget.RadioGroupOpts.Elements(elements...))
	h.Highlight(active)
}

func (h *hud) Highlight(active int) {
	if h.group == nil || active < 0 || active >= len(h.buttons) {
		return
	}
	h.group.SetActive(h.buttons[active])
}

// SetPaused shows why autoplay is held. Hover alone is not worth a badge.
func (h *hud) SetPaused(paused carousel.PauseSet) {
	label := ""
	if paused.Has(carousel.PauseTapToggle) {
		label = "PAUSED"
	}
	if h.badge.Label != label {
		h.badge.Label = label
	}
}

// Contains reports whether a screen point falls on the dot strip, so pointer
// gestures there are left to the buttons.
func (h *hud) Contains(x, y int) bool {
	if len(h.buttons) == 0 {
		return false
	}
	return image.Pt(x, y).In(h.dots.GetWidget().Rect)
}

func (h *hud) Update() {
	h.ui.Update()
}

func (h *hud) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
