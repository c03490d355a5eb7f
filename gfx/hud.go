package gfx

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go.creack.net/pong/pong"
)

var (
	hudPanelColor = color.NRGBA{R: 20, G: 24, B: 30, A: 200}
	hudTextColor  = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	hudHintColor  = color.NRGBA{R: 140, G: 150, B: 160, A: 255}
)

// hud is the settings panel shown while the match waits in Start.
type hud struct {
	ui *ebitenui.UI

	mode       *widget.Text
	difficulty *widget.Text
}

func newHUD(face text.Face, b pong.Bindings) *hud {
	mode := widget.NewText(widget.TextOpts.Text("", face, hudTextColor))
	difficulty := widget.NewText(widget.TextOpts.Text("", face, hudTextColor))
	hint := widget.NewText(widget.TextOpts.Text(
		fmt.Sprintf("%s/%s/%s mode, %s difficulty", b.Modes[0], b.Modes[1], b.Modes[2], b.Difficulty),
		face, hudHintColor))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(hudPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	panel.AddChild(mode)
	panel.AddChild(difficulty)
	panel.AddChild(hint)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(12)),
	)))
	root.AddChild(panel)

	return &hud{
		ui:         &ebitenui.UI{Container: root},
		mode:       mode,
		difficulty: difficulty,
	}
}

func (h *hud) Update(m *pong.Match) {
	h.refresh(m)
	h.ui.Update()
}

func (h *hud) refresh(m *pong.Match) {
	h.mode.Label = "Mode: " + m.Mode().String()
	h.difficulty.Label = "Difficulty: " + m.Difficulty().String()
}

func (h *hud) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
