package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/tileeditor/config"
)

// statusBar is a one line ebitenui label pinned to the bottom left.
type statusBar struct {
	ui    *ebitenui.UI
	label *widget.Text
}

func newStatusBar(source *text.GoTextFaceSource, cfg *config.Config) *statusBar {
	var face text.Face = &text.GoTextFace{Source: source, Size: cfg.Text.Size * 0.8}

	label := widget.NewText(
		widget.TextOpts.Text("", &face, cfg.Colors.StatusText),
	)

	pad := int(cfg.Text.Padding)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 180})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: pad / 2, Bottom: pad / 2, Left: pad, Right: pad}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &statusBar{ui: &ebitenui.UI{Container: root}, label: label}
}

func (s *statusBar) Update(label string) {
	if s == nil {
		return
	}
	s.label.Label = label
	s.ui.Update()
}

func (s *statusBar) Draw(screen *ebiten.Image) {
	if s == nil {
		return
	}
	s.ui.Draw(screen)
}

func (e *Editor) statusText() string {
	rows, cols := e.grid.Size()
	line := fmt.Sprintf("%dx%d  selected: %s  default: %s  [O] import  [P] save  [L] load",
		rows, cols, e.icons.Selected(), e.icons.Default())
	if e.notice != "" {
		line += "  | " + e.notice
	}
	return line
}
