package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tileeditor/panelui"
)

const paletteTitle = "Icons"

// iconCell draws an icon inset from the cell edge so the backing color
// shows around it.
type iconCell struct {
	image *ebiten.Image
	inset float64
}

func (c iconCell) Draw(dst panelui.Surface, r panelui.Rect) {
	panelui.ImageDrawable{Image: c.image}.Draw(dst, r.Pad(-c.inset, -c.inset, -c.inset, -c.inset))
}

func (e *Editor) icon(img *ebiten.Image) iconCell {
	return iconCell{image: img, inset: e.cfg.Tiles.Size / 8}
}

func (e *Editor) cellStyle(byCols bool, run int) panelui.GridStyle {
	return panelui.GridStyle{
		ByCols:     byCols,
		RunLength:  max(run, 1),
		ItemWidth:  e.cfg.Tiles.Size,
		ItemHeight: e.cfg.Tiles.Size,
		Padding:    e.cfg.Tiles.Spacing,
		Highlight:  e.cfg.Colors.Hover,
	}
}

// paletteHighlights marks the selected icon with its backing color and the
// default icon with a left-half overlay.
func (e *Editor) paletteHighlights(name string) []color.Color {
	c := e.cfg.Colors
	base := color.Color(c.Palette)
	if name == e.icons.Selected() {
		base = c.Selected
	}
	if name == e.icons.Default() {
		return []color.Color{base, c.DefaultIcon}
	}
	return []color.Color{base}
}

func (e *Editor) paletteGrid() *panelui.ImageGrid {
	g := panelui.NewImageGrid(e.cellStyle(true, e.cfg.Palette.Columns))
	for _, a := range e.icons.Assets() {
		g.AddCellWithHighlights(e.icon(a.Value), e.paletteHighlights(a.Name)...)
	}
	return g
}

// palettePanel builds the draggable palette column and returns the child
// index of its icon grid. The title is only shown when it fits over the
// grid; otherwise the grid itself is the drag handle.
func (e *Editor) palettePanel() (*panelui.Column[panelui.Panel], int) {
	col := panelui.NewDraggableColumn[panelui.Panel](e.palette)
	grid := e.paletteGrid()

	header := panelui.NewTextList(panelui.TextStyle{
		TextHeight:  e.cfg.Text.Size,
		Padding:     e.cfg.Text.Padding,
		ItemPadding: 0,
		Background:  e.cfg.Colors.Header,
		Text:        e.cfg.Colors.HeaderText,
	})
	header.AddText(paletteTitle, e.measurer)

	if header.Width() > grid.Width() {
		col.AddChild(grid, true)
		return col, 0
	}
	col.AddChild(header, true)
	col.AddChild(grid, false)
	return col, 1
}

// updatePalette drags the palette and handles icon clicks. It reports
// whether the palette has the pointer.
func (e *Editor) updatePalette(m panelui.MouseState) bool {
	col, gridIndex := e.palettePanel()
	e.palette = col.DragUpdate(m, e.palette)
	at := e.palette.Position

	if m.LeftPressed || m.RightPressed {
		path := col.HoveredPath(m.Position, at)
		if len(path) == 2 && path[0] == gridIndex {
			name := e.icons.Assets()[path[1]].Name
			if m.LeftPressed {
				e.icons.SetSelected(name)
			} else {
				e.icons.SetDefault(name)
			}
		}
	}

	return e.palette.Dragging || col.Contains(m.Position, at)
}

// tilePanel lays tiles out in storage order: each run of the grid is one
// column of rows tiles.
func (e *Editor) tilePanel() *panelui.ImageGrid {
	rows, _ := e.grid.Size()
	g := panelui.NewImageGrid(e.cellStyle(false, rows))
	for i := 0; i < e.grid.Len(); i++ {
		name, ok := e.grid.Get(e.grid.PosOf(i))
		if !ok {
			g.AddCellWithHighlights(e.icon(e.icons.DefaultValue()), e.cfg.Colors.DefaultTile)
			continue
		}
		img, _ := e.icons.Get(name)
		g.AddCellWithHighlights(e.icon(img), e.cfg.Colors.Tile)
	}
	return g
}

// tileOrigin centers the tile grid on the screen.
func (e *Editor) tileOrigin(g *panelui.ImageGrid) panelui.Point {
	return panelui.Point{
		X: (float64(e.screenW) - g.Width()) / 2,
		Y: (float64(e.screenH) - g.Height()) / 2,
	}
}

func (e *Editor) updateTiles(m panelui.MouseState) {
	if !m.LeftPressed && !m.RightPressed {
		return
	}
	g := e.tilePanel()
	i, ok := g.HoveredIndex(m.Position, e.tileOrigin(g))
	if !ok {
		return
	}
	p := e.grid.PosOf(i)
	if m.LeftPressed {
		e.grid.Set(p, e.icons.Selected())
		return
	}
	e.grid.Clear(p)
}
