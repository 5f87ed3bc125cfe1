package panelui

import (
	"fmt"
	"image/color"
)

// MaxCellHighlights is the most highlight colors a cell may carry. Hover
// adds one more at render time.
const MaxCellHighlights = 3

// GridStyle configures an ImageGrid.
//
// Cell i sits on line i/RunLength at offset i%RunLength. With ByCols lines
// run down the Y axis and offsets along X, so RunLength is the column
// count; without it the axes swap and RunLength is the row count.
type GridStyle struct {
	ByCols     bool
	RunLength  int
	ItemWidth  float64
	ItemHeight float64
	Padding    float64
	Highlight  color.Color // hovered cell, nil for none
	Background color.Color // nil for none
}

type gridCell struct {
	content    Drawable
	highlights []color.Color
}

// ImageGrid lays out fixed-size cells in lines of RunLength.
type ImageGrid struct {
	style GridStyle
	drag  DragState
	cells []gridCell
}

func NewImageGrid(style GridStyle) *ImageGrid {
	if style.RunLength < 1 {
		panic(fmt.Sprintf("panelui: grid run length must be at least 1, got %d", style.RunLength))
	}
	return &ImageGrid{style: style}
}

func NewDraggableImageGrid(style GridStyle, drag DragState) *ImageGrid {
	g := NewImageGrid(style)
	drag.Draggable = true
	g.drag = drag
	return g
}

func (g *ImageGrid) AddCell(d Drawable) {
	g.cells = append(g.cells, gridCell{content: d})
}

// AddCellWithHighlights appends a cell with layered highlight colors:
// colors[0] tints the whole cell behind the content, colors[1] covers the
// left half and colors[2] draws a cross over the middle thirds.
func (g *ImageGrid) AddCellWithHighlights(d Drawable, colors ...color.Color) {
	if len(colors) > MaxCellHighlights {
		panic(fmt.Errorf("%w: %d colors, max %d", ErrTooManyHighlights, len(colors), MaxCellHighlights))
	}
	g.cells = append(g.cells, gridCell{content: d, highlights: append([]color.Color(nil), colors...)})
}

func (g *ImageGrid) Len() int { return len(g.cells) }

func (g *ImageGrid) Style() GridStyle { return g.style }

// lineCounts returns how many cells span the X and Y axes.
func (g *ImageGrid) lineCounts() (cols, rows int) {
	n := len(g.cells)
	if n == 0 {
		return 0, 0
	}
	k := g.style.RunLength
	lines := (n + k - 1) / k
	cycle := min(n, k)
	if g.style.ByCols {
		return cycle, lines
	}
	return lines, cycle
}

func extent(count int, item, padding float64) float64 {
	if count == 0 {
		return 0
	}
	return float64(count)*item + float64(count-1)*padding
}

func (g *ImageGrid) Width() float64 {
	cols, _ := g.lineCounts()
	return extent(cols, g.style.ItemWidth, g.style.Padding)
}

func (g *ImageGrid) Height() float64 {
	_, rows := g.lineCounts()
	return extent(rows, g.style.ItemHeight, g.style.Padding)
}

func (g *ImageGrid) Size() (float64, float64) { return g.Width(), g.Height() }

func (g *ImageGrid) SetWidth(float64) { notImplemented("ImageGrid.SetWidth") }

func (g *ImageGrid) SetHeight(float64) { notImplemented("ImageGrid.SetHeight") }

func (g *ImageGrid) DragState() DragState { return g.drag }

func (g *ImageGrid) SetDragState(s DragState) { g.drag = s }

func (g *ImageGrid) Bounds(at Point) Rect { return RectAt(at, g.Width(), g.Height()) }

func (g *ImageGrid) Contains(p, at Point) bool { return PointInRect(p, g.Bounds(at)) }

// CellRect returns the rectangle of cell i for a grid placed at at.
func (g *ImageGrid) CellRect(i int, at Point) Rect {
	line := i / g.style.RunLength
	offset := i % g.style.RunLength

	stepX := g.style.ItemWidth + g.style.Padding
	stepY := g.style.ItemHeight + g.style.Padding

	var col, row int
	if g.style.ByCols {
		row, col = line, offset
	} else {
		col, row = line, offset
	}

	return Rect{
		X:      at.X + float64(col)*stepX,
		Y:      at.Y + float64(row)*stepY,
		Width:  g.style.ItemWidth,
		Height: g.style.ItemHeight,
	}
}

func (g *ImageGrid) HoveredIndex(p, at Point) (int, bool) {
	for i := range g.cells {
		if PointInRect(p, g.CellRect(i, at)) {
			return i, true
		}
	}
	return 0, false
}

func (g *ImageGrid) HoveredPath(p, at Point) []int {
	if i, ok := g.HoveredIndex(p, at); ok {
		return []int{i}
	}
	return nil
}

func (g *ImageGrid) DragUpdate(m MouseState, s DragState) DragState {
	return dragStep(m, s, g.Contains(m.Position, s.Position))
}

func (g *ImageGrid) Render(dst Surface, at Point, m MouseState) {
	if g.style.Background != nil {
		dst.FillRect(g.Bounds(at), g.style.Background)
	}

	hovered, isHovered := g.HoveredIndex(m.Position, at)
	for i, cell := range g.cells {
		highlights := cell.highlights
		if isHovered && i == hovered && g.style.Highlight != nil {
			// copy so the hover never leaks into the stored cell
			highlights = append(append([]color.Color(nil), highlights...), g.style.Highlight)
		}
		drawCell(dst, g.CellRect(i, at), cell.content, highlights)
	}
}

func drawCell(dst Surface, r Rect, content Drawable, highlights []color.Color) {
	if len(highlights) > 0 {
		dst.FillRect(r, highlights[0])
	}

	if content != nil {
		content.Draw(dst, r)
	}

	if len(highlights) > 1 {
		dst.FillRect(Rect{X: r.X, Y: r.Y, Width: r.Width / 2, Height: r.Height}, highlights[1])
	}

	for _, c := range highlights[min(len(highlights), 2):] {
		third := Rect{Width: r.Width / 3, Height: r.Height / 3}
		dst.FillRect(Rect{X: r.X + third.Width, Y: r.Y, Width: third.Width, Height: r.Height}, c)
		dst.FillRect(Rect{X: r.X, Y: r.Y + third.Height, Width: r.Width, Height: third.Height}, c)
	}
}
