package panelui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Panel is implemented by TextList, ImageGrid and Column.
//
// Hit-testing and rendering always take the position the caller currently
// places the panel at, so repeated calls within a frame agree with each
// other and with whatever drag update produced that position.
type Panel interface {
	Width() float64
	Height() float64
	Size() (w, h float64)
	SetWidth(w float64)
	SetHeight(h float64)

	DragState() DragState
	SetDragState(s DragState)

	Bounds(at Point) Rect
	Contains(p, at Point) bool
	HoveredIndex(p, at Point) (int, bool)
	HoveredPath(p, at Point) []int

	// DragUpdate returns the state after one frame of input. It panics
	// with ErrNotDraggable when s is not draggable.
	DragUpdate(m MouseState, s DragState) DragState

	Render(dst Surface, at Point, m MouseState)
}

// Surface is where panels draw.
type Surface interface {
	FillRect(r Rect, c color.Color)
	DrawText(s string, at Point, size float64, c color.Color)
	DrawImage(img *ebiten.Image, r Rect)
}

// Drawable is cell content for an ImageGrid. The grid only positions it.
type Drawable interface {
	Draw(dst Surface, r Rect)
}

// TextMeasurer reports the rendered width of a string at a text size.
type TextMeasurer interface {
	MeasureText(s string, size float64) float64
}

// ColorFill draws a flat rectangle.
type ColorFill struct {
	Color color.Color
}

func (f ColorFill) Draw(dst Surface, r Rect) { dst.FillRect(r, f.Color) }

// ImageDrawable stretches an image over the cell.
type ImageDrawable struct {
	Image *ebiten.Image
}

func (d ImageDrawable) Draw(dst Surface, r Rect) {
	if d.Image == nil {
		return
	}
	dst.DrawImage(d.Image, r)
}
