package panelui

import "image/color"

const (
	defaultTextHeight  = 20
	defaultItemPadding = 5
)

// TextStyle configures a TextList. A nil Hover disables row highlighting.
type TextStyle struct {
	TextHeight  float64
	Padding     float64
	ItemPadding float64
	Background  color.Color
	Text        color.Color
	Hover       color.Color
}

// DefaultTextStyle returns the stock list look with the given outer padding.
func DefaultTextStyle(padding float64) TextStyle {
	return TextStyle{
		TextHeight:  defaultTextHeight,
		Padding:     padding,
		ItemPadding: defaultItemPadding,
		Background:  color.RGBA{R: 0xfd, G: 0xf9, B: 0x00, A: 0xff},
		Text:        color.RGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff},
		Hover:       color.RGBA{R: 0xff, G: 0xa1, B: 0x00, A: 0xff},
	}
}

type textRow struct {
	text   string
	width  float64 // measured, without padding
	height float64
}

// TextList is a vertical stack of clickable text rows.
type TextList struct {
	style  TextStyle
	drag   DragState
	width  float64
	height float64
	rows   []textRow
}

func NewTextList(style TextStyle) *TextList {
	return &TextList{
		style:  style,
		width:  style.Padding * 2,
		height: style.Padding * 2,
	}
}

func NewDraggableTextList(style TextStyle, drag DragState) *TextList {
	l := NewTextList(style)
	drag.Draggable = true
	l.drag = drag
	return l
}

// AddRow appends a row of the style's text height.
func (l *TextList) AddRow(text string, measuredWidth float64) {
	l.AddRowHeight(text, measuredWidth, l.style.TextHeight)
}

func (l *TextList) AddRowHeight(text string, measuredWidth, height float64) {
	l.rows = append(l.rows, textRow{text: text, width: measuredWidth, height: height})

	if withPad := measuredWidth + l.style.Padding*2; l.width < withPad {
		l.width = withPad
	}

	l.height += height
	if len(l.rows) > 1 {
		l.height += l.style.ItemPadding
	}
}

// AddText measures text at the style's height and appends it.
func (l *TextList) AddText(text string, m TextMeasurer) {
	l.AddRow(text, m.MeasureText(text, l.style.TextHeight))
}

func (l *TextList) AddTexts(texts []string, m TextMeasurer) {
	for _, t := range texts {
		l.AddText(t, m)
	}
}

func (l *TextList) Rows() int { return len(l.rows) }

func (l *TextList) Row(i int) string { return l.rows[i].text }

func (l *TextList) Style() TextStyle { return l.style }

func (l *TextList) Width() float64 { return l.width }
func (l *TextList) Height() float64 { return l.height }
func (l *TextList) Size() (float64, float64) { return l.width, l.height }
func (l *TextList) SetWidth(w float64) { l.width = w }
func (l *TextList) SetHeight(h float64) { l.height = h }

func (l *TextList) DragState() DragState { return l.drag }
func (l *TextList) SetDragState(s DragState) { l.drag = s }

func (l *TextList) Bounds(at Point) Rect { return RectAt(at, l.width, l.height) }

func (l *TextList) Contains(p, at Point) bool { return PointInRect(p, l.Bounds(at)) }

// rowRects lays out every row for a list placed at at. Rows share the full
// inner width; only their heights differ.
func (l *TextList) rowRects(at Point) []Rect {
	rects := make([]Rect, len(l.rows))
	x := at.X + l.style.Padding
	y := at.Y + l.style.Padding
	inner := l.width - l.style.Padding*2
	for i, row := range l.rows {
		rects[i] = Rect{X: x, Y: y, Width: inner, Height: row.height}
		y += row.height + l.style.ItemPadding
	}
	return rects
}

func (l *TextList) HoveredIndex(p, at Point) (int, bool) {
	for i, r := range l.rowRects(at) {
		if PointInRect(p, r) {
			return i, true
		}
	}
	return 0, false
}

// HoveredText returns the text of the row under p.
func (l *TextList) HoveredText(p, at Point) (string, bool) {
	i, ok := l.HoveredIndex(p, at)
	if !ok {
		return "", false
	}
	return l.rows[i].text, true
}

func (l *TextList) HoveredPath(p, at Point) []int {
	if i, ok := l.HoveredIndex(p, at); ok {
		return []int{i}
	}
	return nil
}

func (l *TextList) DragUpdate(m MouseState, s DragState) DragState {
	return dragStep(m, s, l.Contains(m.Position, s.Position))
}

func (l *TextList) Render(dst Surface, at Point, m MouseState) {
	dst.FillRect(l.Bounds(at), l.style.Background)

	half := l.style.Padding / 2
	for i, r := range l.rowRects(at) {
		if l.style.Hover != nil && PointInRect(m.Position, r) {
			dst.FillRect(r.Pad(half, half, 0, 0), l.style.Hover)
		}
		dst.DrawText(l.rows[i].text, r.Origin(), l.rows[i].height, l.style.Text)
	}
}
