package panelui

import "fmt"

// Column stacks child panels top to bottom. Only the column itself may be
// draggable; children marked draggable act as its drag handles.
type Column[P Panel] struct {
	drag      DragState
	children  []P
	draggable []bool
}

func NewColumn[P Panel](at Point) *Column[P] {
	return &Column[P]{drag: FixedState(at)}
}

func NewDraggableColumn[P Panel](drag DragState) *Column[P] {
	drag.Draggable = true
	return &Column[P]{drag: drag}
}

// AddChild appends p and stretches every narrower child to the column
// width. isHandle marks p as a grip that drags the whole column.
//
// Children with a derived width, such as an ImageGrid, cannot be stretched:
// adding one narrower than an existing child, or adding a wider child after
// it, panics with ErrNotImplemented. Callers keep such children the widest.
func (c *Column[P]) AddChild(p P, isHandle bool) {
	if p.DragState().Draggable {
		panic(fmt.Errorf("%w: child %d", ErrNestedDraggable, len(c.children)))
	}
	c.children = append(c.children, p)
	c.draggable = append(c.draggable, isHandle)
	c.equalizeWidths()
}

func (c *Column[P]) equalizeWidths() {
	c.SetWidth(c.Width())
}

func (c *Column[P]) Len() int { return len(c.children) }

func (c *Column[P]) Child(i int) P { return c.children[i] }

func (c *Column[P]) Children() []P { return c.children }

func (c *Column[P]) Width() float64 {
	var w float64
	for _, child := range c.children {
		w = max(w, child.Width())
	}
	return w
}

func (c *Column[P]) Height() float64 {
	var h float64
	for _, child := range c.children {
		h += child.Height()
	}
	return h
}

func (c *Column[P]) Size() (float64, float64) { return c.Width(), c.Height() }

// SetWidth stretches the children narrower than w. Children whose width
// is derived, such as an ImageGrid, must already be the widest.
func (c *Column[P]) SetWidth(w float64) {
	for _, child := range c.children {
		if child.Width() < w {
			child.SetWidth(w)
		}
	}
}

func (c *Column[P]) SetHeight(float64) { notImplemented("Column.SetHeight") }

func (c *Column[P]) DragState() DragState { return c.drag }

func (c *Column[P]) SetDragState(s DragState) { c.drag = s }

func (c *Column[P]) Bounds(at Point) Rect { return RectAt(at, c.Width(), c.Height()) }

func (c *Column[P]) Contains(p, at Point) bool { return PointInRect(p, c.Bounds(at)) }

// each calls fn with every child and the position it sits at when the
// column is placed at at. fn returns false to stop.
func (c *Column[P]) each(at Point, fn func(i int, child P, pos Point) bool) {
	pos := at
	for i, child := range c.children {
		if !fn(i, child, pos) {
			return
		}
		pos.Y += child.Height()
	}
}

func (c *Column[P]) HoveredIndex(p, at Point) (int, bool) {
	found, ok := 0, false
	c.each(at, func(i int, child P, pos Point) bool {
		if child.Contains(p, pos) {
			found, ok = i, true
			return false
		}
		return true
	})
	return found, ok
}

// HoveredPath returns the child index under p followed by that child's own
// path, e.g. [1, 3] for the fourth row of the second child.
func (c *Column[P]) HoveredPath(p, at Point) []int {
	var path []int
	c.each(at, func(i int, child P, pos Point) bool {
		if child.Contains(p, pos) {
			path = append([]int{i}, child.HoveredPath(p, pos)...)
			return false
		}
		return true
	})
	return path
}

// DragUpdate delegates to the handle children in order. The first handle
// whose state changes moves the column by its position delta and hands
// over its dragging flag; later handles are not consulted that frame.
func (c *Column[P]) DragUpdate(m MouseState, s DragState) DragState {
	if !s.Draggable {
		panic(ErrNotDraggable)
	}

	c.each(s.Position, func(i int, child P, pos Point) bool {
		if child.DragState().Draggable {
			panic(fmt.Errorf("%w: child %d", ErrNestedDraggable, i))
		}
		if !c.draggable[i] {
			return true
		}

		in := DragState{Draggable: s.Draggable, Position: pos, Dragging: s.Dragging}
		out := child.DragUpdate(m, in)
		if out == in {
			return true
		}

		s.Position = s.Position.Add(out.Position.Sub(in.Position))
		s.Dragging = out.Dragging
		return false
	})

	return s
}

func (c *Column[P]) Render(dst Surface, at Point, m MouseState) {
	c.each(at, func(_ int, child P, pos Point) bool {
		child.Render(dst, pos, m)
		return true
	})
}
