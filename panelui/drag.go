package panelui

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDraggable is the panic value for drag calls on a fixed panel.
	ErrNotDraggable = errors.New("panelui: panel isn't draggable")
	// ErrNestedDraggable is the panic value when a column is handed a child
	// that carries its own draggable state.
	ErrNestedDraggable = errors.New("panelui: child panel must not be draggable")
	// ErrTooManyHighlights is the panic value for grid cells with more than
	// MaxCellHighlights colors.
	ErrTooManyHighlights = errors.New("panelui: too many cell highlights")
	// ErrNotImplemented is the panic value for geometry setters a panel
	// derives instead of storing.
	ErrNotImplemented = errors.New("panelui: not implemented")
)

// DragState is the value threaded through drag updates. The caller keeps it
// across frames and hands it back to the next frame's panel.
type DragState struct {
	Draggable bool
	Position  Point
	Dragging  bool
}

// NewDragState returns a draggable state resting at p.
func NewDragState(p Point) DragState {
	return DragState{Draggable: true, Position: p}
}

// FixedState returns a state for a panel that never moves.
func FixedState(p Point) DragState {
	return DragState{Position: p}
}

// MouseState is the per-frame pointer snapshot.
type MouseState struct {
	Position     Point
	Delta        Point
	LeftPressed  bool
	LeftReleased bool
	RightPressed bool
}

// dragStep advances s for one frame. over reports whether the pointer is on
// the panel placed at s.Position.
func dragStep(m MouseState, s DragState, over bool) DragState {
	if !s.Draggable {
		panic(ErrNotDraggable)
	}

	// Only frames strictly between the press and the release move the
	// panel.
	switch {
	case s.Dragging && m.LeftReleased:
		s.Dragging = false
	case s.Dragging:
		s.Position = s.Position.Add(m.Delta)
	case over && m.LeftPressed:
		// a press and release in one frame is a click
		s.Dragging = !m.LeftReleased
	}

	return s
}

func notImplemented(what string) {
	panic(fmt.Errorf("%w: %s", ErrNotImplemented, what))
}
