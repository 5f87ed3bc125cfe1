package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tileeditor/panelui"
)

type action int

const (
	actionSave action = iota
	actionLoad
	actionGrowRows
	actionShrinkRows
	actionGrowCols
	actionShrinkCols
	actionToggleDialog
	actionNextSelected
	actionPrevSelected
	actionNextDefault
	actionPrevDefault
	actionCopy
	actionPaste
	actionQuit
)

type shiftMode int

const (
	shiftAny shiftMode = iota
	shiftUp
	shiftDown
)

type keyBinding struct {
	key    ebiten.Key
	shift  shiftMode
	action action
}

var keyBindings = []keyBinding{
	{ebiten.KeyP, shiftAny, actionSave},
	{ebiten.KeyL, shiftAny, actionLoad},
	{ebiten.KeyW, shiftAny, actionGrowRows},
	{ebiten.KeyS, shiftAny, actionShrinkRows},
	{ebiten.KeyD, shiftAny, actionGrowCols},
	{ebiten.KeyA, shiftAny, actionShrinkCols},
	{ebiten.KeyO, shiftAny, actionToggleDialog},
	{ebiten.KeyE, shiftUp, actionNextSelected},
	{ebiten.KeyQ, shiftUp, actionPrevSelected},
	{ebiten.KeyE, shiftDown, actionNextDefault},
	{ebiten.KeyQ, shiftDown, actionPrevDefault},
	{ebiten.KeyC, shiftAny, actionCopy},
	{ebiten.KeyV, shiftAny, actionPaste},
	{ebiten.KeyEscape, shiftAny, actionQuit},
}

// frameInput is everything one Update reads from the devices.
type frameInput struct {
	mouse   panelui.MouseState
	actions []action
}

func (b keyBinding) matches(shift bool) bool {
	switch b.shift {
	case shiftUp:
		return !shift
	case shiftDown:
		return shift
	}
	return true
}

func readInput(t *panelui.MouseTracker) frameInput {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	in := frameInput{mouse: t.Snapshot()}
	for _, b := range keyBindings {
		if b.matches(shift) && inpututil.IsKeyJustPressed(b.key) {
			in.actions = append(in.actions, b.action)
		}
	}
	return in
}
