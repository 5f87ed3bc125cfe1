package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tileeditor/config"
	"github.com/milk9111/tileeditor/icons"
	"github.com/milk9111/tileeditor/panelui"
	"github.com/milk9111/tileeditor/tilegrid"
)

type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(s string, size float64) float64 {
	return float64(len(s)) * size / 2
}

type fakeClipboard struct {
	data []byte
}

func (c *fakeClipboard) Read() []byte   { return c.data }
func (c *fakeClipboard) Write(b []byte) { c.data = append([]byte(nil), b...) }

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	cfg := config.Default()
	cfg.SavePath = filepath.Join(t.TempDir(), "quick-save.json")
	assets := []icons.Asset[*ebiten.Image]{{Name: "blank"}, {Name: "grass"}, {Name: "water"}}
	return NewEditor(cfg, assets, fixedMeasurer{})
}

func center(r panelui.Rect) panelui.Point {
	return panelui.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func tileCenter(e *Editor, i int) panelui.Point {
	g := e.tilePanel()
	return center(g.CellRect(i, e.tileOrigin(g)))
}

func paletteCenter(e *Editor, i int) panelui.Point {
	col, gi := e.palettePanel()
	at := e.palette.Position
	for j := 0; j < gi; j++ {
		at.Y += col.Child(j).Height()
	}
	return center(col.Child(gi).(*panelui.ImageGrid).CellRect(i, at))
}

func click(e *Editor, p panelui.Point, left bool) error {
	m := panelui.MouseState{Position: p}
	if left {
		m.LeftPressed = true
	} else {
		m.RightPressed = true
	}
	if err := e.step(frameInput{mouse: m}); err != nil {
		return err
	}
	m.LeftPressed, m.RightPressed = false, false
	m.LeftReleased = left
	return e.step(frameInput{mouse: m})
}

func TestResizeActions(t *testing.T) {
	cases := []struct {
		name     string
		actions  []action
		rows     int
		cols     int
		startRow int
		startCol int
	}{
		{"grow_rows", []action{actionGrowRows}, 9, 12, 8, 12},
		{"shrink_rows", []action{actionShrinkRows}, 7, 12, 8, 12},
		{"grow_cols", []action{actionGrowCols, actionGrowCols}, 8, 14, 8, 12},
		{"shrink_cols", []action{actionShrinkCols}, 8, 11, 8, 12},
		{"rows_stop_at_one", []action{actionShrinkRows, actionShrinkRows}, 1, 3, 2, 3},
		{"cols_stop_at_one", []action{actionShrinkCols}, 2, 1, 2, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEditor(t)
			e.grid = tilegrid.New[string](c.startRow, c.startCol)
			if err := e.step(frameInput{actions: c.actions}); err != nil {
				t.Fatalf("step: %v", err)
			}
			rows, cols := e.grid.Size()
			if rows != c.rows || cols != c.cols {
				t.Fatalf("size = %dx%d, want %dx%d", rows, cols, c.rows, c.cols)
			}
		})
	}
}

func TestResizeRefusesOverTileLimit(t *testing.T) {
	e := newTestEditor(t)
	e.resize(tilegrid.MaxTiles+1, 1)
	if rows, cols := e.grid.Size(); rows != 8 || cols != 12 {
		t.Fatalf("size = %dx%d, want 8x12", rows, cols)
	}
	if e.notice == "" {
		t.Fatalf("expected a notice for the refused resize")
	}
}

func TestPasteRejectsHugeGrid(t *testing.T) {
	e := newTestEditor(t)
	e.clip = &fakeClipboard{data: []byte(`{"version":"1.0","rows":4294967296,"cols":4294967296,"list":[]}`)}
	before := e.grid.Clone()
	e.pasteGrid()
	if !e.grid.Equal(before) {
		t.Fatalf("paste replaced the grid with an invalid one")
	}
}

func TestPaintAndClearTiles(t *testing.T) {
	e := newTestEditor(t)
	rows, _ := e.grid.Size()

	// index rows+2 is column 1, row 2
	if err := click(e, tileCenter(e, rows+2), true); err != nil {
		t.Fatal(err)
	}
	if v, ok := e.grid.Get(tilegrid.Pos{Row: 2, Col: 1}); !ok || v != "grass" {
		t.Fatalf("tile = %q,%v, want grass", v, ok)
	}
	if e.grid.Count() != 1 {
		t.Fatalf("count = %d, want 1", e.grid.Count())
	}

	if err := click(e, tileCenter(e, rows+2), false); err != nil {
		t.Fatal(err)
	}
	if _, ok := e.grid.Get(tilegrid.Pos{Row: 2, Col: 1}); ok {
		t.Fatalf("right click should clear the tile")
	}
}

func TestPaletteClicks(t *testing.T) {
	e := newTestEditor(t)

	if err := click(e, paletteCenter(e, 2), true); err != nil {
		t.Fatal(err)
	}
	if e.icons.Selected() != "water" {
		t.Fatalf("selected = %q, want water", e.icons.Selected())
	}

	if err := click(e, paletteCenter(e, 1), false); err != nil {
		t.Fatal(err)
	}
	if e.icons.Default() != "grass" {
		t.Fatalf("default = %q, want grass", e.icons.Default())
	}
	if e.grid.Count() != 0 {
		t.Fatalf("palette clicks must not paint tiles")
	}
}

func TestPaletteHighlights(t *testing.T) {
	e := newTestEditor(t)
	c := e.cfg.Colors

	if got := e.paletteHighlights("blank"); len(got) != 2 || got[0] != c.Palette || got[1] != c.DefaultIcon {
		t.Fatalf("default icon highlights = %v", got)
	}
	if got := e.paletteHighlights("grass"); len(got) != 1 || got[0] != c.Selected {
		t.Fatalf("selected icon highlights = %v", got)
	}
	if got := e.paletteHighlights("water"); len(got) != 1 || got[0] != c.Palette {
		t.Fatalf("plain icon highlights = %v", got)
	}
}

func TestPaletteDragByTitle(t *testing.T) {
	e := newTestEditor(t)
	start := e.palette.Position
	grab := start.Add(panelui.Point{X: 5, Y: 5})

	steps := []panelui.MouseState{
		{Position: grab, LeftPressed: true},
		{Position: grab.Add(panelui.Point{X: 30, Y: 40}), Delta: panelui.Point{X: 30, Y: 40}},
		{Position: grab.Add(panelui.Point{X: 30, Y: 40}), LeftReleased: true},
	}
	for _, m := range steps {
		if err := e.step(frameInput{mouse: m}); err != nil {
			t.Fatal(err)
		}
	}
	want := start.Add(panelui.Point{X: 30, Y: 40})
	if e.palette.Dragging || e.palette.Position != want {
		t.Fatalf("palette = %+v, want resting at %v", e.palette, want)
	}
}

func TestPaletteGridIsHandleWhenTitleIsWider(t *testing.T) {
	e := newTestEditor(t)
	e.cfg.Palette.Columns = 1
	e.cfg.Tiles.Size = 8

	col, gi := e.palettePanel()
	if gi != 0 || col.Len() != 1 {
		t.Fatalf("grid index %d with %d children, want a lone grid", gi, col.Len())
	}
}

func TestDialogCapturesPointer(t *testing.T) {
	e := newTestEditor(t)
	e.dialog.Toggle()

	target := tileCenter(e, 0)
	e.dialog.Drag.Position = target.Sub(panelui.Point{X: 5, Y: 5})

	if err := click(e, target, true); err != nil {
		t.Fatal(err)
	}
	if e.grid.Count() != 0 {
		t.Fatalf("click over the dialog painted a tile")
	}
	if !e.dialog.Open {
		t.Fatalf("dialog closed unexpectedly")
	}
}

func TestSaveAndLoad(t *testing.T) {
	e := newTestEditor(t)
	e.grid.Set(tilegrid.Pos{Row: 1, Col: 3}, "water")
	saved := e.grid.Clone()

	if err := e.step(frameInput{actions: []action{actionSave}}); err != nil {
		t.Fatal(err)
	}
	e.grid.Resize(2, 2)

	if err := e.step(frameInput{actions: []action{actionLoad}}); err != nil {
		t.Fatal(err)
	}
	if !e.grid.Equal(saved) {
		t.Fatalf("loaded grid differs from saved grid")
	}
	if !strings.HasPrefix(e.notice, "loaded") {
		t.Fatalf("notice = %q", e.notice)
	}
}

func TestLoadMissingKeepsGrid(t *testing.T) {
	e := newTestEditor(t)
	e.grid.Set(tilegrid.Pos{}, "grass")
	if err := e.load(); err == nil {
		t.Fatalf("expected error for a missing save")
	}
	if v, ok := e.grid.Get(tilegrid.Pos{}); !ok || v != "grass" {
		t.Fatalf("grid changed after failed load")
	}
}

func TestCopyPaste(t *testing.T) {
	e := newTestEditor(t)
	e.copyGrid()
	if e.notice != "no clipboard" {
		t.Fatalf("notice = %q", e.notice)
	}

	clip := &fakeClipboard{}
	e.clip = clip
	e.grid.Set(tilegrid.Pos{Row: 3, Col: 4}, "grass")
	want := e.grid.Clone()

	if err := e.step(frameInput{actions: []action{actionCopy}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(clip.data), `"version":"1.0"`) {
		t.Fatalf("clipboard = %s", clip.data)
	}

	e.grid = tilegrid.New[string](1, 1)
	if err := e.step(frameInput{actions: []action{actionPaste}}); err != nil {
		t.Fatal(err)
	}
	if !e.grid.Equal(want) {
		t.Fatalf("pasted grid differs")
	}

	clip.data = []byte("hello")
	e.pasteGrid()
	if !e.grid.Equal(want) {
		t.Fatalf("bad clipboard content replaced the grid")
	}
}

func TestCycleActions(t *testing.T) {
	e := newTestEditor(t)
	acts := []action{actionNextSelected, actionNextSelected, actionPrevDefault}
	if err := e.step(frameInput{actions: acts}); err != nil {
		t.Fatal(err)
	}
	if e.icons.Selected() != "blank" || e.icons.Default() != "water" {
		t.Fatalf("selected %q default %q", e.icons.Selected(), e.icons.Default())
	}
}

func TestQuit(t *testing.T) {
	e := newTestEditor(t)
	err := e.step(frameInput{actions: []action{actionQuit}})
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, want ebiten.Termination", err)
	}
}

func TestToggleDialog(t *testing.T) {
	e := newTestEditor(t)
	if err := e.step(frameInput{actions: []action{actionToggleDialog}}); err != nil {
		t.Fatal(err)
	}
	if !e.dialog.Open {
		t.Fatalf("dialog should open")
	}
}

func TestApplyConfigKeepsFlagOverrides(t *testing.T) {
	e := newTestEditor(t)
	e.overrides = flagOverrides{savePath: "mine.json", iconsDir: "art"}

	cfg := config.Default()
	cfg.Text.Size = 30
	e.applyConfig(cfg)

	if e.cfg.SavePath != "mine.json" || e.cfg.IconsDir != "art" {
		t.Fatalf("overrides lost: %q %q", e.cfg.SavePath, e.cfg.IconsDir)
	}
	if e.dialog.Style.TextHeight != 30 {
		t.Fatalf("dialog style not refreshed")
	}
}

func TestKeyBindingShift(t *testing.T) {
	var next, nextDefault keyBinding
	for _, b := range keyBindings {
		switch b.action {
		case actionNextSelected:
			next = b
		case actionNextDefault:
			nextDefault = b
		}
	}
	if next.key != nextDefault.key {
		t.Fatalf("E should drive both selected and default cycling")
	}
	if !next.matches(false) || next.matches(true) {
		t.Fatalf("plain E should only match without shift")
	}
	if nextDefault.matches(false) || !nextDefault.matches(true) {
		t.Fatalf("shift+E should only match with shift")
	}
}

func TestStatusText(t *testing.T) {
	e := newTestEditor(t)
	e.notice = "saved x"
	got := e.statusText()
	for _, want := range []string{"8x12", "selected: grass", "default: blank", "saved x"} {
		if !strings.Contains(got, want) {
			t.Fatalf("status %q missing %q", got, want)
		}
	}
}
