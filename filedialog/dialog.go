// Package filedialog is an in-editor file browser built from panelui
// panels. It picks a PNG file or a folder of them to import.
package filedialog

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/tileeditor/panelui"
	"golang.org/x/image/colornames"
)

const SelectFolderText = "Select Folder"

// Child indices of the dialog column.
const (
	headerPanel = iota
	entriesPanel
	selectPanel
)

type Style struct {
	TextHeight  float64
	Padding     float64
	ItemPadding float64

	HeaderBackground color.Color
	HeaderText       color.Color

	EntryBackground color.Color
	EntryText       color.Color
	EntryHover      color.Color

	SelectBackground color.Color
	SelectText       color.Color
	SelectHover      color.Color
}

func DefaultStyle() Style {
	return Style{
		TextHeight:  20,
		Padding:     10,
		ItemPadding: 4,

		HeaderBackground: colornames.Maroon,
		HeaderText:       colornames.Goldenrod,

		EntryBackground: colornames.Darkgray,
		EntryText:       colornames.Gold,
		EntryHover:      colornames.Orange,

		SelectBackground: colornames.Green,
		SelectText:       colornames.Black,
		SelectHover:      colornames.Wheat,
	}
}

func (s Style) list(bg, fg, hover color.Color) panelui.TextStyle {
	return panelui.TextStyle{
		TextHeight:  s.TextHeight,
		Padding:     s.Padding,
		ItemPadding: s.ItemPadding,
		Background:  bg,
		Text:        fg,
		Hover:       hover,
	}
}

// Dialog is the state kept across frames. The panel tree is rebuilt from
// it every frame.
type Dialog struct {
	Open  bool
	Path  string
	Drag  panelui.DragState
	Style Style
}

func New(start panelui.Point) *Dialog {
	return &Dialog{
		Path:  ".",
		Drag:  panelui.NewDragState(start),
		Style: DefaultStyle(),
	}
}

func (d *Dialog) Toggle() { d.Open = !d.Open }

// entries lists the current folder, degrading to just ".." when the
// folder cannot be read.
func (d *Dialog) entries() []string {
	names, err := ListDirectory(d.Path)
	if err != nil {
		log.Printf("filedialog: %v", err)
		return []string{ParentEntry}
	}
	return names
}

// Panel builds the dialog for this frame. A closed dialog is an empty
// column.
func (d *Dialog) Panel(m panelui.TextMeasurer) *panelui.Column[*panelui.TextList] {
	return d.build(m, d.entries())
}

func (d *Dialog) build(m panelui.TextMeasurer, entries []string) *panelui.Column[*panelui.TextList] {
	col := panelui.NewDraggableColumn[*panelui.TextList](d.Drag)
	if !d.Open {
		return col
	}

	header := panelui.NewTextList(d.Style.list(d.Style.HeaderBackground, d.Style.HeaderText, nil))
	header.AddText(d.Path, m)
	col.AddChild(header, true)

	list := panelui.NewTextList(d.Style.list(d.Style.EntryBackground, d.Style.EntryText, d.Style.EntryHover))
	list.AddTexts(entries, m)
	col.AddChild(list, false)

	button := panelui.NewTextList(d.Style.list(d.Style.SelectBackground, d.Style.SelectText, d.Style.SelectHover))
	button.AddText(SelectFolderText, m)
	col.AddChild(button, false)

	return col
}

// Hovered reports whether the open dialog is under the pointer.
func (d *Dialog) Hovered(mouse panelui.MouseState, m panelui.TextMeasurer) bool {
	if !d.Open {
		return false
	}
	return d.Panel(m).Contains(mouse.Position, d.Drag.Position)
}

// Update runs one frame of input. It returns the picked path, a PNG file or
// a folder, and closes the dialog when something was picked.
func (d *Dialog) Update(mouse panelui.MouseState, m panelui.TextMeasurer) (string, bool) {
	if !d.Open {
		return "", false
	}

	entries := d.entries()
	panel := d.build(m, entries)
	d.Drag = panel.DragUpdate(mouse, d.Drag)

	if !mouse.LeftPressed {
		return "", false
	}

	hovered := panel.HoveredPath(mouse.Position, d.Drag.Position)
	if len(hovered) != 2 {
		return "", false
	}

	switch hovered[0] {
	case entriesPanel:
		return d.pick(entries[hovered[1]])
	case selectPanel:
		d.Open = false
		return d.Path, true
	}
	return "", false
}

func (d *Dialog) pick(name string) (string, bool) {
	path := filepath.Join(d.Path, name)
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("filedialog: %v", err)
		return "", false
	}
	if info.IsDir() {
		d.Path = path
		return "", false
	}
	d.Open = false
	return path, true
}
