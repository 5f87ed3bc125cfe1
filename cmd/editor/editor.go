package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/tileeditor/config"
	"github.com/milk9111/tileeditor/filedialog"
	"github.com/milk9111/tileeditor/icons"
	"github.com/milk9111/tileeditor/panelui"
	"github.com/milk9111/tileeditor/tilegrid"
)

// clipboardIO is the system clipboard, nil when it could not be opened.
type clipboardIO interface {
	Read() []byte
	Write(b []byte)
}

// Editor is the ebiten game for the tile editor.
type Editor struct {
	cfg       *config.Config
	overrides flagOverrides

	grid    *tilegrid.Grid[string]
	icons   *icons.Server[*ebiten.Image]
	dialog  *filedialog.Dialog
	palette panelui.DragState

	mouse     panelui.MouseTracker
	lastMouse panelui.MouseState
	captured  bool // dialog has the pointer

	font     *text.GoTextFaceSource
	measurer panelui.TextMeasurer
	status   *statusBar
	notice   string
	clip     clipboardIO

	configPath   string
	reload       <-chan string
	reloadErrors <-chan error

	screenW, screenH int
}

func NewEditor(cfg *config.Config, assets []icons.Asset[*ebiten.Image], m panelui.TextMeasurer) *Editor {
	pad := cfg.Text.Padding
	e := &Editor{
		cfg:      cfg,
		grid:     tilegrid.New[string](cfg.Grid.Rows, cfg.Grid.Cols),
		icons:    icons.NewServer(assets),
		dialog:   filedialog.New(panelui.Point{X: float64(cfg.Window.Width) / 2, Y: pad}),
		palette:  panelui.NewDragState(panelui.Point{X: pad, Y: pad}),
		measurer: m,
		screenW:  cfg.Window.Width,
		screenH:  cfg.Window.Height,
	}
	e.dialog.Style = dialogStyle(cfg)
	return e
}

func dialogStyle(cfg *config.Config) filedialog.Style {
	s := filedialog.DefaultStyle()
	s.TextHeight = cfg.Text.Size
	s.Padding = cfg.Text.Padding
	s.HeaderBackground = cfg.Colors.Header
	s.HeaderText = cfg.Colors.HeaderText
	return s
}

// loadIcons returns the generated shapes followed by the PNGs in the
// configured icons directory.
func loadIcons(cfg *config.Config) []icons.Asset[*ebiten.Image] {
	assets := icons.ToEbiten(icons.Generated(int(cfg.Palette.IconSize)))
	if cfg.IconsDir == "" {
		return assets
	}
	loaded, err := icons.LoadDir(cfg.IconsDir)
	if err != nil {
		log.Printf("Failed to load icons: %v", err)
		return assets
	}
	log.Printf("Loaded %d icons from %s", len(loaded), cfg.IconsDir)
	return append(assets, loaded...)
}

func (e *Editor) watch(path string, w *config.Watcher) {
	e.configPath = path
	e.reload = w.Events
	e.reloadErrors = w.Errors
}

// pollConfig applies a pending config change without blocking the frame.
func (e *Editor) pollConfig() {
	select {
	case _, ok := <-e.reload:
		if !ok {
			e.reload = nil
			return
		}
		cfg, err := config.Load(e.configPath)
		if err != nil {
			log.Printf("Config reload failed: %v", err)
			return
		}
		e.applyConfig(cfg)
		log.Printf("Reloaded %s", e.configPath)
	case err, ok := <-e.reloadErrors:
		if !ok {
			e.reloadErrors = nil
			return
		}
		log.Printf("Config watcher: %v", err)
	default:
	}
}

func (e *Editor) applyConfig(cfg *config.Config) {
	e.overrides.apply(cfg)
	e.cfg = cfg
	e.dialog.Style = dialogStyle(cfg)
	if e.font != nil {
		e.status = newStatusBar(e.font, cfg)
	}
}

func (e *Editor) Update() error {
	e.pollConfig()
	if err := e.step(readInput(&e.mouse)); err != nil {
		return err
	}
	e.status.Update(e.statusText())
	return nil
}

// step runs one frame of editing for an input snapshot.
func (e *Editor) step(in frameInput) error {
	for _, a := range in.actions {
		if err := e.apply(a); err != nil {
			return err
		}
	}

	m := in.mouse
	e.lastMouse = m

	// The dialog sits on top, so it takes the pointer first.
	e.captured = e.dialog.Hovered(m, e.measurer) || e.dialog.Drag.Dragging
	if path, ok := e.dialog.Update(m, e.measurer); ok {
		e.importPath(path)
	}
	if e.captured {
		return nil
	}

	if !e.updatePalette(m) {
		e.updateTiles(m)
	}
	return nil
}

func (e *Editor) apply(a action) error {
	rows, cols := e.grid.Size()
	switch a {
	case actionSave:
		e.save()
	case actionLoad:
		if err := e.load(); err != nil {
			log.Printf("Load failed: %v", err)
			e.notice = "load failed"
		}
	case actionGrowRows:
		e.resize(rows+1, cols)
	case actionShrinkRows:
		if rows > 1 {
			e.grid.Resize(rows-1, cols)
		}
	case actionGrowCols:
		e.resize(rows, cols+1)
	case actionShrinkCols:
		if cols > 1 {
			e.grid.Resize(rows, cols-1)
		}
	case actionToggleDialog:
		e.dialog.Toggle()
	case actionNextSelected:
		e.icons.CycleSelected(1)
	case actionPrevSelected:
		e.icons.CycleSelected(-1)
	case actionNextDefault:
		e.icons.CycleDefault(1)
	case actionPrevDefault:
		e.icons.CycleDefault(-1)
	case actionCopy:
		e.copyGrid()
	case actionPaste:
		e.pasteGrid()
	case actionQuit:
		return ebiten.Termination
	}
	return nil
}

func (e *Editor) resize(rows, cols int) {
	if err := tilegrid.ValidSize(rows, cols); err != nil {
		e.notice = "grid is at its size limit"
		return
	}
	e.grid.Resize(rows, cols)
}

// offscreen is a pointer position no panel contains.
var offscreen = panelui.Point{X: math.Inf(1), Y: math.Inf(1)}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(e.cfg.Colors.Background)
	surface := panelui.NewEbitenSurface(screen, e.font)

	// Panels under the dialog do not show hover while it has the pointer.
	under := e.lastMouse
	if e.captured {
		under.Position = offscreen
	}

	tiles := e.tilePanel()
	tiles.Render(surface, e.tileOrigin(tiles), under)

	palette, _ := e.palettePanel()
	palette.Render(surface, e.palette.Position, under)

	if e.dialog.Open {
		e.dialog.Panel(e.measurer).Render(surface, e.dialog.Drag.Position, e.lastMouse)
	}

	e.status.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.screenW, e.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
