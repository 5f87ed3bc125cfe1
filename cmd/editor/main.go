package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/tileeditor/config"
	"github.com/milk9111/tileeditor/panelui"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "YAML config file; embedded defaults are used when it is missing")
	iconsDir := flag.String("icons", "", "directory of PNG icons (overrides icons_dir)")
	savePath := flag.String("save", "", "quick save file (overrides save_path)")
	flag.Parse()

	log.Println("Tile editor starting...")

	overrides := flagOverrides{iconsDir: *iconsDir, savePath: *savePath}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	overrides.apply(cfg)

	source, err := panelui.NewGoRegularSource()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	editor := NewEditor(cfg, loadIcons(cfg), panelui.GoTextMeasurer{Source: source})
	editor.font = source
	editor.overrides = overrides
	editor.status = newStatusBar(source, cfg)

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		editor.clip = systemClipboard{}
	}

	if w, err := config.NewWatcher(*configPath); err != nil {
		log.Printf("Config hot reload disabled: %v", err)
	} else {
		defer w.Close()
		editor.watch(*configPath, w)
	}

	if err := editor.load(); err != nil {
		log.Printf("Starting with an empty grid: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}

// flagOverrides are command line values that win over the config file,
// including after a hot reload.
type flagOverrides struct {
	iconsDir string
	savePath string
}

func (o flagOverrides) apply(cfg *config.Config) {
	if o.iconsDir != "" {
		cfg.IconsDir = o.iconsDir
	}
	if o.savePath != "" {
		cfg.SavePath = o.savePath
	}
}

type systemClipboard struct{}

func (systemClipboard) Read() []byte { return clipboard.Read(clipboard.FmtText) }

func (systemClipboard) Write(b []byte) { clipboard.Write(clipboard.FmtText, b) }
