package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/tileeditor/icons"
	"github.com/milk9111/tileeditor/tilegrid"
)

func (e *Editor) save() {
	if err := tilegrid.SaveFile(e.cfg.SavePath, e.grid); err != nil {
		log.Printf("Save failed: %v", err)
		e.notice = "save failed"
		return
	}
	log.Printf("Saved grid to %s", e.cfg.SavePath)
	e.notice = "saved " + e.cfg.SavePath
}

// load replaces the grid with the quick save. The current grid is kept when
// the file is missing or invalid.
func (e *Editor) load() error {
	g, err := tilegrid.LoadFile[string](e.cfg.SavePath)
	if err != nil {
		return err
	}
	e.grid = g
	log.Printf("Loaded grid from %s", e.cfg.SavePath)
	e.notice = "loaded " + e.cfg.SavePath
	return nil
}

func (e *Editor) copyGrid() {
	if e.clip == nil {
		e.notice = "no clipboard"
		return
	}
	b, err := json.Marshal(e.grid)
	if err != nil {
		log.Printf("Copy failed: %v", err)
		return
	}
	e.clip.Write(b)
	e.notice = "copied grid"
}

func (e *Editor) pasteGrid() {
	if e.clip == nil {
		e.notice = "no clipboard"
		return
	}
	g := tilegrid.New[string](0, 0)
	if err := json.Unmarshal(e.clip.Read(), g); err != nil {
		log.Printf("Paste failed: %v", err)
		e.notice = "clipboard is not a grid"
		return
	}
	e.grid = g
	e.notice = "pasted grid"
}

// importPath adds a picked PNG, or every PNG under a picked folder, to the
// palette.
func (e *Editor) importPath(path string) {
	n, err := e.importIcons(path)
	if err != nil {
		log.Printf("Import failed: %v", err)
		e.notice = "import failed"
		return
	}
	log.Printf("Imported %d icons from %s", n, path)
	e.notice = fmt.Sprintf("imported %d icons", n)
}

func (e *Editor) importIcons(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		img, err := icons.LoadPNG(path)
		if err != nil {
			return 0, err
		}
		e.icons.Add(icons.AssetName(path), img)
		return 1, nil
	}

	assets, err := icons.LoadDir(path)
	if err != nil {
		return 0, err
	}
	for _, a := range assets {
		e.icons.Add(a.Name, a.Value)
	}
	return len(assets), nil
}
