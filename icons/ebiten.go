package icons

import (
	"image"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadPNG decodes a PNG from disk into an ebiten image.
func LoadPNG(path string) (*ebiten.Image, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadDir loads every PNG under dir. Files that fail to decode are logged
// and skipped.
func LoadDir(dir string) ([]Asset[*ebiten.Image], error) {
	infos, err := ListImageAssets(dir)
	if err != nil {
		return nil, err
	}
	var out []Asset[*ebiten.Image]
	for _, info := range infos {
		img, err := LoadPNG(info.Path)
		if err != nil {
			log.Printf("icons: skipping %s: %v", info.Path, err)
			continue
		}
		out = append(out, Asset[*ebiten.Image]{Name: AssetName(info.Path), Value: img})
	}
	return out, nil
}

// AssetName is the palette name stored in saved grids for a file.
func AssetName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ToEbiten converts generated icons.
func ToEbiten(assets []Asset[image.Image]) []Asset[*ebiten.Image] {
	out := make([]Asset[*ebiten.Image], len(assets))
	for i, a := range assets {
		out[i] = Asset[*ebiten.Image]{Name: a.Name, Value: ebiten.NewImageFromImage(a.Value)}
	}
	return out
}
