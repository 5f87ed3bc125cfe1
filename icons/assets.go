package icons

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// AssetInfo holds information about an icon file on disk.
type AssetInfo struct {
	Name string
	Path string
}

// ListImageAssets walks dir for PNG files.
func ListImageAssets(dir string) ([]AssetInfo, error) {
	var assets []AssetInfo
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != dir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsPNG(info.Name()) {
			assets = append(assets, AssetInfo{
				Name: info.Name(),
				Path: path,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("icons: list %s: %w", dir, err)
	}
	return assets, nil
}

func IsPNG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".png")
}

// DecodeFile decodes one image file.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("icons: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("icons: decode %s: %w", path, err)
	}
	return img, nil
}

// Generated builds the built-in icons used when no icon directory is
// available: a blank tile, a square, a circle and a triangle.
func Generated(size int) []Asset[image.Image] {
	return []Asset[image.Image]{
		{Name: "blank", Value: squareImage(size, color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}, 0)},
		{Name: "square", Value: squareImage(size, color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}, size/8)},
		{Name: "circle", Value: circleImage(size, color.RGBA{R: 0x2e, G: 0xb8, B: 0x5c, A: 0xff})},
		{Name: "triangle", Value: triangleImage(size, color.RGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff})},
	}
}

func squareImage(size int, col color.RGBA, inset int) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := inset; y < size-inset; y++ {
		for x := inset; x < size-inset; x++ {
			rgba.Set(x, y, col)
		}
	}
	return rgba
}

// circleImage builds an RGBA image with a filled circle of the given color.
func circleImage(size int, col color.RGBA) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	cy := float64(size) / 2
	r := float64(size)/2 - 2
	rr := r * r
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				rgba.Set(x, y, col)
			}
		}
	}
	return rgba
}

// triangleImage builds an RGBA image with an upward-pointing triangle.
func triangleImage(size int, col color.RGBA) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	for y := 0; y < size; y++ {
		progress := float64(y) / float64(max(size-1, 1))
		rowWidth := progress * float64(size)
		left := cx - rowWidth/2
		right := cx + rowWidth/2
		for x := 0; x < size; x++ {
			if fx := float64(x) + 0.5; fx >= left && fx <= right {
				rgba.Set(x, y, col)
			}
		}
	}
	return rgba
}
